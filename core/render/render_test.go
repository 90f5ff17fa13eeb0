// Copyright 2024 bbaa
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/dsl"
	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

func TestFlattenInheritsStyle(t *testing.T) {
	c := dsl.Must(dsl.Text(func(b *dsl.TextBuilder) {
		b.Content("Hello ")
		b.Color(tellraw.Gold)
		b.Decorate(tellraw.Bold)
		b.TextColored("world", tellraw.Aqua)
		b.TextContent("!")
		b.TextContent("")
	}))

	segments := Flatten(c)
	require.Len(t, segments, 3)
	assert.Equal(t, Segment{Text: "Hello ", Style: tellraw.Style{Color: tellraw.Gold, Bold: tellraw.True}}, segments[0])
	assert.Equal(t, Segment{Text: "world", Style: tellraw.Style{Color: tellraw.Aqua, Bold: tellraw.True}}, segments[1])
	assert.Equal(t, Segment{Text: "!", Style: tellraw.Style{Color: tellraw.Gold, Bold: tellraw.True}}, segments[2])
}

func TestFlattenMergesRuns(t *testing.T) {
	c := tellraw.Join(nil, tellraw.NewText("a"), tellraw.NewText("b"), tellraw.NewTextColored("c", tellraw.Red))
	assert.Equal(t, []Segment{
		{Text: "ab"},
		{Text: "c", Style: tellraw.Style{Color: tellraw.Red}},
	}, Flatten(c))
}

func TestPlainTranslatable(t *testing.T) {
	tests := []struct {
		name    string
		content tellraw.TranslatableContent
		want    string
	}{
		{"sequential", tellraw.TranslatableContent{Key: "chat.type.text", Fallback: "<%s> %s", Args: []tellraw.Component{tellraw.NewText("bbaa"), tellraw.NewText("hi")}}, "<bbaa> hi"},
		{"positional", tellraw.TranslatableContent{Key: "k", Fallback: "%2$s then %1$s", Args: []tellraw.Component{tellraw.NewText("a"), tellraw.NewText("b")}}, "b then a"},
		{"percent", tellraw.TranslatableContent{Key: "k", Fallback: "100%% of %s", Args: []tellraw.Component{tellraw.NewText("x")}}, "100% of x"},
		{"key with args", tellraw.TranslatableContent{Key: "death.attack.generic", Args: []tellraw.Component{tellraw.NewText("a"), tellraw.NewText("b")}}, "death.attack.generic a b"},
		{"missing arg", tellraw.TranslatableContent{Key: "k", Fallback: "[%s|%s]", Args: []tellraw.Component{tellraw.NewText("x")}}, "[x|]"},
		{"trailing percent", tellraw.TranslatableContent{Key: "k", Fallback: "50%"}, "50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plain(tellraw.Component{Content: tt.content}))
		})
	}
}

func TestPlainOtherContents(t *testing.T) {
	c := tellraw.Join(&tellraw.Component{Content: tellraw.TextContent{Text: " "}},
		tellraw.Component{Content: tellraw.ScoreContent{Name: "@s", Objective: "kills"}},
		tellraw.Component{Content: tellraw.SelectorContent{Pattern: "@p"}},
		tellraw.Component{Content: tellraw.KeybindContent{Keybind: "key.jump"}},
		tellraw.Component{Content: tellraw.StorageNBTContent{NBTSource: tellraw.NBTSource{NBTPath: "a.b"}, Storage: tellraw.MustKey("x")}},
		tellraw.Component{Content: tellraw.ObjectContent{Contents: tellraw.SpriteContents{Sprite: tellraw.MustKey("item/apple")}}},
		tellraw.Component{Content: tellraw.ObjectContent{Contents: tellraw.PlayerHeadContents{Name: "bbaa"}}},
	)
	assert.Equal(t, "@s @p key.jump a.b [minecraft:item/apple] [bbaa]", Plain(c))
}

func TestLegacy(t *testing.T) {
	c := dsl.Must(dsl.Text(func(b *dsl.TextBuilder) {
		b.Content("A")
		b.Color(tellraw.Red)
		b.Text(func(child *dsl.TextBuilder) {
			child.Content("B")
			child.Decorate(tellraw.Bold)
		})
		b.TextContent("C")
	}))
	assert.Equal(t, "&cA&r&c&lB&r&cC", Legacy(c, AmpersandMarker))
	assert.Equal(t, "§cA§r§c§lB§r§cC", Legacy(c, SectionMarker))

	plain := tellraw.Join(nil, tellraw.NewText("a"), tellraw.NewTextColored("b", tellraw.Blue), tellraw.NewText("c"))
	assert.Equal(t, "a&9b&rc", Legacy(plain, AmpersandMarker))

	hex := tellraw.NewTextColored("x", tellraw.HexColor(0xFF, 0xAB, 0x01))
	assert.Equal(t, "&6x", Legacy(hex, AmpersandMarker))

	decorated := tellraw.Component{
		Content: tellraw.TextContent{Text: "y"},
		Style:   tellraw.Style{Italic: tellraw.True, Bold: tellraw.True, Obfuscated: tellraw.True},
	}
	assert.Equal(t, "&k&l&oy", Legacy(decorated, AmpersandMarker))
}

func TestAttributes(t *testing.T) {
	assert.Empty(t, Attributes(tellraw.Style{}))
	assert.Equal(t, []color.Attribute{color.FgYellow, color.Bold, color.Underline},
		Attributes(tellraw.Style{Color: tellraw.HexColor(0xFF, 0xAA, 0x00), Underlined: tellraw.True, Bold: tellraw.True}))
	assert.Equal(t, []color.Attribute{color.Italic}, Attributes(tellraw.Style{Italic: tellraw.True, Bold: tellraw.False}))
}

func TestANSI(t *testing.T) {
	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })

	c := tellraw.Join(nil,
		tellraw.NewText("plain "),
		tellraw.Component{Content: tellraw.TextContent{Text: "red"}, Style: tellraw.Style{Color: tellraw.Red, Bold: tellraw.True}},
	)

	color.NoColor = false
	assert.Equal(t, "plain "+color.New(color.FgHiRed, color.Bold).Sprint("red"), ANSI(c))

	color.NoColor = true
	assert.Equal(t, "plain red", ANSI(c))
}
