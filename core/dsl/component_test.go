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

package dsl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

func TestTextForwardsStyle(t *testing.T) {
	c, err := Text(func(b *TextBuilder) {
		b.Content("hi")
		b.Color(tellraw.Gold)
		b.Decorate(tellraw.Bold, tellraw.Italic)
		b.Decoration(tellraw.Italic, false)
		b.Font(tellraw.MustKey("uniform"))
		b.Insertion("ins")
	})
	require.NoError(t, err)

	assert.Equal(t, tellraw.TextContent{Text: "hi"}, c.Content)
	assert.Equal(t, tellraw.Gold, c.Style.Color)
	assert.Equal(t, tellraw.True, c.Style.Bold)
	assert.Equal(t, tellraw.False, c.Style.Italic)
	assert.Equal(t, tellraw.NotSet, c.Style.Underlined)
	assert.Equal(t, tellraw.MustKey("uniform"), c.Style.Font)
	assert.Equal(t, "ins", c.Style.Insertion)
}

func TestTextNilConfigure(t *testing.T) {
	c, err := Text(nil)
	require.NoError(t, err)
	assert.Equal(t, tellraw.Empty(), c)
}

func TestChildrenKeepOrder(t *testing.T) {
	c, err := Text(func(b *TextBuilder) {
		b.TextContent("a")
		b.Space()
		b.TextColored("b", tellraw.Red)
		b.Newline()
		b.Append(tellraw.NewText("c"), tellraw.NewText("d"))
		b.TranslatableOf("key.x")
	})
	require.NoError(t, err)

	require.Len(t, c.Children, 7)
	assert.Equal(t, tellraw.NewText("a"), c.Children[0])
	assert.Equal(t, tellraw.Space(), c.Children[1])
	assert.Equal(t, tellraw.NewTextColored("b", tellraw.Red), c.Children[2])
	assert.Equal(t, tellraw.Newline(), c.Children[3])
	assert.Equal(t, tellraw.NewText("d"), c.Children[5])
	assert.Equal(t, tellraw.Translatable, c.Children[6].Type())
}

func TestStyleReplacesWholeStyle(t *testing.T) {
	c, err := Text(func(b *TextBuilder) {
		b.Color(tellraw.Blue)
		b.Style(func(s *StyleBuilder) {
			s.Decorate(tellraw.Bold)
		})
	})
	require.NoError(t, err)
	assert.Equal(t, tellraw.Style{Bold: tellraw.True}, c.Style)

	c, err = Text(func(b *TextBuilder) {
		b.Color(tellraw.Blue)
		b.SetStyle(tellraw.Style{Italic: tellraw.True})
	})
	require.NoError(t, err)
	assert.Equal(t, tellraw.Style{Italic: tellraw.True}, c.Style)
}

func TestStyleHelper(t *testing.T) {
	style, err := Style(func(s *StyleBuilder) {
		s.Color(tellraw.Red)
		s.Insertion("x")
		s.Merge(tellraw.Style{Color: tellraw.Green, Underlined: tellraw.True})
	})
	require.NoError(t, err)
	assert.Equal(t, tellraw.Style{Color: tellraw.Green, Underlined: tellraw.True, Insertion: "x"}, style)

	style, err = Style(nil)
	require.NoError(t, err)
	assert.True(t, style.IsEmpty())
}

func TestTranslatableArguments(t *testing.T) {
	c, err := Translatable(func(b *TranslatableBuilder) {
		b.Key("chat.type.text")
		b.Fallback("<%s> %s")
		b.Arguments(func(a *ArgsBuilder) {
			a.TextContent("1")
			a.Text(func(t *TextBuilder) { t.Content("2") })
			a.Add(tellraw.NewText("3"), tellraw.NewText("4"))
			a.Translatable(func(t *TranslatableBuilder) { t.Key("5") })
			assert.Len(t, a.List(), 5)
		})
	})
	require.NoError(t, err)

	content := c.Content.(tellraw.TranslatableContent)
	assert.Equal(t, "chat.type.text", content.Key)
	assert.Equal(t, "<%s> %s", content.Fallback)
	require.Len(t, content.Args, 5)
	for i, want := range []string{"1", "2", "3", "4"} {
		assert.Equal(t, tellraw.TextContent{Text: want}, content.Args[i].Content)
	}
	assert.Equal(t, tellraw.TranslatableContent{Key: "5"}, content.Args[4].Content)
}

func TestTranslatableArgsReplaces(t *testing.T) {
	c, err := Translatable(func(b *TranslatableBuilder) {
		b.Key("k")
		b.Args(tellraw.NewText("old"))
		b.Args(tellraw.NewText("a"), tellraw.NewText("b"))
	})
	require.NoError(t, err)
	assert.Len(t, c.Content.(tellraw.TranslatableContent).Args, 2)
}

func TestTranslatableKeyAppender(t *testing.T) {
	c, err := Text(func(b *TextBuilder) {
		b.TranslatableKey("item.minecraft.diamond", func(t *TranslatableBuilder) {
			t.Color(tellraw.Aqua)
		})
	})
	require.NoError(t, err)
	require.Len(t, c.Children, 1)
	assert.Equal(t, tellraw.TranslatableContent{Key: "item.minecraft.diamond"}, c.Children[0].Content)
	assert.Equal(t, tellraw.Aqua, c.Children[0].Style.Color)
}

func TestVariantSetters(t *testing.T) {
	sep := tellraw.NewText(", ")

	score, err := Score(func(b *ScoreBuilder) {
		b.Name("@s")
		b.Objective("kills")
	})
	require.NoError(t, err)
	assert.Equal(t, tellraw.ScoreContent{Name: "@s", Objective: "kills"}, score.Content)

	keybind, err := Keybind(func(b *KeybindBuilder) { b.Key("key.jump") })
	require.NoError(t, err)
	assert.Equal(t, tellraw.KeybindContent{Keybind: "key.jump"}, keybind.Content)

	selector, err := Selector(func(b *SelectorBuilder) {
		b.Pattern("@a[distance=..5]")
		b.Separator(sep)
	})
	require.NoError(t, err)
	assert.Equal(t, tellraw.SelectorContent{Pattern: "@a[distance=..5]", Separator: &sep}, selector.Content)
}

func TestNBTBuilders(t *testing.T) {
	sep := tellraw.NewText("; ")

	block, err := BlockNBT(func(b *BlockNBTBuilder) {
		b.NBTPath("Items[0]")
		b.Interpret(true)
		b.Separator(sep)
		b.WorldPos(tellraw.Relative(0), tellraw.Absolute(64), tellraw.Relative(-1))
	})
	require.NoError(t, err)
	content := block.Content.(tellraw.BlockNBTContent)
	assert.Equal(t, "Items[0]", content.NBTPath)
	assert.True(t, content.Interpret)
	assert.Equal(t, &sep, content.Separator)
	assert.Equal(t, "~ 64 ~-1", content.Pos.String())

	local, err := BlockNBT(func(b *BlockNBTBuilder) {
		b.NBTPath("x")
		b.LocalPos(0, 1, 2.5)
	})
	require.NoError(t, err)
	assert.Equal(t, tellraw.LocalPos{Up: 1, Forwards: 2.5}, local.Content.(tellraw.BlockNBTContent).Pos)

	entity, err := EntityNBT(func(b *EntityNBTBuilder) {
		b.NBTPath("Health")
		b.Entity("@p")
	})
	require.NoError(t, err)
	assert.Equal(t, tellraw.EntityNBTContent{NBTSource: tellraw.NBTSource{NBTPath: "Health"}, Selector: "@p"}, entity.Content)

	storage, err := StorageNBT(func(b *StorageNBTBuilder) {
		b.NBTPath("players")
		b.Storage(tellraw.MustKey("mymod:data"))
	})
	require.NoError(t, err)
	assert.Equal(t, tellraw.MustKey("mymod:data"), storage.Content.(tellraw.StorageNBTContent).Storage)
}

func TestObjectBuilder(t *testing.T) {
	id := uuid.New()
	head, err := Object(func(b *ObjectBuilder) {
		b.PlayerHead(func(p *PlayerHeadBuilder) {
			p.ID(id)
			p.Name("bbaa")
			p.ProfileProperty("textures", "abc", "sig")
			p.ProfileProperties(tellraw.ProfileProperty{Name: "extra", Value: "x"})
		})
	})
	require.NoError(t, err)
	contents := head.Content.(tellraw.ObjectContent).Contents.(tellraw.PlayerHeadContents)
	assert.Equal(t, id, contents.ID)
	assert.Equal(t, "bbaa", contents.Name)
	assert.True(t, contents.Hat)
	assert.Equal(t, []tellraw.ProfileProperty{{Name: "textures", Value: "abc", Signature: "sig"}, {Name: "extra", Value: "x"}}, contents.Properties)

	bare, err := Object(func(b *ObjectBuilder) {
		b.PlayerHead(func(p *PlayerHeadBuilder) { p.Hat(false) })
	})
	require.NoError(t, err)
	assert.False(t, bare.Content.(tellraw.ObjectContent).Contents.(tellraw.PlayerHeadContents).Hat)

	sprite, err := Object(func(b *ObjectBuilder) {
		b.AtlasSprite(tellraw.MustKey("blocks"), tellraw.MustKey("block/stone"))
	})
	require.NoError(t, err)
	assert.Equal(t, tellraw.SpriteContents{Atlas: tellraw.MustKey("blocks"), Sprite: tellraw.MustKey("block/stone")}, sprite.Content.(tellraw.ObjectContent).Contents)
}

func TestPlayerHeadSkin(t *testing.T) {
	id := uuid.New()
	profile := tellraw.PlayerProfile{
		ID:         id,
		Name:       "bbaa",
		Properties: []tellraw.ProfileProperty{{Name: "textures", Value: "abc"}},
	}
	head, err := Object(func(b *ObjectBuilder) {
		b.PlayerHead(func(p *PlayerHeadBuilder) {
			p.Name("someone else")
			p.Skin(profile)
			p.Skin(nil)
		})
	})
	require.NoError(t, err)

	contents := head.Content.(tellraw.ObjectContent).Contents.(tellraw.PlayerHeadContents)
	assert.Equal(t, id, contents.ID)
	assert.Equal(t, "bbaa", contents.Name)
	assert.Equal(t, profile.Properties, contents.Properties)
	assert.True(t, contents.Hat)

	contents.Properties[0].Value = "changed"
	assert.Equal(t, "abc", profile.Properties[0].Value)
}

func TestMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		build func() (tellraw.Component, error)
	}{
		{"translatable", func() (tellraw.Component, error) { return Translatable(nil) }},
		{"score objective", func() (tellraw.Component, error) {
			return Score(func(b *ScoreBuilder) { b.Name("@s") })
		}},
		{"keybind", func() (tellraw.Component, error) { return Keybind(nil) }},
		{"selector", func() (tellraw.Component, error) { return Selector(nil) }},
		{"block nbt", func() (tellraw.Component, error) {
			return BlockNBT(func(b *BlockNBTBuilder) { b.NBTPath("x") })
		}},
		{"entity nbt", func() (tellraw.Component, error) {
			return EntityNBT(func(b *EntityNBTBuilder) { b.Entity("@s") })
		}},
		{"storage nbt", func() (tellraw.Component, error) {
			return StorageNBT(func(b *StorageNBTBuilder) { b.NBTPath("x") })
		}},
		{"object", func() (tellraw.Component, error) { return Object(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.ErrorIs(t, err, tellraw.ErrMissingField)
		})
	}
}

func TestNestedFailuresAreJoined(t *testing.T) {
	_, err := Text(func(b *TextBuilder) {
		b.Content("root")
		b.Score(func(s *ScoreBuilder) { s.Name("@s") })
		b.TextContent("still appended")
		b.Keybind(nil)
	})
	require.ErrorIs(t, err, tellraw.ErrMissingField)
	assert.ErrorContains(t, err, `"objective"`)
	assert.ErrorContains(t, err, `"keybind"`)

	_, err = Translatable(func(b *TranslatableBuilder) {
		b.Key("k")
		b.Arguments(func(a *ArgsBuilder) {
			a.Translatable(nil)
		})
	})
	require.ErrorIs(t, err, tellraw.ErrMissingField)
}

func TestMust(t *testing.T) {
	c := Must(Text(func(b *TextBuilder) { b.Content("ok") }))
	assert.Equal(t, tellraw.NewText("ok"), c)
	assert.Panics(t, func() { Must(Keybind(nil)) })
}
