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

// Package render turns built components into text for places that cannot
// show tellraw JSON: the console, logs and legacy chat.
//
// Nothing here resolves server state. A score shows its holder name, an NBT
// component shows its path and a translatable shows its fallback or key.
package render

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

// Segment is a run of text with its fully inherited style.
type Segment struct {
	Text  string
	Style tellraw.Style
}

// Flatten walks c depth-first and returns its text runs in display order.
// Adjacent runs with the same style are merged and empty runs dropped.
func Flatten(c tellraw.Component) []Segment {
	f := &flattener{}
	f.walk(c, tellraw.Style{})
	return f.segments
}

func Plain(c tellraw.Component) string {
	return strings.Join(lo.Map(Flatten(c), func(s Segment, _ int) string { return s.Text }), "")
}

type flattener struct {
	segments []Segment
}

func (f *flattener) emit(text string, style tellraw.Style) {
	if text == "" {
		return
	}
	if n := len(f.segments); n > 0 && f.segments[n-1].Style == style {
		f.segments[n-1].Text += text
		return
	}
	f.segments = append(f.segments, Segment{Text: text, Style: style})
}

func (f *flattener) walk(c tellraw.Component, parent tellraw.Style) {
	style := c.Style.Inherit(parent)
	switch content := c.Content.(type) {
	case tellraw.TextContent:
		f.emit(content.Text, style)
	case tellraw.TranslatableContent:
		f.translatable(content, style)
	case tellraw.ScoreContent:
		f.emit(content.Name, style)
	case tellraw.SelectorContent:
		f.emit(content.Pattern, style)
	case tellraw.KeybindContent:
		f.emit(content.Keybind, style)
	case tellraw.BlockNBTContent:
		f.emit(content.NBTPath, style)
	case tellraw.EntityNBTContent:
		f.emit(content.NBTPath, style)
	case tellraw.StorageNBTContent:
		f.emit(content.NBTPath, style)
	case tellraw.ObjectContent:
		f.emit(objectLabel(content.Contents), style)
	}
	for _, child := range c.Children {
		f.walk(child, style)
	}
}

// translatable substitutes %s and %N$s in the fallback (or the key when there
// is no fallback). Arguments no placeholder refers to follow, space separated.
func (f *flattener) translatable(content tellraw.TranslatableContent, style tellraw.Style) {
	pattern := content.Fallback
	if pattern == "" {
		pattern = content.Key
	}
	used := make([]bool, len(content.Args))
	next := 0
	arg := func(i int) {
		if i < 0 || i >= len(content.Args) {
			return
		}
		used[i] = true
		f.walk(content.Args[i], style)
	}

	var literal strings.Builder
	flush := func() {
		f.emit(literal.String(), style)
		literal.Reset()
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 >= len(pattern) {
			literal.WriteByte(pattern[i])
			continue
		}
		rest := pattern[i+1:]
		if rest[0] == '%' {
			literal.WriteByte('%')
			i++
			continue
		}
		if rest[0] == 's' {
			flush()
			arg(next)
			next++
			i++
			continue
		}
		if end := strings.Index(rest, "$s"); end > 0 {
			if n, err := strconv.Atoi(rest[:end]); err == nil {
				flush()
				arg(n - 1)
				i += end + 2
				continue
			}
		}
		literal.WriteByte('%')
	}
	flush()

	for i, a := range content.Args {
		if used[i] {
			continue
		}
		f.emit(" ", style)
		f.walk(a, style)
	}
}

func objectLabel(contents tellraw.ObjectContents) string {
	switch o := contents.(type) {
	case tellraw.SpriteContents:
		return "[" + o.Sprite.String() + "]"
	case tellraw.PlayerHeadContents:
		if o.Name != "" {
			return "[" + o.Name + "]"
		}
		return "[head]"
	}
	return ""
}
