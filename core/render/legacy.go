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
	"strings"

	"github.com/samber/lo"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

const (
	SectionMarker   = '§'
	AmpersandMarker = '&'
)

const colorCodes = "0123456789abcdef"

var decorationCodes = map[tellraw.Decoration]byte{
	tellraw.Obfuscated:    'k',
	tellraw.Bold:          'l',
	tellraw.Strikethrough: 'm',
	tellraw.Underlined:    'n',
	tellraw.Italic:        'o',
}

// Legacy renders c with formatting codes introduced by marker. Hex colors
// snap to the nearest named color. Formatting resets with marker+r whenever
// a run drops something the previous run had.
func Legacy(c tellraw.Component, marker rune) string {
	var sb strings.Builder
	prev := legacyFormat{}
	for _, segment := range Flatten(c) {
		format := legacyFormatOf(segment.Style)
		if format != prev {
			if !prev.isEmpty() {
				sb.WriteRune(marker)
				sb.WriteByte('r')
			}
			format.write(&sb, marker)
			prev = format
		}
		sb.WriteString(segment.Text)
	}
	return sb.String()
}

type legacyFormat struct {
	color       tellraw.Color
	decorations [5]bool
}

func legacyFormatOf(style tellraw.Style) legacyFormat {
	f := legacyFormat{color: style.Color.Nearest()}
	for i, d := range tellraw.Decorations {
		f.decorations[i] = style.HasDecoration(d)
	}
	return f
}

func (f legacyFormat) isEmpty() bool {
	return f == legacyFormat{}
}

func (f legacyFormat) write(sb *strings.Builder, marker rune) {
	if index := lo.IndexOf(tellraw.NamedColors, f.color); index >= 0 {
		sb.WriteRune(marker)
		sb.WriteByte(colorCodes[index])
	}
	for i, d := range tellraw.Decorations {
		if f.decorations[i] {
			sb.WriteRune(marker)
			sb.WriteByte(decorationCodes[d])
		}
	}
}
