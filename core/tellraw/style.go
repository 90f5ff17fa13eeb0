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

package tellraw

type Decoration string

var (
	Bold          Decoration = "bold"
	Italic        Decoration = "italic"
	Underlined    Decoration = "underlined"
	Strikethrough Decoration = "strikethrough"
	Obfuscated    Decoration = "obfuscated"
)

var Decorations = []Decoration{Obfuscated, Bold, Strikethrough, Underlined, Italic}

type DecorationState int8

const (
	NotSet DecorationState = iota
	False
	True
)

func StateOf(flag bool) DecorationState {
	if flag {
		return True
	}
	return False
}

// Style is copied by value; every pointer it holds is treated as read-only.
type Style struct {
	Color         Color
	Bold          DecorationState
	Italic        DecorationState
	Underlined    DecorationState
	Strikethrough DecorationState
	Obfuscated    DecorationState
	Font          Key
	Insertion     string
	ClickEvent    *ClickEvent
	HoverEvent    *HoverEvent
}

func (s Style) Decoration(d Decoration) DecorationState {
	switch d {
	case Bold:
		return s.Bold
	case Italic:
		return s.Italic
	case Underlined:
		return s.Underlined
	case Strikethrough:
		return s.Strikethrough
	case Obfuscated:
		return s.Obfuscated
	}
	return NotSet
}

func (s Style) HasDecoration(d Decoration) bool {
	return s.Decoration(d) == True
}

func (s *Style) setDecoration(d Decoration, state DecorationState) {
	switch d {
	case Bold:
		s.Bold = state
	case Italic:
		s.Italic = state
	case Underlined:
		s.Underlined = state
	case Strikethrough:
		s.Strikethrough = state
	case Obfuscated:
		s.Obfuscated = state
	}
}

func (s Style) IsEmpty() bool {
	return s == Style{}
}

// Inherit fills every unset field of s from parent.
func (s Style) Inherit(parent Style) Style {
	if s.Color == "" {
		s.Color = parent.Color
	}
	for _, d := range Decorations {
		if s.Decoration(d) == NotSet {
			s.setDecoration(d, parent.Decoration(d))
		}
	}
	if s.Font.IsZero() {
		s.Font = parent.Font
	}
	if s.Insertion == "" {
		s.Insertion = parent.Insertion
	}
	if s.ClickEvent == nil {
		s.ClickEvent = parent.ClickEvent
	}
	if s.HoverEvent == nil {
		s.HoverEvent = parent.HoverEvent
	}
	return s
}

type StyleBuilder struct {
	style Style
}

func NewStyleBuilder() *StyleBuilder {
	return &StyleBuilder{}
}

func (sb *StyleBuilder) Color(c Color) *StyleBuilder {
	sb.style.Color = c
	return sb
}

func (sb *StyleBuilder) Decorate(decorations ...Decoration) *StyleBuilder {
	for _, d := range decorations {
		sb.style.setDecoration(d, True)
	}
	return sb
}

func (sb *StyleBuilder) Decoration(d Decoration, flag bool) *StyleBuilder {
	sb.style.setDecoration(d, StateOf(flag))
	return sb
}

func (sb *StyleBuilder) DecorationState(d Decoration, state DecorationState) *StyleBuilder {
	sb.style.setDecoration(d, state)
	return sb
}

func (sb *StyleBuilder) Font(font Key) *StyleBuilder {
	sb.style.Font = font
	return sb
}

func (sb *StyleBuilder) Insertion(insertion string) *StyleBuilder {
	sb.style.Insertion = insertion
	return sb
}

func (sb *StyleBuilder) ClickEvent(event ClickEvent) *StyleBuilder {
	sb.style.ClickEvent = &event
	return sb
}

func (sb *StyleBuilder) HoverEvent(event HoverEvent) *StyleBuilder {
	sb.style.HoverEvent = &event
	return sb
}

// Merge copies every field set on style over the builder's current values.
func (sb *StyleBuilder) Merge(style Style) *StyleBuilder {
	sb.style = style.Inherit(sb.style)
	return sb
}

// SetStyle replaces the whole style.
func (sb *StyleBuilder) SetStyle(style Style) *StyleBuilder {
	sb.style = style
	return sb
}

func (sb *StyleBuilder) Build() Style {
	return sb.style
}
