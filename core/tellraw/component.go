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

import "slices"

// Component is an immutable piece of styled chat text. Methods that look like
// mutation return a new Component.
type Component struct {
	Content  Content
	Style    Style
	Children []Component
}

func (c Component) Type() MsgType {
	if c.Content == nil {
		return Text
	}
	return c.Content.Type()
}

func (c Component) Append(children ...Component) Component {
	c.Children = append(slices.Clip(c.Children), children...)
	return c
}

func (c Component) WithStyle(style Style) Component {
	c.Style = style
	return c
}

func NewText(text string) Component {
	return Component{Content: TextContent{Text: text}}
}

func NewTextColored(text string, color Color) Component {
	return Component{Content: TextContent{Text: text}, Style: Style{Color: color}}
}

func Newline() Component {
	return NewText("\n")
}

func Space() Component {
	return NewText(" ")
}

func Empty() Component {
	return NewText("")
}

func NewTranslatable(key string, args ...Component) Component {
	return Component{Content: TranslatableContent{Key: key, Args: slices.Clone(args)}}
}

// Join places separator between each pair of components under an empty parent.
// A nil separator joins without one.
func Join(separator *Component, components ...Component) Component {
	children := make([]Component, 0, len(components)*2)
	for i, c := range components {
		if i > 0 && separator != nil {
			children = append(children, *separator)
		}
		children = append(children, c)
	}
	return Component{Content: TextContent{}, Children: children}
}

// Builder accumulates one component of content type C.
type Builder[C Content] struct {
	StyleBuilder
	content  C
	children []Component
}

func NewBuilder[C Content](content C) *Builder[C] {
	return &Builder[C]{content: content}
}

func TextBuilder() *Builder[TextContent] {
	return NewBuilder(TextContent{})
}

func TranslatableBuilder() *Builder[TranslatableContent] {
	return NewBuilder(TranslatableContent{})
}

func ScoreBuilder() *Builder[ScoreContent] {
	return NewBuilder(ScoreContent{})
}

func SelectorBuilder() *Builder[SelectorContent] {
	return NewBuilder(SelectorContent{})
}

func KeybindBuilder() *Builder[KeybindContent] {
	return NewBuilder(KeybindContent{})
}

func BlockNBTBuilder() *Builder[BlockNBTContent] {
	return NewBuilder(BlockNBTContent{})
}

func EntityNBTBuilder() *Builder[EntityNBTContent] {
	return NewBuilder(EntityNBTContent{})
}

func StorageNBTBuilder() *Builder[StorageNBTContent] {
	return NewBuilder(StorageNBTContent{})
}

func ObjectBuilder() *Builder[ObjectContent] {
	return NewBuilder(ObjectContent{})
}

// Content exposes the content under construction for in-place edits.
func (b *Builder[C]) Content() *C {
	return &b.content
}

func (b *Builder[C]) Append(children ...Component) *Builder[C] {
	b.children = append(b.children, children...)
	return b
}

func (b *Builder[C]) Children() []Component {
	return slices.Clone(b.children)
}

func (b *Builder[C]) Build() (Component, error) {
	if err := b.content.validate(); err != nil {
		return Component{}, err
	}
	return Component{
		Content:  b.content.clone(),
		Style:    b.StyleBuilder.Build(),
		Children: slices.Clone(b.children),
	}, nil
}
