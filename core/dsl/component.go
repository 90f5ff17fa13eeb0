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

import "git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"

// componentBuilder is the part shared by every component builder: style
// setters, children and the child appenders.
type componentBuilder[C tellraw.Content] struct {
	styleable
	builder *tellraw.Builder[C]
}

func newComponentBuilder[C tellraw.Content](builder *tellraw.Builder[C]) componentBuilder[C] {
	return componentBuilder[C]{
		styleable: styleable{setter: &builder.StyleBuilder},
		builder:   builder,
	}
}

func (cb *componentBuilder[C]) build() (tellraw.Component, error) {
	if cb.err != nil {
		return tellraw.Component{}, cb.err
	}
	return cb.builder.Build()
}

func (cb *componentBuilder[C]) appendBuilt(component tellraw.Component, err error) {
	if err != nil {
		cb.fail(err)
		return
	}
	cb.builder.Append(component)
}

func (cb *componentBuilder[C]) Append(components ...tellraw.Component) {
	cb.builder.Append(components...)
}

func (cb *componentBuilder[C]) Newline() {
	cb.builder.Append(tellraw.Newline())
}

func (cb *componentBuilder[C]) Space() {
	cb.builder.Append(tellraw.Space())
}

// Style replaces the whole style of the component.
func (cb *componentBuilder[C]) Style(configure func(*StyleBuilder)) {
	style, err := Style(configure)
	if err != nil {
		cb.fail(err)
		return
	}
	cb.setter.SetStyle(style)
}

func (cb *componentBuilder[C]) SetStyle(style tellraw.Style) {
	cb.setter.SetStyle(style)
}

func (cb *componentBuilder[C]) Text(configure func(*TextBuilder)) {
	cb.appendBuilt(Text(configure))
}

func (cb *componentBuilder[C]) TextContent(content string) {
	cb.builder.Append(tellraw.NewText(content))
}

func (cb *componentBuilder[C]) TextColored(content string, color tellraw.Color) {
	cb.builder.Append(tellraw.NewTextColored(content, color))
}

func (cb *componentBuilder[C]) Translatable(configure func(*TranslatableBuilder)) {
	cb.appendBuilt(Translatable(configure))
}

func (cb *componentBuilder[C]) TranslatableKey(key string, configure func(*TranslatableBuilder)) {
	cb.appendBuilt(Translatable(func(t *TranslatableBuilder) {
		t.Key(key)
		apply(t, configure)
	}))
}

func (cb *componentBuilder[C]) TranslatableOf(key string) {
	cb.builder.Append(tellraw.NewTranslatable(key))
}

func (cb *componentBuilder[C]) Score(configure func(*ScoreBuilder)) {
	cb.appendBuilt(Score(configure))
}

func (cb *componentBuilder[C]) Keybind(configure func(*KeybindBuilder)) {
	cb.appendBuilt(Keybind(configure))
}

func (cb *componentBuilder[C]) Selector(configure func(*SelectorBuilder)) {
	cb.appendBuilt(Selector(configure))
}

func (cb *componentBuilder[C]) BlockNBT(configure func(*BlockNBTBuilder)) {
	cb.appendBuilt(BlockNBT(configure))
}

func (cb *componentBuilder[C]) EntityNBT(configure func(*EntityNBTBuilder)) {
	cb.appendBuilt(EntityNBT(configure))
}

func (cb *componentBuilder[C]) StorageNBT(configure func(*StorageNBTBuilder)) {
	cb.appendBuilt(StorageNBT(configure))
}

func (cb *componentBuilder[C]) Object(configure func(*ObjectBuilder)) {
	cb.appendBuilt(Object(configure))
}
