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
	"slices"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

type TextBuilder struct {
	componentBuilder[tellraw.TextContent]
}

func newTextBuilder() *TextBuilder {
	return &TextBuilder{componentBuilder: newComponentBuilder(tellraw.TextBuilder())}
}

// Text builds a text component. It is also the usual root of a message.
func Text(configure func(*TextBuilder)) (tellraw.Component, error) {
	return apply(newTextBuilder(), configure).build()
}

func (b *TextBuilder) Content(text string) {
	b.builder.Content().Text = text
}

type TranslatableBuilder struct {
	componentBuilder[tellraw.TranslatableContent]
}

func Translatable(configure func(*TranslatableBuilder)) (tellraw.Component, error) {
	b := &TranslatableBuilder{componentBuilder: newComponentBuilder(tellraw.TranslatableBuilder())}
	return apply(b, configure).build()
}

func (b *TranslatableBuilder) Key(key string) {
	b.builder.Content().Key = key
}

func (b *TranslatableBuilder) Fallback(fallback string) {
	b.builder.Content().Fallback = fallback
}

// Args replaces the arguments.
func (b *TranslatableBuilder) Args(args ...tellraw.Component) {
	b.builder.Content().Args = slices.Clone(args)
}

// Arguments replaces the arguments with the ones added by configure, in order.
func (b *TranslatableBuilder) Arguments(configure func(*ArgsBuilder)) {
	args := apply(&ArgsBuilder{}, configure)
	if args.err != nil {
		b.fail(args.err)
		return
	}
	b.builder.Content().Args = args.args
}

type ArgsBuilder struct {
	sink
	args []tellraw.Component
}

func (a *ArgsBuilder) Add(args ...tellraw.Component) {
	a.args = append(a.args, args...)
}

func (a *ArgsBuilder) Text(configure func(*TextBuilder)) {
	a.add(Text(configure))
}

func (a *ArgsBuilder) TextContent(content string) {
	a.args = append(a.args, tellraw.NewText(content))
}

func (a *ArgsBuilder) Translatable(configure func(*TranslatableBuilder)) {
	a.add(Translatable(configure))
}

func (a *ArgsBuilder) add(arg tellraw.Component, err error) {
	if err != nil {
		a.fail(err)
		return
	}
	a.args = append(a.args, arg)
}

func (a *ArgsBuilder) List() []tellraw.Component {
	return slices.Clone(a.args)
}

type ScoreBuilder struct {
	componentBuilder[tellraw.ScoreContent]
}

func Score(configure func(*ScoreBuilder)) (tellraw.Component, error) {
	b := &ScoreBuilder{componentBuilder: newComponentBuilder(tellraw.ScoreBuilder())}
	return apply(b, configure).build()
}

func (b *ScoreBuilder) Name(name string) {
	b.builder.Content().Name = name
}

func (b *ScoreBuilder) Objective(objective string) {
	b.builder.Content().Objective = objective
}

type KeybindBuilder struct {
	componentBuilder[tellraw.KeybindContent]
}

func Keybind(configure func(*KeybindBuilder)) (tellraw.Component, error) {
	b := &KeybindBuilder{componentBuilder: newComponentBuilder(tellraw.KeybindBuilder())}
	return apply(b, configure).build()
}

// Key sets the keybind identifier, e.g. "key.jump".
func (b *KeybindBuilder) Key(keybind string) {
	b.builder.Content().Keybind = keybind
}

type SelectorBuilder struct {
	componentBuilder[tellraw.SelectorContent]
}

func Selector(configure func(*SelectorBuilder)) (tellraw.Component, error) {
	b := &SelectorBuilder{componentBuilder: newComponentBuilder(tellraw.SelectorBuilder())}
	return apply(b, configure).build()
}

func (b *SelectorBuilder) Pattern(pattern string) {
	b.builder.Content().Pattern = pattern
}

func (b *SelectorBuilder) Separator(separator tellraw.Component) {
	b.builder.Content().Separator = &separator
}
