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

// StyleBuilder builds a standalone Style.
type StyleBuilder struct {
	styleable
}

func newStyleBuilder() *StyleBuilder {
	return &StyleBuilder{styleable: styleable{setter: tellraw.NewStyleBuilder()}}
}

// Style builds a style. Every field left untouched stays unset.
func Style(configure func(*StyleBuilder)) (tellraw.Style, error) {
	b := apply(newStyleBuilder(), configure)
	if b.err != nil {
		return tellraw.Style{}, b.err
	}
	return b.setter.Build(), nil
}

// Merge copies every field set on style over the current values.
func (b *StyleBuilder) Merge(style tellraw.Style) {
	b.setter.Merge(style)
}
