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

// Package dsl builds tellraw components through configuration callbacks.
//
// Every builder forwards its setters to the matching builder of package
// tellraw. A configuration callback runs exactly once, against a builder that
// nothing else holds, and the enclosing helper returns the built value:
//
//	msg, err := dsl.Text(func(t *dsl.TextBuilder) {
//		t.Content("Click me")
//		t.Color(tellraw.Gold)
//		dsl.OnClick(t, dsl.RunCommand, func(c *dsl.RunCommandBuilder) {
//			c.Command("/spawn")
//		})
//	})
//
// Failures reported by package tellraw inside nested builders are collected
// on the enclosing builder and returned, joined, by the outermost helper.
package dsl

import (
	"errors"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

// Styleable is any builder that carries a style: every component builder and
// StyleBuilder. OnClick and OnHover accept it.
type Styleable interface {
	styleBuilder() *tellraw.StyleBuilder
	fail(err error)
}

type sink struct {
	err error
}

func (s *sink) fail(err error) {
	if err == nil {
		return
	}
	if s.err == nil {
		s.err = err
		return
	}
	s.err = errors.Join(s.err, err)
}

type styleable struct {
	sink
	setter *tellraw.StyleBuilder
}

func (s *styleable) styleBuilder() *tellraw.StyleBuilder {
	return s.setter
}

func (s *styleable) Color(color tellraw.Color) {
	s.setter.Color(color)
}

func (s *styleable) Decorate(decorations ...tellraw.Decoration) {
	s.setter.Decorate(decorations...)
}

func (s *styleable) Decoration(decoration tellraw.Decoration, flag bool) {
	s.setter.Decoration(decoration, flag)
}

func (s *styleable) Font(font tellraw.Key) {
	s.setter.Font(font)
}

func (s *styleable) Insertion(insertion string) {
	s.setter.Insertion(insertion)
}

func (s *styleable) ClickEvent(event tellraw.ClickEvent) {
	s.setter.ClickEvent(event)
}

func (s *styleable) HoverEvent(event tellraw.HoverEvent) {
	s.setter.HoverEvent(event)
}

// Must unwraps the result of any helper in this package and panics on error.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func apply[B any](b B, configure func(B)) B {
	if configure != nil {
		configure(b)
	}
	return b
}
