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

package callback

import (
	"github.com/samber/lo"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

// Bind registers every callback click event reachable from c and returns a
// copy where each of them is a run_command for its token. c is left as is.
// On failure nothing stays registered.
func (r *Registry) Bind(c tellraw.Component) (tellraw.Component, error) {
	bound, _, err := r.bind(c)
	return bound, err
}

// BindWith binds c and hands the result to use. When use fails the
// callbacks registered for c are removed again.
func (r *Registry) BindWith(c tellraw.Component, use func(bound tellraw.Component) error) error {
	bound, tokens, err := r.bind(c)
	if err != nil {
		return err
	}
	if err := use(bound); err != nil {
		r.remove(tokens)
		return err
	}
	return nil
}

func (r *Registry) bind(c tellraw.Component) (tellraw.Component, []string, error) {
	b := &binder{registry: r}
	bound := b.component(c)
	if b.err != nil {
		r.remove(b.tokens)
		return tellraw.Component{}, nil, b.err
	}
	return bound, b.tokens, nil
}

type binder struct {
	registry *Registry
	tokens   []string
	err      error
}

func (b *binder) component(c tellraw.Component) tellraw.Component {
	if b.err != nil {
		return c
	}
	c.Style = b.style(c.Style)
	c.Content = b.content(c.Content)
	if len(c.Children) > 0 {
		c.Children = lo.Map(c.Children, func(child tellraw.Component, _ int) tellraw.Component {
			return b.component(child)
		})
	}
	return c
}

func (b *binder) optional(c *tellraw.Component) *tellraw.Component {
	if c == nil {
		return nil
	}
	bound := b.component(*c)
	return &bound
}

func (b *binder) style(style tellraw.Style) tellraw.Style {
	if click := style.ClickEvent; click != nil && click.IsCallback() {
		token, err := b.registry.register(click.Callback, click.Options)
		if err != nil {
			b.err = err
			return style
		}
		b.tokens = append(b.tokens, token)
		bound := click.Bound(b.registry.Command(token))
		style.ClickEvent = &bound
	}
	if hover := style.HoverEvent; hover != nil {
		switch {
		case hover.Text != nil:
			bound := *hover
			bound.Text = b.optional(hover.Text)
			style.HoverEvent = &bound
		case hover.Entity != nil && hover.Entity.Name != nil:
			entity := *hover.Entity
			entity.Name = b.optional(entity.Name)
			bound := *hover
			bound.Entity = &entity
			style.HoverEvent = &bound
		}
	}
	return style
}

func (b *binder) content(content tellraw.Content) tellraw.Content {
	switch c := content.(type) {
	case tellraw.TranslatableContent:
		if len(c.Args) > 0 {
			c.Args = lo.Map(c.Args, func(arg tellraw.Component, _ int) tellraw.Component {
				return b.component(arg)
			})
		}
		return c
	case tellraw.SelectorContent:
		c.Separator = b.optional(c.Separator)
		return c
	case tellraw.BlockNBTContent:
		c.Separator = b.optional(c.Separator)
		return c
	case tellraw.EntityNBTContent:
		c.Separator = b.optional(c.Separator)
		return c
	case tellraw.StorageNBTContent:
		c.Separator = b.optional(c.Separator)
		return c
	}
	return content
}
