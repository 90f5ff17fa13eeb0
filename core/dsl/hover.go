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
	"github.com/google/uuid"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

type hoverBuilder interface {
	hoverEvent() (tellraw.HoverEvent, error)
}

// HoverKind pairs a hover action with the only builder that can configure it.
type HoverKind[B hoverBuilder] struct {
	action tellraw.HoverAction
	create func() B
}

func (k HoverKind[B]) Action() tellraw.HoverAction { return k.action }
func (k HoverKind[B]) String() string { return string(k.action) }

var (
	ShowText = HoverKind[*ShowTextBuilder]{
		action: tellraw.HoverShowText,
		create: func() *ShowTextBuilder { return &ShowTextBuilder{TextBuilder: newTextBuilder()} },
	}
	ShowItem = HoverKind[*ShowItemBuilder]{
		action: tellraw.HoverShowItem,
		create: func() *ShowItemBuilder { return &ShowItemBuilder{item: tellraw.ShowItem{Count: 1}} },
	}
	ShowEntity = HoverKind[*ShowEntityBuilder]{
		action: tellraw.HoverShowEntity,
		create: func() *ShowEntityBuilder { return &ShowEntityBuilder{} },
	}
)

func HoverEventOf[B hoverBuilder](kind HoverKind[B], configure func(B)) (tellraw.HoverEvent, error) {
	if kind.create == nil {
		return tellraw.HoverEvent{}, errUnknownKind
	}
	return apply(kind.create(), configure).hoverEvent()
}

// OnHover attaches a hover event of the given kind to target.
func OnHover[B hoverBuilder](target Styleable, kind HoverKind[B], configure func(B)) {
	event, err := HoverEventOf(kind, configure)
	if err != nil {
		target.fail(err)
		return
	}
	target.styleBuilder().HoverEvent(event)
}

// ShowTextBuilder configures the text shown on hover like any text component.
type ShowTextBuilder struct {
	*TextBuilder
}

func (b *ShowTextBuilder) hoverEvent() (tellraw.HoverEvent, error) {
	text, err := b.build()
	if err != nil {
		return tellraw.HoverEvent{}, err
	}
	return tellraw.ShowText(text), nil
}

type ShowItemBuilder struct {
	item tellraw.ShowItem
}

func (b *ShowItemBuilder) Item(item tellraw.Key) {
	b.item.Item = item
}

func (b *ShowItemBuilder) Count(count int) {
	b.item.Count = count
}

// Component sets one data component on the item.
func (b *ShowItemBuilder) Component(key tellraw.Key, value any) {
	if b.item.Components == nil {
		b.item.Components = make(map[tellraw.Key]any)
	}
	b.item.Components[key] = value
}

// Components hands configure the data component map for direct edits.
func (b *ShowItemBuilder) Components(configure func(components map[tellraw.Key]any)) {
	if configure == nil {
		return
	}
	if b.item.Components == nil {
		b.item.Components = make(map[tellraw.Key]any)
	}
	configure(b.item.Components)
}

func (b *ShowItemBuilder) hoverEvent() (tellraw.HoverEvent, error) {
	return tellraw.ShowItemEvent(b.item)
}

type ShowEntityBuilder struct {
	sink
	entity tellraw.ShowEntity
}

func (b *ShowEntityBuilder) Type(entityType tellraw.Key) {
	b.entity.Type = entityType
}

func (b *ShowEntityBuilder) ID(id uuid.UUID) {
	b.entity.ID = id
}

func (b *ShowEntityBuilder) Name(name tellraw.Component) {
	b.entity.Name = &name
}

func (b *ShowEntityBuilder) NameText(configure func(*TextBuilder)) {
	name, err := Text(configure)
	if err != nil {
		b.fail(err)
		return
	}
	b.Name(name)
}

func (b *ShowEntityBuilder) hoverEvent() (tellraw.HoverEvent, error) {
	if b.err != nil {
		return tellraw.HoverEvent{}, b.err
	}
	return tellraw.ShowEntityEvent(b.entity)
}
