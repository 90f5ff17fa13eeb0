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

import (
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
)

type HoverAction string

var (
	HoverShowText   HoverAction = "show_text"
	HoverShowItem   HoverAction = "show_item"
	HoverShowEntity HoverAction = "show_entity"
)

// HoverEvent carries exactly one of Text, Item or Entity, selected by Action.
type HoverEvent struct {
	Action HoverAction
	Text   *Component
	Item   *ShowItem
	Entity *ShowEntity
}

// ShowItem describes an item stack. Components maps data component keys to
// their JSON-encodable values.
type ShowItem struct {
	Item       Key
	Count      int
	Components map[Key]any
}

type ShowEntity struct {
	Type Key
	ID   uuid.UUID
	Name *Component
}

func ShowText(text Component) HoverEvent {
	return HoverEvent{Action: HoverShowText, Text: &text}
}

func ShowItemEvent(item ShowItem) (HoverEvent, error) {
	if item.Item.IsZero() {
		return HoverEvent{}, missing("hover event show_item", "item")
	}
	if item.Count == 0 {
		item.Count = 1
	}
	if item.Components != nil {
		item.Components = maps.Clone(item.Components)
	}
	return HoverEvent{Action: HoverShowItem, Item: &item}, nil
}

func ShowEntityEvent(entity ShowEntity) (HoverEvent, error) {
	if entity.Type.IsZero() {
		return HoverEvent{}, missing("hover event show_entity", "type")
	}
	if entity.ID == uuid.Nil {
		return HoverEvent{}, missing("hover event show_entity", "id")
	}
	return HoverEvent{Action: HoverShowEntity, Entity: &entity}, nil
}
