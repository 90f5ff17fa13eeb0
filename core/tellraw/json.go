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
	"encoding/json"

	"github.com/google/uuid"
)

type jsonMessage struct {
	Type          MsgType         `json:"type,omitempty"`
	Text          *string         `json:"text,omitempty"`
	Translate     string          `json:"translate,omitempty"`
	Fallback      string          `json:"fallback,omitempty"`
	With          []Component     `json:"with,omitempty"`
	Score         *jsonScore      `json:"score,omitempty"`
	Selector      string          `json:"selector,omitempty"`
	Keybind       string          `json:"keybind,omitempty"`
	Nbt           string          `json:"nbt,omitempty"`
	Interpret     bool            `json:"interpret,omitempty"`
	Block         string          `json:"block,omitempty"`
	Entity        string          `json:"entity,omitempty"`
	Storage       string          `json:"storage,omitempty"`
	Separator     *Component      `json:"separator,omitempty"`
	Object        string          `json:"object,omitempty"`
	Atlas         string          `json:"atlas,omitempty"`
	Sprite        string          `json:"sprite,omitempty"`
	Player        *jsonPlayer     `json:"player,omitempty"`
	Hat           *bool           `json:"hat,omitempty"`
	Color         Color           `json:"color,omitempty"`
	Font          string          `json:"font,omitempty"`
	Bold          *bool           `json:"bold,omitempty"`
	Italic        *bool           `json:"italic,omitempty"`
	Underlined    *bool           `json:"underlined,omitempty"`
	Strikethrough *bool           `json:"strikethrough,omitempty"`
	Obfuscated    *bool           `json:"obfuscated,omitempty"`
	Insertion     string          `json:"insertion,omitempty"`
	ClickEvent    *jsonClickEvent `json:"clickEvent,omitempty"`
	HoverEvent    *HoverEvent     `json:"hoverEvent,omitempty"`
	Extra         []Component     `json:"extra,omitempty"`
}

type jsonScore struct {
	Name      string `json:"name"`
	Objective string `json:"objective"`
}

type jsonPlayer struct {
	ID         *uuid.UUID        `json:"id,omitempty"`
	Name       string            `json:"name,omitempty"`
	Properties []ProfileProperty `json:"properties,omitempty"`
	Texture    string            `json:"texture,omitempty"`
}

type jsonClickEvent struct {
	Action ClickAction `json:"action"`
	Value  string      `json:"value"`
}

type jsonHoverEvent struct {
	Action   HoverAction `json:"action"`
	Contents any         `json:"contents"`
}

type jsonShowItem struct {
	ID         string      `json:"id"`
	Count      int         `json:"count,omitempty"`
	Components map[Key]any `json:"components,omitempty"`
}

type jsonShowEntity struct {
	Type string     `json:"type"`
	ID   uuid.UUID  `json:"id"`
	Name *Component `json:"name,omitempty"`
}

func stateFlag(state DecorationState) *bool {
	if state == NotSet {
		return nil
	}
	flag := state == True
	return &flag
}

func (c Component) MarshalJSON() ([]byte, error) {
	msg := jsonMessage{}
	switch content := c.Content.(type) {
	case nil:
		msg.Text = new(string)
	case TextContent:
		msg.Text = &content.Text
	case TranslatableContent:
		msg.Type = Translatable
		msg.Translate = content.Key
		msg.Fallback = content.Fallback
		msg.With = content.Args
	case ScoreContent:
		msg.Type = Score
		msg.Score = &jsonScore{Name: content.Name, Objective: content.Objective}
	case SelectorContent:
		msg.Type = Selector
		msg.Selector = content.Pattern
		msg.Separator = content.Separator
	case KeybindContent:
		msg.Type = Keybind
		msg.Keybind = content.Keybind
	case BlockNBTContent:
		msg.Type = Nbt
		msg.setNBT(content.NBTSource)
		if content.Pos != nil {
			msg.Block = content.Pos.String()
		}
	case EntityNBTContent:
		msg.Type = Nbt
		msg.setNBT(content.NBTSource)
		msg.Entity = content.Selector
	case StorageNBTContent:
		msg.Type = Nbt
		msg.setNBT(content.NBTSource)
		msg.Storage = content.Storage.String()
	case ObjectContent:
		msg.Type = Object
		switch contents := content.Contents.(type) {
		case SpriteContents:
			msg.Object = "atlas"
			msg.Atlas = contents.Atlas.String()
			msg.Sprite = contents.Sprite.String()
		case PlayerHeadContents:
			msg.Object = "player"
			hat := contents.Hat
			msg.Hat = &hat
			msg.Player = &jsonPlayer{Name: contents.Name, Properties: contents.Properties, Texture: contents.Texture.String()}
			if contents.ID != uuid.Nil {
				id := contents.ID
				msg.Player.ID = &id
			}
		}
	}
	style := c.Style
	msg.Color = style.Color
	msg.Font = style.Font.String()
	msg.Bold = stateFlag(style.Bold)
	msg.Italic = stateFlag(style.Italic)
	msg.Underlined = stateFlag(style.Underlined)
	msg.Strikethrough = stateFlag(style.Strikethrough)
	msg.Obfuscated = stateFlag(style.Obfuscated)
	msg.Insertion = style.Insertion
	if style.ClickEvent != nil {
		if style.ClickEvent.IsCallback() {
			return nil, ErrUnboundCallback
		}
		msg.ClickEvent = &jsonClickEvent{Action: style.ClickEvent.Action, Value: style.ClickEvent.Value}
	}
	msg.HoverEvent = style.HoverEvent
	msg.Extra = c.Children
	return json.Marshal(msg)
}

func (msg *jsonMessage) setNBT(source NBTSource) {
	msg.Nbt = source.NBTPath
	msg.Interpret = source.Interpret
	msg.Separator = source.Separator
}

func (he HoverEvent) MarshalJSON() ([]byte, error) {
	msg := jsonHoverEvent{Action: he.Action}
	switch he.Action {
	case HoverShowText:
		msg.Contents = he.Text
	case HoverShowItem:
		if he.Item != nil {
			msg.Contents = jsonShowItem{ID: he.Item.Item.String(), Count: he.Item.Count, Components: he.Item.Components}
		}
	case HoverShowEntity:
		if he.Entity != nil {
			msg.Contents = jsonShowEntity{Type: he.Entity.Type.String(), ID: he.Entity.ID, Name: he.Entity.Name}
		}
	}
	return json.Marshal(msg)
}
