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
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type MsgType string

var (
	Text         MsgType = "text"
	Translatable MsgType = "translatable"
	Score        MsgType = "score"
	Nbt          MsgType = "nbt"
	Selector     MsgType = "selector"
	Keybind      MsgType = "keybind"
	Object       MsgType = "object"
)

// Content is the variant part of a Component. The set of implementations is closed.
type Content interface {
	Type() MsgType
	validate() error
	clone() Content
}

type TextContent struct {
	Text string
}

func (TextContent) Type() MsgType { return Text }
func (TextContent) validate() error { return nil }
func (c TextContent) clone() Content { return c }

type TranslatableContent struct {
	Key      string
	Fallback string
	Args     []Component
}

func (TranslatableContent) Type() MsgType { return Translatable }

func (c TranslatableContent) validate() error {
	if c.Key == "" {
		return missing("translatable component", "key")
	}
	return nil
}

func (c TranslatableContent) clone() Content {
	c.Args = slices.Clone(c.Args)
	return c
}

type ScoreContent struct {
	Name      string
	Objective string
}

func (ScoreContent) Type() MsgType { return Score }

func (c ScoreContent) validate() error {
	if c.Name == "" {
		return missing("score component", "name")
	}
	if c.Objective == "" {
		return missing("score component", "objective")
	}
	return nil
}

func (c ScoreContent) clone() Content { return c }

type SelectorContent struct {
	Pattern   string
	Separator *Component
}

func (SelectorContent) Type() MsgType { return Selector }

func (c SelectorContent) validate() error {
	if c.Pattern == "" {
		return missing("selector component", "pattern")
	}
	return nil
}

func (c SelectorContent) clone() Content { return c }

type KeybindContent struct {
	Keybind string
}

func (KeybindContent) Type() MsgType { return Keybind }

func (c KeybindContent) validate() error {
	if c.Keybind == "" {
		return missing("keybind component", "keybind")
	}
	return nil
}

func (c KeybindContent) clone() Content { return c }

// NBTSource holds the fields every NBT-backed component shares.
type NBTSource struct {
	NBTPath   string
	Interpret bool
	Separator *Component
}

func (n NBTSource) validate(builder string) error {
	if n.NBTPath == "" {
		return missing(builder, "nbt path")
	}
	return nil
}

// BlockPos is either a WorldPos or a LocalPos.
type BlockPos interface {
	String() string
	isBlockPos()
}

type Coordinate struct {
	Value    int
	Relative bool
}

func Absolute(v int) Coordinate { return Coordinate{Value: v} }
func Relative(v int) Coordinate { return Coordinate{Value: v, Relative: true} }

func (c Coordinate) String() string {
	if !c.Relative {
		return strconv.Itoa(c.Value)
	}
	if c.Value == 0 {
		return "~"
	}
	return "~" + strconv.Itoa(c.Value)
}

type WorldPos struct {
	X, Y, Z Coordinate
}

func (p WorldPos) String() string {
	return strings.Join([]string{p.X.String(), p.Y.String(), p.Z.String()}, " ")
}

func (WorldPos) isBlockPos() {}

type LocalPos struct {
	Left, Up, Forwards float64
}

func (p LocalPos) String() string {
	caret := func(v float64) string {
		if v == 0 {
			return "^"
		}
		return "^" + strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join([]string{caret(p.Left), caret(p.Up), caret(p.Forwards)}, " ")
}

func (LocalPos) isBlockPos() {}

type BlockNBTContent struct {
	NBTSource
	Pos BlockPos
}

func (BlockNBTContent) Type() MsgType { return Nbt }

func (c BlockNBTContent) validate() error {
	if err := c.NBTSource.validate("block nbt component"); err != nil {
		return err
	}
	if c.Pos == nil {
		return missing("block nbt component", "pos")
	}
	return nil
}

func (c BlockNBTContent) clone() Content { return c }

type EntityNBTContent struct {
	NBTSource
	Selector string
}

func (EntityNBTContent) Type() MsgType { return Nbt }

func (c EntityNBTContent) validate() error {
	if err := c.NBTSource.validate("entity nbt component"); err != nil {
		return err
	}
	if c.Selector == "" {
		return missing("entity nbt component", "selector")
	}
	return nil
}

func (c EntityNBTContent) clone() Content { return c }

type StorageNBTContent struct {
	NBTSource
	Storage Key
}

func (StorageNBTContent) Type() MsgType { return Nbt }

func (c StorageNBTContent) validate() error {
	if err := c.NBTSource.validate("storage nbt component"); err != nil {
		return err
	}
	if c.Storage.IsZero() {
		return missing("storage nbt component", "storage")
	}
	return nil
}

func (c StorageNBTContent) clone() Content { return c }

// ObjectContents is either SpriteContents or PlayerHeadContents.
type ObjectContents interface {
	validate() error
}

type SpriteContents struct {
	Atlas  Key
	Sprite Key
}

func (c SpriteContents) validate() error {
	if c.Sprite.IsZero() {
		return missing("sprite object contents", "sprite")
	}
	return nil
}

type ProfileProperty struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Signature string `json:"signature,omitempty"`
}

type PlayerHeadContents struct {
	ID         uuid.UUID
	Name       string
	Properties []ProfileProperty
	Hat        bool
	Texture    Key
}

func (PlayerHeadContents) validate() error { return nil }

// SkinSource fills in whose skin a player head shows.
type SkinSource interface {
	ApplySkin(head *PlayerHeadContents)
}

// PlayerProfile is a SkinSource for a known player profile.
type PlayerProfile struct {
	ID         uuid.UUID
	Name       string
	Properties []ProfileProperty
}

func (p PlayerProfile) ApplySkin(head *PlayerHeadContents) {
	head.ID = p.ID
	head.Name = p.Name
	head.Properties = slices.Clone(p.Properties)
}

type ObjectContent struct {
	Contents ObjectContents
}

func (ObjectContent) Type() MsgType { return Object }

func (c ObjectContent) validate() error {
	if c.Contents == nil {
		return missing("object component", "contents")
	}
	return c.Contents.validate()
}

func (c ObjectContent) clone() Content {
	if head, ok := c.Contents.(PlayerHeadContents); ok {
		head.Properties = slices.Clone(head.Properties)
		c.Contents = head
	}
	return c
}
