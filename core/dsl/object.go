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

type ObjectBuilder struct {
	componentBuilder[tellraw.ObjectContent]
}

func Object(configure func(*ObjectBuilder)) (tellraw.Component, error) {
	b := &ObjectBuilder{componentBuilder: newComponentBuilder(tellraw.ObjectBuilder())}
	return apply(b, configure).build()
}

func (b *ObjectBuilder) Contents(contents tellraw.ObjectContents) {
	b.builder.Content().Contents = contents
}

// Sprite renders a sprite from the default atlas.
func (b *ObjectBuilder) Sprite(sprite tellraw.Key) {
	b.Contents(tellraw.SpriteContents{Sprite: sprite})
}

func (b *ObjectBuilder) AtlasSprite(atlas, sprite tellraw.Key) {
	b.Contents(tellraw.SpriteContents{Atlas: atlas, Sprite: sprite})
}

func (b *ObjectBuilder) PlayerHead(configure func(*PlayerHeadBuilder)) {
	head := apply(&PlayerHeadBuilder{contents: tellraw.PlayerHeadContents{Hat: true}}, configure)
	b.Contents(head.contents)
}

// PlayerHeadBuilder describes whose head to draw. The hat layer is shown
// unless turned off.
type PlayerHeadBuilder struct {
	contents tellraw.PlayerHeadContents
}

func (p *PlayerHeadBuilder) ID(id uuid.UUID) {
	p.contents.ID = id
}

func (p *PlayerHeadBuilder) Name(name string) {
	p.contents.Name = name
}

func (p *PlayerHeadBuilder) ProfileProperty(name, value, signature string) {
	p.contents.Properties = append(p.contents.Properties, tellraw.ProfileProperty{Name: name, Value: value, Signature: signature})
}

func (p *PlayerHeadBuilder) ProfileProperties(properties ...tellraw.ProfileProperty) {
	p.contents.Properties = append(p.contents.Properties, properties...)
}

// Skin copies the profile of source onto the head.
func (p *PlayerHeadBuilder) Skin(source tellraw.SkinSource) {
	if source == nil {
		return
	}
	source.ApplySkin(&p.contents)
}

func (p *PlayerHeadBuilder) Hat(hat bool) {
	p.contents.Hat = hat
}

// Texture overrides the skin with a texture resource.
func (p *PlayerHeadBuilder) Texture(texture tellraw.Key) {
	p.contents.Texture = texture
}
