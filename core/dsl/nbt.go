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

// nbtPart holds the setters shared by the three NBT builders.
type nbtPart struct {
	source *tellraw.NBTSource
}

func (n nbtPart) NBTPath(path string) {
	n.source.NBTPath = path
}

func (n nbtPart) Interpret(interpret bool) {
	n.source.Interpret = interpret
}

func (n nbtPart) Separator(separator tellraw.Component) {
	n.source.Separator = &separator
}

type BlockNBTBuilder struct {
	componentBuilder[tellraw.BlockNBTContent]
	nbtPart
}

func BlockNBT(configure func(*BlockNBTBuilder)) (tellraw.Component, error) {
	b := &BlockNBTBuilder{componentBuilder: newComponentBuilder(tellraw.BlockNBTBuilder())}
	b.nbtPart = nbtPart{source: &b.builder.Content().NBTSource}
	return apply(b, configure).build()
}

func (b *BlockNBTBuilder) Pos(pos tellraw.BlockPos) {
	b.builder.Content().Pos = pos
}

func (b *BlockNBTBuilder) WorldPos(x, y, z tellraw.Coordinate) {
	b.Pos(tellraw.WorldPos{X: x, Y: y, Z: z})
}

func (b *BlockNBTBuilder) LocalPos(left, up, forwards float64) {
	b.Pos(tellraw.LocalPos{Left: left, Up: up, Forwards: forwards})
}

type EntityNBTBuilder struct {
	componentBuilder[tellraw.EntityNBTContent]
	nbtPart
}

func EntityNBT(configure func(*EntityNBTBuilder)) (tellraw.Component, error) {
	b := &EntityNBTBuilder{componentBuilder: newComponentBuilder(tellraw.EntityNBTBuilder())}
	b.nbtPart = nbtPart{source: &b.builder.Content().NBTSource}
	return apply(b, configure).build()
}

// Entity sets the selector of the entity whose data is read.
func (b *EntityNBTBuilder) Entity(selector string) {
	b.builder.Content().Selector = selector
}

type StorageNBTBuilder struct {
	componentBuilder[tellraw.StorageNBTContent]
	nbtPart
}

func StorageNBT(configure func(*StorageNBTBuilder)) (tellraw.Component, error) {
	b := &StorageNBTBuilder{componentBuilder: newComponentBuilder(tellraw.StorageNBTBuilder())}
	b.nbtPart = nbtPart{source: &b.builder.Content().NBTSource}
	return apply(b, configure).build()
}

func (b *StorageNBTBuilder) Storage(storage tellraw.Key) {
	b.builder.Content().Storage = storage
}
