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
	"errors"
	"net/url"
	"strconv"
	"time"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

type clickBuilder interface {
	clickEvent() (tellraw.ClickEvent, error)
}

// ClickKind pairs a click action with the only builder that can configure it.
// The set of kinds is fixed by the variables below.
type ClickKind[B clickBuilder] struct {
	action tellraw.ClickAction
	create func() B
}

func (k ClickKind[B]) Action() tellraw.ClickAction { return k.action }
func (k ClickKind[B]) String() string { return string(k.action) }

var (
	OpenURL = ClickKind[*OpenURLBuilder]{
		action: tellraw.ActionOpenURL,
		create: func() *OpenURLBuilder { return &OpenURLBuilder{} },
	}
	OpenFile = ClickKind[*OpenFileBuilder]{
		action: tellraw.ActionOpenFile,
		create: func() *OpenFileBuilder { return &OpenFileBuilder{} },
	}
	RunCommand = ClickKind[*RunCommandBuilder]{
		action: tellraw.ActionRunCommand,
		create: func() *RunCommandBuilder { return &RunCommandBuilder{} },
	}
	SuggestCommand = ClickKind[*SuggestCommandBuilder]{
		action: tellraw.ActionSuggestCommand,
		create: func() *SuggestCommandBuilder { return &SuggestCommandBuilder{} },
	}
	ChangePage = ClickKind[*ChangePageBuilder]{
		action: tellraw.ActionChangePage,
		create: func() *ChangePageBuilder { return &ChangePageBuilder{} },
	}
	CopyToClipboard = ClickKind[*CopyToClipboardBuilder]{
		action: tellraw.ActionCopyToClipboard,
		create: func() *CopyToClipboardBuilder { return &CopyToClipboardBuilder{} },
	}
	Callback = ClickKind[*CallbackBuilder]{
		action: tellraw.ActionCallback,
		create: func() *CallbackBuilder { return &CallbackBuilder{options: tellraw.DefaultCallbackOptions()} },
	}
)

var errUnknownKind = errors.New("dsl: event kind was not created by this package")

// ClickEventOf runs configure against a fresh builder for kind and returns
// the finished event.
func ClickEventOf[B clickBuilder](kind ClickKind[B], configure func(B)) (tellraw.ClickEvent, error) {
	if kind.create == nil {
		return tellraw.ClickEvent{}, errUnknownKind
	}
	return apply(kind.create(), configure).clickEvent()
}

// OnClick attaches a click event of the given kind to target. Failures are
// reported through target's builder.
func OnClick[B clickBuilder](target Styleable, kind ClickKind[B], configure func(B)) {
	event, err := ClickEventOf(kind, configure)
	if err != nil {
		target.fail(err)
		return
	}
	target.styleBuilder().ClickEvent(event)
}

type OpenURLBuilder struct {
	url string
}

func (b *OpenURLBuilder) URL(rawURL string) {
	b.url = rawURL
}

// Location sets the URL from a parsed value. A nil location clears it.
func (b *OpenURLBuilder) Location(location *url.URL) {
	if location == nil {
		b.url = ""
		return
	}
	b.url = location.String()
}

func (b *OpenURLBuilder) clickEvent() (tellraw.ClickEvent, error) {
	return tellraw.OpenURL(b.url)
}

type OpenFileBuilder struct {
	path string
}

func (b *OpenFileBuilder) Path(path string) {
	b.path = path
}

func (b *OpenFileBuilder) clickEvent() (tellraw.ClickEvent, error) {
	return tellraw.OpenFile(b.path)
}

type RunCommandBuilder struct {
	command string
}

func (b *RunCommandBuilder) Command(command string) {
	b.command = command
}

func (b *RunCommandBuilder) clickEvent() (tellraw.ClickEvent, error) {
	return tellraw.RunCommand(b.command)
}

type SuggestCommandBuilder struct {
	command string
}

func (b *SuggestCommandBuilder) Command(command string) {
	b.command = command
}

func (b *SuggestCommandBuilder) clickEvent() (tellraw.ClickEvent, error) {
	return tellraw.SuggestCommand(b.command)
}

type ChangePageBuilder struct {
	page string
}

func (b *ChangePageBuilder) Page(page int) {
	b.page = strconv.Itoa(page)
}

// PageValue sets the page as raw text.
func (b *ChangePageBuilder) PageValue(page string) {
	b.page = page
}

func (b *ChangePageBuilder) clickEvent() (tellraw.ClickEvent, error) {
	return tellraw.ChangePageValue(b.page)
}

type CopyToClipboardBuilder struct {
	text string
}

func (b *CopyToClipboardBuilder) Text(text string) {
	b.text = text
}

func (b *CopyToClipboardBuilder) clickEvent() (tellraw.ClickEvent, error) {
	return tellraw.CopyToClipboard(b.text)
}

// CallbackBuilder starts at one use and a twelve hour lifetime.
type CallbackBuilder struct {
	fn      tellraw.ClickCallback
	options tellraw.CallbackOptions
}

func (b *CallbackBuilder) Func(fn tellraw.ClickCallback) {
	b.fn = fn
}

// Uses limits how many clicks run the callback. tellraw.UnlimitedUses
// removes the limit.
func (b *CallbackBuilder) Uses(uses int) {
	b.options.Uses = uses
}

func (b *CallbackBuilder) Lifetime(lifetime time.Duration) {
	b.options.Lifetime = lifetime
}

func (b *CallbackBuilder) Options(options tellraw.CallbackOptions) {
	b.options = options
}

func (b *CallbackBuilder) clickEvent() (tellraw.ClickEvent, error) {
	return tellraw.Callback(b.fn, b.options)
}
