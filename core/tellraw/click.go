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
	"fmt"
	"strconv"
	"time"
)

type ClickAction string

var (
	ActionOpenURL         ClickAction = "open_url"
	ActionOpenFile        ClickAction = "open_file"
	ActionRunCommand      ClickAction = "run_command"
	ActionSuggestCommand  ClickAction = "suggest_command"
	ActionChangePage      ClickAction = "change_page"
	ActionCopyToClipboard ClickAction = "copy_to_clipboard"
	// ActionCallback has no wire form; a callback registry rewrites it to run_command.
	ActionCallback ClickAction = "callback"
)

// ClickCallback receives the name of the player who clicked.
type ClickCallback func(player string)

const UnlimitedUses = -1

const (
	DefaultCallbackUses     = 1
	DefaultCallbackLifetime = 12 * time.Hour
)

type CallbackOptions struct {
	Uses     int
	Lifetime time.Duration
}

func DefaultCallbackOptions() CallbackOptions {
	return CallbackOptions{Uses: DefaultCallbackUses, Lifetime: DefaultCallbackLifetime}
}

func (o CallbackOptions) Validate() error {
	if o.Uses == 0 || o.Uses < UnlimitedUses {
		return fmt.Errorf("%w: uses %d", ErrInvalidCallbackOptions, o.Uses)
	}
	if o.Lifetime <= 0 {
		return fmt.Errorf("%w: lifetime %s", ErrInvalidCallbackOptions, o.Lifetime)
	}
	return nil
}

type ClickEvent struct {
	Action   ClickAction
	Value    string
	Callback ClickCallback
	Options  CallbackOptions
}

func newClickEvent(action ClickAction, value string, field string) (ClickEvent, error) {
	if value == "" {
		return ClickEvent{}, missing("click event "+string(action), field)
	}
	return ClickEvent{Action: action, Value: value}, nil
}

func OpenURL(url string) (ClickEvent, error) {
	return newClickEvent(ActionOpenURL, url, "url")
}

func OpenFile(path string) (ClickEvent, error) {
	return newClickEvent(ActionOpenFile, path, "path")
}

func RunCommand(command string) (ClickEvent, error) {
	return newClickEvent(ActionRunCommand, command, "command")
}

func SuggestCommand(command string) (ClickEvent, error) {
	return newClickEvent(ActionSuggestCommand, command, "command")
}

func ChangePage(page int) (ClickEvent, error) {
	return ChangePageValue(strconv.Itoa(page))
}

// ChangePageValue takes the page as sent on the wire.
func ChangePageValue(page string) (ClickEvent, error) {
	return newClickEvent(ActionChangePage, page, "page")
}

func CopyToClipboard(text string) (ClickEvent, error) {
	return newClickEvent(ActionCopyToClipboard, text, "text")
}

func Callback(callback ClickCallback, options CallbackOptions) (ClickEvent, error) {
	if callback == nil {
		return ClickEvent{}, missing("click event "+string(ActionCallback), "callback")
	}
	if err := options.Validate(); err != nil {
		return ClickEvent{}, err
	}
	return ClickEvent{Action: ActionCallback, Callback: callback, Options: options}, nil
}

func (ce ClickEvent) IsCallback() bool {
	return ce.Action == ActionCallback
}

// Bound turns a callback event into the run_command that triggers it.
func (ce ClickEvent) Bound(command string) ClickEvent {
	return ClickEvent{Action: ActionRunCommand, Value: command}
}
