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

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/callback"
	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/dsl"
	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/render"
	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

// Messenger sends components to players with tellraw under a "[scope] " prefix.
// With a registry, callback click events are bound before sending and the
// chat commands they trigger are dispatched by ProcessLog.
type Messenger struct {
	runner   CommandRunner
	registry *callback.Registry
	scope    string
	commands *SimpleCommand
}

func NewMessenger(runner CommandRunner, registry *callback.Registry, scope string) *Messenger {
	m := &Messenger{runner: runner, registry: registry, scope: scope, commands: NewSimpleCommand()}
	if registry != nil {
		if err := m.commands.RegisterCommand(scope, strings.TrimPrefix(registry.Prefix(), "!!"), m.dispatch); err != nil {
			m.Println(color.RedString("回调命令注册失败: %s", err.Error()))
		}
	}
	return m
}

// Commands exposes the chat command router ProcessLog feeds.
func (m *Messenger) Commands() *SimpleCommand {
	return m.commands
}

func (m *Messenger) Println(a ...any) (int, error) {
	return Println(color.BlueString("%s", m.scope), a...)
}

func (m *Messenger) prefix() tellraw.Component {
	return dsl.Must(dsl.Text(func(t *dsl.TextBuilder) {
		t.Color(tellraw.Yellow)
		t.Decorate(tellraw.Bold)
		t.TextContent("[")
		t.TextColored(m.scope, tellraw.Green)
		t.TextContent("] ")
	}))
}

// Message is the component Tellraw sends for components, before binding.
func (m *Messenger) Message(components ...tellraw.Component) tellraw.Component {
	return tellraw.Join(nil, append([]tellraw.Component{m.prefix()}, components...)...)
}

// Tellraw sends components to target and returns the runner's output.
func (m *Messenger) Tellraw(target string, components ...tellraw.Component) (string, error) {
	msg := m.Message(components...)
	var jsonMsg []byte
	encode := func(bound tellraw.Component) (err error) {
		msg = bound
		if jsonMsg, err = json.Marshal(bound); err != nil {
			return fmt.Errorf("encode tellraw message: %w", err)
		}
		return nil
	}
	var err error
	if m.registry != nil {
		err = m.registry.BindWith(msg, encode)
	} else {
		err = encode(msg)
	}
	if err != nil {
		return "", err
	}
	m.Println(color.YellowString("-> %s ", target), render.ANSI(msg))
	return m.runner.RunCommand(fmt.Sprintf("tellraw %s %s", target, jsonMsg)), nil
}

func (m *Messenger) TellrawError(target string, err error) (string, error) {
	return m.Tellraw(target, tellraw.NewTextColored(err.Error(), tellraw.Red))
}

// ProcessLog feeds one server log line to the chat command router.
func (m *Messenger) ProcessLog(line string) bool {
	return m.commands.ProcessLog(line)
}

func (m *Messenger) dispatch(player string, args ...string) {
	if len(args) == 0 {
		return
	}
	err := m.registry.Dispatch(player, args[0])
	if err == nil {
		return
	}
	m.Println(color.RedString("回调执行失败: %s", err.Error()))
	if errors.Is(err, callback.ErrCallbackExpired) {
		if _, err := m.Tellraw(player, tellraw.NewTextColored("该选项已过期", tellraw.Red)); err != nil {
			m.Println(color.RedString("过期提示发送失败: %s", err.Error()))
		}
	}
}
