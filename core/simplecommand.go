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
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var ErrCommandExists = errors.New("command exist")

// SimpleCommand routes "!!name args..." chat lines to registered handlers.
type SimpleCommand struct {
	registerCommands map[string]func(string, ...string)
	lock             sync.RWMutex
}

func NewSimpleCommand() *SimpleCommand {
	return &SimpleCommand{registerCommands: make(map[string]func(string, ...string))}
}

// RegisterCommand binds command (without "!!") to commandFunc, which receives
// the player name and the remaining words. owner only appears in the log.
func (sp *SimpleCommand) RegisterCommand(owner string, command string, commandFunc func(string, ...string)) error {
	sp.lock.Lock()
	defer sp.lock.Unlock()
	if _, ok := sp.registerCommands[command]; ok {
		kPrintln(color.YellowString("模块 "), color.BlueString("%s", owner), color.RedString(" 尝试注册已注册的命令: "), color.GreenString("%s", command))
		return fmt.Errorf("%w: %s", ErrCommandExists, command)
	}
	kPrintln(color.YellowString("模块 "), color.BlueString("%s", owner), color.YellowString(" 注册了一条新命令: "), color.GreenString("%s", command))
	sp.registerCommands[command] = commandFunc
	return nil
}

// ProcessLog runs the handler for a player command found in logText, on its
// own goroutine, and reports whether one was found.
func (sp *SimpleCommand) ProcessLog(logText string) bool {
	if !PlayerMessage.MatchString(logText) {
		return false
	}
	cmdInfo := PlayerCommandMessage.FindStringSubmatch(logText)
	if len(cmdInfo) < 3 {
		return false
	}
	player := strings.TrimSpace(cmdInfo[1])
	commandPart := strings.Fields(cmdInfo[2])
	if len(commandPart) == 0 {
		return false
	}
	sp.lock.RLock()
	commandFunc, ok := sp.registerCommands[commandPart[0]]
	sp.lock.RUnlock()
	if !ok {
		return false
	}
	go commandFunc(player, commandPart[1:]...)
	return true
}
