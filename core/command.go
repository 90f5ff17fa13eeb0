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
	"io"
	"strings"

	"github.com/fatih/color"
)

// CommandRunner sends one command to a Minecraft server console and returns
// whatever output the implementation captured.
type CommandRunner interface {
	RunCommand(command string) string
}

type CommandRunnerFunc func(command string) string

func (f CommandRunnerFunc) RunCommand(command string) string {
	return f(command)
}

type commandRequest struct {
	command  string
	response chan string
}

// CommandQueue writes commands, one per line and in call order, to a server
// console such as the stdin of a dedicated server. Output is not captured:
// RunCommand returns an empty string once the line is written.
type CommandQueue struct {
	w     io.Writer
	queue chan *commandRequest
	index uint64
}

func NewCommandQueue(w io.Writer) *CommandQueue {
	q := &CommandQueue{w: w, queue: make(chan *commandRequest, 16384)}
	go q.worker()
	return q
}

func (q *CommandQueue) Println(a ...any) (int, error) {
	return Println(color.MagentaString("命令处理器"), a...)
}

// RunCommand must not be called after Close.
func (q *CommandQueue) RunCommand(command string) string {
	resp := make(chan string, 1)
	q.queue <- &commandRequest{command: command, response: resp}
	return <-resp
}

func (q *CommandQueue) worker() {
	for cmd := range q.queue {
		cmd.command = strings.TrimLeft(cmd.command, "/")
		q.Println(color.YellowString("正在执行命令["), color.GreenString("%d", q.index), color.YellowString("]: "), color.RedString("%s", cmd.command), color.YellowString(" 队列中剩余: "), color.RedString("%d", len(q.queue)))
		if _, err := io.WriteString(q.w, cmd.command+"\n"); err != nil {
			q.Println(color.RedString("命令写入失败: %s", err.Error()))
		}
		cmd.response <- ""
		q.index++
	}
}

func (q *CommandQueue) Close() {
	close(q.queue)
}
