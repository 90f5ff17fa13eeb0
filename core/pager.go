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
	"fmt"

	"github.com/fatih/color"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/dsl"
	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

const DefaultPageSize = 10

// ShowList sends one page (counted from 0) of items to target. Every item
// gets a one-shot select button; the page links show the neighbouring page
// to whoever clicks them. It needs a Messenger with a callback registry.
func (m *Messenger) ShowList(target string, items []string, page int, pageSize int, onSelect func(player string, item string)) error {
	if m.registry == nil {
		return fmt.Errorf("show list: %w", tellraw.ErrUnboundCallback)
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if len(items) == 0 {
		_, err := m.Tellraw(target, tellraw.NewTextColored("无可用内容", tellraw.Red))
		return err
	}
	pages := (len(items) + pageSize - 1) / pageSize
	if page < 0 || page >= pages {
		_, err := m.Tellraw(target, tellraw.NewTextColored("该页没有内容", tellraw.Red))
		return err
	}
	start := page * pageSize
	end := min(len(items), start+pageSize)
	turn := func(to int) tellraw.ClickCallback {
		return func(player string) {
			if err := m.ShowList(player, items, to, pageSize, onSelect); err != nil {
				m.Println(color.RedString("翻页失败: %s", err.Error()))
			}
		}
	}

	message, err := dsl.Text(func(t *dsl.TextBuilder) {
		t.TextColored("正在查看第", tellraw.Aqua)
		t.TextColored(fmt.Sprintf("%d", page+1), tellraw.Light_Purple)
		t.TextColored("页/共", tellraw.Aqua)
		t.TextColored(fmt.Sprintf("%d", pages), tellraw.Light_Purple)
		t.TextColored("页\n", tellraw.Aqua)
		for index, item := range items[start:end] {
			t.TextColored(fmt.Sprintf("%d.", start+index+1), tellraw.Aqua)
			t.TextColored(item, tellraw.Yellow)
			t.Text(func(b *dsl.TextBuilder) {
				b.Content("【点我选择】\n")
				b.Color(tellraw.Green)
				dsl.OnClick(b, dsl.Callback, func(c *dsl.CallbackBuilder) {
					c.Func(func(player string) { onSelect(player, item) })
				})
			})
		}
		t.TextColored("<", tellraw.Yellow)
		t.Text(pageLink("上一页", page > 0, turn(page-1)))
		t.Text(func(b *dsl.TextBuilder) {
			b.Content("|")
			b.Color(tellraw.Yellow)
			b.Decorate(tellraw.Bold)
		})
		t.Text(pageLink("下一页", page < pages-1, turn(page+1)))
		t.TextColored(">", tellraw.Yellow)
	})
	if err != nil {
		return err
	}
	_, err = m.Tellraw(target, message)
	return err
}

func pageLink(label string, enabled bool, turn tellraw.ClickCallback) func(*dsl.TextBuilder) {
	return func(b *dsl.TextBuilder) {
		b.Content(label)
		if !enabled {
			b.Color(tellraw.Gray)
			return
		}
		b.Color(tellraw.Green)
		dsl.OnClick(b, dsl.Callback, func(c *dsl.CallbackBuilder) {
			c.Func(turn)
		})
	}
}
