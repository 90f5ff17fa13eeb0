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

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core"
	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/callback"
	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/dsl"
	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/render"
	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

func sample() (tellraw.Component, error) {
	return dsl.Text(func(t *dsl.TextBuilder) {
		t.Content("欢迎回来, ")
		t.Color(tellraw.Aqua)
		t.Selector(func(s *dsl.SelectorBuilder) {
			s.Pattern("@s")
			s.Color(tellraw.Gold)
			s.Decorate(tellraw.Bold)
		})
		t.Newline()
		t.Translatable(func(tr *dsl.TranslatableBuilder) {
			tr.Key("chat.type.advancement.task")
			tr.Fallback("%s has made the advancement %s")
			tr.Arguments(func(a *dsl.ArgsBuilder) {
				a.TextContent("bbaa")
				a.Text(func(adv *dsl.TextBuilder) {
					adv.Content("[Stone Age]")
					adv.Color(tellraw.Green)
					dsl.OnHover(adv, dsl.ShowItem, func(i *dsl.ShowItemBuilder) {
						i.Item(tellraw.MustKey("cobblestone"))
					})
				})
			})
		})
		t.Newline()
		t.Text(func(link *dsl.TextBuilder) {
			link.Content("【打开文档】")
			link.Color(tellraw.HexColor(0x55, 0xAA, 0xFF))
			link.Decorate(tellraw.Underlined)
			dsl.OnClick(link, dsl.OpenURL, func(c *dsl.OpenURLBuilder) {
				c.URL("https://minecraft.wiki/w/Text_component_format")
			})
			dsl.OnHover(link, dsl.ShowText, func(h *dsl.ShowTextBuilder) {
				h.Content("点击打开")
				h.Color(tellraw.Yellow)
			})
		})
		t.Space()
		t.Text(func(cb *dsl.TextBuilder) {
			cb.Content("【领取奖励】")
			cb.Color(tellraw.Light_Purple)
			dsl.OnClick(cb, dsl.Callback, func(c *dsl.CallbackBuilder) {
				c.Func(func(player string) {
					core.Println(color.GreenString("Preview"), player, " 领取了奖励")
				})
			})
			dsl.OnHover(cb, dsl.ShowEntity, func(e *dsl.ShowEntityBuilder) {
				e.Type(tellraw.MustKey("minecraft:villager"))
				e.ID(uuid.New())
				e.NameText(func(n *dsl.TextBuilder) { n.Content("奖励商人") })
			})
		})
	})
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	target := "@a"
	if len(os.Args) > 1 {
		target = os.Args[1]
	}
	title := cases.Title(language.English)

	msg, err := sample()
	if err != nil {
		core.Println(color.RedString("Preview"), color.RedString("构建消息失败: %s", err.Error()))
		os.Exit(1)
	}
	fmt.Println(color.YellowString(title.String("ansi preview:")))
	fmt.Println(render.ANSI(msg))
	fmt.Println(color.YellowString(title.String("legacy codes:")))
	fmt.Println(render.Legacy(msg, render.AmpersandMarker))
	fmt.Println(color.YellowString(title.String("tellraw command:")))

	registry := callback.NewRegistry()
	if err := registry.Start(); err != nil {
		core.Println(color.RedString("Preview"), color.RedString("回调清理任务启动失败: %s", err.Error()))
		os.Exit(1)
	}
	defer registry.Shutdown()
	queue := core.NewCommandQueue(os.Stdout)
	defer queue.Close()
	messenger := core.NewMessenger(queue, registry, "Preview")
	if _, err := messenger.Tellraw(target, msg); err != nil {
		core.Println(color.RedString("Preview"), color.RedString("发送失败: %s", err.Error()))
		os.Exit(1)
	}
}
