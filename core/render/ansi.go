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

package render

import (
	"strings"

	"github.com/fatih/color"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

var ansiColors = map[tellraw.Color]color.Attribute{
	tellraw.Black:        color.FgBlack,
	tellraw.Dark_Blue:    color.FgBlue,
	tellraw.Dark_Green:   color.FgGreen,
	tellraw.Dark_Aqua:    color.FgCyan,
	tellraw.Dark_Red:     color.FgRed,
	tellraw.Dark_Purple:  color.FgMagenta,
	tellraw.Gold:         color.FgYellow,
	tellraw.Gray:         color.FgWhite,
	tellraw.Dark_Gray:    color.FgHiBlack,
	tellraw.Blue:         color.FgHiBlue,
	tellraw.Green:        color.FgHiGreen,
	tellraw.Aqua:         color.FgHiCyan,
	tellraw.Red:          color.FgHiRed,
	tellraw.Light_Purple: color.FgHiMagenta,
	tellraw.Yellow:       color.FgHiYellow,
	tellraw.White:        color.FgHiWhite,
}

var ansiDecorations = map[tellraw.Decoration]color.Attribute{
	tellraw.Obfuscated:    color.BlinkSlow,
	tellraw.Bold:          color.Bold,
	tellraw.Strikethrough: color.CrossedOut,
	tellraw.Underlined:    color.Underline,
	tellraw.Italic:        color.Italic,
}

// Attributes maps a style to terminal attributes. Hex colors snap to the
// nearest named color.
func Attributes(style tellraw.Style) []color.Attribute {
	var attrs []color.Attribute
	if fg, ok := ansiColors[style.Color.Nearest()]; ok {
		attrs = append(attrs, fg)
	}
	for _, d := range tellraw.Decorations {
		if style.HasDecoration(d) {
			attrs = append(attrs, ansiDecorations[d])
		}
	}
	return attrs
}

// ANSI renders c for a terminal. It honors color.NoColor.
func ANSI(c tellraw.Component) string {
	var sb strings.Builder
	for _, segment := range Flatten(c) {
		attrs := Attributes(segment.Style)
		if len(attrs) == 0 {
			sb.WriteString(segment.Text)
			continue
		}
		sb.WriteString(color.New(attrs...).Sprint(segment.Text))
	}
	return sb.String()
}
