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
	"strings"
)

// Color is either one of the sixteen named chat colors or a "#RRGGBB" hex color.
type Color string

var (
	Black        Color = "black"
	Dark_Blue    Color = "dark_blue"
	Dark_Green   Color = "dark_green"
	Dark_Aqua    Color = "dark_aqua"
	Dark_Red     Color = "dark_red"
	Dark_Purple  Color = "dark_purple"
	Gold         Color = "gold"
	Gray         Color = "gray"
	Dark_Gray    Color = "dark_gray"
	Blue         Color = "blue"
	Green        Color = "green"
	Aqua         Color = "aqua"
	Red          Color = "red"
	Light_Purple Color = "light_purple"
	Yellow       Color = "yellow"
	White        Color = "white"
)

// NamedColors lists the named colors in legacy code order (0-9, a-f).
var NamedColors = []Color{
	Black, Dark_Blue, Dark_Green, Dark_Aqua, Dark_Red, Dark_Purple, Gold, Gray,
	Dark_Gray, Blue, Green, Aqua, Red, Light_Purple, Yellow, White,
}

var namedColorRGB = map[Color][3]uint8{
	Black:        {0x00, 0x00, 0x00},
	Dark_Blue:    {0x00, 0x00, 0xAA},
	Dark_Green:   {0x00, 0xAA, 0x00},
	Dark_Aqua:    {0x00, 0xAA, 0xAA},
	Dark_Red:     {0xAA, 0x00, 0x00},
	Dark_Purple:  {0xAA, 0x00, 0xAA},
	Gold:         {0xFF, 0xAA, 0x00},
	Gray:         {0xAA, 0xAA, 0xAA},
	Dark_Gray:    {0x55, 0x55, 0x55},
	Blue:         {0x55, 0x55, 0xFF},
	Green:        {0x55, 0xFF, 0x55},
	Aqua:         {0x55, 0xFF, 0xFF},
	Red:          {0xFF, 0x55, 0x55},
	Light_Purple: {0xFF, 0x55, 0xFF},
	Yellow:       {0xFF, 0xFF, 0x55},
	White:        {0xFF, 0xFF, 0xFF},
}

func HexColor(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if c.IsNamed() {
		return c, nil
	}
	if strings.HasPrefix(string(c), "#") && len(c) == 7 {
		if _, err := strconv.ParseUint(string(c[1:]), 16, 32); err == nil {
			return Color(strings.ToUpper(string(c))), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func (c Color) IsNamed() bool {
	_, ok := namedColorRGB[c]
	return ok
}

// RGB resolves both named and hex colors. ok is false for an unset or malformed color.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	if rgb, named := namedColorRGB[c]; named {
		return rgb[0], rgb[1], rgb[2], true
	}
	if len(c) != 7 || c[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(string(c[1:]), 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// Nearest snaps the color to the closest named color.
func (c Color) Nearest() Color {
	if c.IsNamed() || c == "" {
		return c
	}
	r, g, b, ok := c.RGB()
	if !ok {
		return ""
	}
	best := White
	bestDistance := -1
	for _, named := range NamedColors {
		rgb := namedColorRGB[named]
		dr, dg, db := int(r)-int(rgb[0]), int(g)-int(rgb[1]), int(b)-int(rgb[2])
		distance := dr*dr + dg*dg + db*db
		if bestDistance < 0 || distance < bestDistance {
			best, bestDistance = named, distance
		}
	}
	return best
}
