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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"gold", Gold},
		{" GOLD ", Gold},
		{"light_purple", Light_Purple},
		{"#ff00aa", "#FF00AA"},
		{"#A1B2C3", "#A1B2C3"},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, in := range []string{"", "orange", "#12345", "#GGGGGG", "123456"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
}

func TestNamedColors(t *testing.T) {
	require.Len(t, NamedColors, 16)
	assert.Equal(t, Black, NamedColors[0])
	assert.Equal(t, Gold, NamedColors[6])
	assert.Equal(t, White, NamedColors[15])
	for _, c := range NamedColors {
		assert.True(t, c.IsNamed(), c)
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b, ok := Gold.RGB()
	require.True(t, ok)
	assert.Equal(t, [3]uint8{0xFF, 0xAA, 0x00}, [3]uint8{r, g, b})

	r, g, b, ok = HexColor(0x12, 0x34, 0x56).RGB()
	require.True(t, ok)
	assert.Equal(t, [3]uint8{0x12, 0x34, 0x56}, [3]uint8{r, g, b})

	_, _, _, ok = Color("").RGB()
	assert.False(t, ok)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, Color("#FFAA00"), HexColor(0xFF, 0xAA, 0x00))
	assert.False(t, HexColor(0xFF, 0xAA, 0x00).IsNamed())
}

func TestNearest(t *testing.T) {
	assert.Equal(t, Gold, HexColor(0xFF, 0xAB, 0x01).Nearest())
	assert.Equal(t, Dark_Red, HexColor(0xFE, 0x00, 0x00).Nearest())
	assert.Equal(t, Black, HexColor(0x01, 0x02, 0x03).Nearest())
	assert.Equal(t, Aqua, Aqua.Nearest())
	assert.Equal(t, Color(""), Color("").Nearest())
}
