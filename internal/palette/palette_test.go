// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorForIndexPeriodic(t *testing.T) {
	for i := 0; i < 4*Size; i++ {
		assert.Equal(t, ColorForIndex(i), ColorForIndex(i+Size), "index %d", i)
	}
}

func TestColorForIndexGrid(t *testing.T) {
	levels := map[uint8]bool{0: true, 85: true, 170: true, 255: true}
	seen := make(map[color.RGBA]bool)

	for i := 0; i < gridColors; i++ {
		c := ColorForIndex(i)
		assert.True(t, levels[c.R], "red %d at %d", c.R, i)
		assert.True(t, levels[c.G], "green %d at %d", c.G, i)
		assert.True(t, levels[c.B], "blue %d at %d", c.B, i)
		assert.Equal(t, uint8(0xff), c.A)
		seen[c] = true
	}

	// the grid covers the whole 4x4x4 cube without repeats
	assert.Len(t, seen, gridColors)
}

func TestColorForIndexGrays(t *testing.T) {
	for i := gridColors; i < Size; i++ {
		c := ColorForIndex(i)
		gray := uint8((i - 64) * 16)
		assert.Equal(t, color.RGBA{R: gray, G: gray, B: gray, A: 0xff}, c, "index %d", i)
	}
}

func TestColorForIndexKnownValues(t *testing.T) {
	testCases := []struct {
		index int
		hex   string
	}{
		{0, "#000000"},
		{1, "#550000"},
		{3, "#FF0000"},
		{4, "#005500"},
		{16, "#000055"},
		{21, "#555555"},
		{63, "#FFFFFF"},
		{64, "#000000"},
		{65, "#101010"},
		{79, "#F0F0F0"},
		{80, "#000000"},
		{-1, "#F0F0F0"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.hex, Hex(ColorForIndex(tc.index)), "index %d", tc.index)
	}
}

func TestParseHex(t *testing.T) {
	testCases := []struct {
		in   string
		want color.RGBA
	}{
		{"#F5F5F5", color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}},
		{"#550000", color.RGBA{R: 0x55, A: 0xff}},
		{"aabbcc", color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, hexRoundTrip(got))
		})
	}

	for _, in := range []string{"", "#", "#FFF", "#GGGGGG", "#1234567", "red"} {
		_, err := ParseHex(in)
		assert.ErrorIs(t, err, ErrNotHex, in)
	}
}

func hexRoundTrip(c color.RGBA) color.RGBA {
	got, err := ParseHex(Hex(c))
	if err != nil {
		panic(err)
	}

	return got
}
