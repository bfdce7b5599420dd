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

// Package palette maps positional indexes to a fixed set of 80 visually
// distinct colors: a 4x4x4 grid over the RGB cube followed by 16 grays.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrNotHex = errors.New("not a #RRGGBB color")

const (
	// Size is the number of distinct colors; larger indexes wrap around.
	Size = 80

	gridLevels = 4
	gridStep   = 85 // 255 / (gridLevels-1)
	gridColors = gridLevels * gridLevels * gridLevels
	grayStep   = 16
)

// ColorForIndex returns the palette color for index i. Indexes wrap modulo
// Size, so ColorForIndex(i) == ColorForIndex(i+Size) for every i.
func ColorForIndex(i int) color.RGBA {
	idx := i % Size
	if idx < 0 {
		idx += Size
	}

	if idx >= gridColors {
		gray := uint8((idx - gridColors) * grayStep)

		return color.RGBA{R: gray, G: gray, B: gray, A: 0xff}
	}

	return color.RGBA{
		R: uint8(idx % gridLevels * gridStep),
		G: uint8(idx / gridLevels % gridLevels * gridStep),
		B: uint8(idx / (gridLevels * gridLevels) % gridLevels * gridStep),
		A: 0xff,
	}
}

// Hex formats the color as #RRGGBB, ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a #RRGGBB color, case insensitively. The leading # may be
// omitted. The result is opaque.
func ParseHex(s string) (color.RGBA, error) {
	h := s
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}

	if len(h) != 7 {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrNotHex)
	}

	c, err := colorful.Hex(h)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrNotHex)
	}

	r, g, b := c.RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
