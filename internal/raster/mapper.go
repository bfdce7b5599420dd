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

// Package raster maps world coordinates onto a pixel canvas and fills
// polygons on it with a scanline even-odd rule.
//
// World-space points are orb.Point values; screen-space points are r2.Point
// values with the origin at the top-left corner of the canvas and y growing
// downwards.
package raster

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/paulmach/orb"

	"m4o.io/tzmap/model"
)

// MaxCanvasPixels caps width*height of a canvas, 1 GiB of RGBA.
const MaxCanvasPixels = 1 << 28

// CanvasSize derives the canvas dimensions for bounds at a fixed height,
// preserving the aspect ratio of the bounds. Bounds so elongated that the
// canvas would exceed MaxCanvasPixels are reported as degenerate.
func CanvasSize(bounds model.BoundingBox, height int) (width, h int, err error) {
	if height < 1 {
		return 0, 0, fmt.Errorf("canvas height must be positive, got %d", height)
	}

	if bounds.IsDegenerate() {
		return 0, 0, fmt.Errorf("%w: %s", model.ErrDegenerateBounds, bounds.String())
	}

	fw := max(math.Round(float64(height)*bounds.Aspect()), 1)
	if math.IsNaN(fw) || fw*float64(height) > MaxCanvasPixels {
		return 0, 0, fmt.Errorf("%w: %s needs a canvas of %gx%d pixels, more than %d",
			model.ErrDegenerateBounds, bounds.String(), fw, height, MaxCanvasPixels)
	}

	return int(fw), height, nil
}

// Mapper transforms world coordinates into canvas pixel space using a single
// uniform scale so that the whole bounding box fits and keeps its aspect
// ratio.
type Mapper struct {
	minX, minY float64
	scale      float64
	height     float64
}

// NewMapper creates a Mapper from the world bounds onto a width x height
// canvas.
func NewMapper(bounds model.BoundingBox, width, height int) (*Mapper, error) {
	if bounds.IsDegenerate() {
		return nil, fmt.Errorf("%w: %s", model.ErrDegenerateBounds, bounds.String())
	}

	if width < 1 || height < 1 {
		return nil, fmt.Errorf("canvas must be at least 1x1, got %dx%d", width, height)
	}

	scale := min(float64(width)/bounds.Width(), float64(height)/bounds.Height())

	return &Mapper{
		minX:   bounds.MinX,
		minY:   bounds.MinY,
		scale:  scale,
		height: float64(height),
	}, nil
}

// Scale is the number of pixels per world unit.
func (m *Mapper) Scale() float64 {
	return m.scale
}

// ToScreen maps a world point onto the canvas. The y axis is flipped since
// world y grows northwards while canvas rows grow downwards.
func (m *Mapper) ToScreen(p orb.Point) r2.Point {
	return r2.Point{
		X: (p.X() - m.minX) * m.scale,
		Y: m.height - (p.Y()-m.minY)*m.scale,
	}
}

// Ring maps every point of a world ring onto the canvas.
func (m *Mapper) Ring(r orb.Ring) []r2.Point {
	out := make([]r2.Point, len(r))
	for i, p := range r {
		out[i] = m.ToScreen(p)
	}

	return out
}
