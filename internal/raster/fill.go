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

package raster

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/golang/geo/r2"
)

// minRingPoints is the smallest ring that encloses any area.
const minRingPoints = 3

// Filler rasterizes rings onto an RGBA canvas with the even-odd rule. The
// intercept buffer grows as needed and is reused across calls, so a Filler
// is not safe for concurrent use.
type Filler struct {
	xs []float64
}

// NewFiller creates a Filler.
func NewFiller() *Filler {
	return &Filler{xs: make([]float64, 0, 64)}
}

// FillRing fills a single screen-space ring. See Fill.
func (f *Filler) FillRing(img *image.RGBA, ring []r2.Point, c color.RGBA) int {
	return f.Fill(img, [][]r2.Point{ring}, c)
}

// Fill paints the interior of rings, taken together under the even-odd rule,
// with color c and returns the number of pixel writes.
//
// For every integer scanline y between the rings' lowest and highest vertex,
// an edge (p[j], p[i]) contributes an intercept when exactly one endpoint lies
// strictly below y, i.e. (p[i].Y > y) != (p[j].Y > y). The intercepts are
// sorted and each pair (x[2k], x[2k+1]) is painted as the inclusive pixel run
// floor(x[2k])..floor(x[2k+1]). A trailing unpaired intercept is dropped.
//
// Rings with fewer than three points are ignored. Pixels outside the canvas
// are skipped; the geometry itself is not clipped.
func (f *Filler) Fill(img *image.RGBA, rings [][]r2.Point, c color.RGBA) int {
	minY, maxY := math.Inf(1), math.Inf(-1)

	for _, ring := range rings {
		if len(ring) < minRingPoints {
			continue
		}

		for _, p := range ring {
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}
	}

	if !(minY <= maxY) {
		return 0
	}

	b := img.Bounds()
	top, bottom := float64(b.Min.Y), float64(b.Max.Y-1)
	left, right := float64(b.Min.X), float64(b.Max.X-1)

	minY, maxY = math.Floor(minY), math.Floor(maxY)
	if maxY < top || minY > bottom {
		return 0
	}

	y0 := int(clamp(minY, top, bottom))
	y1 := int(clamp(maxY, top, bottom))

	painted := 0

	for y := y0; y <= y1; y++ {
		fy := float64(y)

		f.xs = f.xs[:0]

		for _, ring := range rings {
			if len(ring) < minRingPoints {
				continue
			}

			for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
				pi, pj := ring[i], ring[j]
				if (pi.Y > fy) != (pj.Y > fy) {
					x := pj.X + (pi.X-pj.X)*(fy-pj.Y)/(pi.Y-pj.Y)
					f.xs = append(f.xs, x)
				}
			}
		}

		slices.Sort(f.xs)

		for k := 0; k+1 < len(f.xs); k += 2 {
			xa, xb := math.Floor(f.xs[k]), math.Floor(f.xs[k+1])
			if xb < left || xa > right {
				continue
			}

			x0 := int(clamp(xa, left, right))
			x1 := int(clamp(xb, left, right))

			hline(img, y, x0, x1, c)
			painted += x1 - x0 + 1
		}
	}

	return painted
}
