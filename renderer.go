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

package tzmap

import (
	"context"
	"image"
	"image/color"

	"github.com/destel/rill"
	"github.com/golang/geo/r2"

	"m4o.io/tzmap/internal/palette"
	"m4o.io/tzmap/internal/raster"
	"m4o.io/tzmap/model"
)

// Renderer rasterizes extracted rings onto a canvas sized to the data.
type Renderer struct {
	cfg rendererOptions
}

// RenderStats describes a finished render.
type RenderStats struct {
	Width  int
	Height int
	Scale  float64 // pixels per world unit
	Shapes int     // fill passes, one per ring or per polygon
	Pixels int     // pixel writes, overlaps counted each time
}

// shape is the unit of one fill pass.
type shape struct {
	rings []projectedRing
	color color.RGBA
}

// projectedRing is a ring in world space before projection and in screen space
// after it.
type projectedRing struct {
	world  model.Ring
	screen []r2.Point
}

// NewRenderer returns a new renderer configured with options.
func NewRenderer(opts ...RendererOption) *Renderer {
	cfg := defaultRendererConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.nCPU = max(cfg.nCPU, 1)

	return &Renderer{cfg: cfg}
}

// Render paints every ring of data, in ring order, onto a new canvas. Later
// rings paint over earlier ones where they overlap.
//
// It fails with model.ErrNoGeometry when data holds no ring and with
// model.ErrDegenerateBounds when the rings span zero width or height.
func (r *Renderer) Render(ctx context.Context, data *model.GeoData) (*image.RGBA, RenderStats, error) {
	if len(data.Rings) == 0 {
		return nil, RenderStats{}, model.ErrNoGeometry
	}

	w, h, err := raster.CanvasSize(data.Bounds, r.cfg.height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	m, err := raster.NewMapper(data.Bounds, w, h)
	if err != nil {
		return nil, RenderStats{}, err
	}

	img := raster.NewCanvas(w, h, r.cfg.background)
	stats := RenderStats{Width: w, Height: h, Scale: m.Scale()}

	shapes := r.shapes(data)
	stats.Shapes = len(shapes)

	projected := rill.OrderedMap(rill.FromSlice(shapes, nil), r.cfg.nCPU, func(s shape) (shape, error) {
		if err := ctx.Err(); err != nil {
			return s, err
		}

		for i := range s.rings {
			s.rings[i].screen = m.Ring(s.rings[i].world.Points)
		}

		return s, nil
	})

	f := raster.NewFiller()
	rings := make([][]r2.Point, 0, 1)

	// a single consumer owns the canvas
	err = rill.ForEach(projected, 1, func(s shape) error {
		rings = rings[:0]
		for _, ring := range s.rings {
			rings = append(rings, ring.screen)
		}

		stats.Pixels += f.Fill(img, rings, s.color)

		return nil
	})
	if err != nil {
		return nil, RenderStats{}, err
	}

	return img, stats, nil
}

// shapes groups the rings of data into fill passes according to the fill
// policy. Under FillPolygons consecutive rings of one polygon form a pass
// colored after the first of them.
func (r *Renderer) shapes(data *model.GeoData) []shape {
	shapes := make([]shape, 0, len(data.Rings))

	for i, ring := range data.Rings {
		if r.cfg.policy == model.FillPolygons && len(shapes) > 0 {
			last := &shapes[len(shapes)-1]
			if last.rings[0].world.Polygon == ring.Polygon {
				last.rings = append(last.rings, projectedRing{world: ring})
				continue
			}
		}

		shapes = append(shapes, shape{
			rings: []projectedRing{{world: ring}},
			color: palette.ColorForIndex(ColorIndex(data, i, r.cfg.key)),
		})
	}

	return shapes
}
