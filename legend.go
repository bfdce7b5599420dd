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
	"log/slog"

	"m4o.io/tzmap/internal/legend"
	"m4o.io/tzmap/internal/palette"
	"m4o.io/tzmap/model"
)

// ColorIndex is the palette index of ring i of data under key.
func ColorIndex(data *model.GeoData, i int, key model.ColorKey) int {
	if key == model.KeyByRing {
		return i
	}

	return data.Rings[i].Feature
}

// BuildLegend maps the tzid of every feature to the color its rings are
// rendered with under key. Features without a tzid are left out; a tzid
// seen more than once keeps its first position and takes the last color.
//
// Under model.KeyByRing a feature is represented by its first ring, so
// features that produced no ring have no color and are skipped.
func BuildLegend(data *model.GeoData, key model.ColorKey) *legend.Legend {
	l := legend.New()

	for _, f := range data.Features {
		if !f.HasTZID {
			continue
		}

		idx := f.Index

		if key == model.KeyByRing {
			if f.FirstRing < 0 {
				slog.Warn("feature has no ring to take a color from", "feature", f.Index, "tzid", f.TZID)
				continue
			}

			idx = f.FirstRing
		}

		l.Set(f.TZID, palette.ColorForIndex(idx))
	}

	return l
}
