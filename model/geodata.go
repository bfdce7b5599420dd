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

package model

import (
	"github.com/paulmach/orb"
)

// GeoData accumulates the rings and bounds of a single extraction pass.
// Rings and Features are append-only and keep input order; rendering and
// legend export both depend on that order.
type GeoData struct {
	Rings    []Ring
	Features []Feature
	Bounds   BoundingBox

	polygons int
}

// NewGeoData creates an empty GeoData.
func NewGeoData() *GeoData {
	return &GeoData{}
}

// AddFeature records the feature at position index of the input together
// with the polygons its geometry produced. Each polygon is a list of rings;
// empty rings are dropped. The bounds are extended by every point added.
func (d *GeoData) AddFeature(index int, tzid string, hasTZID bool, polygons [][]orb.Ring) *Feature {
	f := Feature{
		Index:     index,
		TZID:      tzid,
		HasTZID:   hasTZID,
		FirstRing: -1,
	}

	for _, poly := range polygons {
		added := false

		for _, r := range poly {
			if len(r) == 0 {
				continue
			}

			if f.FirstRing < 0 {
				f.FirstRing = len(d.Rings)
			}

			d.Rings = append(d.Rings, Ring{Points: r, Feature: index, Polygon: d.polygons})
			f.RingCount++
			added = true

			for _, p := range r {
				d.Bounds.Extend(p)
			}
		}

		if added {
			d.polygons++
		}
	}

	d.Features = append(d.Features, f)

	return &d.Features[len(d.Features)-1]
}

// PolygonCount is the number of polygons that contributed at least one ring.
func (d *GeoData) PolygonCount() int {
	return d.polygons
}

// PointCount is the total number of vertices over all rings.
func (d *GeoData) PointCount() int {
	n := 0
	for _, r := range d.Rings {
		n += len(r.Points)
	}

	return n
}
