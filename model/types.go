// Copyright 2017-25 the original author or authors.
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

// Package model contains the shared model for GeoJSON rasterization: rings,
// features, bounding boxes and the policies that drive rendering.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Epsilon is an enumeration of precisions that can be used when comparing
// coordinates.
type Epsilon float64

// Precisions.
const (
	E5 Epsilon = 1e-5
	E6 Epsilon = 1e-6
	E7 Epsilon = 1e-7
	E8 Epsilon = 1e-8
	E9 Epsilon = 1e-9

	Half = 0.5
)

// Ring is a closed sequence of world-space points forming one polygon
// boundary, outer or hole. The last point implicitly connects back to the
// first.
type Ring struct {
	Points orb.Ring

	// Feature is the index of the source feature in the input.
	Feature int

	// Polygon is the ordinal of the polygon this ring belongs to, counted
	// across the whole input.
	Polygon int
}

// Feature records the per-feature facts needed for the color legend.
type Feature struct {
	Index     int
	TZID      string
	HasTZID   bool
	FirstRing int // -1 when the feature contributed no ring
	RingCount int
}

// FillPolicy decides how the rings of one polygon are combined when filled.
type FillPolicy int

const (
	// FillRings paints every ring as its own solid shape; holes are painted
	// over the outer ring.
	FillRings FillPolicy = iota

	// FillPolygons fills all rings of a polygon in a single even-odd pass so
	// that holes are left unpainted.
	FillPolygons
)

var fillPolicyNames = map[FillPolicy]string{
	FillRings:    "rings",
	FillPolygons: "polygons",
}

func (p FillPolicy) String() string {
	if s, ok := fillPolicyNames[p]; ok {
		return s
	}

	return "FillPolicy(" + strconv.Itoa(int(p)) + ")"
}

// ParseFillPolicy converts a policy name into a FillPolicy.
func ParseFillPolicy(s string) (FillPolicy, error) {
	for p, name := range fillPolicyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}

	return FillRings, fmt.Errorf("unknown fill policy %q (want rings or polygons)", s)
}

// ColorKey decides which positional index selects a ring's palette color.
type ColorKey int

const (
	// KeyByFeature colors a ring by the index of its source feature, so all
	// rings of a feature share one color.
	KeyByFeature ColorKey = iota

	// KeyByRing colors a ring by its position in the extracted ring list.
	KeyByRing
)

var colorKeyNames = map[ColorKey]string{
	KeyByFeature: "feature",
	KeyByRing:    "ring",
}

func (k ColorKey) String() string {
	if s, ok := colorKeyNames[k]; ok {
		return s
	}

	return "ColorKey(" + strconv.Itoa(int(k)) + ")"
}

// ParseColorKey converts a key name into a ColorKey.
func ParseColorKey(s string) (ColorKey, error) {
	for k, name := range colorKeyNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}

	return KeyByFeature, fmt.Errorf("unknown color key %q (want feature or ring)", s)
}

// EqualWithin checks if two coordinates are within a specific epsilon.
func EqualWithin(a, b float64, eps Epsilon) bool {
	return round(a/float64(eps))-round(b/float64(eps)) == 0
}

// round returns the value rounded to nearest as an int64.
func round(val float64) int64 {
	if val < 0 {
		return int64(val - Half)
	}

	return int64(val + Half)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
