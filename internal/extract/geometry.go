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

// Package extract walks a parsed GeoJSON tree, the generic map[string]any /
// []any / float64 values produced by a JSON decoder, and collects the rings
// of every Polygon and MultiPolygon geometry.
package extract

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"

	"m4o.io/tzmap/model"
)

// Outcome discriminates what ExtractGeometry did with a geometry node.
type Outcome int

const (
	// Skipped means the node is not a polygonal geometry; it produced no
	// rings and no error.
	Skipped Outcome = iota

	// Extracted means the node produced zero or more polygons.
	Extracted
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Extracted:
		return "extracted"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// Geometry types understood by the extractor.
const (
	TypePolygon      = "Polygon"
	TypeMultiPolygon = "MultiPolygon"
)

// Result is the outcome of extracting one geometry node.
type Result struct {
	Outcome  Outcome
	Reason   string       // why the node was skipped
	Type     string       // geometry type, when known
	Polygons [][]orb.Ring // one entry per polygon, each a list of rings
}

// RingCount is the number of non-empty rings over all polygons.
func (r Result) RingCount() int {
	n := 0

	for _, poly := range r.Polygons {
		for _, ring := range poly {
			if len(ring) > 0 {
				n++
			}
		}
	}

	return n
}

// ExtractGeometry converts a GeoJSON geometry node into polygons.
//
// A "Polygon" yields one polygon holding all of its rings, holes included. A
// "MultiPolygon" yields one polygon per member. Nodes that are not objects,
// lack a "type" or "coordinates" member, or carry any other geometry type
// are Skipped. Coordinate arrays of the wrong shape, positions with fewer
// than two elements and non-numeric values are reported as a
// *model.MalformedGeometryError with the feature index set to -1; the
// geometry then contributes nothing.
func ExtractGeometry(node any) (Result, error) {
	g, ok := node.(map[string]any)
	if !ok {
		return skip("", "geometry is not an object"), nil
	}

	t, ok := g["type"].(string)
	if !ok {
		return skip("", "geometry has no type"), nil
	}

	coords, ok := g["coordinates"]
	if !ok || coords == nil {
		return skip(t, "geometry has no coordinates"), nil
	}

	switch t {
	case TypePolygon:
		poly, err := parsePolygon(coords, "coordinates")
		if err != nil {
			return Result{}, err
		}

		return Result{Outcome: Extracted, Type: t, Polygons: [][]orb.Ring{poly}}, nil

	case TypeMultiPolygon:
		arr, err := asArray(coords, "coordinates")
		if err != nil {
			return Result{}, err
		}

		polys := make([][]orb.Ring, 0, len(arr))

		for i, el := range arr {
			poly, err := parsePolygon(el, index("coordinates", i))
			if err != nil {
				return Result{}, err
			}

			polys = append(polys, poly)
		}

		return Result{Outcome: Extracted, Type: t, Polygons: polys}, nil

	default:
		return skip(t, "unsupported geometry type "+strconv.Quote(t)), nil
	}
}

func skip(t, reason string) Result {
	return Result{Outcome: Skipped, Type: t, Reason: reason}
}

func parsePolygon(v any, path string) ([]orb.Ring, error) {
	arr, err := asArray(v, path)
	if err != nil {
		return nil, err
	}

	rings := make([]orb.Ring, 0, len(arr))

	for i, el := range arr {
		ring, err := parseRing(el, index(path, i))
		if err != nil {
			return nil, err
		}

		if len(ring) > 0 {
			rings = append(rings, ring)
		}
	}

	return rings, nil
}

func parseRing(v any, path string) (orb.Ring, error) {
	arr, err := asArray(v, path)
	if err != nil {
		return nil, err
	}

	ring := make(orb.Ring, 0, len(arr))

	for i, el := range arr {
		p, err := parsePosition(el, index(path, i))
		if err != nil {
			return nil, err
		}

		ring = append(ring, p)
	}

	return ring, nil
}

// parsePosition reads [x, y] and ignores any further elements such as
// altitude.
func parsePosition(v any, path string) (orb.Point, error) {
	arr, err := asArray(v, path)
	if err != nil {
		return orb.Point{}, err
	}

	if len(arr) < 2 {
		return orb.Point{}, malformed(path, fmt.Sprintf("position has %d elements, need at least 2", len(arr)))
	}

	x, err := asNumber(arr[0], index(path, 0))
	if err != nil {
		return orb.Point{}, err
	}

	y, err := asNumber(arr[1], index(path, 1))
	if err != nil {
		return orb.Point{}, err
	}

	return orb.Point{x, y}, nil
}

func asArray(v any, path string) ([]any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, malformed(path, "expected an array, got "+describe(v))
	}

	return arr, nil
}

func asNumber(v any, path string) (float64, error) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case interface{ Float64() (float64, error) }:
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, malformed(path, err.Error())
		}
	default:
		return 0, malformed(path, "expected a number, got "+describe(v))
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, malformed(path, "coordinate is not finite")
	}

	return f, nil
}

func malformed(path, reason string) error {
	return &model.MalformedGeometryError{Feature: -1, Path: path, Reason: reason}
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
