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

package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"m4o.io/tzmap/model"
)

// PropertyTZID is the feature property used as the legend key.
const PropertyTZID = "tzid"

// Options tunes a Collection pass.
type Options struct {
	// Strict turns malformed geometries into errors instead of skipping the
	// feature with a warning.
	Strict bool

	// Logger receives skip and malformed warnings; nil means slog.Default().
	Logger *slog.Logger
}

// Stats summarizes a Collection pass.
type Stats struct {
	Features  int
	Extracted int
	Skipped   int
	Malformed int
	Rings     int
	Points    int
}

// Collection extracts every polygon ring of a parsed GeoJSON document.
//
// The root may be a FeatureCollection (any object with a "features" array),
// a single Feature, or a bare geometry. Features are visited in order and
// each is recorded in the returned GeoData, whether or not it produced
// rings, so that feature indexes stay aligned with the input.
func Collection(ctx context.Context, root any, opts Options) (*model.GeoData, Stats, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	features, bare, err := features(root)
	if err != nil {
		return nil, Stats{}, err
	}

	d := model.NewGeoData()
	stats := Stats{Features: len(features)}

	for i, f := range features {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		fm, ok := f.(map[string]any)
		if !ok {
			log.Warn("skipping feature", "feature", i, "reason", "feature is not an object")
			d.AddFeature(i, "", false, nil)
			stats.Skipped++

			continue
		}

		tzid, hasTZID := tzidOf(fm)

		res, err := ExtractGeometry(fm["geometry"])
		if err != nil {
			var mge *model.MalformedGeometryError
			if errors.As(err, &mge) && !bare {
				mge.Feature = i
			}

			if opts.Strict {
				return nil, stats, err
			}

			log.Warn("skipping malformed geometry", "feature", i, "tzid", tzid, "error", err)
			d.AddFeature(i, tzid, hasTZID, nil)
			stats.Malformed++

			continue
		}

		if res.Outcome == Skipped {
			log.Debug("skipping geometry", "feature", i, "type", res.Type, "reason", res.Reason)
			stats.Skipped++
		} else {
			stats.Extracted++
		}

		feat := d.AddFeature(i, tzid, hasTZID, res.Polygons)
		stats.Rings += feat.RingCount
	}

	stats.Points = d.PointCount()

	return d, stats, nil
}

// features locates the feature list of the document. A bare geometry is
// wrapped as a single anonymous feature.
func features(root any) (list []any, bare bool, err error) {
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, false, fmt.Errorf("%w: document is not a JSON object", model.ErrParse)
	}

	if fs, present := obj["features"]; present {
		arr, ok := fs.([]any)
		if !ok {
			return nil, false, fmt.Errorf("%w: \"features\" is not an array", model.ErrParse)
		}

		return arr, false, nil
	}

	t, _ := obj["type"].(string)

	switch t {
	case "Feature":
		return []any{obj}, false, nil
	case "":
		return nil, false, fmt.Errorf("%w: document has neither \"features\" nor \"type\"", model.ErrParse)
	case "FeatureCollection":
		return nil, false, fmt.Errorf("%w: FeatureCollection without \"features\"", model.ErrParse)
	default:
		return []any{map[string]any{"geometry": obj}}, true, nil
	}
}

// tzidOf reads properties.tzid. Strings are used as is, numbers and booleans
// are formatted, and null or composite values count as absent.
func tzidOf(feature map[string]any) (string, bool) {
	props, ok := feature["properties"].(map[string]any)
	if !ok {
		return "", false
	}

	switch v := props[PropertyTZID].(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	case interface{ String() string }:
		return v.String(), true
	default:
		return "", false
	}
}
