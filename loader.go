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

// Package tzmap rasterizes GeoJSON polygon collections, such as timezone
// boundaries, into flat-color images with one palette color per feature,
// together with a legend mapping each feature's tzid to its color.
package tzmap

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"m4o.io/tzmap/internal/extract"
	"m4o.io/tzmap/internal/input"
	"m4o.io/tzmap/model"
)

// LoadStats summarizes what Load found in the input.
type LoadStats = extract.Stats

// Load parses the GeoJSON document read from r and extracts the rings of
// every Polygon and MultiPolygon feature, in input order.
func Load(ctx context.Context, r io.Reader, opts ...LoaderOption) (*model.GeoData, LoadStats, error) {
	cfg := defaultLoaderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("%w: %w", model.ErrIO, err)
	}

	var root any
	if err := json.Unmarshal(buf, &root); err != nil {
		return nil, LoadStats{}, fmt.Errorf("%w: %w", model.ErrParse, err)
	}

	return extract.Collection(ctx, root, extract.Options{
		Strict: cfg.strict,
		Logger: cfg.logger,
	})
}

// LoadFile loads the GeoJSON file at path, decompressing it when its name
// ends in .gz, .zst, .lz4, .xz or .lzma.
func LoadFile(ctx context.Context, path string, opts ...LoaderOption) (*model.GeoData, LoadStats, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	defer rc.Close()

	return Load(ctx, rc, opts...)
}
