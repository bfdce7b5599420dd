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
	"errors"
	"fmt"
)

var (
	// ErrIO reports a failure opening, reading or writing a file.
	ErrIO = errors.New("i/o failure")

	// ErrParse reports input that is not JSON or lacks the fields a GeoJSON
	// document requires.
	ErrParse = errors.New("parse failure")

	// ErrMalformedGeometry reports a Polygon or MultiPolygon whose coordinate
	// arrays have the wrong shape or non-numeric values.
	ErrMalformedGeometry = errors.New("malformed geometry")

	// ErrDegenerateBounds reports a bounding box with zero extent on an axis.
	ErrDegenerateBounds = errors.New("degenerate bounds")

	// ErrNoGeometry reports an input without a single polygon ring.
	ErrNoGeometry = errors.New("no polygon geometry found")
)

// MalformedGeometryError locates a malformed coordinate structure.
type MalformedGeometryError struct {
	Feature int    // index of the feature, -1 for a bare geometry
	Path    string // JSON path below the geometry, e.g. coordinates[0][3][1]
	Reason  string
}

func (e *MalformedGeometryError) Error() string {
	if e.Feature < 0 {
		return fmt.Sprintf("malformed geometry at %s: %s", e.Path, e.Reason)
	}

	return fmt.Sprintf("malformed geometry in feature %d at %s: %s", e.Feature, e.Path, e.Reason)
}

func (e *MalformedGeometryError) Unwrap() error {
	return ErrMalformedGeometry
}
