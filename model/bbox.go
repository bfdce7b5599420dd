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

package model

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// BoundingBox is the running min/max of every coordinate observed. The zero
// value is empty; the first point extended into it seeds both corners.
type BoundingBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64

	seeded bool
}

// NewBoundingBox creates a non-empty BoundingBox from explicit corners.
func NewBoundingBox(minX, minY, maxX, maxY float64) BoundingBox {
	return BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, seeded: true}
}

// IsEmpty reports whether no point has been observed yet.
func (b *BoundingBox) IsEmpty() bool {
	return !b.seeded
}

// Width is the extent along the x axis.
func (b *BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height is the extent along the y axis.
func (b *BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// IsDegenerate reports whether the box is empty or has a zero or infinite
// extent on either axis, in which case no aspect ratio can be derived from it.
func (b *BoundingBox) IsDegenerate() bool {
	return b.IsEmpty() || !finitePositive(b.Width()) || !finitePositive(b.Height())
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Aspect is Width/Height. Callers must check IsDegenerate first.
func (b *BoundingBox) Aspect() float64 {
	return b.Width() / b.Height()
}

// Min is the lower-left corner.
func (b *BoundingBox) Min() orb.Point { return orb.Point{b.MinX, b.MinY} }

// Max is the upper-right corner.
func (b *BoundingBox) Max() orb.Point { return orb.Point{b.MaxX, b.MaxY} }

// EqualWithin checks if two bounding boxes are within a specific epsilon.
func (b *BoundingBox) EqualWithin(o *BoundingBox, eps Epsilon) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return b.IsEmpty() == o.IsEmpty()
	}

	return EqualWithin(b.MinX, o.MinX, eps) &&
		EqualWithin(b.MinY, o.MinY, eps) &&
		EqualWithin(b.MaxX, o.MaxX, eps) &&
		EqualWithin(b.MaxY, o.MaxY, eps)
}

// Contains checks if the bounding box contains the point.
func (b *BoundingBox) Contains(p orb.Point) bool {
	return !b.IsEmpty() && b.MinX <= p[0] && p[0] <= b.MaxX && b.MinY <= p[1] && p[1] <= b.MaxY
}

// Extend grows the box to include p.
func (b *BoundingBox) Extend(p orb.Point) {
	if !b.seeded {
		b.MinX, b.MaxX = p[0], p[0]
		b.MinY, b.MaxY = p[1], p[1]
		b.seeded = true

		return
	}

	if b.MinX > p[0] {
		b.MinX = p[0]
	}

	if b.MaxX < p[0] {
		b.MaxX = p[0]
	}

	if b.MinY > p[1] {
		b.MinY = p[1]
	}

	if b.MaxY < p[1] {
		b.MaxY = p[1]
	}
}

// ExtendWithBoundingBox grows the box to include bbox.
func (b *BoundingBox) ExtendWithBoundingBox(bbox *BoundingBox) {
	if bbox.IsEmpty() {
		return
	}

	b.Extend(bbox.Min())
	b.Extend(bbox.Max())
}

func (b *BoundingBox) String() string {
	if b.IsEmpty() {
		return "[]"
	}

	return fmt.Sprintf("[(%s, %s) (%s, %s)]",
		ftoa(b.MinX), ftoa(b.MinY),
		ftoa(b.MaxX), ftoa(b.MaxY))
}
