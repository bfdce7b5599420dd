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

package model_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"m4o.io/tzmap/model"
)

func TestBoundingBox_ZeroValueIsEmpty(t *testing.T) {
	var bbox model.BoundingBox

	assert.True(t, bbox.IsEmpty())
	assert.True(t, bbox.IsDegenerate())
	assert.False(t, bbox.Contains(orb.Point{0, 0}))
	assert.Equal(t, "[]", bbox.String())
}

func TestBoundingBox_FirstPointSeeds(t *testing.T) {
	var bbox model.BoundingBox
	bbox.Extend(orb.Point{10, 20})

	assert.False(t, bbox.IsEmpty())
	assert.Equal(t, 10.0, bbox.MinX)
	assert.Equal(t, 10.0, bbox.MaxX)
	assert.Equal(t, 20.0, bbox.MinY)
	assert.Equal(t, 20.0, bbox.MaxY)
	assert.True(t, bbox.IsDegenerate())
}

func TestBoundingBox_InfiniteExtent(t *testing.T) {
	var bbox model.BoundingBox
	bbox.Extend(orb.Point{-1e308, 0})
	bbox.Extend(orb.Point{1e308, 1})

	assert.False(t, bbox.IsEmpty())
	assert.True(t, bbox.IsDegenerate())
}

func TestBoundingBox_NoZeroBias(t *testing.T) {
	// every coordinate is strictly positive, so a box seeded at the origin
	// would wrongly report MinX == MinY == 0
	var bbox model.BoundingBox
	bbox.Extend(orb.Point{5, 7})
	bbox.Extend(orb.Point{9, 3})
	bbox.Extend(orb.Point{6, 11})

	assert.Equal(t, 5.0, bbox.MinX)
	assert.Equal(t, 3.0, bbox.MinY)
	assert.Equal(t, 9.0, bbox.MaxX)
	assert.Equal(t, 11.0, bbox.MaxY)
	assert.Equal(t, 4.0, bbox.Width())
	assert.Equal(t, 8.0, bbox.Height())
	assert.Equal(t, 0.5, bbox.Aspect())
}

func TestBoundingBox_SeedsAtOrigin(t *testing.T) {
	// a first point at the origin must not leave the box unseeded
	var bbox model.BoundingBox
	bbox.Extend(orb.Point{0, 0})
	bbox.Extend(orb.Point{-4, 2})

	assert.Equal(t, -4.0, bbox.MinX)
	assert.Equal(t, 0.0, bbox.MinY)
	assert.Equal(t, 0.0, bbox.MaxX)
	assert.Equal(t, 2.0, bbox.MaxY)
}

func TestBoundingBox_EqualWithin(t *testing.T) {
	bbox1 := model.NewBoundingBox(-0.511482, 51.28554, 0.335437, 51.69344)
	bbox2 := model.NewBoundingBox(
		bbox1.MinX+float64(model.E6),
		bbox1.MinY+float64(model.E6),
		bbox1.MaxX+float64(model.E6),
		bbox1.MaxY+float64(model.E6),
	)

	assert.True(t, bbox1.EqualWithin(&bbox2, model.E5))
	assert.False(t, bbox1.EqualWithin(&bbox2, model.E7))

	var empty model.BoundingBox
	assert.False(t, bbox1.EqualWithin(&empty, model.E5))
	assert.True(t, empty.EqualWithin(&model.BoundingBox{}, model.E5))
}

func TestBoundingBox_Contains(t *testing.T) {
	bbox := model.NewBoundingBox(-0.511482, 51.28554, 0.335437, 51.69344)
	eps := float64(model.E5)

	testCases := []struct {
		name     string
		point    orb.Point
		expected bool
	}{
		{"min corner", orb.Point{bbox.MinX, bbox.MinY}, true},
		{"max corner", orb.Point{bbox.MaxX, bbox.MaxY}, true},
		{"left of min", orb.Point{bbox.MinX - eps, bbox.MinY}, false},
		{"below min", orb.Point{bbox.MinX, bbox.MinY - eps}, false},
		{"inside min", orb.Point{bbox.MinX + eps, bbox.MinY + eps}, true},
		{"right of max", orb.Point{bbox.MaxX + eps, bbox.MaxY}, false},
		{"above max", orb.Point{bbox.MaxX, bbox.MaxY + eps}, false},
		{"inside max", orb.Point{bbox.MaxX - eps, bbox.MaxY - eps}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bbox.Contains(tc.point))
		})
	}
}

func TestBoundingBox_ExtendWithBoundingBox(t *testing.T) {
	var bbox model.BoundingBox
	a := model.NewBoundingBox(70, 20, 90, 45)
	b := model.NewBoundingBox(-20, -20, 20, 20)
	c := model.NewBoundingBox(-90, -45, -70, -25)

	bbox.ExtendWithBoundingBox(&a)
	bbox.ExtendWithBoundingBox(&b)
	bbox.ExtendWithBoundingBox(&c)
	bbox.ExtendWithBoundingBox(&model.BoundingBox{})

	assert.True(t, bbox.Contains(orb.Point{90, -45}))
	assert.True(t, bbox.Contains(orb.Point{-90, 45}))
	assert.True(t, bbox.Contains(orb.Point{-90, -45}))
	assert.True(t, bbox.Contains(orb.Point{90, 45}))
}

func TestBoundingBoxString(t *testing.T) {
	bbox := model.NewBoundingBox(-0.511482, 51.28554, 0.335437, 51.69344)
	assert.Equal(t, "[(-0.511482, 51.28554) (0.335437, 51.69344)]", bbox.String())
}
