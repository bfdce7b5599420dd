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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/tzmap/model"
)

func TestEqualWithin(t *testing.T) {
	assert.True(t, model.EqualWithin(53.123450, 53.123454, model.E5))
	assert.False(t, model.EqualWithin(53.123450, 53.123455, model.E5))
	assert.True(t, model.EqualWithin(-53.123450, -53.123454, model.E5))
}

func TestParseFillPolicy(t *testing.T) {
	p, err := model.ParseFillPolicy("rings")
	require.NoError(t, err)
	assert.Equal(t, model.FillRings, p)

	p, err = model.ParseFillPolicy("Polygons")
	require.NoError(t, err)
	assert.Equal(t, model.FillPolygons, p)
	assert.Equal(t, "polygons", p.String())

	_, err = model.ParseFillPolicy("holes")
	assert.Error(t, err)

	assert.Equal(t, "FillPolicy(9)", model.FillPolicy(9).String())
}

func TestParseColorKey(t *testing.T) {
	k, err := model.ParseColorKey("feature")
	require.NoError(t, err)
	assert.Equal(t, model.KeyByFeature, k)

	k, err = model.ParseColorKey("RING")
	require.NoError(t, err)
	assert.Equal(t, model.KeyByRing, k)
	assert.Equal(t, "ring", k.String())

	_, err = model.ParseColorKey("tzid")
	assert.Error(t, err)
}

func TestMalformedGeometryError(t *testing.T) {
	err := error(&model.MalformedGeometryError{Feature: 3, Path: "coordinates[0][1]", Reason: "expected a number"})

	assert.True(t, errors.Is(err, model.ErrMalformedGeometry))
	assert.Equal(t, "malformed geometry in feature 3 at coordinates[0][1]: expected a number", err.Error())

	var mge *model.MalformedGeometryError
	require.True(t, errors.As(err, &mge))
	assert.Equal(t, 3, mge.Feature)

	bare := &model.MalformedGeometryError{Feature: -1, Path: "coordinates", Reason: "expected an array"}
	assert.Equal(t, "malformed geometry at coordinates: expected an array", bare.Error())
}
