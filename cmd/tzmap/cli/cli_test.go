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

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/tzmap/internal/config"
	"m4o.io/tzmap/model"
)

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"success", nil, ExitOK},
		{"usage", fmt.Errorf("%w: missing file", ErrUsage), ExitFailure},
		{"io", fmt.Errorf("%w: no such file", model.ErrIO), ExitFailure},
		{"other", errors.New("boom"), ExitFailure},
		{"parse", fmt.Errorf("load: %w", model.ErrParse), ExitParse},
		{"no geometry", model.ErrNoGeometry, ExitNoGeometry},
		{"degenerate", fmt.Errorf("%w: zero height", model.ErrDegenerateBounds), ExitDegenerate},
		{"malformed", &model.MalformedGeometryError{Feature: 3, Path: "coordinates", Reason: "bad"}, ExitMalformed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, ExitCode(tc.err))
		})
	}
}

func TestEnumValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(NewFillPolicyValue(model.FillRings), "fill-policy", "")
	fs.Var(NewColorKeyValue(model.KeyByFeature), "color-key", "")

	policy := fs.Lookup("fill-policy")
	key := fs.Lookup("color-key")

	assert.Equal(t, "rings", policy.Value.String())
	assert.Equal(t, "policy", policy.Value.Type())
	assert.Equal(t, "feature", key.Value.String())
	assert.Equal(t, "key", key.Value.Type())

	require.NoError(t, fs.Parse([]string{"--fill-policy", "POLYGONS", "--color-key", "ring"}))
	assert.Equal(t, "polygons", policy.Value.String())
	assert.Equal(t, "ring", key.Value.String())

	assert.Error(t, fs.Parse([]string{"--color-key", "tzid"}))
	assert.Equal(t, "ring", key.Value.String())
}

func TestEnumFlagsResolveThroughConfig(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(NewFillPolicyValue(model.FillRings), config.FlagName(config.KeyFillPolicy), "")
	fs.Var(NewColorKeyValue(model.KeyByFeature), config.FlagName(config.KeyColorKey), "")

	require.NoError(t, fs.Parse([]string{"--fill-policy", "Polygons", "--color-key", "RING"}))

	c, err := config.Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, model.FillPolygons, c.Policy)
	assert.Equal(t, model.KeyByRing, c.Key)
}

func TestUsageArgs(t *testing.T) {
	validate := UsageArgs(cobra.ExactArgs(1))

	assert.NoError(t, validate(&cobra.Command{}, []string{"a"}))
	assert.ErrorIs(t, validate(&cobra.Command{}, nil), ErrUsage)
}

func TestWrapInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.geojson")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)

	var bar bytes.Buffer

	rc, err := WrapInputFile(f, &bar)
	require.NoError(t, err)

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	assert.Equal(t, "0123456789", string(got))
	assert.Contains(t, bar.String(), "\033[2K\r")

	in, err := WrapInputFile(os.Stdin, &bar)
	require.NoError(t, err)
	assert.Equal(t, os.Stdin, in)
}
