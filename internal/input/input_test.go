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

package input_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	"m4o.io/tzmap/internal/input"
	"m4o.io/tzmap/model"
)

const payload = `{"type":"FeatureCollection","features":[]}`

func compress(t *testing.T, c input.Compression, data string) []byte {
	t.Helper()

	var buf bytes.Buffer

	var w io.WriteCloser

	switch c {
	case input.Raw:
		return []byte(data)
	case input.Gzip:
		w = gzip.NewWriter(&buf)
	case input.Zstd:
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = zw
	case input.LZ4:
		w = lz4.NewWriter(&buf)
	case input.XZ:
		xw, err := xz.NewWriter(&buf)
		require.NoError(t, err)
		w = xw
	case input.LZMA:
		lw, err := lzma.NewWriter(&buf)
		require.NoError(t, err)
		w = lw
	default:
		t.Fatalf("unexpected compression %v", c)
	}

	_, err := io.WriteString(w, data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestCompressionFor(t *testing.T) {
	testCases := []struct {
		name string
		want input.Compression
	}{
		{"zones.geojson", input.Raw},
		{"zones.json", input.Raw},
		{"zones", input.Raw},
		{"zones.geojson.gz", input.Gzip},
		{"ZONES.GEOJSON.GZ", input.Gzip},
		{"zones.geojson.zst", input.Zstd},
		{"zones.geojson.lz4", input.LZ4},
		{"zones.geojson.xz", input.XZ},
		{"zones.geojson.lzma", input.LZMA},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, input.CompressionFor(tc.name))
		})
	}
}

func TestOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, c := range []input.Compression{input.Raw, input.Gzip, input.Zstd, input.LZ4, input.XZ, input.LZMA} {
		t.Run(c.String(), func(t *testing.T) {
			name := "zones.geojson"
			if c != input.Raw {
				name += "." + c.String()
			}

			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, compress(t, c, payload), 0o600))

			rc, err := input.Open(path)
			require.NoError(t, err)

			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())

			assert.Equal(t, payload, string(got))
		})
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := input.Open(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.ErrorIs(t, err, model.ErrIO)
}

func TestNewReaderCorrupt(t *testing.T) {
	_, err := input.NewReader(input.Gzip, strings.NewReader("not gzip at all"))
	assert.ErrorIs(t, err, model.ErrIO)
}

func TestNewReaderUnknown(t *testing.T) {
	_, err := input.NewReader(input.Compression(42), strings.NewReader(""))
	assert.ErrorIs(t, err, input.ErrUnknownCompressionType)
	assert.Equal(t, "Compression(42)", input.Compression(42).String())
}
