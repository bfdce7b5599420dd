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

// Package input opens GeoJSON inputs, decompressing them on the fly when the
// file name carries a known compression suffix.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	"m4o.io/tzmap/model"
)

var ErrUnknownCompressionType = errors.New("unknown input compression type")

// Compression identifies the compression of an input stream.
type Compression int

const (
	Raw Compression = iota
	Gzip
	Zstd
	LZ4
	XZ
	LZMA
)

var suffixes = map[string]Compression{
	".gz":   Gzip,
	".gzip": Gzip,
	".zst":  Zstd,
	".zstd": Zstd,
	".lz4":  LZ4,
	".xz":   XZ,
	".lzma": LZMA,
}

func (c Compression) String() string {
	switch c {
	case Raw:
		return "raw"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	case XZ:
		return "xz"
	case LZMA:
		return "lzma"
	default:
		return "Compression(" + strconv.Itoa(int(c)) + ")"
	}
}

// CompressionFor picks the compression from the suffix of name. Names
// without a known suffix are Raw.
func CompressionFor(name string) Compression {
	if c, ok := suffixes[strings.ToLower(filepath.Ext(name))]; ok {
		return c
	}

	return Raw
}

// NewReader wraps r with a decompressor for c. Closing the returned reader
// releases the decompressor but never closes r.
func NewReader(c Compression, r io.Reader) (io.ReadCloser, error) {
	var factory func(r io.Reader) (io.ReadCloser, error)

	switch c {
	case Raw:
		return io.NopCloser(r), nil
	case Gzip:
		factory = func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		}
	case Zstd:
		factory = func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}

			return d.IOReadCloser(), nil
		}
	case LZ4:
		factory = func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		}
	case XZ:
		factory = func(r io.Reader) (io.ReadCloser, error) {
			d, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}

			return io.NopCloser(d), nil
		}
	case LZMA:
		factory = func(r io.Reader) (io.ReadCloser, error) {
			d, err := lzma.NewReader(r)
			if err != nil {
				return nil, err
			}

			return io.NopCloser(d), nil
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompressionType, c)
	}

	rdr, err := factory(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s decompressor: %w", model.ErrIO, c, err)
	}

	return rdr, nil
}

// Decompress wraps rc according to the suffix of name. Closing the returned
// reader closes rc as well.
func Decompress(name string, rc io.ReadCloser) (io.ReadCloser, error) {
	c := CompressionFor(name)
	if c == Raw {
		return rc, nil
	}

	d, err := NewReader(c, rc)
	if err != nil {
		rc.Close()
		return nil, err
	}

	return &stacked{Reader: d, closers: []io.Closer{d, rc}}, nil
}

// Open opens the file at path and decompresses it when its suffix asks for
// it.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrIO, err)
	}

	return Decompress(path, f)
}

// stacked closes a decompressor and then its source.
type stacked struct {
	io.Reader
	closers []io.Closer
}

func (s *stacked) Close() error {
	var errs []error

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
