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

// Package output encodes rendered canvases to image files.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"m4o.io/tzmap/model"
)

// DefaultFile is where the CLI writes the image unless told otherwise.
const DefaultFile = "output.png"

var ErrUnknownImageFormat = errors.New("unknown image format")

// Encoder writes an image in one file format.
type Encoder interface {
	// Format is the short name of the format, e.g. "png".
	Format() string

	// Encode writes m to w.
	Encode(w io.Writer, m image.Image) error
}

type pngEncoder struct{}

func (pngEncoder) Format() string { return "png" }

func (pngEncoder) Encode(w io.Writer, m image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, m)
}

type tiffEncoder struct{}

func (tiffEncoder) Format() string { return "tiff" }

func (tiffEncoder) Encode(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

type bmpEncoder struct{}

func (bmpEncoder) Format() string { return "bmp" }

func (bmpEncoder) Encode(w io.Writer, m image.Image) error {
	return bmp.Encode(w, m)
}

var encoders = map[string]Encoder{
	".png":  pngEncoder{},
	".tif":  tiffEncoder{},
	".tiff": tiffEncoder{},
	".bmp":  bmpEncoder{},
}

// EncoderFor selects the encoder from the suffix of name.
func EncoderFor(name string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(name))

	if e, ok := encoders[ext]; ok {
		return e, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownImageFormat, ext)
}

// WriteFile encodes m to path in the format its suffix names.
func WriteFile(path string, m image.Image) (err error) {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrIO, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", model.ErrIO, cerr)
		}
	}()

	if err := enc.Encode(f, m); err != nil {
		return fmt.Errorf("%w: encode %s: %w", model.ErrIO, enc.Format(), err)
	}

	return nil
}
