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

// Package legend holds the tzid to color mapping written next to a rendered
// image, and its JSON form:
//
//	{
//	  "color_mapping": {
//	    "Europe/Paris": "#550000"
//	  }
//	}
package legend

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/goccy/go-json"

	"m4o.io/tzmap/internal/palette"
	"m4o.io/tzmap/model"
)

// DefaultFile is where the CLI writes the legend unless told otherwise.
const DefaultFile = "timezone_colors.json"

const mappingKey = "color_mapping"

// Entry is one tzid and its "#RRGGBB" color.
type Entry struct {
	TZID  string
	Color string
}

// RGBA parses the entry color.
func (e Entry) RGBA() (color.RGBA, error) {
	return palette.ParseHex(e.Color)
}

// Legend is an insertion-ordered tzid to color mapping. Setting a tzid that
// is already present replaces its color and keeps its position.
type Legend struct {
	entries []Entry
	index   map[string]int
}

// New creates an empty legend.
func New() *Legend {
	return &Legend{index: make(map[string]int)}
}

// Set records c as the color of tzid.
func (l *Legend) Set(tzid string, c color.RGBA) {
	l.set(tzid, palette.Hex(c))
}

func (l *Legend) set(tzid, hex string) {
	if l.index == nil {
		l.index = make(map[string]int)
	}

	if i, ok := l.index[tzid]; ok {
		l.entries[i].Color = hex
		return
	}

	l.index[tzid] = len(l.entries)
	l.entries = append(l.entries, Entry{TZID: tzid, Color: hex})
}

// Lookup returns the color recorded for tzid.
func (l *Legend) Lookup(tzid string) (string, bool) {
	i, ok := l.index[tzid]
	if !ok {
		return "", false
	}

	return l.entries[i].Color, true
}

// Entries returns a copy of the entries in order.
func (l *Legend) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)

	return out
}

// Len is the number of distinct tzids.
func (l *Legend) Len() int {
	return len(l.entries)
}

// writeString appends s as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer

	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return err
	}

	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))

	return nil
}

// UnmarshalJSON reads a {"color_mapping": {...}} object, keeping the order
// of the mapping. Other top level members are ignored.
func (l *Legend) UnmarshalJSON(data []byte) error {
	*l = Legend{index: make(map[string]int)}

	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return err
	}

	found := false

	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return err
		}

		if key != mappingKey {
			var skip any
			if err := dec.Decode(&skip); err != nil {
				return fmt.Errorf("%w: %w", model.ErrParse, err)
			}

			continue
		}

		found = true

		if err := l.readMapping(dec); err != nil {
			return err
		}
	}

	if !found {
		return fmt.Errorf("%w: legend has no %q object", model.ErrParse, mappingKey)
	}

	return nil
}

func (l *Legend) readMapping(dec *json.Decoder) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}

	for dec.More() {
		tzid, err := stringToken(dec)
		if err != nil {
			return err
		}

		hex, err := stringToken(dec)
		if err != nil {
			return err
		}

		c, err := palette.ParseHex(hex)
		if err != nil {
			return fmt.Errorf("%w: color of %q: %w", model.ErrParse, tzid, err)
		}

		l.set(tzid, palette.Hex(c))
	}

	return expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrParse, err)
	}

	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", model.ErrParse, want, tok)
	}

	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrParse, err)
	}

	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected a string, got %v", model.ErrParse, tok)
	}

	return s, nil
}

// Write writes the legend as pretty printed JSON with two space indentation
// and a trailing newline.
func Write(w io.Writer, l *Legend) error {
	var buf bytes.Buffer

	buf.WriteString("{\n  \"" + mappingKey + "\": {")

	for i, e := range l.entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteString("\n    ")

		if err := writeString(&buf, e.TZID); err != nil {
			return err
		}

		buf.WriteString(": ")

		if err := writeString(&buf, e.Color); err != nil {
			return err
		}
	}

	if len(l.entries) > 0 {
		buf.WriteString("\n  ")
	}

	buf.WriteString("}\n}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", model.ErrIO, err)
	}

	return nil
}

// WriteFile writes the legend to path, replacing any existing file.
func WriteFile(path string, l *Legend) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrIO, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", model.ErrIO, cerr)
		}
	}()

	return Write(f, l)
}

// Read parses a legend previously produced by Write.
func Read(r io.Reader) (*Legend, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrIO, err)
	}

	l := New()
	if err := l.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	return l, nil
}

// ReadFile parses the legend stored at path.
func ReadFile(path string) (*Legend, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrIO, err)
	}
	defer f.Close()

	return Read(f)
}
