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

package tzmap

import (
	"image/color"
	"runtime"

	"m4o.io/tzmap/model"
)

const (
	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600

	DefaultFillPolicy = model.FillRings
	DefaultColorKey   = model.KeyByFeature
)

// DefaultBackground is the neutral off-white the canvas is cleared to.
var DefaultBackground = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}

// DefaultNCpu provides the default number of CPUs.
func DefaultNCpu() int {
	return max(runtime.GOMAXPROCS(-1)-1, 1)
}

// rendererOptions provides optional configuration parameters for Renderer
// construction.
type rendererOptions struct {
	height     int
	background color.RGBA
	policy     model.FillPolicy
	key        model.ColorKey
	nCPU       int // the number of CPUs used to project rings
}

// RendererOption configures how we set up the renderer.
type RendererOption func(*rendererOptions)

// WithHeight lets you set the canvas height; the width follows from the
// aspect ratio of the data.
func WithHeight(h int) RendererOption {
	return func(o *rendererOptions) {
		o.height = h
	}
}

// WithBackground lets you set the color the canvas is cleared to.
func WithBackground(c color.RGBA) RendererOption {
	return func(o *rendererOptions) {
		o.background = c
	}
}

// WithFillPolicy decides whether holes are painted over or subtracted.
func WithFillPolicy(p model.FillPolicy) RendererOption {
	return func(o *rendererOptions) {
		o.policy = p
	}
}

// WithColorKey decides whether rings are colored by feature or by their own
// position.
func WithColorKey(k model.ColorKey) RendererOption {
	return func(o *rendererOptions) {
		o.key = k
	}
}

// WithNCpus lets you set the number of CPUs to use for ring projection.
func WithNCpus(n int) RendererOption {
	return func(o *rendererOptions) {
		o.nCPU = n
	}
}

// defaultRendererConfig provides a default configuration for renderers.
var defaultRendererConfig = rendererOptions{
	height:     DefaultHeight,
	background: DefaultBackground,
	policy:     DefaultFillPolicy,
	key:        DefaultColorKey,
	nCPU:       DefaultNCpu(),
}
