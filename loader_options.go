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
	"log/slog"
)

// loaderOptions provides optional configuration parameters for Load.
type loaderOptions struct {
	strict bool         // fail on the first malformed geometry
	logger *slog.Logger // receives skip warnings, slog.Default() when nil
}

// LoaderOption configures how GeoJSON is loaded.
type LoaderOption func(*loaderOptions)

// WithStrictGeometry makes Load fail with a *model.MalformedGeometryError
// instead of skipping features whose coordinates are malformed.
func WithStrictGeometry(strict bool) LoaderOption {
	return func(o *loaderOptions) {
		o.strict = strict
	}
}

// WithLogger lets you set the logger used for skipped features.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(o *loaderOptions) {
		o.logger = l
	}
}

// defaultLoaderConfig provides a default configuration for Load.
var defaultLoaderConfig = loaderOptions{}
