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
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"m4o.io/tzmap/internal/config"
	"m4o.io/tzmap/model"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFailure    = 1 // usage errors and I/O failures
	ExitParse      = 2
	ExitNoGeometry = 3
	ExitDegenerate = 4
	ExitMalformed  = 5
)

const (
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	defaultLogLevel = "warn"
)

var ErrUsage = errors.New("usage error")

// current holds the configuration resolved before the command runs.
var current *config.Config

// RootCmd is the tzmap command. Subcommands and the rendering action attach
// themselves to it from their init functions.
var RootCmd = &cobra.Command{
	Use:   "tzmap",
	Short: "Rasterize GeoJSON polygons into a flat-color map",
	Long: `Rasterize the Polygon and MultiPolygon features of a GeoJSON file into a
flat-color image, one palette color per feature, and write a legend that maps
each feature's tzid to its color.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		file, err := cmd.Flags().GetString(flagConfig)
		if err != nil {
			return err
		}

		c, err := config.Load(file, cmd.Flags())
		if err != nil {
			return err
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.Level})))

		current = c

		return nil
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String(flagConfig, "", "configuration file (default ./tzmap.yaml when present)")
	flags.String(flagLogLevel, defaultLogLevel, "log level: debug, info, warn or error")

	RootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})
}

// Config is the configuration resolved for the running command.
func Config() *config.Config {
	return current
}

// UsageArgs marks argument validation failures as usage errors.
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}

		return nil
	}
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, model.ErrMalformedGeometry):
		return ExitMalformed
	case errors.Is(err, model.ErrParse):
		return ExitParse
	case errors.Is(err, model.ErrNoGeometry):
		return ExitNoGeometry
	case errors.Is(err, model.ErrDegenerateBounds):
		return ExitDegenerate
	default:
		return ExitFailure
	}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := RootCmd.Execute()
	if err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprintf(os.Stderr, "%v\n\n%s", err, RootCmd.UsageString())
		} else {
			slog.Error("tzmap failed", "error", err)
		}
	}

	return ExitCode(err)
}
