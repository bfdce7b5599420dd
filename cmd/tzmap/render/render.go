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

// Package render attaches the rendering action to the tzmap root command.
package render

import (
	"context"
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/tzmap"
	"m4o.io/tzmap/cmd/tzmap/cli"
	"m4o.io/tzmap/internal/config"
	"m4o.io/tzmap/internal/input"
	"m4o.io/tzmap/internal/legend"
	"m4o.io/tzmap/internal/output"
	"m4o.io/tzmap/model"
)

var out io.Writer = os.Stdout

type summary struct {
	Input     string
	Load      tzmap.LoadStats
	Render    tzmap.RenderStats
	Zones     int
	Legend    string
	Image     string
	ImageSize uint64
}

func init() {
	root := cli.RootCmd
	root.Use = "tzmap [flags] <geojson-file>"
	root.Args = cli.UsageArgs(cobra.ExactArgs(1))
	root.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := run(cmd.Context(), cli.Config(), args[0])
		if err != nil {
			return err
		}

		renderTxt(s)

		return nil
	}

	flags := root.Flags()
	flags.Int(config.FlagName(config.KeyHeight), config.DefaultHeight, "image height in pixels; the width follows the data's aspect ratio")
	flags.String(config.FlagName(config.KeyBackground), config.DefaultBackground, "background color as #RRGGBB")
	flags.Var(cli.NewFillPolicyValue(tzmap.DefaultFillPolicy), config.FlagName(config.KeyFillPolicy),
		"rings paints every ring solid, polygons leaves holes empty")
	flags.Var(cli.NewColorKeyValue(tzmap.DefaultColorKey), config.FlagName(config.KeyColorKey),
		"feature colors all rings of a feature alike, ring colors every ring by its position")
	flags.StringP(config.FlagName(config.KeyImage), "o", output.DefaultFile, "image file; .png, .tif, .tiff or .bmp")
	flags.StringP(config.FlagName(config.KeyLegend), "l", legend.DefaultFile, "legend file")
	flags.IntP(config.FlagName(config.KeyCPU), "c", tzmap.DefaultNCpu(), "number of CPUs used to project rings")
	flags.Bool(config.FlagName(config.KeyStrict), false, "fail on malformed geometry instead of skipping the feature")
	flags.BoolP(config.FlagName(config.KeyProgress), "p", false, "show a progress bar while loading")
}

// run loads the GeoJSON at path, writes the legend and then the image.
func run(ctx context.Context, cfg *config.Config, path string) (*summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrIO, err)
	}

	var rc io.ReadCloser = f

	if cfg.Progress {
		if rc, err = cli.WrapInputFile(f, os.Stderr); err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %w", model.ErrIO, err)
		}
	}

	if rc, err = input.Decompress(path, rc); err != nil {
		return nil, err
	}

	data, ls, err := tzmap.Load(ctx, rc, tzmap.WithStrictGeometry(cfg.Strict))
	if cerr := rc.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: %w", model.ErrIO, cerr)
	}

	if err != nil {
		return nil, err
	}

	l := tzmap.BuildLegend(data, cfg.Key)
	if err := legend.WriteFile(cfg.Legend, l); err != nil {
		return nil, err
	}

	renderer := tzmap.NewRenderer(
		tzmap.WithHeight(cfg.Height),
		tzmap.WithBackground(cfg.BackgroundColor),
		tzmap.WithFillPolicy(cfg.Policy),
		tzmap.WithColorKey(cfg.Key),
		tzmap.WithNCpus(cfg.CPU),
	)

	img, rs, err := renderer.Render(ctx, data)
	if err != nil {
		return nil, err
	}

	if err := output.WriteFile(cfg.Image, img); err != nil {
		return nil, err
	}

	s := &summary{
		Input:  path,
		Load:   ls,
		Render: rs,
		Zones:  l.Len(),
		Legend: cfg.Legend,
		Image:  cfg.Image,
	}

	if fi, err := os.Stat(cfg.Image); err == nil {
		s.ImageSize = uint64(fi.Size())
	}

	return s, nil
}

func renderTxt(s *summary) {
	fmt.Fprintf(out, "Input: %s\n", s.Input)
	fmt.Fprintf(out, "Features: %s (%s extracted, %s skipped, %s malformed)\n",
		humanize.Comma(int64(s.Load.Features)),
		humanize.Comma(int64(s.Load.Extracted)),
		humanize.Comma(int64(s.Load.Skipped)),
		humanize.Comma(int64(s.Load.Malformed)))
	fmt.Fprintf(out, "Rings: %s (%s points)\n",
		humanize.Comma(int64(s.Load.Rings)),
		humanize.Comma(int64(s.Load.Points)))
	fmt.Fprintf(out, "Legend: %s zones in %s\n", humanize.Comma(int64(s.Zones)), s.Legend)
	fmt.Fprintf(out, "Image: %dx%d at %s px/unit in %s (%s)\n",
		s.Render.Width, s.Render.Height,
		humanize.FtoaWithDigits(s.Render.Scale, 3),
		s.Image, humanize.Bytes(s.ImageSize))
	fmt.Fprintf(out, "Pixels: %s\n", humanize.Comma(int64(s.Render.Pixels)))
}
