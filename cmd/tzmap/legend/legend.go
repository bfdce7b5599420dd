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

package legend

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/tzmap/cmd/tzmap/cli"
	"m4o.io/tzmap/internal/legend"
)

var out io.Writer = os.Stdout

var (
	swatch   = lipgloss.NewStyle().Width(4)
	hexStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	dimStyle = lipgloss.NewStyle().Faint(true)
)

func init() {
	cli.RootCmd.AddCommand(legendCmd)

	flags := legendCmd.Flags()
	flags.BoolP("json", "j", false, "print the legend as JSON")
}

var legendCmd = &cobra.Command{
	Use:   "legend [flags] <legend-file>",
	Short: "Print a color legend written by tzmap",
	Long:  "Print a color legend written by tzmap, one colored swatch per tzid",
	Args:  cli.UsageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := legend.ReadFile(args[0])
		if err != nil {
			return err
		}

		jsonfmt, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}

		if jsonfmt {
			return legend.Write(out, l)
		}

		renderTxt(l)

		return nil
	},
}

func renderTxt(l *legend.Legend) {
	for _, e := range l.Entries() {
		fmt.Fprintf(out, "%s %s %s\n",
			swatch.Background(lipgloss.Color(e.Color)).Render(""),
			hexStyle.Render(e.Color),
			e.TZID)
	}

	fmt.Fprintln(out, dimStyle.Render(humanize.Comma(int64(l.Len()))+" zones"))
}
