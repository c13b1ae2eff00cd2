// Copyright 2025 Ryan Muzzey
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

package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	bg3data "github.com/RyanMuzzey/bg3-data"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List localization tables",
	ArgsUsage: "[DIR...]",
	Description: "List entries of all localization tables under the given " +
		"directories, or the default data directories when none are given.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "plain",
			Usage: "strip markup tags from text",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "truncate text to `N` runes (0 for no limit)",
			Value: 60,
		},
	},
	Action: func(c *cli.Context) error {
		dirs := c.Args().Slice()
		if len(dirs) == 0 {
			dirs = c.StringSlice("data-dir")
		}

		var tables []*bg3data.Loca
		var errs []error
		for _, dir := range dirs {
			dirTables, dirErrs := bg3data.OpenAll(dir)
			tables = append(tables, dirTables...)
			errs = append(errs, dirErrs...)
		}
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}

		for _, l := range tables {
			fmt.Fprintf(c.App.Writer, "%s (%d entries)\n", l.Path(), l.Len())

			tbl := table.New("HANDLE", "TEXT").WithWriter(c.App.Writer)
			for _, e := range l.Table().Entries() {
				tbl.AddRow(e.ID, renderText(e.Text, c.Bool("plain"), c.Int("width")))
			}
			tbl.Print()
			fmt.Fprintln(c.App.Writer)
		}

		if len(errs) > 0 {
			return fmt.Errorf("%w: failed to open %d tables", ErrLocautil, len(errs))
		}
		return nil
	},
}

// renderText prepares localization text for terminal display.
func renderText(text string, plain bool, width int) string {
	if plain {
		text = html2text.HTML2Text(text)
	}
	if width > 0 && utf8.RuneCountInString(text) > width {
		runes := []rune(text)
		text = string(runes[:width-1]) + "…"
	}
	return text
}
