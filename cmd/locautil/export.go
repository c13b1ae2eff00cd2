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
	"strings"

	"github.com/urfave/cli/v2"

	bg3data "github.com/RyanMuzzey/bg3-data"
)

var exportCommand = &cli.Command{
	Name:      "export",
	Usage:     "Export a localization table as JSON",
	ArgsUsage: "[FILE]",
	Description: strings.Join([]string{
		"Decode a .loca file and write it out as a JSON object mapping",
		"string handles to localized text.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write JSON to `FILE` ('-' for stdout)",
			Aliases: []string{"o"},
		},
		&cli.StringFlag{
			Name:  "indent",
			Usage: "indentation for each JSON level",
			Value: "  ",
		},
		&cli.BoolFlag{
			Name:  "escape-html",
			Usage: "escape <, >, and & in text values",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		path := c.Args().Get(0)

		l, err := bg3data.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLocautil, err)
		}

		options := &bg3data.ExportOptions{
			Indent:     c.String("indent"),
			EscapeHTML: c.Bool("escape-html"),
		}

		output := c.String("output")
		if output == "" {
			output = jsonPath(path)
		}
		if output == "-" {
			b, err := bg3data.ExportJSON(l.Table(), options)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLocautil, err)
			}
			_, err = c.App.Writer.Write(b)
			if err != nil {
				return fmt.Errorf("%w: writing output: %w", ErrLocautil, err)
			}
			return nil
		}

		if err := bg3data.WriteFile(output, l.Table(), options); err != nil {
			return fmt.Errorf("%w: %w", ErrLocautil, err)
		}
		return nil
	},
}

// jsonPath derives the default output path from the input path.
func jsonPath(path string) string {
	lower := strings.ToLower(path)
	for _, ext := range []string{".loca.gz", ".loca.dz", ".loca"} {
		if strings.HasSuffix(lower, ext) {
			return path[:len(path)-len(ext)] + ".json"
		}
	}
	return path + ".json"
}
