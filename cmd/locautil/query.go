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

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	bg3data "github.com/RyanMuzzey/bg3-data"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Look up a handle in a localization table",
	ArgsUsage: "[FILE] [HANDLE]",
	Description: strings.Join([]string{
		"Look up a string handle in a .loca file and print the localized",
		"text. The lookup is case-insensitive.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "plain",
			Usage: "strip markup tags from text",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		path := c.Args().Get(0)
		query := c.Args().Get(1)

		l, err := bg3data.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLocautil, err)
		}

		entries, err := l.Search(query)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLocautil, err)
		}
		if len(entries) == 0 {
			return fmt.Errorf("%w: handle not found: %q", ErrLocautil, query)
		}

		for _, e := range entries {
			text := e.Text
			if c.Bool("plain") {
				text = html2text.HTML2Text(text)
			}
			fmt.Fprintf(c.App.Writer, "%s\n%s\n", e.ID, text)
		}
		return nil
	},
}
