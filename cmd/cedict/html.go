// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cedict"
)

func htmlCommand() *cli.Command {
	return &cli.Command{
		Name:      "html",
		Usage:     "render a CC-CEDICT file as HTML pages",
		ArgsUsage: " ",
		Description: "Writes one page per simplified headword and an index page " +
			"linking to them. HTML files already in the output directory are removed.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Usage:   "read the dictionary from `FILE` (.gz and .dz are decompressed)",
				Aliases: []string{"i"},
				Value:   cedict.DefaultInputPath,
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "write pages to `DIR`",
				Aliases: []string{"o"},
				Value:   cedict.DefaultHTMLDir,
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return fmt.Errorf("%w: unexpected arguments: %v", ErrFlagParse, c.Args().Slice())
			}

			d, err := cedict.Open(c.String("input"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCedict, err)
			}
			if err := d.WriteHTML(c.String("output")); err != nil {
				return fmt.Errorf("%w: %w", ErrCedict, err)
			}
			return nil
		},
	}
}
