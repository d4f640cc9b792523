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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cedict"
)

func lookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "look up words in a CC-CEDICT file",
		ArgsUsage: "QUERY...",
		Description: "Prints entries whose traditional headword, simplified headword " +
			"or pinyin matches each query.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Usage:   "read the dictionary from `FILE` (.gz and .dz are decompressed)",
				Aliases: []string{"i"},
				Value:   cedict.DefaultInputPath,
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: missing query", ErrFlagParse)
			}

			d, err := cedict.Open(c.String("input"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCedict, err)
			}

			for _, query := range c.Args().Slice() {
				entries, err := d.Search(query)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrCedict, err)
				}

				if len(entries) == 0 {
					fmt.Fprintf(c.App.ErrWriter, "%s: no entries found\n", query)
					continue
				}

				tbl := table.New("Traditional", "Simplified", "Pinyin", "Definitions").
					WithWriter(c.App.Writer)
				for _, e := range entries {
					tbl.AddRow(
						e.Traditional,
						e.Simplified,
						strings.Join(e.Pinyin, " "),
						strings.Join(e.Definitions, "; "),
					)
				}
				tbl.Print()
			}

			return nil
		},
	}
}
