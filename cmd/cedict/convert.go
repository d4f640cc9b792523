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

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert a CC-CEDICT file to JSON",
		ArgsUsage: " ",
		Description: "Reads the CC-CEDICT file and writes the entries, the simplified " +
			"to traditional index and the traditional headword list as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Usage:   "read the dictionary from `FILE` (.gz and .dz are decompressed)",
				Aliases: []string{"i"},
				Value:   cedict.DefaultInputPath,
			},
			&cli.StringFlag{
				Name:  "entries",
				Usage: "write the entries to `FILE`",
				Value: cedict.DefaultOutputPaths.Entries,
			},
			&cli.StringFlag{
				Name:  "simplified",
				Usage: "write the simplified to traditional index to `FILE`",
				Value: cedict.DefaultOutputPaths.SimplifiedIndex,
			},
			&cli.StringFlag{
				Name:  "traditional",
				Usage: "write the traditional headword list to `FILE`",
				Value: cedict.DefaultOutputPaths.TraditionalList,
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return fmt.Errorf("%w: unexpected arguments: %v", ErrFlagParse, c.Args().Slice())
			}

			_, err := cedict.Convert(c.String("input"), cedict.OutputPaths{
				Entries:         c.String("entries"),
				SimplifiedIndex: c.String("simplified"),
				TraditionalList: c.String("traditional"),
			})
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCedict, err)
			}
			return nil
		},
	}
}
