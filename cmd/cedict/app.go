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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrCedict is a parent error for all command errors.
var ErrCedict = errors.New("cedict")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrCedict)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// usageError wraps flag and argument errors so they map to
// ExitCodeFlagParseError.
func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func printVersion(c *cli.Context) error {
	info := version.GetVersionInfo()

	_, err := fmt.Fprintf(c.App.Writer, "%s %s\n\n%s\n", c.App.Name, info.GitVersion, c.App.Copyright)
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrCedict, err)
	}
	return nil
}

func newCedictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Convert CC-CEDICT dictionaries to JSON.",
		Description: strings.Join([]string{
			"CC-CEDICT utility written in Go.",
			"http://github.com/ianlewis/go-cedict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    usageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			convertCommand(),
			lookupCommand(),
			htmlCommand(),
		},
	}
}
