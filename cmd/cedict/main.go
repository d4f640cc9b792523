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
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run runs the application with the given arguments and returns the exit
// code.
func run(args []string, stdout, stderr io.Writer) int {
	app := newCedictApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(args); err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, ErrFlagParse) {
			return ExitCodeFlagParseError
		}
		return ExitCodeUnknownError
	}
	return ExitCodeSuccess
}
