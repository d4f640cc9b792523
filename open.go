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

package cedict

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// DefaultInputPath is the conventional name of the CC-CEDICT source file.
const DefaultInputPath = "cedict_ts.u8"

// OutputPaths are the paths of the files written by a conversion.
type OutputPaths struct {
	// Entries is the path of the entries JSON file.
	Entries string

	// SimplifiedIndex is the path of the simplified to traditional JSON
	// file.
	SimplifiedIndex string

	// TraditionalList is the path of the traditional headword list JSON
	// file.
	TraditionalList string
}

// DefaultOutputPaths are the default output file paths.
var DefaultOutputPaths = OutputPaths{
	Entries:         "cedict2.json",
	SimplifiedIndex: "simplified_to_traditional.json",
	TraditionalList: "traditional_list.json",
}

// Open reads the CC-CEDICT dictionary at path. Files ending in .gz are
// decompressed with gzip and files ending in .dz with dictzip.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		r = io.NewSectionReader(z, 0, math.MaxInt64)
	}

	d, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// WriteFiles writes the entries, simplified index and traditional list to
// the given paths. Each file is created or truncated, written and closed
// before the next one is opened.
func (d *Dictionary) WriteFiles(paths OutputPaths) error {
	outputs := []struct {
		path  string
		write func(io.Writer) error
	}{
		{paths.Entries, d.WriteEntries},
		{paths.SimplifiedIndex, d.WriteSimplifiedIndex},
		{paths.TraditionalList, d.WriteTraditionalList},
	}

	for _, o := range outputs {
		if err := writeFile(o.path, o.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", path, err)
	}
	return nil
}

// Convert reads the dictionary at input and writes the JSON files to paths.
// It returns the dictionary that was written.
func Convert(input string, paths OutputPaths) (*Dictionary, error) {
	d, err := Open(input)
	if err != nil {
		return nil, err
	}
	if err := d.WriteFiles(paths); err != nil {
		return nil, err
	}
	return d, nil
}
