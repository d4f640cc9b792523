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

// Package testutil implements helpers for building test dictionaries.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-cedict/line"
)

// Compression is the compression used for a test dictionary file.
type Compression int

const (
	// NoCompression writes plain text.
	NoCompression Compression = iota

	// GzipCompression compresses the file with gzip.
	GzipCompression

	// DictZipCompression compresses the file with dictzip.
	DictZipCompression
)

// MakeFileOptions are options for MakeTempFile.
type MakeFileOptions struct {
	// Name is the file name. Defaults to 'cedict_ts.u8' with '.gz' or '.dz'
	// appended when compressed.
	Name string

	// Compression is the file compression.
	Compression Compression
}

// GetName returns the file name for the options.
func (o *MakeFileOptions) GetName() string {
	if o != nil && o.Name != "" {
		return o.Name
	}
	name := "cedict_ts.u8"
	if o != nil {
		switch o.Compression {
		case GzipCompression:
			name += ".gz"
		case DictZipCompression:
			name += ".dz"
		case NoCompression:
		}
	}
	return name
}

// MakeDict creates CC-CEDICT text with the given header comments followed by
// the entries.
func MakeDict(header []string, entries []*line.Entry) string {
	var b strings.Builder
	for _, h := range header {
		b.WriteString(line.CommentPrefix)
		b.WriteString(" ")
		b.WriteString(h)
		b.WriteString("\n")
	}
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}

// MakeTempFile writes data to a file in a temporary directory and returns the
// file path. The directory is removed when the test finishes.
func MakeTempFile(t *testing.T, data string, opts *MakeFileOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeFileOptions{}
	}

	path := filepath.Join(t.TempDir(), opts.GetName())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch opts.Compression {
	case GzipCompression:
		z := gzip.NewWriter(f)
		if _, err := z.Write([]byte(data)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZipCompression:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write([]byte(data)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.WriteString(data); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}
