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
	"fmt"
	"io"
	"slices"

	"github.com/ianlewis/go-cedict/internal/index"
	"github.com/ianlewis/go-cedict/line"
)

// Entry is a dictionary entry.
type Entry = line.Entry

// Dictionary is an in-memory CC-CEDICT dictionary.
type Dictionary struct {
	// entries maps traditional headwords to entries. entryKeys holds the
	// keys in the order they were first added.
	entries   map[string]*Entry
	entryKeys []string

	// simplified maps simplified headwords to traditional headwords.
	simplified     map[string]string
	simplifiedKeys []string

	// traditional holds the traditional headword of every added entry.
	traditional []string

	// pinyin is built on first search and dropped by Add.
	pinyin *index.Index[*Entry]
}

// New returns a new empty Dictionary.
func New() *Dictionary {
	return &Dictionary{
		entries:    map[string]*Entry{},
		simplified: map[string]string{},
	}
}

// Read reads a CC-CEDICT dictionary from r. Comments and lines that are not
// well-formed entries are skipped.
func Read(r io.Reader) (*Dictionary, error) {
	d := New()

	s := line.NewScanner(r, nil)
	for s.Scan() {
		d.Add(s.Entry())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning dictionary: %w", err)
	}

	return d, nil
}

// Add adds an entry to the dictionary. An entry with the same traditional
// headword as an existing entry replaces it. The simplified headword is
// mapped to the entry's traditional headword, replacing any earlier mapping.
func (d *Dictionary) Add(e *Entry) {
	d.traditional = append(d.traditional, e.Traditional)

	if _, ok := d.entries[e.Traditional]; !ok {
		d.entryKeys = append(d.entryKeys, e.Traditional)
	}
	d.entries[e.Traditional] = e

	if _, ok := d.simplified[e.Simplified]; !ok {
		d.simplifiedKeys = append(d.simplifiedKeys, e.Simplified)
	}
	d.simplified[e.Simplified] = e.Traditional

	d.pinyin = nil
}

// Len returns the number of unique traditional headwords.
func (d *Dictionary) Len() int {
	return len(d.entryKeys)
}

// Entry returns the entry for the traditional headword.
func (d *Dictionary) Entry(traditional string) (*Entry, bool) {
	e, ok := d.entries[traditional]
	return e, ok
}

// Entries returns all entries ordered by when their headword was first
// added.
func (d *Dictionary) Entries() []*Entry {
	entries := make([]*Entry, 0, len(d.entryKeys))
	for _, k := range d.entryKeys {
		entries = append(entries, d.entries[k])
	}
	return entries
}

// Traditional returns the traditional headword the simplified headword maps
// to.
func (d *Dictionary) Traditional(simplified string) (string, bool) {
	t, ok := d.simplified[simplified]
	return t, ok
}

// Traditionals returns the traditional headword of every added entry in the
// order they were added, including duplicates.
func (d *Dictionary) Traditionals() []string {
	return slices.Clone(d.traditional)
}
