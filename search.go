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
	"strings"

	"github.com/ianlewis/go-cedict/internal/folding"
	"github.com/ianlewis/go-cedict/internal/index"
)

// Search returns the entries matching query. Matches are returned in this
// order, without duplicates:
//  1. The entry whose traditional headword is query.
//  2. The entry whose traditional headword the simplified headword query
//     maps to.
//  3. Entries whose pinyin equals query after folding whitespace and case.
func (d *Dictionary) Search(query string) ([]*Entry, error) {
	var result []*Entry
	seen := map[*Entry]bool{}
	add := func(e *Entry) {
		if !seen[e] {
			seen[e] = true
			result = append(result, e)
		}
	}

	if e, ok := d.entries[query]; ok {
		add(e)
	}
	if t, ok := d.simplified[query]; ok {
		if e, ok := d.entries[t]; ok {
			add(e)
		}
	}

	folded, err := folding.PinyinString(query)
	if err != nil {
		return nil, fmt.Errorf("folding query %q: %w", query, err)
	}
	if folded == "" {
		return result, nil
	}

	pinyin, err := d.pinyinIndex()
	if err != nil {
		return nil, err
	}
	for _, e := range pinyin.Search(folded) {
		add(e)
	}

	return result, nil
}

// pinyinIndex returns the index of entries by folded pinyin.
func (d *Dictionary) pinyinIndex() (*index.Index[*Entry], error) {
	if d.pinyin != nil {
		return d.pinyin, nil
	}

	entries := d.Entries()
	keys := make(map[*Entry]string, len(entries))
	for _, e := range entries {
		k, err := folding.PinyinString(strings.Join(e.Pinyin, " "))
		if err != nil {
			return nil, fmt.Errorf("folding pinyin of %q: %w", e.Traditional, err)
		}
		keys[e] = k
	}

	d.pinyin = index.New(entries, func(e *Entry) string {
		return keys[e]
	})
	return d.pinyin, nil
}
