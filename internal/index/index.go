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

// Package index implements a generic sorted in-memory index.
package index

import (
	"slices"
	"strings"
)

// Index is a sorted array index over values of type V. Values are ordered by
// a string key. Values with equal keys keep the order they were given in.
type Index[V any] struct {
	keys   []string
	values []V
}

type item[V any] struct {
	key   string
	value V
}

// New creates an index from the given values. key returns the sort key of a
// value.
func New[V any](values []V, key func(V) string) *Index[V] {
	items := make([]item[V], len(values))
	for i, v := range values {
		items[i] = item[V]{key: key(v), value: v}
	}
	slices.SortStableFunc(items, func(a, b item[V]) int {
		return strings.Compare(a.key, b.key)
	})

	idx := &Index[V]{
		keys:   make([]string, len(items)),
		values: make([]V, len(items)),
	}
	for i, it := range items {
		idx.keys[i] = it.key
		idx.values[i] = it.value
	}
	return idx
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.keys)
}

// Search performs a binary search over the index and returns all values whose
// key equals query.
func (idx *Index[V]) Search(query string) []V {
	i, found := slices.BinarySearch(idx.keys, query)
	if !found {
		return nil
	}

	j := i + 1
	for j < len(idx.keys) && idx.keys[j] == query {
		j++
	}
	return idx.values[i:j]
}
