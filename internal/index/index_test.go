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

package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type word struct {
	key string
	id  int
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	values := []word{
		{key: "zhong1", id: 0},
		{key: "da3 dian4 hua4", id: 1},
		{key: "zhong1", id: 2},
		{key: "guo2", id: 3},
		{key: "zhong1", id: 4},
	}

	tests := []struct {
		name     string
		query    string
		expected []word
	}{
		{
			name:  "single result",
			query: "guo2",
			expected: []word{
				{key: "guo2", id: 3},
			},
		},
		{
			name:  "multiple results keep order",
			query: "zhong1",
			expected: []word{
				{key: "zhong1", id: 0},
				{key: "zhong1", id: 2},
				{key: "zhong1", id: 4},
			},
		},
		{
			name:     "no results",
			query:    "hua4",
			expected: nil,
		},
	}

	index := New(values, func(w word) string { return w.key })
	if want, got := len(values), index.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := index.Search(test.query)
			if diff := cmp.Diff(test.expected, got, cmp.AllowUnexported(word{})); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_empty(t *testing.T) {
	t.Parallel()

	index := New([]string{}, func(s string) string { return s })
	if got := index.Search("foo"); got != nil {
		t.Fatalf("Search; want: nil, got: %v", got)
	}
}
