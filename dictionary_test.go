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

package cedict_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cedict"
)

const testDict = `# CC-CEDICT
# Community maintained free Chinese-English dictionary.
中 中 [zhong1] /middle/center/
打電話 打电话 [da3 dian4 hua4] /to make a telephone call/to phone/
not an entry
打電話 打电话 [da3 dian4 hua4 /missing bracket/
中 中 [Zhong1] /China/<abbr>/
`

func TestRead(t *testing.T) {
	t.Parallel()

	d, err := cedict.Read(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	expectedEntries := []*cedict.Entry{
		{
			Traditional: "中",
			Simplified:  "中",
			Pinyin:      []string{"Zhong1"},
			Definitions: []string{"China", "<abbr>"},
		},
		{
			Traditional: "打電話",
			Simplified:  "打电话",
			Pinyin:      []string{"da3", "dian4", "hua4"},
			Definitions: []string{"to make a telephone call", "to phone"},
		},
	}
	if diff := cmp.Diff(expectedEntries, d.Entries()); diff != "" {
		t.Errorf("Entries (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"中", "打電話", "中"}, d.Traditionals()); diff != "" {
		t.Errorf("Traditionals (-want, +got):\n%s", diff)
	}

	if want, got := 2, d.Len(); want != got {
		t.Errorf("Len; want: %d, got: %d", want, got)
	}

	if got, ok := d.Traditional("打电话"); !ok || got != "打電話" {
		t.Errorf("Traditional(%q); want: %q, got: %q (%v)", "打电话", "打電話", got, ok)
	}
	if _, ok := d.Traditional("打電話"); ok {
		t.Errorf("Traditional(%q); want: not found", "打電話")
	}

	e, ok := d.Entry("打電話")
	if !ok {
		t.Fatalf("Entry(%q); want: found", "打電話")
	}
	if diff := cmp.Diff(expectedEntries[1], e); diff != "" {
		t.Errorf("Entry (-want, +got):\n%s", diff)
	}
}

func TestRead_empty(t *testing.T) {
	t.Parallel()

	d, err := cedict.Read(strings.NewReader("# CC-CEDICT\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if want, got := 0, d.Len(); want != got {
		t.Errorf("Len; want: %d, got: %d", want, got)
	}
	if got := d.Traditionals(); len(got) != 0 {
		t.Errorf("Traditionals; want: empty, got: %v", got)
	}
	if _, ok := d.Traditional("中"); ok {
		t.Errorf("Traditional; want: not found")
	}
}

func TestDictionary_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []*cedict.Entry

		expectedEntries     []*cedict.Entry
		expectedSimplified  map[string]string
		expectedTraditional []string
	}{
		{
			name: "duplicate traditional last wins",
			entries: []*cedict.Entry{
				{Traditional: "A", Simplified: "a", Definitions: []string{"first"}},
				{Traditional: "B", Simplified: "b", Definitions: []string{"other"}},
				{Traditional: "A", Simplified: "c", Definitions: []string{"second"}},
			},
			expectedEntries: []*cedict.Entry{
				{Traditional: "A", Simplified: "c", Definitions: []string{"second"}},
				{Traditional: "B", Simplified: "b", Definitions: []string{"other"}},
			},
			expectedSimplified: map[string]string{
				"a": "A",
				"b": "B",
				"c": "A",
			},
			expectedTraditional: []string{"A", "B", "A"},
		},
		{
			name: "duplicate simplified last wins",
			entries: []*cedict.Entry{
				{Traditional: "髮", Simplified: "发", Definitions: []string{"hair"}},
				{Traditional: "發", Simplified: "发", Definitions: []string{"to send out"}},
			},
			expectedEntries: []*cedict.Entry{
				{Traditional: "髮", Simplified: "发", Definitions: []string{"hair"}},
				{Traditional: "發", Simplified: "发", Definitions: []string{"to send out"}},
			},
			expectedSimplified: map[string]string{
				"发": "發",
			},
			expectedTraditional: []string{"髮", "發"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d := cedict.New()
			for _, e := range test.entries {
				d.Add(e)
			}

			if diff := cmp.Diff(test.expectedEntries, d.Entries()); diff != "" {
				t.Errorf("Entries (-want, +got):\n%s", diff)
			}
			for s, want := range test.expectedSimplified {
				if got, _ := d.Traditional(s); want != got {
					t.Errorf("Traditional(%q); want: %q, got: %q", s, want, got)
				}
			}
			if diff := cmp.Diff(test.expectedTraditional, d.Traditionals()); diff != "" {
				t.Errorf("Traditionals (-want, +got):\n%s", diff)
			}
		})
	}
}
