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

package line_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cedict/line"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string

		expected *line.Entry
		ok       bool
	}{
		{
			name: "basic entry",
			line: "打電話 打电话 [da3 dian4 hua4] /to make a telephone call/to phone/",
			expected: &line.Entry{
				Traditional: "打電話",
				Simplified:  "打电话",
				Pinyin:      []string{"da3", "dian4", "hua4"},
				Definitions: []string{"to make a telephone call", "to phone"},
			},
			ok: true,
		},
		{
			name: "comment",
			line: "# CC-CEDICT",
		},
		{
			name: "comment shaped like an entry",
			line: "#A B [a1] /x/",
		},
		{
			name: "empty line",
			line: "",
		},
		{
			name: "missing closing bracket",
			line: "打電話 打电话 [da3 dian4 hua4 /to make a telephone call/",
		},
		{
			name: "missing trailing slash",
			line: "中 中 [zhong1] /middle",
		},
		{
			name: "missing simplified",
			line: "中 [zhong1] /middle/",
		},
		{
			name: "double space between headwords",
			line: "中  中 [zhong1] /middle/",
		},
		{
			name: "ideographic space in headword",
			line: "中　國 中国 [zhong1 guo2] /China/",
		},
		{
			name: "empty definition block",
			line: "中 中 [zhong1] //",
		},
		{
			name: "empty definitions kept",
			line: "中 中 [zhong1] /middle//center/",
			expected: &line.Entry{
				Traditional: "中",
				Simplified:  "中",
				Pinyin:      []string{"zhong1"},
				Definitions: []string{"middle", "", "center"},
			},
			ok: true,
		},
		{
			name: "text after last slash ignored",
			line: "中 中 [zhong1] /middle/ trailing",
			expected: &line.Entry{
				Traditional: "中",
				Simplified:  "中",
				Pinyin:      []string{"zhong1"},
				Definitions: []string{"middle"},
			},
			ok: true,
		},
		{
			name: "carriage return after last slash",
			line: "中 中 [zhong1] /middle/\r",
			expected: &line.Entry{
				Traditional: "中",
				Simplified:  "中",
				Pinyin:      []string{"zhong1"},
				Definitions: []string{"middle"},
			},
			ok: true,
		},
		{
			name: "pinyin whitespace runs",
			line: "中國 中国 [ Zhong1 \t guo2 ] /China/",
			expected: &line.Entry{
				Traditional: "中國",
				Simplified:  "中国",
				Pinyin:      []string{"Zhong1", "guo2"},
				Definitions: []string{"China"},
			},
			ok: true,
		},
		{
			name: "blank pinyin",
			line: "〇 〇 [ ] /zero/",
			expected: &line.Entry{
				Traditional: "〇",
				Simplified:  "〇",
				Pinyin:      []string{},
				Definitions: []string{"zero"},
			},
			ok: true,
		},
		{
			name: "pinyin information separator",
			line: "中國 中国 [zhong1\x1cguo2\x1fren2] /Chinese person/",
			expected: &line.Entry{
				Traditional: "中國",
				Simplified:  "中国",
				Pinyin:      []string{"zhong1", "guo2", "ren2"},
				Definitions: []string{"Chinese person"},
			},
			ok: true,
		},
		{
			name: "pinyin no-break and ideographic space",
			line: "中國 中国 [zhong1\u00a0guo2\u3000ren2] /Chinese person/",
			expected: &line.Entry{
				Traditional: "中國",
				Simplified:  "中国",
				Pinyin:      []string{"zhong1", "guo2", "ren2"},
				Definitions: []string{"Chinese person"},
			},
			ok: true,
		},
		{
			name: "information separator in headword",
			line: "中\x1c國 中国 [zhong1 guo2] /China/",
		},
		{
			name: "brackets inside definitions",
			line: "電 电 [dian4] /electric/see also 電話|电话[dian4 hua4]/",
			expected: &line.Entry{
				Traditional: "電",
				Simplified:  "电",
				Pinyin:      []string{"dian4"},
				Definitions: []string{"electric", "see also 電話|电话[dian4 hua4]"},
			},
			ok: true,
		},
		{
			name: "shortest pinyin group",
			line: "A B [a] b] /x/",
			expected: &line.Entry{
				Traditional: "A",
				Simplified:  "B",
				Pinyin:      []string{"a]", "b"},
				Definitions: []string{"x"},
			},
			ok: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			e, ok := line.Parse(test.line)
			if want, got := test.ok, ok; want != got {
				t.Fatalf("Parse(%q) ok; want: %v, got: %v", test.line, want, got)
			}
			if diff := cmp.Diff(test.expected, e); diff != "" {
				t.Fatalf("Parse(%q) (-want, +got):\n%s", test.line, diff)
			}
		})
	}
}

func TestEntry_String(t *testing.T) {
	t.Parallel()

	s := "打電話 打电话 [da3 dian4 hua4] /to make a telephone call//to phone/"
	e, ok := line.Parse(s)
	if !ok {
		t.Fatalf("Parse(%q) failed", s)
	}

	if want, got := s, e.String(); want != got {
		t.Fatalf("String; want: %q, got: %q", want, got)
	}
}

func TestIsComment(t *testing.T) {
	t.Parallel()

	if !line.IsComment("# CC-CEDICT") {
		t.Error("IsComment(\"# CC-CEDICT\"); want: true, got: false")
	}
	if line.IsComment(" # indented") {
		t.Error("IsComment(\" # indented\"); want: false, got: true")
	}
}
