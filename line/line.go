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

package line

import (
	"regexp"
	"strings"
	"unicode"
)

// CommentPrefix starts a comment line.
const CommentPrefix = "#"

// token matches a run of non-whitespace runes. Whitespace here is the full
// Unicode set, including the ideographic space (U+3000) and the ASCII
// information separators (U+001C to U+001F).
const token = `[^\s\v\x1c-\x1f\x85\p{Z}]+`

// entryRegex matches an entry line. The pinyin group is the shortest
// bracketed group and the definitions run to the last '/' on the line.
// Anything after the final '/' is ignored.
var entryRegex = regexp.MustCompile(`^(` + token + `) (` + token + `) \[(.+?)\] /(.+)/`)

// Entry is a single CC-CEDICT dictionary entry.
type Entry struct {
	// Traditional is the headword in traditional characters.
	Traditional string `json:"traditional"`

	// Simplified is the headword in simplified characters.
	Simplified string `json:"simplified"`

	// Pinyin are the pinyin syllables in the order they appear.
	Pinyin []string `json:"pinyin"`

	// Definitions are the '/' separated definitions. Empty definitions are
	// kept as empty strings.
	Definitions []string `json:"definitions"`
}

// String returns the entry in CC-CEDICT line format.
func (e *Entry) String() string {
	return e.Traditional + " " + e.Simplified +
		" [" + strings.Join(e.Pinyin, " ") + "] /" +
		strings.Join(e.Definitions, "/") + "/"
}

// IsComment returns true if s is a comment line.
func IsComment(s string) bool {
	return strings.HasPrefix(s, CommentPrefix)
}

// Parse parses a single dictionary line. It returns false if the line is a
// comment or is not a well-formed entry.
func Parse(s string) (*Entry, bool) {
	if IsComment(s) {
		return nil, false
	}

	m := entryRegex.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}

	return &Entry{
		Traditional: m[1],
		Simplified:  m[2],
		Pinyin:      strings.FieldsFunc(m[3], isSpace),
		Definitions: strings.Split(m[4], "/"),
	}, true
}

// isSpace reports whether r separates pinyin syllables.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || ('\x1c' <= r && r <= '\x1f')
}
