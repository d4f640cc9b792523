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

// Package folding implements text folding used to normalize lookup keys.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// WhitespaceFolder is a [transform.Transformer] that removes leading and
// trailing whitespace and collapses each internal whitespace run into a single
// ASCII space.
type WhitespaceFolder struct {
	// seenText is set once a non-whitespace rune has been written.
	seenText bool

	// pending is set while inside an internal whitespace run. The space is
	// only written once the next non-whitespace rune arrives.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (f *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}

		if unicode.IsSpace(r) {
			f.pending = f.seenText
			nSrc += size
			continue
		}

		// NOTE: utf8.RuneLen is used rather than size because invalid input
		// decodes to utf8.RuneError which is written as three bytes.
		need := utf8.RuneLen(r)
		if f.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if f.pending {
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		f.seenText = true
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *WhitespaceFolder) Reset() {
	*f = WhitespaceFolder{}
}
