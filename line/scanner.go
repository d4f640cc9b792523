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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// ErrInvalidUTF8 indicates that a line could not be decoded as UTF-8.
var ErrInvalidUTF8 = errors.New("invalid utf-8")

// ScannerOptions are options for scanning a CC-CEDICT file.
type ScannerOptions struct {
	// MaxLineSize is the maximum size of a single line in bytes. Scanning
	// stops with [bufio.ErrTooLong] on longer lines. Zero means no limit.
	MaxLineSize int
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{}

// Scanner scans dictionary entries from start to end. Comments and lines
// that are not well-formed entries are skipped.
type Scanner struct {
	s     *bufio.Scanner
	entry *Entry
	line  int
	err   error
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader, options *ScannerOptions) *Scanner {
	if options == nil {
		options = DefaultScannerOptions
	}
	maxSize := options.MaxLineSize
	if maxSize <= 0 {
		maxSize = math.MaxInt
	}

	s := bufio.NewScanner(bufio.NewReader(r))
	s.Buffer(make([]byte, 0, min(maxSize, 64*1024)), maxSize)
	s.Split(splitLines)

	return &Scanner{
		s: s,
	}
}

// Scan advances to the next well-formed entry. It returns false when the
// scan stops, either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.s.Scan() {
		s.line++
		b := s.s.Bytes()
		if !utf8.Valid(b) {
			s.err = fmt.Errorf("%w: line %d", ErrInvalidUTF8, s.line)
			s.entry = nil
			return false
		}

		if e, ok := Parse(string(b)); ok {
			s.entry = e
			return true
		}
	}

	s.entry = nil
	if err := s.s.Err(); err != nil {
		s.err = fmt.Errorf("reading line %d: %w", s.line+1, err)
	}
	return false
}

// Entry returns the entry found by the most recent call to Scan.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Line returns the 1-based number of the last line read.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// splitLines splits lines ending in "\n", "\r\n" or a lone "\r". The line
// terminator is not part of the token.
func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// Found '\r'. It may be the first half of a "\r\n".
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// Request more data.
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}
