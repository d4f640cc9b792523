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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// jsonIndent is the indent used for each nesting level of written JSON.
const jsonIndent = "    "

// WriteEntries writes the entries as a JSON object mapping traditional
// headwords to entries. Keys are written in the order they were first added.
func (d *Dictionary) WriteEntries(w io.Writer) error {
	return writeObject(w, d.entryKeys, func(k string) any {
		return d.entries[k]
	})
}

// WriteSimplifiedIndex writes the simplified index as a JSON object mapping
// simplified headwords to traditional headwords. Keys are written in the order
// they were first added.
func (d *Dictionary) WriteSimplifiedIndex(w io.Writer) error {
	return writeObject(w, d.simplifiedKeys, func(k string) any {
		return d.simplified[k]
	})
}

// WriteTraditionalList writes the traditional headword of every added entry as
// a JSON array.
func (d *Dictionary) WriteTraditionalList(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, t := range d.traditional {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encode(&buf, t); err != nil {
			return err
		}
	}
	buf.WriteByte(']')

	return writeIndented(w, buf.Bytes())
}

// writeObject writes a JSON object with the given keys in order.
func writeObject(w io.Writer, keys []string, value func(string) any) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encode(&buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encode(&buf, value(k)); err != nil {
			return err
		}
	}
	buf.WriteByte('}')

	return writeIndented(w, buf.Bytes())
}

// encode appends the compact JSON encoding of v to buf. Non-ASCII and HTML
// characters are written as is.
func encode(buf *bytes.Buffer, v any) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %v: %w", v, err)
	}
	// Encode terminates each value with a newline.
	buf.Write(unescapeSeparators(bytes.TrimSuffix(b.Bytes(), []byte{'\n'})))
	return nil
}

// unescapeSeparators rewrites the \u2028 and \u2029 escapes that
// encoding/json always writes back to the literal runes.
func unescapeSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 == len(b) {
			out = append(out, b[i])
			continue
		}

		// Escapes are consumed whole so an escaped backslash followed by
		// "u2028" is left alone.
		if esc := b[i+1:]; len(esc) >= 5 && esc[0] == 'u' {
			switch string(esc[1:5]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

// writeIndented indents the compact JSON document src and writes it to w.
func writeIndented(w io.Writer, src []byte) error {
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", jsonIndent); err != nil {
		return fmt.Errorf("indenting json: %w", err)
	}
	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}
