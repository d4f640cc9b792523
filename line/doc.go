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

// Package line implements parsing of CC-CEDICT dictionary lines.
//
// A CC-CEDICT file is UTF-8 text with one entry per line. Lines starting
// with '#' are comments. Every other line has four parts:
//  1. The traditional headword.
//  2. The simplified headword.
//  3. The pinyin syllables enclosed in square brackets.
//  4. The definitions, each terminated by a '/'.
//
// For example:
//
//	打電話 打电话 [da3 dian4 hua4] /to make a telephone call/to phone/
//
// Lines that do not have this shape are skipped without error.
package line
