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

// Package cedict implements a library for converting CC-CEDICT dictionaries
// in pure Go.
//
// A CC-CEDICT file is converted into three JSON documents:
//  1. The entries, an object mapping each traditional headword to its
//     entry.
//  2. The simplified index, an object mapping each simplified headword to
//     its traditional headword.
//  3. The traditional list, an array of the traditional headword of every
//     entry line in file order.
//
// When a headword appears more than once the last entry wins. The traditional
// list keeps every occurrence.
//
// [Dictionary.WriteHTML] renders the dictionary as static HTML pages, one
// per simplified headword, with an index page linking to them.
//
// More info on the dictionary format can be found at this URL:
// https://cc-cedict.org/wiki/format:syntax
package cedict
