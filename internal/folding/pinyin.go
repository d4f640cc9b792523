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

package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

// Pinyin returns a new [transform.Transformer] that folds pinyin for
// comparison. Whitespace is folded and letter case is removed so that
// "Zhong1  guo2" and "zhong1 guo2" compare equal. Tone numbers are kept.
func Pinyin() transform.Transformer {
	return transform.Chain(&WhitespaceFolder{}, cases.Fold())
}

// PinyinString folds s with [Pinyin].
func PinyinString(s string) (string, error) {
	folded, _, err := transform.String(Pinyin(), s)
	if err != nil {
		//nolint:wrapcheck // transform errors are descriptive.
		return "", err
	}
	return folded, nil
}
