// Copyright 2016-2020, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scope

import (
	"unicode/utf8"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// editOptions counts a substitution as a single edit.
var editOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: func(a, b rune) bool { return a == b },
}

// Suggest returns the visible bound name closest to key, for "did you mean" messages. Names shadowed by an inner
// scope are still candidates since they spell the same. A candidate qualifies only if its edit distance is at most a
// third of the longer name's length in runes (and at least one).
func (c *Context) Suggest(key string) (string, bool) {
	if !c.valid() {
		return "", false
	}

	target := []rune(key)
	best, bestDistance := "", -1
	for i := len(c.stack) - 1; i >= 0; i-- {
		for _, name := range c.stack[i].names() {
			if name == key {
				continue
			}
			d := levenshtein.DistanceForStrings(target, []rune(name), editOptions)
			if d > threshold(key, name) {
				continue
			}
			if bestDistance < 0 || d < bestDistance || d == bestDistance && name < best {
				best, bestDistance = name, d
			}
		}
	}
	return best, bestDistance >= 0
}

func threshold(a, b string) int {
	n := utf8.RuneCountInString(a)
	if m := utf8.RuneCountInString(b); m > n {
		n = m
	}
	if t := n / 3; t > 0 {
		return t
	}
	return 1
}
