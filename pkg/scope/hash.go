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

// Hash returns the bucket that key starts probing from in a table of DefaultCapacity slots.
func Hash(key string) int {
	return hash(key, DefaultCapacity)
}

// hash folds each byte into the accumulator as acc = (acc + b) * b, reducing modulo n after every byte. The per-byte
// reduction keeps the accumulator below n, so the product never overflows for any sane capacity.
func hash(key string, n int) int {
	var acc uint64
	m := uint64(n)
	for i := 0; i < len(key); i++ {
		b := uint64(key[i])
		acc = (acc + b) * b % m
	}
	return int(acc)
}
