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
	"github.com/pulumi/scopestack/pkg/util/contract"
	"github.com/pulumi/scopestack/pkg/util/logging"
)

// slot holds at most one binding. used distinguishes an empty slot from a binding of the empty key.
type slot struct {
	key   string
	value int
	used  bool
}

// table is a fixed-capacity open-addressing map from names to values using linear probing. A table never grows and
// never removes a binding, so a probe sequence that reaches an unused slot has seen every key that hashes there.
type table struct {
	slots []slot
	count int
}

func newTable(capacity int) *table {
	contract.Requiref(capacity > 0, "capacity", "a table needs at least one slot, got %d", capacity)
	return &table{slots: make([]slot, capacity)}
}

func (t *table) capacity() int {
	return len(t.slots)
}

func (t *table) full() bool {
	return t.count >= len(t.slots)
}

// define binds key to value. It fails with ErrMaximized if the table is already full, before any probing, and with
// ErrRedefined if key is bound in this table; neither failure changes the table.
func (t *table) define(key string, value int) error {
	if t.full() {
		return ErrMaximized
	}

	n := len(t.slots)
	start := hash(key, n)
	for i, probes := start, 0; probes < n; i, probes = (i+1)%n, probes+1 {
		s := &t.slots[i]
		if !s.used {
			s.key, s.value, s.used = key, value, true
			t.count++
			logging.V(9).Infof("scope: bound %q in slot %d (start %d, %d probes)", key, i, start, probes)
			return nil
		}
		if s.key == key {
			return ErrRedefined
		}
	}

	// count < capacity guarantees an unused slot somewhere in the sequence.
	contract.Failf("no free slot for %q in a table holding %d of %d bindings", key, t.count, n)
	return ErrMaximized
}

// lookup returns the value bound to key in this table. Probing stops at the first unused slot, since define would
// have placed key there, and never takes more than capacity steps.
func (t *table) lookup(key string) (int, bool) {
	if t.count == 0 {
		return 0, false
	}

	n := len(t.slots)
	for i, probes := hash(key, n), 0; probes < n; i, probes = (i+1)%n, probes+1 {
		s := &t.slots[i]
		if !s.used {
			return 0, false
		}
		if s.key == key {
			return s.value, true
		}
	}
	return 0, false
}

// clear unbinds every slot.
func (t *table) clear() {
	for i := range t.slots {
		t.slots[i] = slot{}
	}
	t.count = 0
}

// names returns the bound keys in slot order. It backs suggestions and is not exported.
func (t *table) names() []string {
	if t.count == 0 {
		return nil
	}
	names := make([]string, 0, t.count)
	for _, s := range t.slots {
		if s.used {
			names = append(names, s.key)
		}
	}
	return names
}
