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
	"github.com/pkg/errors"
)

const (
	// DefaultCapacity is the number of slots in each scope's table.
	DefaultCapacity = 256
	// DefaultMaxKeyLength is the longest key, in bytes, that a table accepts.
	DefaultMaxKeyLength = DefaultCapacity - 1
	// MaxCapacity is the largest accepted Options.Capacity.
	MaxCapacity = 1 << 20
)

// Options sizes the tables of a Context.
type Options struct {
	// Capacity is the fixed number of slots in every scope. A scope holding Capacity bindings rejects further inserts.
	Capacity int `yaml:"capacity"`
	// MaxKeyLength bounds the byte length of keys.
	MaxKeyLength int `yaml:"maxKeyLength"`
	// MaxDepth limits how many scopes may be live at once. Zero means no limit.
	MaxDepth int `yaml:"maxDepth"`
}

// DefaultOptions returns the reference sizing: 256 slots and 255-byte keys, unbounded depth.
func DefaultOptions() Options {
	return Options{
		Capacity:     DefaultCapacity,
		MaxKeyLength: DefaultMaxKeyLength,
	}
}

// Validate reports the first field that cannot be used to size a Context.
func (o Options) Validate() error {
	switch {
	case o.Capacity <= 0:
		return errors.Errorf("capacity must be positive, got %d", o.Capacity)
	case o.Capacity > MaxCapacity:
		return errors.Errorf("capacity must be at most %d, got %d", MaxCapacity, o.Capacity)
	case o.MaxKeyLength <= 0:
		return errors.Errorf("max key length must be positive, got %d", o.MaxKeyLength)
	case o.MaxDepth < 0:
		return errors.Errorf("max depth must not be negative, got %d", o.MaxDepth)
	}
	return nil
}
