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

// Package scope implements a scoped symbol-binding store: a stack of fixed-capacity hash tables, one per lexical
// scope, that binds names to integers and resolves a name from the innermost scope outward.
//
// A Context starts with a single global scope that can never be popped:
//
//	ctx := scope.New()
//	_ = ctx.Insert("a", 10)
//	_ = ctx.Push()
//	_ = ctx.Insert("a", 20) // shadows the global binding
//	v, _ := ctx.Search("a") // 20
//	_ = ctx.Pop()
//	v, _ = ctx.Search("a")  // 10
//
// A Context is not safe for concurrent use.
package scope

import (
	"github.com/pkg/errors"

	"github.com/pulumi/scopestack/pkg/util/contract"
	"github.com/pulumi/scopestack/pkg/util/logging"
)

// Context is a stack of scopes. The zero value is not usable; call New or NewWithOptions. Methods on a nil or
// released Context report ErrNullPointer, except Release and Reset, which do nothing.
type Context struct {
	opts Options

	// stack holds the scopes outermost first. stack[0] is the global scope.
	stack []*table
	size  int
}

// New allocates a Context with DefaultOptions.
func New() *Context {
	c, err := NewWithOptions(DefaultOptions())
	contract.AssertNoError(err)
	return c
}

// NewWithOptions allocates a Context whose tables are sized by opts.
func NewWithOptions(opts Options) (*Context, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Context{
		opts:  opts,
		stack: []*table{newTable(opts.Capacity)},
		size:  1,
	}, nil
}

func (c *Context) valid() bool {
	return c != nil && len(c.stack) > 0
}

// innermost returns the table that inserts go to.
func (c *Context) innermost() *table {
	return c.stack[len(c.stack)-1]
}

// Release drops every scope. The Context must not be used afterwards; doing so reports ErrNullPointer.
func (c *Context) Release() {
	if !c.valid() {
		return
	}
	for i := range c.stack {
		c.stack[i] = nil
	}
	c.stack, c.size = nil, 0
}

// Reset discards every scope but the global one and unbinds everything in it, returning the Context to the state New
// left it in.
func (c *Context) Reset() {
	if !c.valid() {
		return
	}
	for i := 1; i < len(c.stack); i++ {
		c.stack[i] = nil
	}
	c.stack = c.stack[:1]
	c.stack[0].clear()
	c.size = 1
	logging.V(7).Infof("scope: reset to depth 1")
}

// Push enters a new, empty innermost scope.
func (c *Context) Push() error {
	if !c.valid() {
		return ErrNullPointer
	}
	if c.opts.MaxDepth > 0 && c.size >= c.opts.MaxDepth {
		return errors.Wrapf(ErrAllocationFailure, "scope depth limit %d reached", c.opts.MaxDepth)
	}

	c.stack = append(c.stack, newTable(c.opts.Capacity))
	c.size++
	logging.V(7).Infof("scope: pushed to depth %d", c.size)
	return nil
}

// Pop leaves the innermost scope, discarding its bindings. The global scope cannot be popped.
func (c *Context) Pop() error {
	if !c.valid() {
		return ErrNullPointer
	}
	if c.size <= 1 {
		return ErrMinimized
	}

	c.stack[len(c.stack)-1] = nil
	c.stack = c.stack[:len(c.stack)-1]
	c.size--
	contract.Assertf(c.size == len(c.stack), "depth %d disagrees with %d live scopes", c.size, len(c.stack))
	logging.V(7).Infof("scope: popped to depth %d", c.size)
	return nil
}

// Insert binds key to value in the innermost scope. A key bound in an outer scope may be bound again here, shadowing
// it; a key already bound in the innermost scope is rejected with ErrRedefined.
func (c *Context) Insert(key string, value int) error {
	if !c.valid() {
		return ErrNullPointer
	}
	if err := c.checkKey(key); err != nil {
		return err
	}

	switch err := c.innermost().define(key, value); err {
	case nil:
		return nil
	case ErrRedefined:
		return errors.Wrapf(err, "%q is already bound at depth %d", key, c.size)
	default:
		return errors.Wrapf(err, "scope at depth %d holds %d bindings", c.size, c.opts.Capacity)
	}
}

// Search resolves key from the innermost scope outward and returns the first value found.
func (c *Context) Search(key string) (int, error) {
	if !c.valid() {
		return 0, ErrNullPointer
	}
	if err := c.checkKey(key); err != nil {
		return 0, err
	}

	for i := len(c.stack) - 1; i >= 0; i-- {
		if v, ok := c.stack[i].lookup(key); ok {
			return v, nil
		}
	}
	return 0, errors.Wrapf(ErrUndefined, "%q", key)
}

// Depth returns the number of live scopes, or zero for a nil or released Context.
func (c *Context) Depth() int {
	if !c.valid() {
		return 0
	}
	return c.size
}

// Capacity returns the number of slots in each scope.
func (c *Context) Capacity() int {
	if !c.valid() {
		return 0
	}
	return c.opts.Capacity
}

// Bucket returns the slot key starts probing from in this Context's tables. It equals Hash(key) at the default
// capacity.
func (c *Context) Bucket(key string) int {
	if !c.valid() {
		return 0
	}
	return hash(key, c.opts.Capacity)
}

// Options returns the sizing the Context was created with.
func (c *Context) Options() Options {
	if c == nil {
		return Options{}
	}
	return c.opts
}

func (c *Context) checkKey(key string) error {
	if len(key) > c.opts.MaxKeyLength {
		return errors.Wrapf(ErrInvalidKey, "key of %d bytes exceeds the %d byte limit", len(key), c.opts.MaxKeyLength)
	}
	return nil
}
