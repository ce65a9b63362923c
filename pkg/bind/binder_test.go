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

package bind

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulumi/scopestack/pkg/scope"
)

func bindString(t *testing.T, src string, opts scope.Options) (*Program, hcl.Diagnostics) {
	program, diags, err := BindSource("test.hcl", []byte(src), opts)
	require.NoError(t, err)
	require.NotNil(t, program)
	return program, diags
}

type bound struct {
	name  string
	value int
	depth int
	scope string
}

func summarize(bindings []Binding) []bound {
	var out []bound
	for _, b := range bindings {
		out = append(out, bound{b.Name, b.Value, b.Depth, b.Scope})
	}
	return out
}

func summaries(diags hcl.Diagnostics) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.Summary)
	}
	return out
}

func TestBindNestedScopes(t *testing.T) {
	program, diags := bindString(t, `
base = 10
scope {
  offset = base + 5
  scope "inner" {
    base  = 1
    total = base + offset
  }
  after = base
}
last = max(base, 3)
`, scope.DefaultOptions())
	require.Empty(t, diags)

	assert.Equal(t, []bound{
		{"base", 10, 1, ""},
		{"offset", 15, 2, ""},
		{"base", 1, 3, "inner"},
		{"total", 16, 3, "inner"},
		{"after", 10, 2, ""},
		{"last", 10, 1, ""},
	}, summarize(program.Bindings))

	assert.Equal(t, 1, program.Context.Depth())
	v, ok := program.Global("base")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	_, ok = program.Global("offset")
	assert.False(t, ok)
}

func TestBindSiblingScopes(t *testing.T) {
	program, diags := bindString(t, `
scope "a" {
  x = 1
}
scope "b" {
  x = 2
}
`, scope.DefaultOptions())
	require.Empty(t, diags)
	assert.Equal(t, []bound{
		{"x", 1, 2, "a"},
		{"x", 2, 2, "b"},
	}, summarize(program.Bindings))
}

func TestBindUndefined(t *testing.T) {
	program, diags := bindString(t, `
base  = 1
value = bse + 1
early = later
later = 2
`, scope.DefaultOptions())
	require.Len(t, diags, 2)
	assert.Equal(t, `undefined variable "bse"`, diags[0].Summary)
	assert.Equal(t, `Did you mean "base"?`, diags[0].Detail)
	assert.Equal(t, 3, diags[0].Subject.Start.Line)
	assert.Equal(t, `undefined variable "later"`, diags[1].Summary)

	// Evaluation continued past the errors.
	assert.Equal(t, []bound{
		{"base", 1, 1, ""},
		{"later", 2, 1, ""},
	}, summarize(program.Bindings))
}

func TestBindFunctions(t *testing.T) {
	program, diags := bindString(t, `
neg = -7
a   = abs(neg)
b   = min(a, 3, 9)
c   = int(7 / 2)
d   = bucket("hello")
`, scope.DefaultOptions())
	require.Empty(t, diags)
	assert.Equal(t, []bound{
		{"neg", -7, 1, ""},
		{"a", 7, 1, ""},
		{"b", 3, 1, ""},
		{"c", 3, 1, ""},
		{"d", 193, 1, ""},
	}, summarize(program.Bindings))
}

func TestBindNotAnInteger(t *testing.T) {
	program, diags := bindString(t, `
f = 1.5
s = "five"
ok = 5
`, scope.DefaultOptions())
	assert.Equal(t, []string{"value is not an integer", "value is not an integer"}, summaries(diags))
	assert.Equal(t, []bound{{"ok", 5, 1, ""}}, summarize(program.Bindings))
}

func TestBindUnsupportedBlocks(t *testing.T) {
	program, diags := bindString(t, `
resource "x" {
  a = 1
}
scope "a" "b" {
  b = 2
}
c = 3
`, scope.DefaultOptions())
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Summary, `unsupported block of type "resource"`)
	assert.Equal(t, "scope blocks must have no more than one label", diags[1].Summary)
	assert.Equal(t, []bound{{"c", 3, 1, ""}}, summarize(program.Bindings))
}

func TestBindScopeFull(t *testing.T) {
	program, diags := bindString(t, `
a = 1
b = 2
c = 3
scope {
  c = 4
}
`, scope.Options{Capacity: 2, MaxKeyLength: 8})
	assert.Equal(t, []string{`cannot declare "c": scope is full`}, summaries(diags))
	assert.Equal(t, "A scope holds at most 2 names.", diags[0].Detail)
	assert.Len(t, program.Bindings, 3)
}

func TestBindDepthLimit(t *testing.T) {
	program, diags := bindString(t, `
scope {
  x = 1
  scope {
    y = 2
  }
}
`, scope.Options{Capacity: 8, MaxKeyLength: 8, MaxDepth: 2})
	assert.Equal(t, []string{"cannot enter scope: memory allocation failure"}, summaries(diags))
	assert.Equal(t, []bound{{"x", 1, 2, ""}}, summarize(program.Bindings))
	assert.Equal(t, 1, program.Context.Depth())
}

func TestBindInvalidName(t *testing.T) {
	_, diags := bindString(t, `
abc = 1
abcd = 2
`, scope.Options{Capacity: 8, MaxKeyLength: 3})
	assert.Equal(t, []string{`invalid name "abcd"`}, summaries(diags))
}

func TestBindSyntaxError(t *testing.T) {
	program, diags := bindString(t, `a = `, scope.DefaultOptions())
	assert.True(t, diags.HasErrors())
	assert.Nil(t, program.Context)
	assert.Empty(t, program.Bindings)
}

func TestBindInvalidOptions(t *testing.T) {
	_, _, err := BindSource("test.hcl", []byte(`a = 1`), scope.Options{})
	assert.Error(t, err)
}

func TestBindFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "bind")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	write := func(name, src string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(src), 0600))
		return path
	}
	second := write("b.hcl", "y = x + 1\nx = 5\n")
	first := write("a.hcl", "x = 1\n")

	program, diags, err := BindFiles([]string{second, first}, scope.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, `"x" already declared in this scope`, diags[0].Summary)
	assert.Contains(t, diags[0].Detail, "a.hcl")

	// a.hcl is bound before b.hcl regardless of argument order.
	assert.Equal(t, []bound{
		{"x", 1, 1, ""},
		{"y", 2, 1, ""},
	}, summarize(program.Bindings))

	var buf bytes.Buffer
	require.NoError(t, program.NewDiagnosticWriter(&buf, 0, false).WriteDiagnostics(diags))
	assert.Contains(t, buf.String(), "already declared in this scope")
	assert.Contains(t, buf.String(), "b.hcl")
}

func TestBindMissingFile(t *testing.T) {
	program, diags, err := BindFiles([]string{"does-not-exist.hcl"}, scope.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, diags.HasErrors())
	assert.Nil(t, program.Context)
}
