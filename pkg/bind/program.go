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

// Package bind evaluates HCL binding files against a scope.Context. Attributes bind names in the current scope,
// `scope` blocks enter and leave nested scopes, and expressions resolve the names they reference through the
// context, innermost scope first.
package bind

import (
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pulumi/scopestack/pkg/scope"
)

// Binding records one successful bind, in evaluation order.
type Binding struct {
	Name  string
	Value int
	// Depth is the context depth the name was bound at; 1 is the global scope.
	Depth int
	// Scope is the label of the innermost enclosing scope block, if it has one.
	Scope string
	Range hcl.Range
}

// Program is the result of binding a set of files.
type Program struct {
	// Bindings lists every name bound while evaluating the files, including those in scopes that have since been left.
	Bindings []Binding
	// Context holds the global bindings once evaluation finishes.
	Context *scope.Context

	parser *hclparse.Parser
}

// NewDiagnosticWriter returns a writer that renders diagnostics with source snippets from the program's files.
func (p *Program) NewDiagnosticWriter(w io.Writer, width uint, color bool) hcl.DiagnosticWriter {
	return hcl.NewDiagnosticTextWriter(w, p.parser.Files(), width, color)
}

// Global returns the value bound to name in the global scope after evaluation.
func (p *Program) Global(name string) (int, bool) {
	v, err := p.Context.Search(name)
	return v, err == nil
}
