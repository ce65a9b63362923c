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
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/pulumi/scopestack/pkg/scope"
)

func errorf(subject hcl.Range, f string, args ...interface{}) *hcl.Diagnostic {
	return diagf(hcl.DiagError, subject, f, args...)
}

func diagf(severity hcl.DiagnosticSeverity, subject hcl.Range, f string, args ...interface{}) *hcl.Diagnostic {
	message := fmt.Sprintf(f, args...)
	return &hcl.Diagnostic{
		Severity: severity,
		Summary:  message,
		Subject:  &subject,
	}
}

func labelsErrorf(block *hclsyntax.Block, f string, args ...interface{}) *hcl.Diagnostic {
	startRange := block.LabelRanges[0]

	diagRange := hcl.Range{
		Filename: startRange.Filename,
		Start:    startRange.Start,
		End:      block.LabelRanges[len(block.LabelRanges)-1].End,
	}
	return errorf(diagRange, f, args...)
}

func undefinedVariable(name, suggestion string, variableRange hcl.Range) *hcl.Diagnostic {
	d := errorf(variableRange, "undefined variable %q", name)
	if suggestion != "" {
		d.Detail = fmt.Sprintf("Did you mean %q?", suggestion)
	}
	return d
}

func notAnInteger(exprRange hcl.Range, reason string) *hcl.Diagnostic {
	d := errorf(exprRange, "value is not an integer")
	d.Detail = reason
	return d
}

func unsupportedBlock(block *hclsyntax.Block) *hcl.Diagnostic {
	return errorf(block.TypeRange, "unsupported block of type %q; only %q blocks are allowed", block.Type,
		scopeBlockType)
}

func scopeFailed(block *hclsyntax.Block, err error) *hcl.Diagnostic {
	d := errorf(block.TypeRange, "cannot enter scope: %s", scope.StatusOf(err))
	d.Detail = err.Error()
	return d
}

func (b *binder) insertFailed(attr *hclsyntax.Attribute, err error) *hcl.Diagnostic {
	var d *hcl.Diagnostic
	switch scope.StatusOf(err) {
	case scope.Redefined:
		d = errorf(attr.NameRange, "%q already declared in this scope", attr.Name)
		if previous, ok := b.lastBinding(attr.Name); ok {
			d.Detail = fmt.Sprintf("The previous declaration is at %v.", previous.Range)
		}
	case scope.Maximized:
		d = errorf(attr.NameRange, "cannot declare %q: scope is full", attr.Name)
		d.Detail = fmt.Sprintf("A scope holds at most %d names.", b.ctx.Capacity())
	case scope.InvalidKey:
		d = errorf(attr.NameRange, "invalid name %q", attr.Name)
		d.Detail = err.Error()
	default:
		d = errorf(attr.NameRange, "cannot declare %q: %v", attr.Name, err)
	}
	return d
}

// lastBinding finds the most recent binding of name at the current depth.
func (b *binder) lastBinding(name string) (Binding, bool) {
	depth := b.ctx.Depth()
	for i := len(b.bindings) - 1; i >= 0; i-- {
		binding := b.bindings[i]
		if binding.Depth < depth {
			break
		}
		if binding.Depth == depth && binding.Name == name {
			return binding, true
		}
	}
	return Binding{}, false
}
