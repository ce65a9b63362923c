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
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/pkg/errors"

	"github.com/pulumi/scopestack/pkg/scope"
	"github.com/pulumi/scopestack/pkg/util/contract"
	"github.com/pulumi/scopestack/pkg/util/logging"
)

// scopeBlockType is the only block type a binding file may contain.
const scopeBlockType = "scope"

type binder struct {
	ctx *scope.Context

	labels   []string
	bindings []Binding
}

// BindFiles parses and evaluates the HCL files at paths, in name order, against a fresh context sized by opts.
func BindFiles(paths []string, opts scope.Options) (*Program, hcl.Diagnostics, error) {
	parser := hclparse.NewParser()

	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	var files []*hcl.File
	var diagnostics hcl.Diagnostics
	for _, path := range sorted {
		logging.V(5).Infof("bind: parsing %s", path)
		file, parseDiags := parser.ParseHCLFile(path)
		diagnostics = append(diagnostics, parseDiags...)
		if file != nil {
			files = append(files, file)
		}
	}
	if diagnostics.HasErrors() {
		return &Program{parser: parser}, diagnostics, nil
	}
	return bindProgram(parser, files, opts)
}

// BindSource parses and evaluates a single HCL document. name is used in diagnostics.
func BindSource(name string, src []byte, opts scope.Options) (*Program, hcl.Diagnostics, error) {
	parser := hclparse.NewParser()
	file, diagnostics := parser.ParseHCL(src, name)
	if diagnostics.HasErrors() {
		return &Program{parser: parser}, diagnostics, nil
	}
	return bindProgram(parser, []*hcl.File{file}, opts)
}

func bindProgram(parser *hclparse.Parser, files []*hcl.File, opts scope.Options) (*Program, hcl.Diagnostics, error) {
	ctx, err := scope.NewWithOptions(opts)
	if err != nil {
		return nil, nil, errors.Wrap(err, "sizing binding context")
	}

	b := &binder{ctx: ctx}

	var diagnostics hcl.Diagnostics
	for _, f := range files {
		body, ok := f.Body.(*hclsyntax.Body)
		if !ok {
			return nil, nil, errors.Errorf("binding files must use native HCL syntax")
		}
		logging.V(5).Infof("bind: evaluating %s", body.SrcRange.Filename)
		diagnostics = append(diagnostics, b.bindBody(body)...)
	}
	contract.Assertf(ctx.Depth() == 1, "binder left %d scopes open", ctx.Depth())

	return &Program{
		Bindings: b.bindings,
		Context:  ctx,
		parser:   parser,
	}, diagnostics, nil
}

// bindBody binds the attributes and blocks of body in source order, so that an expression only sees names bound above
// it. Errors do not stop evaluation; the offending attribute or block is skipped.
func (b *binder) bindBody(body *hclsyntax.Body) hcl.Diagnostics {
	var diagnostics hcl.Diagnostics
	for _, item := range sourceOrderItems(body) {
		switch item := item.(type) {
		case *hclsyntax.Attribute:
			diagnostics = append(diagnostics, b.bindAttribute(item)...)
		case *hclsyntax.Block:
			diagnostics = append(diagnostics, b.bindBlock(item)...)
		default:
			contract.Failf("unexpected body item of type %T (%v)", item, item.Range())
		}
	}
	return diagnostics
}

func (b *binder) bindAttribute(attr *hclsyntax.Attribute) hcl.Diagnostics {
	value, diagnostics := b.evaluate(attr.Expr)
	if diagnostics.HasErrors() {
		return diagnostics
	}

	if err := b.ctx.Insert(attr.Name, value); err != nil {
		return append(diagnostics, b.insertFailed(attr, err))
	}

	b.bindings = append(b.bindings, Binding{
		Name:  attr.Name,
		Value: value,
		Depth: b.ctx.Depth(),
		Scope: b.currentLabel(),
		Range: attr.Range(),
	})
	return diagnostics
}

func (b *binder) bindBlock(block *hclsyntax.Block) hcl.Diagnostics {
	if block.Type != scopeBlockType {
		return hcl.Diagnostics{unsupportedBlock(block)}
	}
	if len(block.Labels) > 1 {
		return hcl.Diagnostics{labelsErrorf(block, "scope blocks must have no more than one label")}
	}

	if err := b.ctx.Push(); err != nil {
		return hcl.Diagnostics{scopeFailed(block, err)}
	}

	label := ""
	if len(block.Labels) == 1 {
		label = block.Labels[0]
	}
	logging.V(5).Infof("bind: entering scope %q at depth %d", label, b.ctx.Depth())

	b.labels = append(b.labels, label)
	diagnostics := b.bindBody(block.Body)
	b.labels = b.labels[:len(b.labels)-1]

	contract.AssertNoErrorf(b.ctx.Pop(), "leaving scope %q", label)
	return diagnostics
}

func (b *binder) currentLabel() string {
	if len(b.labels) == 0 {
		return ""
	}
	return b.labels[len(b.labels)-1]
}
