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
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/pulumi/scopestack/pkg/scope"
)

// evaluate computes the integer value of expr. Every root name the expression references is resolved through the
// context before evaluation, so shadowing follows the scope stack.
func (b *binder) evaluate(expr hclsyntax.Expression) (int, hcl.Diagnostics) {
	variables, diagnostics := b.resolveVariables(expr)
	if diagnostics.HasErrors() {
		return 0, diagnostics
	}

	val, valDiags := expr.Value(&hcl.EvalContext{
		Variables: variables,
		Functions: b.functions(),
	})
	diagnostics = append(diagnostics, valDiags...)
	if valDiags.HasErrors() {
		return 0, diagnostics
	}

	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.Number) {
		return 0, append(diagnostics, notAnInteger(expr.Range(), "value must be a number"))
	}
	var result int
	if err := gocty.FromCtyValue(val, &result); err != nil {
		return 0, append(diagnostics, notAnInteger(expr.Range(), err.Error()))
	}
	return result, diagnostics
}

func (b *binder) resolveVariables(expr hclsyntax.Expression) (map[string]cty.Value, hcl.Diagnostics) {
	var diagnostics hcl.Diagnostics
	variables := map[string]cty.Value{}
	for _, traversal := range expr.Variables() {
		name := traversal.RootName()
		if _, ok := variables[name]; ok {
			continue
		}

		value, err := b.ctx.Search(name)
		switch scope.StatusOf(err) {
		case scope.Success:
			variables[name] = cty.NumberIntVal(int64(value))
		case scope.Undefined:
			suggestion, _ := b.ctx.Suggest(name)
			diagnostics = append(diagnostics, undefinedVariable(name, suggestion, traversal.SourceRange()))
		default:
			diagnostics = append(diagnostics, errorf(traversal.SourceRange(), "cannot resolve %q: %v", name, err))
		}
	}
	return variables, diagnostics
}
