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
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// functions returns the functions binding expressions may call.
func (b *binder) functions() map[string]function.Function {
	return map[string]function.Function{
		"abs":    stdlib.AbsoluteFunc,
		"int":    stdlib.IntFunc,
		"max":    stdlib.MaxFunc,
		"min":    stdlib.MinFunc,
		"bucket": b.bucketFunc(),
	}
}

// bucketFunc exposes the context's hash function: bucket("name") is the slot "name" starts probing from.
func (b *binder) bucketFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{
			Name: "key",
			Type: cty.String,
		}},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.NumberIntVal(int64(b.ctx.Bucket(args[0].AsString()))), nil
		},
	})
}
