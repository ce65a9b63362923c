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

package scopes

import (
	"fmt"
	"io"
	"strings"

	"github.com/pulumi/scopestack/pkg/util/contract"
)

// indentUnit is the indentation added for each scope below the global one.
const indentUnit = "    "

// formatter writes lines indented by scope depth.
type formatter struct {
	// The current indent level as a string.
	Indent string

	w io.Writer
}

func newFormatter(w io.Writer) *formatter {
	return &formatter{w: w}
}

// SetDepth indents subsequent lines for a context at the given depth.
func (f *formatter) SetDepth(depth int) {
	if depth < 1 {
		depth = 1
	}
	f.Indent = strings.Repeat(indentUnit, depth-1)
}

// Printf prints a formatted, indented line.
func (f *formatter) Printf(format string, a ...interface{}) {
	_, err := fmt.Fprintf(f.w, "%s%s\n", f.Indent, fmt.Sprintf(format, a...))
	contract.IgnoreError(err)
}
