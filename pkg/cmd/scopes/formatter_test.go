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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatterDepth(t *testing.T) {
	var buf bytes.Buffer
	f := newFormatter(&buf)

	f.Printf("global %d", 1)
	f.SetDepth(3)
	f.Printf("nested")
	f.SetDepth(0)
	f.Printf("clamped")

	assert.Equal(t, "global 1\n        nested\nclamped\n", buf.String())
}
