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
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulumi/scopestack/pkg/scope"
)

func TestLoadOptionsDefaults(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts, err := loadOptions(&globalFlags{}, flags)
	require.NoError(t, err)
	assert.Equal(t, scope.DefaultOptions(), opts)
}

func TestLoadOptionsFlagOverrides(t *testing.T) {
	gf := &globalFlags{}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.IntVar(&gf.capacity, "capacity", scope.DefaultCapacity, "")
	flags.IntVar(&gf.maxKeyLength, "max-key-length", scope.DefaultMaxKeyLength, "")
	flags.IntVar(&gf.maxDepth, "max-depth", 0, "")
	require.NoError(t, flags.Parse([]string{"--max-depth", "5", "--max-key-length", "16"}))

	opts, err := loadOptions(gf, flags)
	require.NoError(t, err)
	assert.Equal(t, scope.Options{Capacity: scope.DefaultCapacity, MaxKeyLength: 16, MaxDepth: 5}, opts)

	require.NoError(t, flags.Parse([]string{"--max-depth", "-1"}))
	_, err = loadOptions(gf, flags)
	assert.Error(t, err)
}
