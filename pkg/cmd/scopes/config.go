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
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/pulumi/scopestack/pkg/scope"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	configFile   string
	capacity     int
	maxKeyLength int
	maxDepth     int
	logToStderr  bool
	verbose      int
}

// loadOptions reads the YAML configuration file, if any, over the default sizing and then applies the flags the user
// set explicitly.
func loadOptions(gf *globalFlags, flags *pflag.FlagSet) (scope.Options, error) {
	opts := scope.DefaultOptions()

	if gf.configFile != "" {
		b, err := ioutil.ReadFile(gf.configFile)
		if err != nil {
			return scope.Options{}, errors.Wrap(err, "reading configuration")
		}
		if err = yaml.UnmarshalStrict(b, &opts); err != nil {
			return scope.Options{}, errors.Wrapf(err, "parsing configuration %s", gf.configFile)
		}
	}

	if flags.Changed("capacity") {
		opts.Capacity = gf.capacity
	}
	if flags.Changed("max-key-length") {
		opts.MaxKeyLength = gf.maxKeyLength
	}
	if flags.Changed("max-depth") {
		opts.MaxDepth = gf.maxDepth
	}

	if err := opts.Validate(); err != nil {
		return scope.Options{}, errors.Wrap(err, "invalid configuration")
	}
	return opts, nil
}
