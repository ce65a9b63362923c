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
	"github.com/spf13/cobra"

	"github.com/pulumi/scopestack/pkg/scope"
)

func newHashCmd(options func() scope.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "hash KEY...",
		Short: "Print the bucket each key hashes to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := scope.NewWithOptions(options())
			if err != nil {
				return err
			}
			defer ctx.Release()

			out := newFormatter(cmd.OutOrStdout())
			for _, key := range args {
				out.Printf("%s %d", key, ctx.Bucket(key))
			}
			return nil
		},
	}
}
