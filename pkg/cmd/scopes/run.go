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
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pulumi/scopestack/pkg/scope"
	"github.com/pulumi/scopestack/pkg/util/contract"
)

func newRunCmd(options func() scope.Options, stdin io.Reader) *cobra.Command {
	return &cobra.Command{
		Use:   "run [SCRIPT]",
		Short: "Run an operation script against a fresh context",
		Long: "Run an operation script against a fresh context\n" +
			"\n" +
			"The script is read from SCRIPT, or from standard input if SCRIPT is absent or \"-\".\n" +
			"Each line holds one operation:\n" +
			"\n" +
			"    push | pop | reset | depth\n" +
			"    insert KEY VALUE\n" +
			"    search KEY\n" +
			"    hash KEY\n" +
			"\n" +
			"KEY is a bare word or a double-quoted Go string (which may contain spaces).\n" +
			"VALUE is a decimal integer; leading zeros do not mean octal.\n" +
			"Blank lines and lines starting with # are ignored. Each operation prints its\n" +
			"outcome; malformed lines are reported together once the script finishes.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "opening script")
				}
				defer contract.IgnoreClose(f)
				r = f
			}

			ctx, err := scope.NewWithOptions(options())
			if err != nil {
				return err
			}
			defer ctx.Release()

			return newInterpreter(ctx, cmd.OutOrStdout()).run(r)
		},
	}
}
