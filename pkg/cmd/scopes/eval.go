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
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pulumi/scopestack/pkg/bind"
	"github.com/pulumi/scopestack/pkg/scope"
)

func newEvalCmd(options func() scope.Options) *cobra.Command {
	var color bool
	var width uint

	cmd := &cobra.Command{
		Use:   "eval FILE...",
		Short: "Evaluate HCL binding files",
		Long: "Evaluate HCL binding files\n" +
			"\n" +
			"Top-level attributes bind names in the global scope and `scope` blocks open nested\n" +
			"scopes. Every binding is printed, indented by its depth, followed by any diagnostics.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, diags, err := bind.BindFiles(args, options())
			if err != nil {
				return err
			}

			out := newFormatter(cmd.OutOrStdout())
			for _, b := range program.Bindings {
				out.SetDepth(b.Depth)
				out.Printf("%s = %d", b.Name, b.Value)
			}

			if len(diags) > 0 {
				w := program.NewDiagnosticWriter(cmd.OutOrStderr(), width, color)
				if err := w.WriteDiagnostics(diags); err != nil {
					return err
				}
			}
			if diags.HasErrors() {
				return errors.Errorf("binding failed with %d error(s)", len(diags.Errs()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&color, "color", false, "Colorize diagnostics")
	cmd.Flags().UintVar(&width, "width", 0, "Wrap diagnostics at this many columns (0 for no wrapping)")

	return cmd
}
