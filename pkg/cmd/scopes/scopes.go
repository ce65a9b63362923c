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

// Package scopes implements the `scopes` command line tool, which evaluates HCL binding files and runs operation
// scripts against a scoped binding context.
package scopes

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pulumi/scopestack/pkg/scope"
	"github.com/pulumi/scopestack/pkg/util/logging"
)

// NewScopesCmd creates the root command, reading scripts from standard input when no file is named.
func NewScopesCmd() *cobra.Command {
	return newScopesCmd(os.Stdin)
}

func newScopesCmd(stdin io.Reader) *cobra.Command {
	gf := &globalFlags{}
	var opts scope.Options

	cmd := &cobra.Command{
		Use:   "scopes",
		Short: "Scoped symbol bindings",
		Long: "Scoped symbol bindings\n" +
			"\n" +
			"Bind names to integers in nested scopes and resolve them innermost scope first.\n" +
			"Each scope is a fixed-size hash table; see --capacity.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.InitLogging(gf.logToStderr, gf.verbose)

			var err error
			opts, err = loadOptions(gf, cmd.Flags())
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Flush()
		},
	}

	cmd.PersistentFlags().StringVar(&gf.configFile, "config", "",
		"YAML file with capacity, maxKeyLength and maxDepth settings")
	cmd.PersistentFlags().IntVar(&gf.capacity, "capacity", scope.DefaultCapacity,
		"Number of slots in each scope")
	cmd.PersistentFlags().IntVar(&gf.maxKeyLength, "max-key-length", scope.DefaultMaxKeyLength,
		"Longest accepted name, in bytes")
	cmd.PersistentFlags().IntVar(&gf.maxDepth, "max-depth", 0,
		"Maximum number of live scopes (0 for no limit)")
	cmd.PersistentFlags().BoolVar(&gf.logToStderr, "logtostderr", false,
		"Log to stderr instead of to files")
	cmd.PersistentFlags().IntVarP(&gf.verbose, "verbose", "v", 0,
		"Enable verbose logging (e.g., v=3); anything >3 is very verbose")

	options := func() scope.Options { return opts }
	cmd.AddCommand(newEvalCmd(options))
	cmd.AddCommand(newRunCmd(options, stdin))
	cmd.AddCommand(newHashCmd(options))

	return cmd
}
