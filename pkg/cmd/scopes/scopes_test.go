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
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	cmd := newScopesCmd(strings.NewReader(stdin))
	var buf bytes.Buffer
	cmd.SetOutput(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func tempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "scopes")
	require.NoError(t, err)
	return dir, func() { _ = os.RemoveAll(dir) }
}

func writeFile(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestHashCmd(t *testing.T) {
	out, err := execute(t, "", "hash", "a", "hello", "ab")
	require.NoError(t, err)
	assert.Equal(t, "a 193\nhello 193\nab 102\n", out)

	out, err = execute(t, "", "--capacity", "8", "hash", "ab")
	require.NoError(t, err)
	assert.Equal(t, "ab 6\n", out)
}

func TestRunCmdStdin(t *testing.T) {
	out, err := execute(t, "insert a 1\nsearch a\n", "run")
	require.NoError(t, err)
	assert.Equal(t, "insert a 1: ok\nsearch a: 1\n", out)
}

func TestRunCmdFile(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()
	script := writeFile(t, dir, "ops.txt", "push\npush\npush\ndepth\n")

	out, err := execute(t, "", "--max-depth", "2", "run", script)
	require.NoError(t, err)
	assert.Equal(t, "push: ok\n    push: memory allocation failure\n    push: memory allocation failure\n    depth: 2\n", out)

	_, err = execute(t, "", "run", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestEvalCmd(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()
	file := writeFile(t, dir, "main.hcl", `
base = 10
scope {
  offset = base + 5
}
`)

	out, err := execute(t, "", "eval", file)
	require.NoError(t, err)
	assert.Equal(t, "base = 10\n    offset = 15\n", out)
}

func TestEvalCmdDiagnostics(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()
	file := writeFile(t, dir, "main.hcl", `
base  = 1
value = bse
`)

	out, err := execute(t, "", "eval", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "binding failed with 1 error(s)")
	assert.Contains(t, out, "base = 1\n")
	assert.Contains(t, out, `undefined variable "bse"`)
	assert.Contains(t, out, `Did you mean "base"?`)
}

func TestConfigFile(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()
	config := writeFile(t, dir, "scopes.yaml", "capacity: 4\nmaxKeyLength: 2\n")

	out, err := execute(t, "insert abc 1\ninsert ab 1\n", "--config", config, "run")
	require.NoError(t, err)
	assert.Equal(t, "insert abc 1: invalid key\ninsert ab 1: ok\n", out)

	out, err = execute(t, "", "--config", config, "hash", "ab")
	require.NoError(t, err)
	assert.Equal(t, "ab 2\n", out)

	// Flags win over the file.
	out, err = execute(t, "", "--config", config, "--capacity", "256", "hash", "ab")
	require.NoError(t, err)
	assert.Equal(t, "ab 102\n", out)
}

func TestConfigErrors(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	unknown := writeFile(t, dir, "unknown.yaml", "capacity: 4\nslots: 9\n")
	_, err := execute(t, "", "--config", unknown, "hash", "a")
	assert.Error(t, err)

	_, err = execute(t, "", "--capacity", "0", "hash", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity must be positive")

	// Oversized tables are refused before any scope is allocated.
	_, err = execute(t, "push\n", "--capacity", "1000000000000", "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity must be at most")

	_, err = execute(t, "", "--config", filepath.Join(dir, "missing.yaml"), "hash", "a")
	assert.Error(t, err)
}
