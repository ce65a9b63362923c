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
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/multierr"

	"github.com/pulumi/scopestack/pkg/scope"
	"github.com/pulumi/scopestack/pkg/util/logging"
)

// decimal matches the values an insert accepts.
var decimal = regexp.MustCompile(`^[+-]?[0-9]+$`)

// interpreter runs operation scripts against a context, printing one outcome line per operation.
type interpreter struct {
	ctx *scope.Context
	out *formatter
}

func newInterpreter(ctx *scope.Context, w io.Writer) *interpreter {
	return &interpreter{ctx: ctx, out: newFormatter(w)}
}

// run executes every line of r. Failed operations are outcomes and are printed; malformed lines are skipped and
// returned together once the script ends.
func (it *interpreter) run(r io.Reader) error {
	var result error

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := it.exec(text); err != nil {
			result = multierr.Append(result, errors.Wrapf(err, "line %d", line))
		}
	}
	if err := scanner.Err(); err != nil {
		result = multierr.Append(result, errors.Wrap(err, "reading script"))
	}
	return result
}

func (it *interpreter) exec(text string) error {
	fields := splitFields(text)
	op, args := fields[0], fields[1:]
	logging.V(9).Infof("script: %s", text)

	switch op {
	case "push", "pop", "reset", "depth":
		if len(args) != 0 {
			return errors.Errorf("%s takes no arguments", op)
		}
	case "search", "hash":
		if len(args) != 1 {
			return errors.Errorf("%s expects KEY", op)
		}
	case "insert":
		if len(args) != 2 {
			return errors.Errorf("insert expects KEY VALUE")
		}
	default:
		return errors.Errorf("unknown operation %q", op)
	}

	// Outcomes print at the depth the operation ran in.
	it.out.SetDepth(it.ctx.Depth())

	switch op {
	case "push":
		it.report(text, it.ctx.Push())
	case "pop":
		it.report(text, it.ctx.Pop())
	case "reset":
		it.ctx.Reset()
		it.report(text, nil)
	case "depth":
		it.out.Printf("%s: %d", text, it.ctx.Depth())
	case "hash":
		key, err := parseKey(args[0])
		if err != nil {
			return err
		}
		it.out.Printf("%s: %d", text, it.ctx.Bucket(key))
	case "search":
		key, err := parseKey(args[0])
		if err != nil {
			return err
		}
		v, err := it.ctx.Search(key)
		if err != nil {
			it.report(text, err)
		} else {
			it.out.Printf("%s: %d", text, v)
		}
	case "insert":
		key, err := parseKey(args[0])
		if err != nil {
			return err
		}
		value, err := parseValue(args[1])
		if err != nil {
			return err
		}
		it.report(text, it.ctx.Insert(key, value))
	}
	return nil
}

func (it *interpreter) report(text string, err error) {
	if err != nil {
		it.out.Printf("%s: %s", text, scope.StatusOf(err))
		return
	}
	it.out.Printf("%s: ok", text)
}

// parseKey accepts a bare word or a Go-quoted string, so that keys like "" can be written.
func parseKey(arg string) (string, error) {
	if !strings.HasPrefix(arg, `"`) {
		return arg, nil
	}
	key, err := strconv.Unquote(arg)
	if err != nil {
		return "", errors.Wrapf(err, "invalid key %s", arg)
	}
	return key, nil
}

// splitFields splits a script line at whitespace. A field that opens with a double quote runs to the matching
// unescaped quote, so quoted keys may contain spaces.
func splitFields(line string) []string {
	var fields []string
	for i := 0; i < len(line); {
		if isSpace(line[i]) {
			i++
			continue
		}

		start := i
		if line[i] == '"' {
			for i++; i < len(line) && line[i] != '"'; i++ {
				if line[i] == '\\' {
					i++
				}
			}
			i++
		}
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		if i > len(line) {
			i = len(line)
		}
		fields = append(fields, line[start:i])
	}
	return fields
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// parseValue reads a base-10 integer. Leading zeros are insignificant rather than an octal prefix.
func parseValue(arg string) (int, error) {
	if !decimal.MatchString(arg) {
		return 0, errors.Errorf("invalid value %q: expected a decimal integer", arg)
	}

	sign, digits := "", arg
	if arg[0] == '+' || arg[0] == '-' {
		sign, digits = arg[:1], arg[1:]
	}
	if digits = strings.TrimLeft(digits, "0"); digits == "" {
		digits = "0"
	}

	v, err := cast.ToIntE(sign + digits)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value %q", arg)
	}
	return v, nil
}
