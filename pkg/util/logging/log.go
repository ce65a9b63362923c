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

// Package logging wraps glog so that verbosity can be driven from cobra flags instead of the global flag set.
//
// Levels used across this repository:
//
//	5 - binder file and block processing
//	7 - scope push, pop and reset
//	9 - individual inserts and probe collisions
package logging

import (
	"flag"
	"strconv"
	"sync"

	"github.com/golang/glog"
)

var LogToStderr = false // true if logging is being redirected to stderr.
var Verbose = 0         // >0 if verbose logging is enabled at a particular level.

var initOnce sync.Once

// V returns a glog.Verbose that logs only when the configured verbosity is at least level.
func V(level glog.Level) glog.Verbose {
	return glog.V(level)
}

// InitLogging ensures the logging library has been initialized with the given settings.
func InitLogging(logToStderr bool, verbose int) {
	LogToStderr = logToStderr
	Verbose = verbose

	// glog reads its configuration from the standard flag set, which cobra does not populate. Parse an empty
	// argument list once so glog stops complaining, then set the flags we care about directly.
	initOnce.Do(func() {
		if !flag.Parsed() {
			assertNoError(flag.CommandLine.Parse([]string{}))
		}
	})
	if logToStderr {
		assertNoError(flag.Lookup("logtostderr").Value.Set("true"))
	}
	if verbose > 0 {
		assertNoError(flag.Lookup("v").Value.Set(strconv.Itoa(verbose)))
	}
}

// Flush writes any buffered log entries.
func Flush() {
	glog.Flush()
}

func assertNoError(err error) {
	if err != nil {
		failfast(err.Error())
	}
}

func failfast(msg string) {
	panic("fatal: " + msg)
}
