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

package contract

import (
	"fmt"
	"io"

	"github.com/golang/glog"
)

const failMsg = "A failure has occurred"
const requireMsg = "A precondition has failed"

// Failf unconditionally abandons the process, formatting and logging the given message.
func Failf(msg string, args ...interface{}) {
	failfast(fmt.Sprintf("%v: %v", failMsg, fmt.Sprintf(msg, args...)))
}

// Require checks a precondition on an argument and fails if it does not hold.
func Require(cond bool, param string) {
	if !cond {
		failfast(fmt.Sprintf("%v: %v", requireMsg, param))
	}
}

// Requiref checks a precondition on an argument and fails if it does not hold, formatting the message.
func Requiref(cond bool, param string, msg string, args ...interface{}) {
	if !cond {
		failfast(fmt.Sprintf("%v: %v (%v)", requireMsg, param, fmt.Sprintf(msg, args...)))
	}
}

// IgnoreError explicitly ignores an error. The error is still logged at a high verbosity.
func IgnoreError(err error) {
	if err != nil {
		glog.V(3).Infof("Explicitly ignoring and discarding error: %v", err)
	}
}

// IgnoreClose closes and ignores the returned error. This makes defer closes easier.
func IgnoreClose(cr io.Closer) {
	IgnoreError(cr.Close())
}

// failfast logs and panics the process in a way that is friendly to debugging.
func failfast(msg string) {
	panic(fmt.Sprintf("fatal: %v", msg))
}
