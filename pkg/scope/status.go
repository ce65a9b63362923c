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

package scope

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status is the result of a context operation. The numeric values are stable; every failure is a distinct negative
// power of two so statuses can be reported as process exit codes.
type Status int

const (
	Success           Status = 0
	NullPointer       Status = -0x01
	AllocationFailure Status = -0x02
	Minimized         Status = -0x04
	Maximized         Status = -0x08
	Redefined         Status = -0x10
	Undefined         Status = -0x20
	InvalidKey        Status = -0x40

	// Unknown is reported for errors that did not originate in this package.
	Unknown Status = 1
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case NullPointer:
		return "null pointer"
	case AllocationFailure:
		return "memory allocation failure"
	case Minimized:
		return "memory is minimised"
	case Maximized:
		return "memory is maximised"
	case Redefined:
		return "redefined"
	case Undefined:
		return "undefined"
	case InvalidKey:
		return "invalid key"
	case Unknown:
		return "unknown error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

var (
	ErrNullPointer       = errors.New(NullPointer.String())
	ErrAllocationFailure = errors.New(AllocationFailure.String())
	ErrMinimized         = errors.New(Minimized.String())
	ErrMaximized         = errors.New(Maximized.String())
	ErrRedefined         = errors.New(Redefined.String())
	ErrUndefined         = errors.New(Undefined.String())
	ErrInvalidKey        = errors.New(InvalidKey.String())
)

// StatusOf maps an error returned by this package, wrapped or not, to its Status. A nil error is Success.
func StatusOf(err error) Status {
	if err == nil {
		return Success
	}
	switch errors.Cause(err) {
	case ErrNullPointer:
		return NullPointer
	case ErrAllocationFailure:
		return AllocationFailure
	case ErrMinimized:
		return Minimized
	case ErrMaximized:
		return Maximized
	case ErrRedefined:
		return Redefined
	case ErrUndefined:
		return Undefined
	case ErrInvalidKey:
		return InvalidKey
	default:
		return Unknown
	}
}
