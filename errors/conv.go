// Copyright (c) 2023 IBM Corp.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// package errors bridges Go's error chains and the engine's own *issue.Issue
// values, per section 7: recoverable failures travel as Issue values,
// but collaborators outside the engine deal in plain `error`, so an Issue
// always also satisfies the error interface and can be recovered with As.
package errors

import (
	"errors"

	O "github.com/fpschema/fpschema/option"
)

// As tries to extract the error of the desired concrete type from a generic error,
// e.g. errors.As[*issue.Issue]()(err) recovers a structured Issue from a wrapped error.
func As[A error]() func(error) O.Option[A] {
	return func(err error) O.Option[A] {
		var a A
		if errors.As(err, &a) {
			return O.Some(a)
		}
		return O.None[A]()
	}
}
