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

package transform

import (
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/value"
)

// WithDecodingDefault substitutes f() when the input slot is absent during
// decode; encode is identity (section 4.4).
func WithDecodingDefault(f func() value.Value) Transformation {
	return Transformation{
		DecodeFn: func(in option.Option[value.Value]) (option.Option[value.Value], *issue.Issue) {
			if v, ok := option.Unwrap(in); ok {
				return option.Some(v), nil
			}
			return option.Some(f()), nil
		},
		EncodeFn: identityGetter,
	}
}

// OmitKeyUnless drops the key from its containing record during decode
// unless pred holds on the present value; encode is identity (section
// 4.4).
func OmitKeyUnless(pred func(value.Value) bool) Transformation {
	return Transformation{
		DecodeFn: func(in option.Option[value.Value]) (option.Option[value.Value], *issue.Issue) {
			v, ok := option.Unwrap(in)
			if !ok || !pred(v) {
				return option.None[value.Value](), nil
			}
			return option.Some(v), nil
		},
		EncodeFn: identityGetter,
	}
}

// OmitKeyWhen drops the key from its containing record during decode when
// pred holds on the present value; encode is identity (section 4.4).
func OmitKeyWhen(pred func(value.Value) bool) Transformation {
	return OmitKeyUnless(func(v value.Value) bool { return !pred(v) })
}
