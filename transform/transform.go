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

// package transform holds the bidirectional, possibly-failing value
// mappings (section 3.5) that a Link runs between two points of an
// encoding chain: Transformation and its AST-aware variant, Middleware,
// plus a library of built-in coercions and string transformers (section
// 4.4). There is no generator-style suspension of a transformation
// mid-decode here - every Getter runs synchronously to completion.
package transform

import (
	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
)

// Getter is a total function from an optional source value to a decode (or
// encode) result: success with an optional target value, or failure with an
// Issue (section 3.5).
type Getter func(in option.Option[value.Value]) (option.Option[value.Value], *issue.Issue)

// Transformation is a plain bidirectional mapping: decode runs one way,
// encode the other (section 3.5).
type Transformation struct {
	DecodeFn Getter
	EncodeFn Getter
}

func (t Transformation) Decode(in option.Option[value.Value], _ *ast.Node, _ parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	return t.DecodeFn(in)
}

func (t Transformation) Encode(in option.Option[value.Value], _ *ast.Node, _ parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	return t.EncodeFn(in)
}

func (t Transformation) Flip() ast.Transformer {
	return Transformation{DecodeFn: t.EncodeFn, EncodeFn: t.DecodeFn}
}

var _ ast.Transformer = Transformation{}

// MiddlewareGetter is a Getter that additionally receives the node it sits
// on and the active parse options (section 3.5).
type MiddlewareGetter func(in option.Option[value.Value], self *ast.Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue)

// Middleware is a Transformation variant for transformations that need to
// inspect their surrounding AST or the caller's parse options.
type Middleware struct {
	DecodeFn MiddlewareGetter
	EncodeFn MiddlewareGetter
}

func (m Middleware) Decode(in option.Option[value.Value], self *ast.Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	return m.DecodeFn(in, self, opts)
}

func (m Middleware) Encode(in option.Option[value.Value], self *ast.Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	return m.EncodeFn(in, self, opts)
}

func (m Middleware) Flip() ast.Transformer {
	return Middleware{DecodeFn: m.EncodeFn, EncodeFn: m.DecodeFn}
}

var _ ast.Transformer = Middleware{}

// Compose chains two transformers into one step: first's target feeds
// second's source on decode, and the reverse on encode (section 4.4).
func Compose(first, second ast.Transformer) ast.Transformer {
	return Middleware{
		DecodeFn: func(in option.Option[value.Value], self *ast.Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
			mid, iss := first.Decode(in, self, opts)
			if iss != nil {
				return option.None[value.Value](), iss
			}
			return second.Decode(mid, self, opts)
		},
		EncodeFn: func(in option.Option[value.Value], self *ast.Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
			mid, iss := second.Encode(in, self, opts)
			if iss != nil {
				return option.None[value.Value](), iss
			}
			return first.Encode(mid, self, opts)
		},
	}
}
