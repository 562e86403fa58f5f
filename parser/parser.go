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

// package parser is the engine's interpreter (section 4.6): it walks
// an AST to produce a decoder, memoized on node identity so recursive
// schemas terminate. It only ever implements one direction - decode - and
// gets the encode direction for free by running the decoder over
// ast.Flip(schema), per section 2's "encode is the dual, obtained by
// flipping the AST and reusing the same interpreter" and section 6.4's
// `encoded_ast(ast) = type_ast(flip(ast))`.
package parser

import (
	"log"

	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/internal/identity"
	"github.com/fpschema/fpschema/internal/telemetry"
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
)

// tracer is nil (silent) by default; set it with WithLogger.
var tracer *telemetry.Tracer

// WithLogger enables tracing of decode/encode attempts (a fail logger and
// an optional separate success logger, both *log.Logger-backed). Disabled
// by default.
func WithLogger(loggers ...*log.Logger) {
	tracer = telemetry.NewTracer(loggers...)
}

// Parser is the interpreter's output for one AST node: a function from an
// optional source value and parse options to an optional decoded value or a
// failing Issue (section 4.6).
type Parser func(in option.Option[value.Value], opts parseopts.Options) (option.Option[value.Value], *issue.Issue)

var parserTable = identity.NewTable(buildParser)

// Go returns the memoized Parser for an AST node (section 4.6: "The
// interpreter is a function go(ast) -> Parser ... memoized on AST
// identity so recursive schemas terminate").
func Go(n *ast.Node) Parser {
	return parserTable.Get(n)
}

// DecodeUnknown runs schema's decoder against a single external value
// (section 6.3).
func DecodeUnknown(schema *ast.Node, in value.Value, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	return Go(schema)(option.Some(in), opts)
}

// EncodeUnknown runs schema's encoder against a single typed value, by
// decoding through the flipped schema (section 6.3, 6.4).
func EncodeUnknown(schema *ast.Node, typed value.Value, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	return Go(ast.Flip(schema))(option.Some(typed), opts)
}

func buildParser(n *ast.Node) Parser {
	switch n.Kind() {
	case ast.KindSuspend:
		return buildSuspendParser(n)
	case ast.KindDeclaration:
		return buildDeclarationParser(n)
	}
	return func(in option.Option[value.Value], opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
		if option.IsNone(in) {
			return option.None[value.Value](), nil
		}
		var out option.Option[value.Value]
		var iss *issue.Issue
		if len(n.Extensions().Encoding) > 0 {
			out, iss = decodeChain(n, in, opts)
		} else {
			v, _ := option.Unwrap(in)
			out, iss = structuralDecode(n, v, opts)
		}
		if iss != nil {
			tracer.Fail("decode %s failed: %v", n.Kind(), iss)
			return option.None[value.Value](), iss
		}
		result, checkIss := runChecks(n, out, opts)
		if checkIss != nil {
			tracer.Fail("checks on %s failed: %v", n.Kind(), checkIss)
		} else {
			tracer.Success("decode %s ok", n.Kind())
		}
		return result, checkIss
	}
}

func buildSuspendParser(n *ast.Node) Parser {
	return func(in option.Option[value.Value], opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
		return Go(n.Force())(in, opts)
	}
}

// buildDeclarationParser resolves a Declaration's Run closure exactly once
// per node (section 4.6.9: "go(Declaration) calls the user-supplied
// run(type_params) once"), since buildParser itself only runs once per
// node thanks to parserTable's memoization.
func buildDeclarationParser(n *ast.Node) Parser {
	decl := n.Declaration()
	run := decl.Run(decl.TypeParams)
	return func(in option.Option[value.Value], opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
		if option.IsNone(in) {
			return option.None[value.Value](), nil
		}
		out, iss := run(in, n, opts)
		if iss != nil {
			return option.None[value.Value](), iss
		}
		return runChecks(n, out, opts)
	}
}
