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

package schema

import (
	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/format"
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/parser"
	"github.com/fpschema/fpschema/value"
)

// DecodeUnknown runs schema's decode direction against an abstract value
// tree (section 6.3's `decode_unknown`).
func DecodeUnknown(schema *ast.Node, in value.Value, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	return parser.DecodeUnknown(schema, in, opts)
}

// EncodeUnknown runs schema's encode direction (section 6.3's
// `encode_unknown`), obtained for free by decoding against ast.Flip(schema).
func EncodeUnknown(schema *ast.Node, typed value.Value, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	return parser.EncodeUnknown(schema, typed, opts)
}

// TypeAST strips a schema down to its bare structural shape, discarding
// annotations, checks, encoding chains and context (section 6.4's
// `type_ast`).
func TypeAST(schema *ast.Node) *ast.Node { return ast.TypeAST(schema) }

// Flip swaps a schema's decode and encode directions link-by-link (section 6.4's `flip`).
func Flip(schema *ast.Node) *ast.Node { return ast.Flip(schema) }

// EncodedAST returns the structural shape of schema's wire representation
// (section 6.4's `encoded_ast(ast) = type_ast(flip(ast))`).
func EncodedAST(schema *ast.Node) *ast.Node { return ast.TypeAST(ast.Flip(schema)) }

// Format renders schema as a human-readable type expression (section
// 6.6's `format`).
func Format(schema *ast.Node) string { return format.Format(schema) }
