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

package parser

import (
	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
)

// decodeUnion implements section 4.6.5: prune candidates by runtime
// tag against the static lookup table, then try each survivor in
// declaration order - AnyOf returns on first success, OneOf demands
// exactly one.
func decodeUnion(n *ast.Node, v value.Value, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	spec := n.Union()
	candidates := filterCandidates(spec.Types, v.Tag())
	if len(candidates) == 0 {
		return option.None[value.Value](), issue.InvalidType(n, v)
	}

	var failures []*issue.Issue
	var success option.Option[value.Value]
	successCount := 0

	for _, c := range candidates {
		out, iss := Go(c)(option.Some(v), opts)
		if iss != nil {
			failures = append(failures, iss)
			continue
		}
		successCount++
		if spec.Mode == ast.AnyOf {
			return out, nil
		}
		success = out
	}

	if spec.Mode == ast.OneOf {
		if successCount > 1 {
			return option.None[value.Value](), issue.OneOf(n, v)
		}
		if successCount == 1 {
			return success, nil
		}
	}

	if len(failures) > 0 {
		return option.None[value.Value](), issue.Composite(n, v, failures)
	}
	return option.None[value.Value](), issue.InvalidType(n, v)
}

// filterCandidates keeps only the union members whose encoded-side tag set
// (section 4.6.5's static table) admits tag.
func filterCandidates(types []*ast.Node, tag value.Tag) []*ast.Node {
	out := make([]*ast.Node, 0, len(types))
	for _, t := range types {
		if candidateAccepts(t, tag) {
			out = append(out, t)
		}
	}
	return out
}

func candidateAccepts(n *ast.Node, tag value.Tag) bool {
	switch ast.TypeAST(ast.Flip(n)).Kind() {
	case ast.KindNullKw:
		return tag == value.TagNull
	case ast.KindUndefinedKw, ast.KindVoidKw:
		return tag == value.TagUndefined
	case ast.KindStringKw, ast.KindTemplateLiteral:
		return tag == value.TagStr
	case ast.KindNumberKw:
		return tag == value.TagNum
	case ast.KindBoolKw:
		return tag == value.TagBool
	case ast.KindSymbolKw, ast.KindUniqueSymbol:
		return tag == value.TagSym
	case ast.KindBigIntKw:
		return tag == value.TagBigInt
	case ast.KindTypeLiteral, ast.KindObjectKw:
		return tag == value.TagMap || tag == value.TagSeq
	case ast.KindEnums:
		return tag == value.TagStr || tag == value.TagNum
	case ast.KindTupleType:
		return tag == value.TagSeq
	default:
		// LiteralType, Declaration, NeverKw, AnyKw, UnknownKw, UnionType,
		// Suspend all admit any tag per the table.
		return true
	}
}
