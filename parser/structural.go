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

// structuralDecode is the per-variant body of section 4.6.2-4.6.5: the
// single large match that section 9's Design Notes says replaces the
// source's per-class dynamic dispatch. v is always present; absence is
// handled by buildParser and decodeChain before this is ever called.
func structuralDecode(n *ast.Node, v value.Value, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	switch n.Kind() {
	case ast.KindNullKw:
		return acceptIf(n, v, v.Tag() == value.TagNull)
	case ast.KindUndefinedKw:
		return acceptIf(n, v, v.Tag() == value.TagUndefined)
	case ast.KindVoidKw:
		// Open question (section 9): the source leaves it ambiguous
		// whether Void is deliberately permissive or a latent bug. This
		// implementation treats it as "accept any value", matching the
		// source's VoidKeyword predicate as observed rather than
		// NeverKeyword's "accept nothing" - see DESIGN.md.
		return option.Some(v), nil
	case ast.KindNeverKw:
		return option.None[value.Value](), issue.InvalidType(n, v)
	case ast.KindAnyKw, ast.KindUnknownKw:
		return option.Some(v), nil
	case ast.KindStringKw:
		return acceptIf(n, v, v.Tag() == value.TagStr)
	case ast.KindNumberKw:
		return acceptIf(n, v, v.Tag() == value.TagNum)
	case ast.KindBoolKw:
		return acceptIf(n, v, v.Tag() == value.TagBool)
	case ast.KindBigIntKw:
		return acceptIf(n, v, v.Tag() == value.TagBigInt)
	case ast.KindSymbolKw:
		return acceptIf(n, v, v.Tag() == value.TagSym)
	case ast.KindObjectKw:
		return acceptIf(n, v, v.Tag() == value.TagMap || v.Tag() == value.TagSeq)
	case ast.KindLiteralType:
		return acceptIf(n, v, n.Literal().Matches(v))
	case ast.KindUniqueSymbol:
		sym, ok := v.AsSym()
		return acceptIf(n, v, ok && sym == n.UniqueSymbolID())
	case ast.KindEnums:
		for _, m := range n.EnumMembers() {
			if m.Value.Matches(v) {
				return option.Some(v), nil
			}
		}
		return option.None[value.Value](), issue.InvalidType(n, v)
	case ast.KindTemplateLiteral:
		if v.Tag() != value.TagStr {
			return option.None[value.Value](), issue.InvalidType(n, v)
		}
		s, _ := v.AsStr()
		if !ast.TemplateRegex(n).MatchString(s) {
			return option.None[value.Value](), issue.InvalidType(n, v)
		}
		return option.Some(v), nil
	case ast.KindTupleType:
		return decodeTuple(n, v, opts)
	case ast.KindTypeLiteral:
		return decodeTypeLiteral(n, v, opts)
	case ast.KindUnionType:
		return decodeUnion(n, v, opts)
	case ast.KindSuspend:
		return Go(n.Force())(option.Some(v), opts)
	}
	return option.None[value.Value](), issue.InvalidType(n, v)
}

func acceptIf(n *ast.Node, v value.Value, ok bool) (option.Option[value.Value], *issue.Issue) {
	if ok {
		return option.Some(v), nil
	}
	return option.None[value.Value](), issue.InvalidType(n, v)
}
