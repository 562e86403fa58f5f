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

package ast

import "github.com/fpschema/fpschema/value"

func keyword(k Kind) *Node {
	return &Node{kind: k, ext: emptyExtensions()}
}

func NullKw() *Node      { return keyword(KindNullKw) }
func UndefinedKw() *Node { return keyword(KindUndefinedKw) }
func VoidKw() *Node      { return keyword(KindVoidKw) }
func NeverKw() *Node     { return keyword(KindNeverKw) }
func AnyKw() *Node       { return keyword(KindAnyKw) }
func UnknownKw() *Node   { return keyword(KindUnknownKw) }
func StringKw() *Node    { return keyword(KindStringKw) }
func NumberKw() *Node    { return keyword(KindNumberKw) }
func BoolKw() *Node      { return keyword(KindBoolKw) }
func BigIntKw() *Node    { return keyword(KindBigIntKw) }
func SymbolKw() *Node    { return keyword(KindSymbolKw) }
func ObjectKw() *Node    { return keyword(KindObjectKw) }

// Literal builds a LiteralType node from a single literal value.
func Literal(lit LiteralValue) *Node {
	return &Node{kind: KindLiteralType, ext: emptyExtensions(), literal: lit}
}

// UniqueSymbol builds an identity-based singleton type.
func UniqueSymbol(id value.SymbolID) *Node {
	return &Node{kind: KindUniqueSymbol, ext: emptyExtensions(), uniqueSymbol: id}
}

// Enums builds a closed set of named values.
func Enums(members ...EnumMember) *Node {
	return &Node{kind: KindEnums, ext: emptyExtensions(), enums: append([]EnumMember(nil), members...)}
}

// Template builds a structural string pattern from a head literal and an
// ordered list of capturing spans (section 3.3, 4.6.7).
func Template(head string, spans ...TemplateSpan) *Node {
	return &Node{
		kind: KindTemplateLiteral,
		ext:  emptyExtensions(),
		template: TemplateSpec{
			Head:  head,
			Spans: append([]TemplateSpan(nil), spans...),
		},
	}
}

// Tuple builds a fixed-position sequence type, with an optional variadic
// middle: rest's first entry is the variadic head, the remainder are fixed
// post-rest elements (section 3.3, 4.6.3).
func Tuple(isReadonly bool, elements []*Node, rest ...*Node) *Node {
	return &Node{
		kind: KindTupleType,
		ext:  emptyExtensions(),
		tuple: TupleSpec{
			IsReadonly: isReadonly,
			Elements:   append([]*Node(nil), elements...),
			Rest:       append([]*Node(nil), rest...),
		},
	}
}

// TypeLiteral builds a record type from property signatures and index
// signatures (section 3.3, 4.6.4).
func TypeLiteral(propSigs []PropertySignature, indexSigs ...IndexSignature) *Node {
	return &Node{
		kind: KindTypeLiteral,
		ext:  emptyExtensions(),
		typeLiteral: TypeLiteralSpec{
			PropertySigs: append([]PropertySignature(nil), propSigs...),
			IndexSigs:    append([]IndexSignature(nil), indexSigs...),
		},
	}
}

// Union builds a disjoint (OneOf) or inclusive (AnyOf) sum type.
func Union(mode UnionMode, types ...*Node) *Node {
	return &Node{
		kind:  KindUnionType,
		ext:   emptyExtensions(),
		union: UnionSpec{Types: append([]*Node(nil), types...), Mode: mode},
	}
}

// Suspend builds a lazily-unfolded node for recursive schemas (section 3.3, invariant 3).
func Suspend(thunk func() *Node) *Node {
	return &Node{
		kind:    KindSuspend,
		ext:     emptyExtensions(),
		suspend: &suspendState{thunk: thunk},
	}
}

// Declare builds a user-defined opaque type (section 3.3, 4.6.9).
func Declare(typeParams []*Node, run func(typeParams []*Node) DeclParserFunc) *Node {
	return &Node{
		kind: KindDeclaration,
		ext:  emptyExtensions(),
		decl: &DeclarationSpec{TypeParams: append([]*Node(nil), typeParams...), Run: run},
	}
}
