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

// package ast implements the engine's central entity (section 3.3):
// an immutable tagged tree of type constructors, carrying per-node
// annotations, checks, an encoding chain and optionality/mutability
// context without inflating the leaf cases, per the Design Notes'
// "Tagged variants replace class hierarchy" - one Kind enum and one Node
// struct stand in for a class hierarchy.
package ast

import (
	"github.com/fpschema/fpschema/check"
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/value"
)

// Kind discriminates the AST node variants of section 3.3.
type Kind int

const (
	KindNullKw Kind = iota
	KindUndefinedKw
	KindVoidKw
	KindNeverKw
	KindAnyKw
	KindUnknownKw
	KindStringKw
	KindNumberKw
	KindBoolKw
	KindBigIntKw
	KindSymbolKw
	KindObjectKw
	KindLiteralType
	KindUniqueSymbol
	KindEnums
	KindTemplateLiteral
	KindTupleType
	KindTypeLiteral
	KindUnionType
	KindSuspend
	KindDeclaration
)

var kindNames = map[Kind]string{
	KindNullKw:          "null",
	KindUndefinedKw:     "undefined",
	KindVoidKw:          "void",
	KindNeverKw:         "never",
	KindAnyKw:           "any",
	KindUnknownKw:       "unknown",
	KindStringKw:        "string",
	KindNumberKw:        "number",
	KindBoolKw:          "boolean",
	KindBigIntKw:        "bigint",
	KindSymbolKw:        "symbol",
	KindObjectKw:        "object",
	KindLiteralType:     "literal",
	KindUniqueSymbol:    "unique symbol",
	KindEnums:           "enum",
	KindTemplateLiteral: "template literal",
	KindTupleType:       "tuple",
	KindTypeLiteral:     "struct",
	KindUnionType:       "union",
	KindSuspend:         "suspend",
	KindDeclaration:     "declaration",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// NodeContext carries the semantic markers that are only meaningful when a
// node appears as a property/element type (section 3.3, invariant 2).
type NodeContext struct {
	IsOptional  bool
	IsReadonly  bool
	CtorDefault Transformer
}

// Extensions are the four fields every AST variant carries (3.3).
type Extensions struct {
	Annotations map[string]any
	Checks      []check.Check
	Encoding    []Link
	Context     *NodeContext
}

func emptyExtensions() Extensions {
	return Extensions{}
}

// Node is one AST node. All payload fields are only meaningful for their
// corresponding Kind; Node is intentionally a flat struct rather than an
// interface hierarchy (section 9, Design Notes).
type Node struct {
	kind Kind
	ext  Extensions

	literal      LiteralValue     // KindLiteralType
	uniqueSymbol value.SymbolID   // KindUniqueSymbol
	enums        []EnumMember     // KindEnums
	template     TemplateSpec     // KindTemplateLiteral
	tuple        TupleSpec        // KindTupleType
	typeLiteral  TypeLiteralSpec  // KindTypeLiteral
	union        UnionSpec        // KindUnionType
	suspend      *suspendState    // KindSuspend
	decl         *DeclarationSpec // KindDeclaration
}

func (n *Node) Kind() Kind             { return n.kind }
func (n *Node) Extensions() Extensions { return n.ext }

// Describe implements issue.Node: a short, human-readable label for the
// node's type. format.Format gives the fuller rendering; this is the
// minimal surface the issue package needs without depending on ast (and
// without ast depending back on format).
func (n *Node) Describe() string {
	switch n.kind {
	case KindLiteralType:
		return n.literal.String()
	case KindTupleType:
		return "tuple"
	case KindTypeLiteral:
		return "struct"
	case KindUnionType:
		return "union"
	case KindEnums:
		return "enum"
	case KindTemplateLiteral:
		return "template literal"
	default:
		return n.kind.String()
	}
}

var _ issue.Node = (*Node)(nil)
