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

// package schema is the external-interfaces surface (section 6): the
// combinators, decoration helpers, guards and interpretation entry points a
// collaborator uses instead of importing ast/parser/format directly. Every
// function here is a thin, ergonomically-named wrapper; none carries
// behavior of its own beyond what ast/parser/format already implement.
package schema

import (
	"github.com/fpschema/fpschema/ast"
)

// String is the string keyword type (section 6.1).
func String() *ast.Node { return ast.StringKw() }

// Number is the number keyword type.
func Number() *ast.Node { return ast.NumberKw() }

// Boolean is the boolean keyword type.
func Boolean() *ast.Node { return ast.BoolKw() }

// BigInt is the bigint keyword type.
func BigInt() *ast.Node { return ast.BigIntKw() }

// Null is the null keyword type.
func Null() *ast.Node { return ast.NullKw() }

// Undefined is the undefined keyword type.
func Undefined() *ast.Node { return ast.UndefinedKw() }

// Void accepts any value, including absence - distinct from Never (rejects
// everything) and Unknown (accepts anything but stays opaque); see DESIGN.md.
func Void() *ast.Node { return ast.VoidKw() }

// Never rejects every value.
func Never() *ast.Node { return ast.NeverKw() }

// Any accepts any value and passes it through untouched.
func Any() *ast.Node { return ast.AnyKw() }

// Unknown accepts any value opaquely.
func Unknown() *ast.Node { return ast.UnknownKw() }

// Object is the structural object keyword (pre-TypeLiteral object type).
func Object() *ast.Node { return ast.ObjectKw() }

// Literal builds a closed single-value type from one of the accepted
// literal kinds (string/number/bool/bigint).
func Literal(lit ast.LiteralValue) *ast.Node { return ast.Literal(lit) }

// Enum_ builds a closed named-value set (section 6.1's `enum_`,
// trailing underscore to avoid colliding with Go's reserved-adjacent
// "enum" reading as a type keyword in other languages' schema libraries).
func Enum_(members ...ast.EnumMember) *ast.Node { return ast.Enums(members...) }

// Template builds a structural string-pattern type.
func Template(head string, spans ...ast.TemplateSpan) *ast.Node { return ast.Template(head, spans...) }

// Tuple builds a fixed-position sequence type from elements (section 6.1's
// `tuple`); the result has no variadic rest.
func Tuple(elements ...*ast.Node) *ast.Node { return ast.Tuple(false, elements) }

// Array builds a homogeneous variable-length sequence type: a Tuple with no
// fixed elements and a single rest slot.
func Array(element *ast.Node) *ast.Node { return ast.Tuple(false, nil, element) }

// Struct builds a record type from named, ordered fields (section
// 6.1's `struct`, this module's rendition of TypeLiteral with only
// property signatures).
func Struct(fields ...ast.PropertySignature) *ast.Node { return ast.TypeLiteral(fields) }

// Record builds a homogeneous key/value map type: a TypeLiteral with a
// single index signature and no fixed properties (section 6.1's
// `record`).
func Record(key, value *ast.Node) *ast.Node {
	return ast.TypeLiteral(nil, ast.IndexSignature{Parameter: key, Type: value})
}

// Union builds an inclusive (AnyOf) sum type: the value must match at
// least one member.
func Union(members ...*ast.Node) *ast.Node { return ast.Union(ast.AnyOf, members...) }

// OneOf builds an exclusive sum type: the value must match exactly one
// member, otherwise parser.decodeUnion reports issue.OneOf.
func OneOf(members ...*ast.Node) *ast.Node { return ast.Union(ast.OneOf, members...) }

// Declare builds a user-defined type whose decode/encode behavior is
// supplied directly as a DeclParserFunc (section 6.1's `declare`).
func Declare(typeParams []*ast.Node, run func(typeParams []*ast.Node) ast.DeclParserFunc) *ast.Node {
	return ast.Declare(typeParams, run)
}

// Suspend builds a lazily-resolved type for recursive schemas (section
// 6.1's `suspend`); thunk is forced at most once.
func Suspend(thunk func() *ast.Node) *ast.Node { return ast.Suspend(thunk) }

// Field is the ergonomic constructor for a Struct field, defaulting to a
// required, mutable property.
func Field(name string, t *ast.Node) ast.PropertySignature {
	return ast.PropertySignature{Name: name, Type: t}
}

// OptionalField marks a field as optional (section 6.2's
// `optional_key`, applied at the field-declaration call site).
func OptionalField(name string, t *ast.Node) ast.PropertySignature {
	return ast.PropertySignature{Name: name, Type: OptionalKey(t)}
}
