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

import "github.com/fpschema/fpschema/ast"

// IsStringKw reports whether n's structural kind is the string keyword
// (section 6.5's per-variant guards); checked against n's own Kind, which
// is its typed shape: an encoding chain on n does not change the answer.
func IsStringKw(n *ast.Node) bool { return n.Kind() == ast.KindStringKw }

// IsNumberKw reports whether n's structural kind is the number keyword.
func IsNumberKw(n *ast.Node) bool { return n.Kind() == ast.KindNumberKw }

// IsBoolKw reports whether n's structural kind is the boolean keyword.
func IsBoolKw(n *ast.Node) bool { return n.Kind() == ast.KindBoolKw }

// IsBigIntKw reports whether n's structural kind is the bigint keyword.
func IsBigIntKw(n *ast.Node) bool { return n.Kind() == ast.KindBigIntKw }

// IsLiteral reports whether n is a closed single-value type.
func IsLiteral(n *ast.Node) bool { return n.Kind() == ast.KindLiteralType }

// IsEnum reports whether n is a closed named-value set.
func IsEnum(n *ast.Node) bool { return n.Kind() == ast.KindEnums }

// IsTemplate reports whether n is a structural string-pattern type.
func IsTemplate(n *ast.Node) bool { return n.Kind() == ast.KindTemplateLiteral }

// IsTuple reports whether n is a tuple/array type.
func IsTuple(n *ast.Node) bool { return n.Kind() == ast.KindTupleType }

// IsTypeLiteral reports whether n is a record/struct type.
func IsTypeLiteral(n *ast.Node) bool { return n.Kind() == ast.KindTypeLiteral }

// IsUnion reports whether n is a sum type, in either AnyOf or OneOf mode.
func IsUnion(n *ast.Node) bool { return n.Kind() == ast.KindUnionType }

// IsSuspend reports whether n is a lazily-resolved recursive schema node.
func IsSuspend(n *ast.Node) bool { return n.Kind() == ast.KindSuspend }

// IsDeclaration reports whether n is a user-defined opaque type.
func IsDeclaration(n *ast.Node) bool { return n.Kind() == ast.KindDeclaration }

// HasEncoding reports whether n carries a non-empty encoding chain (section 3.4).
func HasEncoding(n *ast.Node) bool { return len(n.Extensions().Encoding) > 0 }

// HasChecks reports whether n carries at least one check.
func HasChecks(n *ast.Node) bool { return len(n.Extensions().Checks) > 0 }
