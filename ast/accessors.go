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

// Literal returns the LiteralType payload. Only meaningful when Kind() == KindLiteralType.
func (n *Node) Literal() LiteralValue { return n.literal }

// UniqueSymbolID returns the UniqueSymbol payload.
func (n *Node) UniqueSymbolID() value.SymbolID { return n.uniqueSymbol }

// EnumMembers returns the Enums payload.
func (n *Node) EnumMembers() []EnumMember { return n.enums }

// Template returns the TemplateLiteral payload.
func (n *Node) Template() TemplateSpec { return n.template }

// Tuple returns the TupleType payload.
func (n *Node) Tuple() TupleSpec { return n.tuple }

// TypeLiteral returns the TypeLiteral payload.
func (n *Node) TypeLiteral() TypeLiteralSpec { return n.typeLiteral }

// Union returns the UnionType payload.
func (n *Node) Union() UnionSpec { return n.union }

// Force resolves a Suspend node's thunk, memoized on first call (section 3.3, invariant 3; section 4.6.8).
func (n *Node) Force() *Node {
	if n.suspend == nil {
		return n
	}
	return n.suspend.force()
}

// Declaration returns the Declaration payload.
func (n *Node) Declaration() *DeclarationSpec { return n.decl }

// IsOptional reports whether the node's context marks it optional (section 3.3, invariant 2 - only meaningful for property/element types).
func (n *Node) IsOptional() bool {
	return n.ext.Context != nil && n.ext.Context.IsOptional
}

// IsReadonly reports whether the node's context marks it readonly.
func (n *Node) IsReadonly() bool {
	return n.ext.Context != nil && n.ext.Context.IsReadonly
}

// CtorDefault returns the node's constructor-default transformation, if any.
func (n *Node) CtorDefault() (Transformer, bool) {
	if n.ext.Context == nil || n.ext.Context.CtorDefault == nil {
		return nil, false
	}
	return n.ext.Context.CtorDefault, true
}
