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

import (
	"sync"

	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
)

// TemplateSpan is one capturing part of a TemplateLiteral, paired with the
// literal text that follows it (section 4.6.7's regex-compilation
// algorithm: "^<head><span1><literal1><span2><literal2>...$").
type TemplateSpan struct {
	Pattern *Node
	Literal string
}

// TemplateSpec is a TemplateLiteral's payload (section 3.3).
type TemplateSpec struct {
	Head  string
	Spans []TemplateSpan
}

// TupleSpec is a TupleType's payload (section 3.3). Rest's first
// element, if any, is the variadic head; the remainder are fixed post-rest
// elements (section 4.6.3).
type TupleSpec struct {
	IsReadonly bool
	Elements   []*Node
	Rest       []*Node
}

// PropertySignature is one named property of a TypeLiteral.
type PropertySignature struct {
	Name string
	Type *Node
}

// IndexSignature is a TypeLiteral's catch-all key/value mapping, with an
// optional Merge resolving key collisions (section 4.6.4).
type IndexSignature struct {
	Parameter *Node
	Type      *Node
	Merge     *Merge
}

// TypeLiteralSpec is a TypeLiteral's payload (section 3.3).
type TypeLiteralSpec struct {
	PropertySigs []PropertySignature
	IndexSigs    []IndexSignature
}

// UnionMode selects AnyOf (first success wins) or OneOf (exactly one
// success required) union semantics (section 4.6.5).
type UnionMode int

const (
	AnyOf UnionMode = iota
	OneOf
)

// UnionSpec is a UnionType's payload (section 3.3).
type UnionSpec struct {
	Types []*Node
	Mode  UnionMode
}

// suspendState holds a Suspend node's lazy thunk, memoized exactly once on
// first force (section 3.3, invariant 3) via sync.Once so repeated
// forces - even concurrent ones - return the same pointer.
type suspendState struct {
	once   sync.Once
	thunk  func() *Node
	forced *Node
}

func (s *suspendState) force() *Node {
	s.once.Do(func() {
		s.forced = s.thunk()
	})
	return s.forced
}

// DeclParserFunc is the closure a Declaration's Run produces: the actual
// parser body for a user-defined opaque type (section 4.6.9).
type DeclParserFunc func(in option.Option[value.Value], self *Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue)

// DeclarationSpec is a Declaration node's payload (section 3.3).
type DeclarationSpec struct {
	TypeParams []*Node
	Run        func(typeParams []*Node) DeclParserFunc
}
