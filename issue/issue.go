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

// package issue implements the structured, path-qualified decode/encode
// error tree of section 3.7: a recoverable failure is always an
// *Issue, never a bare error (section 7's propagation policy) - though
// *Issue also satisfies the error interface so it composes with errors.Is
// and errors.As for collaborators that only deal in plain `error`.
package issue

import "github.com/fpschema/fpschema/value"

// Kind discriminates the seven Issue variants of section 3.7.
type Kind int

const (
	KindInvalidType Kind = iota
	KindInvalidValue
	KindMissingKey
	KindForbidden
	KindOneOf
	KindPointer
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindInvalidType:
		return "invalid_type"
	case KindInvalidValue:
		return "invalid_value"
	case KindMissingKey:
		return "missing_key"
	case KindForbidden:
		return "forbidden"
	case KindOneOf:
		return "one_of"
	case KindPointer:
		return "pointer"
	case KindComposite:
		return "composite"
	}
	return "unknown"
}

// Node is the minimal surface an AST node must offer to appear inside an
// Issue. It exists so this package never has to import the ast package -
// ast imports issue (its Transformer methods return *Issue), so the
// dependency cannot run the other way.
type Node interface {
	// Describe returns a short, human-readable label for the node's type,
	// e.g. "string", "tuple".
	Describe() string
}

// Issue is an immutable node of the structured error tree.
type Issue struct {
	kind     Kind
	node     Node
	actual   value.Value
	hasActual bool
	reason   string
	path     []PathSegment
	inner    *Issue
	children []*Issue
}

func InvalidType(node Node, actual value.Value) *Issue {
	return &Issue{kind: KindInvalidType, node: node, actual: actual, hasActual: true}
}

func InvalidValue(actual value.Value, reason string) *Issue {
	return &Issue{kind: KindInvalidValue, actual: actual, hasActual: true, reason: reason}
}

func MissingKey() *Issue {
	return &Issue{kind: KindMissingKey}
}

func Forbidden(actual value.Value, reason string) *Issue {
	return &Issue{kind: KindForbidden, actual: actual, hasActual: true, reason: reason}
}

func OneOf(node Node, actual value.Value) *Issue {
	return &Issue{kind: KindOneOf, node: node, actual: actual, hasActual: true}
}

// Pointer lifts inner under a path prefix, collapsing consecutive Pointers
// (section 4.2) so that `Pointer(["a"], Pointer(["b"], x))` is
// observably the same tree as `Pointer(["a","b"], x)`.
func Pointer(prefix []PathSegment, inner *Issue) *Issue {
	if inner != nil && inner.kind == KindPointer {
		full := make([]PathSegment, 0, len(prefix)+len(inner.path))
		full = append(full, prefix...)
		full = append(full, inner.path...)
		return &Issue{kind: KindPointer, path: full, inner: inner.inner}
	}
	return &Issue{kind: KindPointer, path: append([]PathSegment(nil), prefix...), inner: inner}
}

// Composite collects multiple issues found at one node, flattening a
// singleton child into its sole member (section 4.2).
func Composite(node Node, actual value.Value, children []*Issue) *Issue {
	if len(children) == 1 {
		return children[0]
	}
	return &Issue{kind: KindComposite, node: node, actual: actual, hasActual: true, children: append([]*Issue(nil), children...)}
}

func (i *Issue) Kind() Kind { return i.kind }
func (i *Issue) Node() Node { return i.node }
func (i *Issue) Actual() (value.Value, bool) { return i.actual, i.hasActual }
func (i *Issue) Reason() string { return i.reason }
func (i *Issue) Path() []PathSegment { return i.path }
func (i *Issue) Inner() *Issue { return i.inner }
func (i *Issue) Children() []*Issue { return i.children }

// LeafCount counts the number of leaf issues under this tree - the
// testable property of section 8 ("errors=all" leaf count equals the
// number of validation failures encountered).
func (i *Issue) LeafCount() int {
	if i == nil {
		return 0
	}
	switch i.kind {
	case KindPointer:
		return i.inner.LeafCount()
	case KindComposite:
		n := 0
		for _, c := range i.children {
			n += c.LeafCount()
		}
		return n
	default:
		return 1
	}
}

// Error implements the error interface so an *Issue composes with Go's
// error chains (errors.Is/errors.As) without losing its structure -
// collaborators that want the structured tree should type-assert or use
// fpschema's errors.As[*issue.Issue]().
func (i *Issue) Error() string {
	return Render(i)
}
