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
	"github.com/fpschema/fpschema/check"
	"github.com/fpschema/fpschema/internal/identity"
)

// copyNode clones n's top-level fields so rewrites never mutate a shared
// node in place (section 4.3: structural sharing, copy-on-write).
func copyNode(n *Node) *Node {
	c := *n
	return &c
}

// ReplaceEncoding returns a node identical to n but with its encoding chain
// replaced wholesale.
func ReplaceEncoding(n *Node, links []Link) *Node {
	c := copyNode(n)
	c.ext.Encoding = append([]Link(nil), links...)
	return c
}

// ReplaceChecks returns a node identical to n but with its check list
// replaced wholesale.
func ReplaceChecks(n *Node, checks []check.Check) *Node {
	c := copyNode(n)
	c.ext.Checks = append([]check.Check(nil), checks...)
	return c
}

// AppendChecks returns a node identical to n with additional checks applied
// to its own (decoded/typed) representation.
func AppendChecks(n *Node, checks ...check.Check) *Node {
	c := copyNode(n)
	c.ext.Checks = append(append([]check.Check(nil), n.ext.Checks...), checks...)
	return c
}

// AppendEncodedChecks returns a node identical to n with additional checks
// applied to the terminal node of its encoding chain - the fully-encoded
// representation, rather than n's own typed representation. A node with no
// encoding chain is its own encoded representation, so the checks land on a
// copy of n itself, wrapped as a one-link identity-shaped chain is
// unnecessary: they land directly on n.
func AppendEncodedChecks(n *Node, checks ...check.Check) *Node {
	if len(n.ext.Encoding) == 0 {
		return AppendChecks(n, checks...)
	}
	links := append([]Link(nil), n.ext.Encoding...)
	last := links[len(links)-1]
	links[len(links)-1] = Link{To: AppendChecks(last.To, checks...), Transformation: last.Transformation}
	return ReplaceEncoding(n, links)
}

// withMappedChildren rebuilds a composite node's nested *Node fields by
// applying f to each of them, preserving the node's own Extensions.
func withMappedChildren(n *Node, f func(*Node) *Node) *Node {
	c := copyNode(n)
	switch n.kind {
	case KindTupleType:
		c.tuple = TupleSpec{
			IsReadonly: n.tuple.IsReadonly,
			Elements:   mapNodes(n.tuple.Elements, f),
			Rest:       mapNodes(n.tuple.Rest, f),
		}
	case KindTypeLiteral:
		props := make([]PropertySignature, len(n.typeLiteral.PropertySigs))
		for i, p := range n.typeLiteral.PropertySigs {
			props[i] = PropertySignature{Name: p.Name, Type: f(p.Type)}
		}
		idx := make([]IndexSignature, len(n.typeLiteral.IndexSigs))
		for i, s := range n.typeLiteral.IndexSigs {
			idx[i] = IndexSignature{Parameter: f(s.Parameter), Type: f(s.Type), Merge: s.Merge}
		}
		c.typeLiteral = TypeLiteralSpec{PropertySigs: props, IndexSigs: idx}
	case KindUnionType:
		c.union = UnionSpec{Types: mapNodes(n.union.Types, f), Mode: n.union.Mode}
	case KindTemplateLiteral:
		spans := make([]TemplateSpan, len(n.template.Spans))
		for i, s := range n.template.Spans {
			spans[i] = TemplateSpan{Pattern: f(s.Pattern), Literal: s.Literal}
		}
		c.template = TemplateSpec{Head: n.template.Head, Spans: spans}
	}
	return c
}

func mapNodes(ns []*Node, f func(*Node) *Node) []*Node {
	if ns == nil {
		return nil
	}
	out := make([]*Node, len(ns))
	for i, n := range ns {
		out[i] = f(n)
	}
	return out
}

func stripExtensions(n *Node) *Node {
	c := copyNode(n)
	c.ext = Extensions{}
	return c
}

var typeASTTable = identity.NewTable(typeASTImpl)

// TypeAST strips a node, and every node reachable under it, down to its
// bare type-kind: no annotations, no checks, no encoding chain, no
// optional/readonly/constructor-default context. This is what the union
// candidate-pruning lookup (section 4.6.5) keys off of, so that the same
// underlying shape is recognized regardless of how many decorations were
// layered on top. Memoized on node identity since the same
// shared subtree (particularly under recursive schemas) is visited
// repeatedly.
func TypeAST(n *Node) *Node {
	return typeASTTable.Get(n)
}

func typeASTImpl(n *Node) *Node {
	if n.kind == KindSuspend {
		captured := n
		return &Node{kind: KindSuspend, suspend: &suspendState{thunk: func() *Node { return TypeAST(captured.Force()) }}}
	}
	stripped := stripExtensions(n)
	return withMappedChildren(stripped, TypeAST)
}

var flipTable = identity.NewTable(flipImpl)

// Flip exchanges a node's typed and encoded representations (section
// 3.4): decode becomes encode and vice versa, all the way down. A node
// without an encoding chain is its own encoded form, so flipping only
// recurses into its structural children. A node with a chain becomes
// shaped like the final link's target, carrying a reversed chain of
// Flip()'d transformations back to its original shape. Memoized on node
// identity, and Suspend is handled lazily so recursive schemas don't
// deadlock flipping themselves during construction.
func Flip(n *Node) *Node {
	return flipTable.Get(n)
}

func flipImpl(n *Node) *Node {
	if n.kind == KindSuspend {
		captured := n
		return &Node{kind: KindSuspend, ext: n.ext, suspend: &suspendState{thunk: func() *Node { return Flip(captured.Force()) }}}
	}
	if len(n.ext.Encoding) == 0 {
		flipped := withMappedChildren(n, Flip)
		if n.kind == KindTypeLiteral {
			for i, s := range flipped.typeLiteral.IndexSigs {
				if s.Merge != nil {
					m := s.Merge.Flip()
					flipped.typeLiteral.IndexSigs[i].Merge = &m
				}
			}
		}
		return flipped
	}
	return flipEncoded(n)
}

func flipEncoded(n *Node) *Node {
	chain := n.ext.Encoding
	base := ReplaceEncoding(n, nil)

	newLinks := make([]Link, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		to := base
		if i > 0 {
			to = chain[i-1].To
		}
		newLinks[len(chain)-1-i] = Link{To: Flip(to), Transformation: chain[i].Transformation.Flip()}
	}

	result := copyNode(Flip(chain[len(chain)-1].To))
	result.ext.Encoding = append(append([]Link(nil), result.ext.Encoding...), newLinks...)
	return result
}
