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

import "github.com/fpschema/fpschema/check"

// Annotate returns a copy of n with the given annotation merged in (section 6.2). Later calls win on key collision.
func Annotate(n *Node, key string, value any) *Node {
	c := copyNode(n)
	merged := make(map[string]any, len(n.ext.Annotations)+1)
	for k, v := range n.ext.Annotations {
		merged[k] = v
	}
	merged[key] = value
	c.ext.Annotations = merged
	return c
}

// Check returns a copy of n with one or more checks appended to its typed
// representation (section 6.2). Equivalent to AppendChecks, exposed
// under the decoration-surface name the schema package re-exports.
func Check(n *Node, checks ...check.Check) *Node {
	return AppendChecks(n, checks...)
}

// EncodeTo returns a copy of n with a new encoding link appended to the end
// of its chain, moving one step further from the typed representation
// towards the wire representation (section 3.4, 6.2).
func EncodeTo(n *Node, to *Node, transformation Transformer) *Node {
	links := append(append([]Link(nil), n.ext.Encoding...), Link{To: to, Transformation: transformation})
	return ReplaceEncoding(n, links)
}

// context returns n's NodeContext, creating a fresh zero-value one if n
// does not carry one yet.
func (n *Node) context() NodeContext {
	if n.ext.Context == nil {
		return NodeContext{}
	}
	return *n.ext.Context
}

// OptionalKey returns a copy of n marked as an optional property/element
// (section 3.3, invariant 2). Only meaningful when n is used as a
// PropertySignature.Type or a tuple element.
func OptionalKey(n *Node) *Node {
	c := copyNode(n)
	ctx := n.context()
	ctx.IsOptional = true
	c.ext.Context = &ctx
	return c
}

// MutableKey returns a copy of n with its readonly marker cleared (section 6.2). Nodes are not readonly unless their context says so.
func MutableKey(n *Node) *Node {
	c := copyNode(n)
	ctx := n.context()
	ctx.IsReadonly = false
	c.ext.Context = &ctx
	return c
}

// SetCtorDefault returns a copy of n carrying a constructor-time default
// value transformation, used when a property is missing during the "make"
// parse variant (section 4.6.4, parseopts.VariantMake).
func SetCtorDefault(n *Node, t Transformer) *Node {
	c := copyNode(n)
	ctx := n.context()
	ctx.CtorDefault = t
	c.ext.Context = &ctx
	return c
}
