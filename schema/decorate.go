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

import (
	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/check"
)

// Annotate attaches a single key/value annotation (section 6.2).
func Annotate(n *ast.Node, key string, value any) *ast.Node {
	return ast.Annotate(n, key, value)
}

// WithTitle is a convenience wrapper over Annotate for the one annotation
// format.Format treats specially.
func WithTitle(n *ast.Node, title string) *ast.Node {
	return ast.Annotate(n, "title", title)
}

// Check appends one or more checks to n's typed representation (section 6.2's `check`).
func Check(n *ast.Node, checks ...check.Check) *ast.Node {
	return ast.Check(n, checks...)
}

// EncodeTo appends an encoding link, moving n one step from its typed shape
// towards to's wire shape (section 6.2's `encode_to`, section 3.4).
func EncodeTo(n *ast.Node, to *ast.Node, transformation ast.Transformer) *ast.Node {
	return ast.EncodeTo(n, to, transformation)
}

// OptionalKey marks n absent-tolerant (section 6.2's `optional_key`).
func OptionalKey(n *ast.Node) *ast.Node { return ast.OptionalKey(n) }

// MutableKey clears n's readonly marker (section 6.2's `mutable_key`).
func MutableKey(n *ast.Node) *ast.Node { return ast.MutableKey(n) }

// SetCtorDefault attaches a constructor-time default transformation, used
// by the "make" parse variant when a property is missing (section 6.2's `set_ctor_default`, section 4.6.4).
func SetCtorDefault(n *ast.Node, t ast.Transformer) *ast.Node {
	return ast.SetCtorDefault(n, t)
}
