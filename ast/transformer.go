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
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
)

// Transformer is the interface a Link's transformation satisfies (section 3.5: Transformation and Middleware). It is declared here, at the
// point of use, rather than in the transform package, because Link embeds a
// *Node (the "to" target) and the transform package in turn needs *Node to
// implement Middleware - defining the interface in ast breaks what would
// otherwise be an ast<->transform import cycle.
type Transformer interface {
	// Decode runs the decode direction. Plain Transformations ignore
	// self/opts; Middlewares use them to inspect the node they sit on.
	Decode(in option.Option[value.Value], self *Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue)
	// Encode runs the encode direction.
	Encode(in option.Option[value.Value], self *Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue)
	// Flip swaps decode and encode.
	Flip() Transformer
}

// Link is one step of an encoding chain (section 3.4): it pairs a
// target AST with the transformation that moves a value to/from it.
type Link struct {
	To             *Node
	Transformation Transformer
}

// MergeFn resolves an index-signature key collision (section 4.6.4):
// given the colliding key and the two values that would otherwise overwrite
// each other, it returns the resolved (key, value) pair.
type MergeFn func(k value.Key, a value.Value, b value.Value) (value.Key, value.Value)

// Merge pairs a decode-direction and an encode-direction combiner.
type Merge struct {
	Decode MergeFn
	Encode MergeFn
}

// Flip swaps a Merge's decode and encode combiners (section 4.6.4:
// "Merge.flip() swaps decode and encode combiners for the encode direction").
func (m Merge) Flip() Merge {
	return Merge{Decode: m.Encode, Encode: m.Decode}
}
