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

package parser

import (
	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
)

// decodeChain implements section 4.6.6's decode direction. ast.EncodeTo
// appends each new link on the wire side, so the outermost wire form is the
// last link's target: parse it with go(Ln.to), then thread the result
// through each link's transformation from last to first. The only
// structural parse in the chain is Ln.to's - every earlier link's
// transformation is trusted to already produce a value shaped like the
// preceding link's target, so the result is finally handed to n's own
// structural body (never n's own encoding, which was just consumed).
func decodeChain(n *ast.Node, in option.Option[value.Value], opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	chain := n.Extensions().Encoding
	last := len(chain) - 1

	v, iss := Go(chain[last].To)(in, opts)
	if iss != nil {
		return option.None[value.Value](), iss
	}

	for i := last; i >= 0; i-- {
		v, iss = chain[i].Transformation.Decode(v, n, opts)
		if iss != nil {
			return option.None[value.Value](), iss
		}
	}

	out, ok := option.Unwrap(v)
	if !ok {
		return option.None[value.Value](), nil
	}
	return structuralDecode(n, out, opts)
}
