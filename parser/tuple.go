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

// decodeTuple implements section 4.6.3: fixed elements in order, then
// a variadic rest whose first entry is the repeated middle and whose
// remainder are fixed elements after the repeated run.
func decodeTuple(n *ast.Node, v value.Value, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	spec := n.Tuple()
	seq, ok := v.AsSeq()
	if !ok {
		return option.None[value.Value](), issue.InvalidType(n, v)
	}

	var issues []*issue.Issue
	output := make([]value.Value, 0, len(seq))

	// abort reports whether the caller should return immediately (errors
	// = "first") after recording iss at position i; otherwise it queues
	// the issue and processing continues.
	abort := func(i int, iss *issue.Issue) *issue.Issue {
		wrapped := issue.Pointer([]issue.PathSegment{issue.IndexSegment(i)}, iss)
		if opts.Errors == parseopts.ErrorsFirst {
			return wrapped
		}
		issues = append(issues, wrapped)
		return nil
	}

	for i, elem := range spec.Elements {
		var slot option.Option[value.Value]
		if i < len(seq) {
			slot = option.Some(seq[i])
		}
		out, iss := Go(elem)(slot, opts)
		if iss != nil {
			if wrapped := abort(i, iss); wrapped != nil {
				return option.None[value.Value](), wrapped
			}
			continue
		}
		val, present := option.Unwrap(out)
		if !present {
			if !elem.IsOptional() || opts.Exact {
				if wrapped := abort(i, issue.MissingKey()); wrapped != nil {
					return option.None[value.Value](), wrapped
				}
			}
			continue
		}
		output = append(output, val)
	}

	if len(spec.Rest) > 0 {
		head := spec.Rest[0]
		tail := spec.Rest[1:]
		restEnd := len(seq) - len(tail)
		for i := len(spec.Elements); i < restEnd; i++ {
			out, iss := Go(head)(option.Some(seq[i]), opts)
			if iss != nil {
				if wrapped := abort(i, iss); wrapped != nil {
					return option.None[value.Value](), wrapped
				}
				continue
			}
			if val, present := option.Unwrap(out); present {
				output = append(output, val)
			}
		}
		for j, elem := range tail {
			i := restEnd + j
			var slot option.Option[value.Value]
			if i >= 0 && i < len(seq) {
				slot = option.Some(seq[i])
			}
			out, iss := Go(elem)(slot, opts)
			if iss != nil {
				if wrapped := abort(i, iss); wrapped != nil {
					return option.None[value.Value](), wrapped
				}
				continue
			}
			if val, present := option.Unwrap(out); present {
				output = append(output, val)
			}
		}
	}

	if len(issues) > 0 {
		return option.None[value.Value](), issue.Composite(n, v, issues)
	}
	return option.Some(value.Seq(output...)), nil
}
