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

// decodeTypeLiteral implements section 4.6.4: property signatures in
// declaration order, then index signatures over any input key they didn't
// already consume, with last-write-wins or a user Merge combiner on
// collision (section 9's open question: last-write-wins, silent unless
// opts.OnKeyCollision is set).
func decodeTypeLiteral(n *ast.Node, v value.Value, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	spec := n.TypeLiteral()
	if len(spec.PropertySigs) == 0 && len(spec.IndexSigs) == 0 {
		if v.Tag() == value.TagNull || v.Tag() == value.TagUndefined {
			return option.None[value.Value](), issue.InvalidType(n, v)
		}
		return option.Some(v), nil
	}
	if v.Tag() != value.TagMap {
		return option.None[value.Value](), issue.InvalidType(n, v)
	}

	var issues []*issue.Issue
	abort := func(seg issue.PathSegment, iss *issue.Issue) *issue.Issue {
		wrapped := issue.Pointer([]issue.PathSegment{seg}, iss)
		if opts.Errors == parseopts.ErrorsFirst {
			return wrapped
		}
		issues = append(issues, wrapped)
		return nil
	}

	handled := make(map[string]bool, len(spec.PropertySigs))
	var entries []value.Entry

	for _, prop := range spec.PropertySigs {
		handled[prop.Name] = true
		raw, present := v.Get(prop.Name)
		var slot option.Option[value.Value]
		if present {
			slot = option.Some(raw)
		}
		out, iss := Go(prop.Type)(slot, opts)
		if iss != nil {
			if wrapped := abort(issue.StringSegment(prop.Name), iss); wrapped != nil {
				return option.None[value.Value](), wrapped
			}
			continue
		}
		val, ok := option.Unwrap(out)
		if !ok && opts.Variant == parseopts.VariantMake {
			if def, has := prop.Type.CtorDefault(); has {
				out, iss = def.Decode(out, prop.Type, opts)
				if iss != nil {
					if wrapped := abort(issue.StringSegment(prop.Name), iss); wrapped != nil {
						return option.None[value.Value](), wrapped
					}
					continue
				}
				val, ok = option.Unwrap(out)
			}
		}
		if !ok {
			if !prop.Type.IsOptional() || opts.Exact {
				if wrapped := abort(issue.StringSegment(prop.Name), issue.MissingKey()); wrapped != nil {
					return option.None[value.Value](), wrapped
				}
			}
			continue
		}
		entries = append(entries, value.Entry{Key: value.StringKey(prop.Name), Value: val})
	}

	for _, sig := range spec.IndexSigs {
		for _, e := range v.Entries() {
			if name, isStr := e.Key.StrVal(); isStr && handled[name] {
				continue
			}
			seg := keySegment(e.Key)
			decKey, iss := Go(sig.Parameter)(option.Some(e.Key.ToValue()), opts)
			if iss != nil {
				if wrapped := abort(seg, iss); wrapped != nil {
					return option.None[value.Value](), wrapped
				}
				continue
			}
			decVal, iss := Go(sig.Type)(option.Some(e.Value), opts)
			if iss != nil {
				if wrapped := abort(seg, iss); wrapped != nil {
					return option.None[value.Value](), wrapped
				}
				continue
			}
			kv, kOk := option.Unwrap(decKey)
			vv, vOk := option.Unwrap(decVal)
			if !kOk || !vOk {
				continue
			}
			k, ok := value.KeyFromValue(kv)
			if !ok {
				continue
			}
			entries = mergeEntry(entries, k, vv, sig.Merge, opts.OnKeyCollision)
		}
	}

	if len(issues) > 0 {
		return option.None[value.Value](), issue.Composite(n, v, issues)
	}
	return option.Some(value.Map(entries...)), nil
}

// mergeEntry resolves an index-signature key collision: a user-supplied
// Merge combiner wins when present, otherwise last-write-wins while
// notifying the optional OnKeyCollision diagnostic hook (section 9's
// open question; see DESIGN.md).
func mergeEntry(entries []value.Entry, k value.Key, v value.Value, merge *ast.Merge, onCollision parseopts.OnKeyCollision) []value.Entry {
	for i, e := range entries {
		if e.Key.Equals(k) {
			if merge != nil && merge.Decode != nil {
				nk, nv := merge.Decode(k, e.Value, v)
				entries[i] = value.Entry{Key: nk, Value: nv}
			} else {
				if onCollision != nil {
					onCollision(k.ToValue())
				}
				entries[i] = value.Entry{Key: k, Value: v}
			}
			return entries
		}
	}
	return append(entries, value.Entry{Key: k, Value: v})
}

func keySegment(k value.Key) issue.PathSegment {
	switch k.Kind() {
	case value.KeyInt:
		n, _ := k.IntVal()
		return issue.IndexSegment(int(n))
	case value.KeySymbol:
		s, _ := k.SymVal()
		return issue.SymbolSegment(s)
	default:
		s, _ := k.StrVal()
		return issue.StringSegment(s)
	}
}
