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

// package check implements the engine's check model (section 4.5 and
// 3.6): a predicate or a named group of predicates, run after a decoder
// produces Some(value), in order, either short-circuiting on the first
// failure or aggregating all of them into a Composite.
package check

import (
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/predicate"
	"github.com/fpschema/fpschema/value"
)

// Check is either a Filter or a FilterGroup (section 3.6).
type Check interface {
	// Evaluate runs the check against a successfully decoded value, returning
	// Some(issue) on failure and None on success.
	Evaluate(v value.Value) option.Option[*issue.Issue]
	// Name is the check's diagnostic label, used by format.Format to render
	// `& <name>` after a node's type.
	Name() string
}

// Filter is a single predicate check.
type Filter struct {
	name        string
	annotations map[string]any
	predicate   func(value.Value) option.Option[*issue.Issue]
}

// NewFilter builds a Filter from a predicate that returns the failing Issue
// itself, for checks that need to report something richer than a fixed
// message (e.g. InvalidValue with a dynamic reason).
func NewFilter(name string, predicate func(value.Value) option.Option[*issue.Issue]) Filter {
	return Filter{name: name, predicate: predicate}
}

// Refine builds a Filter from a boolean predicate and a fixed failure
// message - the common case nearly every check needs, wrapped so callers
// don't have to build an *issue.Issue by hand each time.
func Refine(name string, pred func(value.Value) bool, message string) Filter {
	return NewFilter(name, func(v value.Value) option.Option[*issue.Issue] {
		if pred(v) {
			return option.None[*issue.Issue]()
		}
		return option.Some(issue.InvalidValue(v, message))
	})
}

func (f Filter) Evaluate(v value.Value) option.Option[*issue.Issue] {
	return f.predicate(v)
}

// Reject builds a Filter that fails whenever pred holds, the mirror image
// of Refine (which fails whenever pred does not hold). Built from
// predicate.Not rather than inlining the negation.
func Reject(name string, pred func(value.Value) bool, message string) Filter {
	return Refine(name, predicate.Not(pred), message)
}

// RefineBy builds a Filter from a predicate over a projection of
// value.Value (e.g. a decoded string's rune count) by adapting it with
// predicate.ContraMap, so the predicate itself can be written in terms of
// the projected type instead of value.Value.
func RefineBy[A any](name string, extract func(value.Value) A, pred func(A) bool, message string) Filter {
	return Refine(name, predicate.ContraMap[A, value.Value](extract)(pred), message)
}

// All combines one or more predicates into a single Filter via
// predicate.And, for callers that want one named constraint rather than a
// FilterGroup's per-step Issues.
func All(name, message string, preds ...func(value.Value) bool) Filter {
	combined := func(value.Value) bool { return true }
	for _, p := range preds {
		combined = predicate.And[value.Value](p)(combined)
	}
	return Refine(name, combined, message)
}

// Any combines one or more predicates into a single Filter via
// predicate.Or: the check passes if at least one predicate holds.
func Any(name, message string, preds ...func(value.Value) bool) Filter {
	combined := func(value.Value) bool { return false }
	for _, p := range preds {
		combined = predicate.Or[value.Value](p)(combined)
	}
	return Refine(name, combined, message)
}

func (f Filter) Name() string { return f.name }

// WithAnnotations attaches metadata to a Filter (title overrides used by
// format.Format).
func (f Filter) WithAnnotations(ann map[string]any) Filter {
	f.annotations = ann
	return f
}

func (f Filter) Annotations() map[string]any { return f.annotations }

// FilterGroup evaluates its children in order; its semantics are identical
// to flattening, but it preserves a logical name for diagnostics (section 4.5).
type FilterGroup struct {
	name   string
	checks []Check
}

// NewFilterGroup builds a named group of at least one check.
func NewFilterGroup(name string, checks ...Check) FilterGroup {
	return FilterGroup{name: name, checks: append([]Check(nil), checks...)}
}

func (g FilterGroup) Evaluate(v value.Value) option.Option[*issue.Issue] {
	for _, c := range g.checks {
		if r := c.Evaluate(v); option.IsSome(r) {
			return r
		}
	}
	return option.None[*issue.Issue]()
}

func (g FilterGroup) Name() string { return g.name }

// Run evaluates an ordered list of checks against v, honoring the
// errors="first"/"all" policy (section 4.5). node/actual are only used
// to build the Composite issue when mode is ErrorsAll and more than one
// check fails.
func Run(checks []Check, v value.Value, node issue.Node, mode parseopts.ErrorMode) option.Option[*issue.Issue] {
	if mode == parseopts.ErrorsFirst {
		for _, c := range checks {
			if r := c.Evaluate(v); option.IsSome(r) {
				return r
			}
		}
		return option.None[*issue.Issue]()
	}
	var failures []*issue.Issue
	for _, c := range checks {
		if r := c.Evaluate(v); option.IsSome(r) {
			iss, _ := option.Unwrap(r)
			failures = append(failures, iss)
		}
	}
	if len(failures) == 0 {
		return option.None[*issue.Issue]()
	}
	return option.Some(issue.Composite(node, v, failures))
}
