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

// package parseopts carries ParseOptions (section 6.7), the one
// configuration record passed to every parser call. It is deliberately
// dependency-free so that both the ast package (Middleware/Declaration
// signatures reference it) and the parser package (which evaluates it) can
// import it without creating a cycle.
package parseopts

// ErrorMode selects short-circuit ("first") or aggregate ("all") error
// collection, used by TupleType, TypeLiteral, UnionType and the check engine.
type ErrorMode int

const (
	// ErrorsFirst stops at the first failure encountered during traversal.
	ErrorsFirst ErrorMode = iota
	// ErrorsAll collects every failure and wraps them in a Composite issue.
	ErrorsAll
)

// Variant selects the constructor-default transformation path (6.7):
// "make" asks ctor-default transformations to run, Standard does not.
type Variant int

const (
	VariantStandard Variant = iota
	VariantMake
)

// OnKeyCollision is invoked (never fatally) when an index signature decodes
// two distinct encoded keys to the same typed key with no merge combiner
// present - section 9's open question "consider surfacing a
// diagnostic". A nil value (the default) means: stay silent, last write wins.
type OnKeyCollision func(key any)

// Options is the ParseOptions record threaded through every parser call.
type Options struct {
	Errors ErrorMode
	Exact  bool
	Variant Variant
	OnKeyCollision OnKeyCollision
}

// Default returns the zero-value-equivalent default options: errors="first",
// exact=false, variant=standard.
func Default() Options {
	return Options{Errors: ErrorsFirst, Exact: false, Variant: VariantStandard}
}

func (o Options) WithErrors(mode ErrorMode) Options {
	o.Errors = mode
	return o
}

func (o Options) WithExact(exact bool) Options {
	o.Exact = exact
	return o
}

func (o Options) WithVariant(v Variant) Options {
	o.Variant = v
	return o
}
