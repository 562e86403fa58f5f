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

// package identity adapts a comparable-keyed, exactly-once memoizer into
// the identity-keyed memo tables the interpreter needs: go(ast),
// type_ast(ast), flip(ast), get_candidate_types(ast), format(ast) and the
// template-regex compiler must all memoize on the *pointer identity* of an
// AST node, not its contents, so that repeated calls on the same shared
// subtree are O(1). The rewrites in package ast always return a fresh copy,
// so a rewrite that changes nothing still yields a node with a new identity.
package identity

import (
	F "github.com/fpschema/fpschema/function"
)

// Table memoizes a function of a pointer-identified key. Each Table owns an
// independent cache; callers typically keep one Table per rewrite (one for
// type_ast, one for flip, and so on) so that clearing one never invalidates
// another.
type Table[K comparable, T any] struct {
	memo func(K) T
}

// NewTable builds a memo table over f, keyed by pointer identity (K is
// expected to be a pointer type, e.g. *ast.Node).
func NewTable[K comparable, T any](f func(K) T) *Table[K, T] {
	return &Table[K, T]{memo: F.Memoize(f)}
}

// Get evaluates f(k) exactly once per distinct k, regardless of how many
// goroutines race to call Get(k) concurrently.
func (t *Table[K, T]) Get(k K) T {
	return t.memo(k)
}
