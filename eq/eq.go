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

// package eq carries the structural-equality vocabulary used to test the
// schema engine's round-trip and idempotence properties.
package eq

// Eq is a witness that two values of type T can be compared for equality
type Eq[T any] interface {
	Equals(x, y T) bool
}

type eq[T any] struct {
	c func(x, y T) bool
}

func (e eq[T]) Equals(x, y T) bool {
	return e.c(x, y)
}

// FromEquals constructs an Eq from a comparison function
func FromEquals[T any](c func(x, y T) bool) Eq[T] {
	return eq[T]{c: c}
}

func strictEq[A comparable](a, b A) bool {
	return a == b
}

// FromStrictEquals constructs an Eq from the canonical == operator
func FromStrictEquals[T comparable]() Eq[T] {
	return FromEquals(strictEq[T])
}
