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

// package either carries a trimmed Either[L,R] type, kept only for the
// module boundaries that genuinely need an ok/error result wrapped around a
// value rather than Go's plain (T, error) - namely the jsonvalue adapter's
// Marshal/Unmarshal. The engine's own decode/encode path returns
// (option.Option[value.Value], *issue.Issue) directly: Issue is already a
// rich error value and a second monadic wrapper around it would not earn
// its keep (see DESIGN.md).
package either

import "fmt"

type Either[E, A any] struct {
	isLeft bool
	left   E
	right  A
}

// String prints some debug info for the object.
func (s Either[E, A]) String() string {
	if s.isLeft {
		return fmt.Sprintf("Left[%T, %T](%v)", s.left, s.right, s.left)
	}
	return fmt.Sprintf("Right[%T, %T](%v)", s.left, s.right, s.right)
}

func (s Either[E, A]) Format(f fmt.State, c rune) {
	fmt.Fprint(f, s.String())
}

// IsLeft reports whether val holds a left (error) value.
func IsLeft[E, A any](val Either[E, A]) bool { return val.isLeft }

// IsRight reports whether val holds a right (success) value.
func IsRight[E, A any](val Either[E, A]) bool { return !val.isLeft }

// Left builds an Either holding an error value.
func Left[A, E any](value E) Either[E, A] { return Either[E, A]{isLeft: true, left: value} }

// Right builds an Either holding a success value.
func Right[E, A any](value A) Either[E, A] { return Either[E, A]{isLeft: false, right: value} }

// MonadFold extracts the value by invoking onLeft or onRight.
func MonadFold[E, A, B any](ma Either[E, A], onLeft func(e E) B, onRight func(a A) B) B {
	if ma.isLeft {
		return onLeft(ma.left)
	}
	return onRight(ma.right)
}

// Fold is the curried form of MonadFold.
func Fold[E, A, B any](onLeft func(E) B, onRight func(A) B) func(Either[E, A]) B {
	return func(ma Either[E, A]) B { return MonadFold(ma, onLeft, onRight) }
}

// Unwrap converts an Either into the idiomatic (value, error) tuple.
func Unwrap[E, A any](ma Either[E, A]) (A, E) {
	return ma.right, ma.left
}
