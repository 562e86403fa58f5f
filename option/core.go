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

// package option implements the Option monad: a value that is either absent
// (None) or present (Some). Decoders and encoders in this module traffic in
// Option[Value]/Option[T] throughout - None means "the slot is absent", not
// "present but null".
package option

import "fmt"

// Option holds a value or not
type Option[A any] struct {
	isSome bool
	value  A
}

func (s Option[A]) String() string {
	if s.isSome {
		return fmt.Sprintf("Some[%T](%v)", s.value, s.value)
	}
	return fmt.Sprintf("None[%T]", s.value)
}

func Some[T any](value T) Option[T] {
	return Option[T]{isSome: true, value: value}
}

func Of[T any](value T) Option[T] {
	return Some(value)
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func IsSome[T any](val Option[T]) bool {
	return val.isSome
}

func IsNone[T any](val Option[T]) bool {
	return !val.isSome
}

// MonadFold is the eliminator for Option
func MonadFold[A, B any](ma Option[A], onNone func() B, onSome func(A) B) B {
	if ma.isSome {
		return onSome(ma.value)
	}
	return onNone()
}

// Unwrap returns the raw (value, present) pair
func Unwrap[A any](ma Option[A]) (A, bool) {
	return ma.value, ma.isSome
}

// GetOrElse returns the value or a fallback
func GetOrElse[A any](onNone func() A) func(Option[A]) A {
	return func(ma Option[A]) A {
		return MonadFold(ma, onNone, func(a A) A { return a })
	}
}
