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

// package function carries the composition vocabulary (Pipe/Flow/Bind2nd/...)
// used throughout the schema engine instead of fluent method chains.
package function

func Pipe1[A, R any](a A, f1 func(a A) R) R {
	return f1(a)
}

func Pipe2[A, T1, R any](a A, f1 func(a A) T1, f2 func(t1 T1) R) R {
	return f2(f1(a))
}

func Pipe3[A, T1, T2, R any](a A, f1 func(a A) T1, f2 func(t1 T1) T2, f3 func(t2 T2) R) R {
	return f3(f2(f1(a)))
}

func Pipe4[A, T1, T2, T3, R any](a A, f1 func(a A) T1, f2 func(t1 T1) T2, f3 func(t2 T2) T3, f4 func(t3 T3) R) R {
	return f4(f3(f2(f1(a))))
}

func Pipe5[A, T1, T2, T3, T4, R any](a A, f1 func(a A) T1, f2 func(t1 T1) T2, f3 func(t2 T2) T3, f4 func(t3 T3) T4, f5 func(t4 T4) R) R {
	return f5(f4(f3(f2(f1(a)))))
}

func Pipe6[A, T1, T2, T3, T4, T5, R any](a A, f1 func(a A) T1, f2 func(t1 T1) T2, f3 func(t2 T2) T3, f4 func(t3 T3) T4, f5 func(t4 T4) T5, f6 func(t5 T5) R) R {
	return f6(f5(f4(f3(f2(f1(a))))))
}

func Flow1[A, R any](f1 func(a A) R) func(a A) R {
	return f1
}

func Flow2[A, T1, R any](f1 func(a A) T1, f2 func(t1 T1) R) func(a A) R {
	return func(a A) R {
		return Pipe2(a, f1, f2)
	}
}

func Flow3[A, T1, T2, R any](f1 func(a A) T1, f2 func(t1 T1) T2, f3 func(t2 T2) R) func(a A) R {
	return func(a A) R {
		return Pipe3(a, f1, f2, f3)
	}
}

func Flow4[A, T1, T2, T3, R any](f1 func(a A) T1, f2 func(t1 T1) T2, f3 func(t2 T2) T3, f4 func(t3 T3) R) func(a A) R {
	return func(a A) R {
		return Pipe4(a, f1, f2, f3, f4)
	}
}

// Identity returns its argument unchanged
func Identity[A any](a A) A {
	return a
}

// Constant creates a nullary function that returns the constant value 'a'
func Constant[A any](a A) func() A {
	return func() A {
		return a
	}
}

// Constant1 creates a unary function that returns the constant value 'a' and ignores its input
func Constant1[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Constant2 creates a binary function that returns the constant value 'a' and ignores its inputs
func Constant2[B, C, A any](a A) func(B, C) A {
	return func(_ B, _ C) A {
		return a
	}
}

func IsNil[A any](a *A) bool {
	return a == nil
}

func IsNonNil[A any](a *A) bool {
	return a != nil
}

// Swap returns a new binary function that changes the order of input parameters
func Swap[T1, T2, R any](f func(T1, T2) R) func(T2, T1) R {
	return func(t2 T2, t1 T1) R {
		return f(t1, t2)
	}
}

// First returns the first out of two input values
func First[T1, T2 any](t1 T1, _ T2) T1 {
	return t1
}

// Second returns the second out of two input values
func Second[T1, T2 any](_ T1, t2 T2) T2 {
	return t2
}
