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

package either

// MonadMap transforms the right value of fa, passing a left value through.
func MonadMap[E, A, B any](fa Either[E, A], f func(a A) B) Either[E, B] {
	if fa.isLeft {
		return Left[B](fa.left)
	}
	return Right[E](f(fa.right))
}

// Map is the curried form of MonadMap.
func Map[E, A, B any](f func(a A) B) func(fa Either[E, A]) Either[E, B] {
	return func(fa Either[E, A]) Either[E, B] { return MonadMap(fa, f) }
}

// MonadChain sequences fa into f when fa is a right value.
func MonadChain[E, A, B any](fa Either[E, A], f func(a A) Either[E, B]) Either[E, B] {
	if fa.isLeft {
		return Left[B](fa.left)
	}
	return f(fa.right)
}

// Chain is the curried form of MonadChain.
func Chain[E, A, B any](f func(a A) Either[E, B]) func(Either[E, A]) Either[E, B] {
	return func(fa Either[E, A]) Either[E, B] { return MonadChain(fa, f) }
}

// TryCatchError runs a (val, err) pair through the standard Go error
// convention and lifts it into an Either, the shape json.Marshal/Unmarshal
// naturally produce.
func TryCatchError[A any](val A, err error) Either[error, A] {
	if err != nil {
		return Left[A](err)
	}
	return Right[error](val)
}
