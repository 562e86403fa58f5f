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

package function

import "sync"

// Memoize converts a unary function into a unary function that caches the
// value depending on the parameter. Safe for concurrent use.
func Memoize[K comparable, T any](f func(K) T) func(K) T {
	return ContramapMemoize[K, K, T](Identity[K])(f)
}

// ContramapMemoize builds a memoizer keyed by kf(a) rather than a itself,
// useful when A is not comparable but carries (or can be mapped to) a
// comparable identity - e.g. a pointer-identity key derived from an AST node.
func ContramapMemoize[K comparable, A, T any](kf func(A) K) func(func(A) T) func(A) T {
	return func(f func(A) T) func(A) T {
		var l sync.Mutex
		cache := make(map[K]*onceResult[T])
		return func(a A) T {
			k := kf(a)
			l.Lock()
			entry, ok := cache[k]
			if !ok {
				entry = &onceResult[T]{}
				cache[k] = entry
			}
			l.Unlock()
			return entry.get(func() T { return f(a) })
		}
	}
}

type onceResult[T any] struct {
	once  sync.Once
	value T
}

func (o *onceResult[T]) get(f func() T) T {
	o.once.Do(func() {
		o.value = f()
	})
	return o.value
}
