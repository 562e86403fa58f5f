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

package value

import "fmt"

// KeyKind distinguishes the three key shapes section 3.1 allows for Map
// entries: string, integer, or opaque symbol.
type KeyKind int

const (
	KeyString KeyKind = iota
	KeyInt
	KeySymbol
)

// Key is a Map entry key - string, integer, or opaque symbol.
type Key struct {
	kind KeyKind
	str  string
	num  int64
	sym  SymbolID
}

func StringKey(s string) Key { return Key{kind: KeyString, str: s} }
func IntKey(n int64) Key     { return Key{kind: KeyInt, num: n} }
func SymbolKey(s SymbolID) Key { return Key{kind: KeySymbol, sym: s} }

func (k Key) Kind() KeyKind { return k.kind }

func (k Key) StrVal() (string, bool) { return k.str, k.kind == KeyString }
func (k Key) IntVal() (int64, bool)  { return k.num, k.kind == KeyInt }
func (k Key) SymVal() (SymbolID, bool) { return k.sym, k.kind == KeySymbol }

// Equals compares two keys for structural equality, used by the index
// signature decoder when deciding whether two decoded keys collide
// (section 4.6.4's conflict policy, and the open question about silent
// last-write-wins).
func (k Key) Equals(other Key) bool {
	if k.kind != other.kind {
		return false
	}
	switch k.kind {
	case KeyString:
		return k.str == other.str
	case KeyInt:
		return k.num == other.num
	case KeySymbol:
		return k.sym == other.sym
	}
	return false
}

func (k Key) String() string {
	switch k.kind {
	case KeyString:
		return k.str
	case KeyInt:
		return fmt.Sprintf("%d", k.num)
	case KeySymbol:
		return fmt.Sprintf("Symbol(%d)", k.sym)
	}
	return "<invalid key>"
}

// ToValue renders a Key back into a Value, used when an index signature's
// key parser needs to decode/encode the key itself as a typed value.
func (k Key) ToValue() Value {
	switch k.kind {
	case KeyString:
		return Str(k.str)
	case KeyInt:
		return Num(float64(k.num))
	case KeySymbol:
		return Sym(k.sym)
	}
	return Null()
}

// KeyFromValue attempts to interpret a Value as a Map key.
func KeyFromValue(v Value) (Key, bool) {
	if s, ok := v.AsStr(); ok {
		return StringKey(s), true
	}
	if n, ok := v.AsNum(); ok {
		return IntKey(int64(n)), true
	}
	if s, ok := v.AsSym(); ok {
		return SymbolKey(s), true
	}
	return Key{}, false
}

// Entry is one (key, value) pair of a Map value.
type Entry struct {
	Key   Key
	Value Value
}
