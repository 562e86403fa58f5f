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

// package value implements the engine's host-neutral value domain (section
// 3.1): Null, Bool, Num, BigInt, Str, Bytes, Sym, Seq, Map, Opaque - plus
// the Undefined sentinel the union candidate table (section 4.6.5) needs to
// distinguish "the JS value `undefined`" from "null" and from "the slot is
// absent", which option.Option already covers.
//
// Values are immutable once constructed: a decoder never mutates the tree it
// is given, and an encoder always builds a fresh one.
package value

import "math/big"

// Tag is the runtime shape of a Value, used by the union interpreter to
// prune candidates before attempting to parse them (section 4.6.5).
type Tag int

const (
	TagNull Tag = iota
	TagUndefined
	TagBool
	TagNum
	TagBigInt
	TagStr
	TagBytes
	TagSym
	TagSeq
	TagMap
	TagOpaque
)

func (t Tag) String() string {
	switch t {
	case TagNull:
		return "null"
	case TagUndefined:
		return "undefined"
	case TagBool:
		return "bool"
	case TagNum:
		return "num"
	case TagBigInt:
		return "bigint"
	case TagStr:
		return "str"
	case TagBytes:
		return "bytes"
	case TagSym:
		return "sym"
	case TagSeq:
		return "seq"
	case TagMap:
		return "map"
	case TagOpaque:
		return "opaque"
	}
	return "unknown"
}

// SymbolID identifies a unique, opaque runtime symbol.
type SymbolID uint64

// Value is one node of the value tree.
type Value struct {
	tag        Tag
	boolVal    bool
	numVal     float64
	bigIntVal  *big.Int
	strVal     string
	bytesVal   []byte
	symVal     SymbolID
	seqVal     []Value
	mapVal     []Entry
	opaqueTag  string
	opaqueData any
}

func Null() Value                 { return Value{tag: TagNull} }
func Undefined() Value            { return Value{tag: TagUndefined} }
func Bool(b bool) Value           { return Value{tag: TagBool, boolVal: b} }
func Num(n float64) Value         { return Value{tag: TagNum, numVal: n} }
func BigInt(n *big.Int) Value     { return Value{tag: TagBigInt, bigIntVal: n} }
func Str(s string) Value          { return Value{tag: TagStr, strVal: s} }
func Bytes(b []byte) Value        { return Value{tag: TagBytes, bytesVal: append([]byte(nil), b...)} }
func Sym(id SymbolID) Value       { return Value{tag: TagSym, symVal: id} }
func Opaque(tag string, data any) Value {
	return Value{tag: TagOpaque, opaqueTag: tag, opaqueData: data}
}

// Seq builds a sequence value from its elements.
func Seq(elements ...Value) Value {
	return Value{tag: TagSeq, seqVal: append([]Value(nil), elements...)}
}

// Map builds a mapping value from its ordered entries. Iteration order is
// preserved, matching section 5's ordering guarantee for index-signature
// processing.
func Map(entries ...Entry) Value {
	return Value{tag: TagMap, mapVal: append([]Entry(nil), entries...)}
}

func (v Value) Tag() Tag { return v.tag }

func (v Value) AsBool() (bool, bool)       { return v.boolVal, v.tag == TagBool }
func (v Value) AsNum() (float64, bool)     { return v.numVal, v.tag == TagNum }
func (v Value) AsBigInt() (*big.Int, bool) { return v.bigIntVal, v.tag == TagBigInt }
func (v Value) AsStr() (string, bool)      { return v.strVal, v.tag == TagStr }
func (v Value) AsBytes() ([]byte, bool)    { return v.bytesVal, v.tag == TagBytes }
func (v Value) AsSym() (SymbolID, bool)    { return v.symVal, v.tag == TagSym }
func (v Value) AsSeq() ([]Value, bool)     { return v.seqVal, v.tag == TagSeq }
func (v Value) AsMap() ([]Entry, bool)     { return v.mapVal, v.tag == TagMap }
func (v Value) AsOpaque() (string, any, bool) {
	return v.opaqueTag, v.opaqueData, v.tag == TagOpaque
}
