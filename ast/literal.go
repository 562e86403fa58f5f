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

package ast

import (
	"fmt"
	"math/big"

	"github.com/fpschema/fpschema/value"
)

// LiteralKind discriminates the four literal payload shapes LiteralType
// (and Enums) can hold (section 3.3: "string | number | bool | bigint").
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBool
	LiteralBigInt
)

// LiteralValue is a single-value literal payload.
type LiteralValue struct {
	kind LiteralKind
	str  string
	num  float64
	b    bool
	bi   *big.Int
}

func StringLiteral(s string) LiteralValue  { return LiteralValue{kind: LiteralString, str: s} }
func NumberLiteral(n float64) LiteralValue { return LiteralValue{kind: LiteralNumber, num: n} }
func BoolLiteral(b bool) LiteralValue      { return LiteralValue{kind: LiteralBool, b: b} }
func BigIntLiteral(n *big.Int) LiteralValue { return LiteralValue{kind: LiteralBigInt, bi: n} }

func (l LiteralValue) Kind() LiteralKind { return l.kind }

func (l LiteralValue) String() string {
	switch l.kind {
	case LiteralString:
		return fmt.Sprintf("%q", l.str)
	case LiteralNumber:
		return fmt.Sprintf("%v", l.num)
	case LiteralBool:
		return fmt.Sprintf("%v", l.b)
	case LiteralBigInt:
		return l.bi.String()
	}
	return "?"
}

// AsText renders a literal's raw text form, used when compiling template
// literal patterns and when matching a Value against a literal.
func (l LiteralValue) AsText() string {
	switch l.kind {
	case LiteralString:
		return l.str
	case LiteralNumber:
		return fmt.Sprintf("%v", l.num)
	case LiteralBool:
		return fmt.Sprintf("%v", l.b)
	case LiteralBigInt:
		return l.bi.String()
	}
	return ""
}

// Matches reports whether a runtime Value equals this literal.
func (l LiteralValue) Matches(v value.Value) bool {
	switch l.kind {
	case LiteralString:
		s, ok := v.AsStr()
		return ok && s == l.str
	case LiteralNumber:
		n, ok := v.AsNum()
		return ok && n == l.num
	case LiteralBool:
		b, ok := v.AsBool()
		return ok && b == l.b
	case LiteralBigInt:
		bi, ok := v.AsBigInt()
		return ok && bi != nil && l.bi != nil && bi.Cmp(l.bi) == 0
	}
	return false
}

// EnumMember is one named member of an Enums node (section 3.3:
// "list of (name, string-or-number)").
type EnumMember struct {
	Name  string
	Value LiteralValue
}
