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

package transform

import (
	"math/big"
	"strconv"
	"time"

	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/value"
)

func identityGetter(in option.Option[value.Value]) (option.Option[value.Value], *issue.Issue) {
	return in, nil
}

func mapSome(f func(value.Value) (value.Value, *issue.Issue)) Getter {
	return func(in option.Option[value.Value]) (option.Option[value.Value], *issue.Issue) {
		v, ok := option.Unwrap(in)
		if !ok {
			return option.None[value.Value](), nil
		}
		out, iss := f(v)
		if iss != nil {
			return option.None[value.Value](), iss
		}
		return option.Some(out), nil
	}
}

// coerceTarget is the minimal issue.Node a coercion failure needs: just
// enough to describe what the coercion was trying to produce.
type coerceTarget string

func (c coerceTarget) Describe() string { return string(c) }

// invalidType reports a coercion failure as InvalidType, naming what the
// coercion was trying to produce rather than attaching the kind of free-form
// reason text InvalidValue carries (section 4.4: coercion failures are
// InvalidType, not InvalidValue).
func invalidType(actual value.Value, target string) *issue.Issue {
	return issue.InvalidType(coerceTarget(target), actual)
}

// String coerces any value to its string representation: InvalidType on
// values with no sensible textual form (section 4.4).
var String = Transformation{
	DecodeFn: mapSome(func(v value.Value) (value.Value, *issue.Issue) {
		switch v.Tag() {
		case value.TagStr:
			return v, nil
		case value.TagNum:
			n, _ := v.AsNum()
			return value.Str(strconv.FormatFloat(n, 'g', -1, 64)), nil
		case value.TagBigInt:
			bi, _ := v.AsBigInt()
			return value.Str(bi.String()), nil
		case value.TagBool:
			b, _ := v.AsBool()
			return value.Str(strconv.FormatBool(b)), nil
		}
		return value.Value{}, invalidType(v, "string")
	}),
	EncodeFn: mapSome(func(v value.Value) (value.Value, *issue.Issue) {
		return v, nil
	}),
}

// Number coerces a string, bool or bigint value to a number (section
// 4.4).
var Number = Transformation{
	DecodeFn: mapSome(func(v value.Value) (value.Value, *issue.Issue) {
		switch v.Tag() {
		case value.TagNum:
			return v, nil
		case value.TagStr:
			s, _ := v.AsStr()
			n, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return value.Value{}, invalidType(v, "number")
			}
			return value.Num(n), nil
		case value.TagBool:
			b, _ := v.AsBool()
			if b {
				return value.Num(1), nil
			}
			return value.Num(0), nil
		case value.TagBigInt:
			bi, _ := v.AsBigInt()
			f := new(big.Float).SetInt(bi)
			n, _ := f.Float64()
			return value.Num(n), nil
		}
		return value.Value{}, invalidType(v, "number")
	}),
	EncodeFn: identityGetter,
}

// Boolean coerces a string or number value to a bool (section 4.4).
var Boolean = Transformation{
	DecodeFn: mapSome(func(v value.Value) (value.Value, *issue.Issue) {
		switch v.Tag() {
		case value.TagBool:
			return v, nil
		case value.TagStr:
			s, _ := v.AsStr()
			b, err := strconv.ParseBool(s)
			if err != nil {
				return value.Value{}, invalidType(v, "boolean")
			}
			return value.Bool(b), nil
		case value.TagNum:
			n, _ := v.AsNum()
			return value.Bool(n != 0), nil
		}
		return value.Value{}, invalidType(v, "boolean")
	}),
	EncodeFn: identityGetter,
}

// BigInt coerces a string, number or bool value to an arbitrary-precision
// integer (section 4.4).
var BigInt = Transformation{
	DecodeFn: mapSome(func(v value.Value) (value.Value, *issue.Issue) {
		switch v.Tag() {
		case value.TagBigInt:
			return v, nil
		case value.TagStr:
			s, _ := v.AsStr()
			bi, ok := new(big.Int).SetString(s, 10)
			if !ok {
				return value.Value{}, invalidType(v, "bigint")
			}
			return value.BigInt(bi), nil
		case value.TagNum:
			n, _ := v.AsNum()
			bi, _ := big.NewFloat(n).Int(nil)
			return value.BigInt(bi), nil
		case value.TagBool:
			b, _ := v.AsBool()
			if b {
				return value.BigInt(big.NewInt(1)), nil
			}
			return value.BigInt(big.NewInt(0)), nil
		}
		return value.Value{}, invalidType(v, "bigint")
	}),
	EncodeFn: identityGetter,
}

const dateLayout = time.RFC3339

// Date coerces a string, number (unix millis) or already-opaque date value
// into an opaque "date" value carrying a time.Time (section 4.4).
var Date = Transformation{
	DecodeFn: mapSome(func(v value.Value) (value.Value, *issue.Issue) {
		switch v.Tag() {
		case value.TagOpaque:
			if tag, _, ok := v.AsOpaque(); ok && tag == "date" {
				return v, nil
			}
		case value.TagStr:
			s, _ := v.AsStr()
			t, err := time.Parse(dateLayout, s)
			if err != nil {
				return value.Value{}, invalidType(v, "date")
			}
			return value.Opaque("date", t), nil
		case value.TagNum:
			n, _ := v.AsNum()
			t := time.UnixMilli(int64(n)).UTC()
			return value.Opaque("date", t), nil
		}
		return value.Value{}, invalidType(v, "date")
	}),
	EncodeFn: mapSome(func(v value.Value) (value.Value, *issue.Issue) {
		if tag, data, ok := v.AsOpaque(); ok && tag == "date" {
			if t, ok := data.(time.Time); ok {
				return value.Str(t.Format(dateLayout)), nil
			}
		}
		return value.Value{}, invalidType(v, "date")
	}),
}
