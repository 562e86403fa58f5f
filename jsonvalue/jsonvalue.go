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

// package jsonvalue adapts encoding/json to the engine's abstract value
// tree: the engine itself stays agnostic to concrete on-wire formats, and
// adapters like this one translate a wire format into the abstract value
// tree. It is the one on-wire adapter this module ships, wrapping errors
// in either.Either rather than returning them bare.
package jsonvalue

import (
	"encoding/json"
	"sort"

	"github.com/fpschema/fpschema/either"
	"github.com/fpschema/fpschema/value"
)

// FromJSON converts a tree produced by json.Unmarshal into an `any` (nil,
// bool, float64, string, []any, map[string]any) into the engine's Value
// tree.
func FromJSON(v any) value.Value {
	switch t := v.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool(t)
	case float64:
		return value.Num(t)
	case string:
		return value.Str(t)
	case []any:
		elements := make([]value.Value, len(t))
		for i, e := range t {
			elements[i] = FromJSON(e)
		}
		return value.Seq(elements...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]value.Entry, len(keys))
		for i, k := range keys {
			entries[i] = value.Entry{Key: value.StringKey(k), Value: FromJSON(t[k])}
		}
		return value.Map(entries...)
	default:
		return value.Opaque("json.unknown", t)
	}
}

// ToJSON converts a Value tree back into the plain `any` shape
// encoding/json.Marshal accepts.
func ToJSON(v value.Value) any {
	switch v.Tag() {
	case value.TagNull, value.TagUndefined:
		return nil
	case value.TagBool:
		b, _ := v.AsBool()
		return b
	case value.TagNum:
		n, _ := v.AsNum()
		return n
	case value.TagBigInt:
		bi, _ := v.AsBigInt()
		return bi.String()
	case value.TagStr:
		s, _ := v.AsStr()
		return s
	case value.TagBytes:
		b, _ := v.AsBytes()
		return b
	case value.TagSeq:
		seq, _ := v.AsSeq()
		out := make([]any, len(seq))
		for i, e := range seq {
			out[i] = ToJSON(e)
		}
		return out
	case value.TagMap:
		entries, _ := v.AsMap()
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			if s, ok := e.Key.StrVal(); ok {
				out[s] = ToJSON(e.Value)
				continue
			}
			out[e.Key.String()] = ToJSON(e.Value)
		}
		return out
	default:
		return nil
	}
}

// Unmarshal parses JSON bytes directly into a Value tree, in the same
// shape as a generic json.Unmarshal[A] would take with A fixed to
// value.Value.
func Unmarshal(data []byte) either.Either[error, value.Value] {
	var raw any
	err := json.Unmarshal(data, &raw)
	return either.TryCatchError(FromJSON(raw), err)
}

// Marshal serializes a Value tree to JSON bytes, in the same generic
// json.Marshal[A] shape.
func Marshal(v value.Value) either.Either[error, []byte] {
	data, err := json.Marshal(ToJSON(v))
	return either.TryCatchError(data, err)
}
