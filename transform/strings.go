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
	"strings"
	"unicode"

	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/value"
)

func mapString(f func(string) string) func(value.Value) (value.Value, *issue.Issue) {
	return func(v value.Value) (value.Value, *issue.Issue) {
		s, ok := v.AsStr()
		if !ok {
			return value.Value{}, invalidType(v, "string")
		}
		return value.Str(f(s)), nil
	}
}

// Trim strips leading/trailing whitespace on decode; encode is identity
// (section 4.4: "decode(trim, \"  x  \") = \"x\" and encode(trim, \"x\") = \"x\"").
var Trim = Transformation{
	DecodeFn: mapSome(mapString(strings.TrimSpace)),
	EncodeFn: identityGetter,
}

// ToLower lowercases on decode; encode is identity.
var ToLower = Transformation{
	DecodeFn: mapSome(mapString(strings.ToLower)),
	EncodeFn: identityGetter,
}

// ToUpper uppercases on decode; encode is identity.
var ToUpper = Transformation{
	DecodeFn: mapSome(mapString(strings.ToUpper)),
	EncodeFn: identityGetter,
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SnakeToCamel converts snake_case to camelCase on decode and back to
// snake_case on encode (section 4.4: "snake_to_camel (bidirectional
// with camel_to_snake as encoder)"; section 293: round-trips on well-formed
// input).
var SnakeToCamel = Transformation{
	DecodeFn: mapSome(mapString(snakeToCamel)),
	EncodeFn: mapSome(mapString(camelToSnake)),
}
