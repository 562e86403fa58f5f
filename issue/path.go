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

package issue

import (
	"fmt"

	"github.com/fpschema/fpschema/value"
)

// SegmentKind discriminates the three path segment shapes (section
// 3.7: "PathSegment is string | int | symbol-id").
type SegmentKind int

const (
	SegString SegmentKind = iota
	SegIndex
	SegSymbol
)

// PathSegment is one step of a Pointer's path.
type PathSegment struct {
	kind SegmentKind
	str  string
	idx  int
	sym  value.SymbolID
}

func StringSegment(name string) PathSegment { return PathSegment{kind: SegString, str: name} }
func IndexSegment(i int) PathSegment        { return PathSegment{kind: SegIndex, idx: i} }
func SymbolSegment(s value.SymbolID) PathSegment { return PathSegment{kind: SegSymbol, sym: s} }

func (p PathSegment) Kind() SegmentKind { return p.kind }

func (p PathSegment) String() string {
	switch p.kind {
	case SegString:
		return p.str
	case SegIndex:
		return fmt.Sprintf("%d", p.idx)
	case SegSymbol:
		return fmt.Sprintf("Symbol(%d)", p.sym)
	}
	return "?"
}
