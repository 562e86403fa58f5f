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
	"strings"
)

// Render turns an Issue tree into a rooted, indented, path-qualified
// message (section 7: "the formatter turns an Issue tree into a
// rooted, indented path-qualified message"). It is the plain-text sibling
// of the structured tree collaborators can also inspect directly.
func Render(i *Issue) string {
	var b strings.Builder
	render(&b, i, 0, nil)
	return b.String()
}

func render(b *strings.Builder, i *Issue, depth int, path []PathSegment) {
	indent := strings.Repeat("  ", depth)
	switch i.kind {
	case KindPointer:
		render(b, i.inner, depth, append(path, i.path...))
		return
	case KindComposite:
		fmt.Fprintf(b, "%s%s at %s: %s\n", indent, i.kind, renderPath(path), describe(i.node))
		for _, c := range i.children {
			render(b, c, depth+1, nil)
		}
		return
	case KindInvalidType:
		fmt.Fprintf(b, "%sinvalid_type at %s: expected %s, got %v\n", indent, renderPath(path), describe(i.node), i.actual)
	case KindInvalidValue:
		fmt.Fprintf(b, "%sinvalid_value at %s: %s (got %v)\n", indent, renderPath(path), i.reason, i.actual)
	case KindMissingKey:
		fmt.Fprintf(b, "%smissing_key at %s\n", indent, renderPath(path))
	case KindForbidden:
		fmt.Fprintf(b, "%sforbidden at %s: %s\n", indent, renderPath(path), i.reason)
	case KindOneOf:
		fmt.Fprintf(b, "%sone_of at %s: %v matched more than one member of %s\n", indent, renderPath(path), i.actual, describe(i.node))
	}
}

func renderPath(path []PathSegment) string {
	if len(path) == 0 {
		return "<root>"
	}
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}
	return strings.Join(parts, ".")
}

func describe(n Node) string {
	if n == nil {
		return "<unknown>"
	}
	return n.Describe()
}
