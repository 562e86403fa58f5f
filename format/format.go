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

// package format renders an AST into the human-readable type expression
// section 6.6 describes: an `annotations.title` override when present,
// `& <filter>` suffixes for checks, ` <-> <target>` suffixes for encoding
// chains, and `?`/`readonly` markers for optional/readonly context.
package format

import (
	"strings"

	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/internal/identity"
)

var formatTable = identity.NewTable(formatNode)

// Format renders n's type expression, memoized on node identity (section 5: format is one of the identity-keyed memo tables).
func Format(n *ast.Node) string {
	return formatTable.Get(n)
}

func formatNode(n *ast.Node) string {
	if title, ok := n.Extensions().Annotations["title"]; ok {
		if s, ok := title.(string); ok {
			return decorate(n, s)
		}
	}
	return decorate(n, shape(n))
}

func shape(n *ast.Node) string {
	switch n.Kind() {
	case ast.KindTupleType:
		return formatTuple(n)
	case ast.KindTypeLiteral:
		return formatTypeLiteral(n)
	case ast.KindUnionType:
		return formatUnion(n)
	case ast.KindEnums:
		return formatEnums(n)
	case ast.KindTemplateLiteral:
		return formatTemplate(n)
	case ast.KindSuspend:
		return Format(n.Force())
	case ast.KindLiteralType:
		return n.Literal().String()
	case ast.KindUniqueSymbol:
		return "unique symbol"
	case ast.KindDeclaration:
		return "declaration"
	default:
		return n.Kind().String()
	}
}

func formatTuple(n *ast.Node) string {
	spec := n.Tuple()
	parts := make([]string, 0, len(spec.Elements)+len(spec.Rest))
	for _, e := range spec.Elements {
		parts = append(parts, Format(e))
	}
	for i, r := range spec.Rest {
		if i == 0 {
			parts = append(parts, "..."+Format(r)+"[]")
			continue
		}
		parts = append(parts, Format(r))
	}
	prefix := ""
	if spec.IsReadonly {
		prefix = "readonly "
	}
	return prefix + "[" + strings.Join(parts, ", ") + "]"
}

func formatTypeLiteral(n *ast.Node) string {
	spec := n.TypeLiteral()
	parts := make([]string, 0, len(spec.PropertySigs)+len(spec.IndexSigs))
	for _, p := range spec.PropertySigs {
		t := Format(p.Type)
		opt := ""
		if p.Type.IsOptional() {
			// decorate already appended the marker to the type; show it on the key instead.
			opt = "?"
			t = strings.TrimSuffix(t, "?")
		}
		ro := ""
		if p.Type.IsReadonly() {
			ro = "readonly "
		}
		parts = append(parts, ro+p.Name+opt+": "+t)
	}
	for _, s := range spec.IndexSigs {
		parts = append(parts, "["+Format(s.Parameter)+"]: "+Format(s.Type))
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func formatUnion(n *ast.Node) string {
	spec := n.Union()
	parts := make([]string, len(spec.Types))
	for i, t := range spec.Types {
		parts[i] = Format(t)
	}
	sep := " | "
	if spec.Mode == ast.OneOf {
		sep = " ^ "
	}
	return strings.Join(parts, sep)
}

func formatEnums(n *ast.Node) string {
	members := n.EnumMembers()
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = m.Name + " = " + m.Value.String()
	}
	return "enum { " + strings.Join(parts, ", ") + " }"
}

func formatTemplate(n *ast.Node) string {
	spec := n.Template()
	var b strings.Builder
	b.WriteString("`")
	b.WriteString(spec.Head)
	for _, span := range spec.Spans {
		b.WriteString("${")
		b.WriteString(Format(span.Pattern))
		b.WriteString("}")
		b.WriteString(span.Literal)
	}
	b.WriteString("`")
	return b.String()
}

func decorate(n *ast.Node, base string) string {
	s := base
	for _, c := range n.Extensions().Checks {
		name := c.Name()
		if a, ok := c.(interface{ Annotations() map[string]any }); ok {
			if title, ok := a.Annotations()["title"].(string); ok {
				name = title
			}
		}
		s += " & " + name
	}
	if chain := n.Extensions().Encoding; len(chain) > 0 {
		s += " <-> " + Format(chain[len(chain)-1].To)
	}
	if n.IsOptional() {
		s += "?"
	}
	return s
}
