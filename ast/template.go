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
	"regexp"
	"strings"

	"github.com/fpschema/fpschema/internal/identity"
)

var templateRegexTable = identity.NewTable(compileTemplate)

// TemplateRegex compiles a TemplateLiteral node into the anchored regular
// expression section 4.6.7 describes: "^<head><span1><literal1>...$",
// where each span contributes a capturing group whose own pattern is
// determined by its Pattern node's kind. Only meaningful when
// Kind() == KindTemplateLiteral; compilation is memoized on node identity
// since the same template node is matched against many candidate values.
func TemplateRegex(n *Node) *regexp.Regexp {
	return templateRegexTable.Get(n)
}

func compileTemplate(n *Node) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")
	b.WriteString(regexp.QuoteMeta(n.template.Head))
	for _, span := range n.template.Spans {
		b.WriteString("(")
		b.WriteString(spanPattern(span.Pattern))
		b.WriteString(")")
		b.WriteString(regexp.QuoteMeta(span.Literal))
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

// spanPattern derives the inner alternative for one capturing span from the
// kind of pattern node it holds.
func spanPattern(n *Node) string {
	switch n.kind {
	case KindStringKw:
		return `[\s\S]*`
	case KindNumberKw:
		return `[+-]?\d*\.?\d+(?:[Ee][+-]?\d+)?`
	case KindBigIntKw:
		return `-?\d+`
	case KindLiteralType:
		return regexp.QuoteMeta(n.literal.AsText())
	case KindUnionType:
		alts := make([]string, len(n.union.Types))
		for i, t := range n.union.Types {
			alts[i] = spanPattern(t)
		}
		return strings.Join(alts, "|")
	case KindTemplateLiteral:
		inner := compileTemplate(n).String()
		return strings.TrimSuffix(strings.TrimPrefix(inner, "^"), "$")
	default:
		return `[\s\S]*`
	}
}
