package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateLiteralRegex(t *testing.T) {
	n := Template("user-", TemplateSpan{Pattern: NumberKw()})

	re := TemplateRegex(n)

	assert.True(t, re.MatchString("user-42"))
	assert.False(t, re.MatchString("user-x"))
}

func TestTemplateLiteralWithLiteralSpan(t *testing.T) {
	n := Template("v", TemplateSpan{Pattern: Literal(StringLiteral("1")), Literal: "-beta"})

	re := TemplateRegex(n)

	assert.True(t, re.MatchString("v1-beta"))
	assert.False(t, re.MatchString("v2-beta"))
}
