package parser

import (
	"testing"

	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/transform"
	"github.com/fpschema/fpschema/value"
	"github.com/stretchr/testify/assert"
)

func TestUnionOneOfAmbiguity(t *testing.T) {
	schema := ast.Union(ast.OneOf, ast.StringKw(), ast.Literal(ast.StringLiteral("x")))

	_, iss := Go(schema)(option.Some(value.Str("x")), parseopts.Default())

	assert.NotNil(t, iss)
	assert.Equal(t, issue.KindOneOf, iss.Kind())
}

func TestUnionAnyOfFirstMatchWins(t *testing.T) {
	schema := ast.Union(ast.AnyOf, ast.StringKw(), ast.Literal(ast.StringLiteral("x")))

	out, iss := Go(schema)(option.Some(value.Str("x")), parseopts.Default())

	assert.Nil(t, iss)
	v, _ := option.Unwrap(out)
	s, _ := v.AsStr()
	assert.Equal(t, "x", s)
}

func TestUnionCandidatePruning(t *testing.T) {
	schema := ast.Union(ast.AnyOf, ast.StringKw(), ast.NumberKw())

	out, iss := Go(schema)(option.Some(value.Num(5)), parseopts.Default())

	assert.Nil(t, iss)
	v, _ := option.Unwrap(out)
	n, _ := v.AsNum()
	assert.Equal(t, float64(5), n)
}

func TestUnionNoCandidates(t *testing.T) {
	schema := ast.Union(ast.AnyOf, ast.StringKw(), ast.NumberKw())

	_, iss := Go(schema)(option.Some(value.Bool(true)), parseopts.Default())

	assert.NotNil(t, iss)
}

// TestUnionCandidatePruningUsesEncodedShape guards against pruning a union
// member by its typed Kind when its wire shape (after flipping through its
// encoding chain) differs: a numeric member stored as a string on the wire
// must still be offered a string-tagged input.
func TestUnionCandidatePruningUsesEncodedShape(t *testing.T) {
	numberAsString := ast.EncodeTo(ast.NumberKw(), ast.StringKw(), transform.Number)
	schema := ast.Union(ast.AnyOf, ast.BoolKw(), numberAsString)

	out, iss := Go(schema)(option.Some(value.Str("42")), parseopts.Default())

	assert.Nil(t, iss)
	v, ok := option.Unwrap(out)
	assert.True(t, ok)
	n, ok := v.AsNum()
	assert.True(t, ok)
	assert.Equal(t, float64(42), n)
}
