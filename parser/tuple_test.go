package parser

import (
	"testing"

	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
	"github.com/stretchr/testify/assert"
)

func TestTupleAllErrors(t *testing.T) {
	schema := ast.Tuple(false, []*ast.Node{ast.StringKw(), ast.OptionalKey(ast.NumberKw()), ast.StringKw()})
	input := value.Seq(value.Num(1), value.Str("x"), value.Num(2))

	_, iss := Go(schema)(option.Some(input), parseopts.Default().WithErrors(parseopts.ErrorsAll))

	assert.NotNil(t, iss)
	assert.Equal(t, 3, iss.LeafCount())
}

func TestTupleFirstErrorShortCircuits(t *testing.T) {
	schema := ast.Tuple(false, []*ast.Node{ast.StringKw(), ast.StringKw()})
	input := value.Seq(value.Num(1), value.Num(2))

	_, iss := Go(schema)(option.Some(input), parseopts.Default())

	assert.NotNil(t, iss)
	assert.Equal(t, 1, iss.LeafCount())
}

func TestTupleSuccess(t *testing.T) {
	schema := ast.Tuple(false, []*ast.Node{ast.StringKw(), ast.NumberKw()})
	input := value.Seq(value.Str("hi"), value.Num(3))

	out, iss := Go(schema)(option.Some(input), parseopts.Default())

	assert.Nil(t, iss)
	v, ok := option.Unwrap(out)
	assert.True(t, ok)
	assert.True(t, value.Equal(input, v))
}

func TestTupleVariadic(t *testing.T) {
	schema := ast.Tuple(false, []*ast.Node{ast.StringKw()}, ast.NumberKw(), ast.BoolKw())
	input := value.Seq(value.Str("head"), value.Num(1), value.Num(2), value.Bool(true))

	out, iss := Go(schema)(option.Some(input), parseopts.Default())

	assert.Nil(t, iss)
	v, _ := option.Unwrap(out)
	assert.True(t, value.Equal(input, v))
}
