package parser

import (
	"strconv"
	"testing"

	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
	"github.com/stretchr/testify/assert"
)

type parseIntTransform struct{}

func (parseIntTransform) Decode(in option.Option[value.Value], self *ast.Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	s, ok := option.Unwrap(in)
	if !ok {
		return option.None[value.Value](), nil
	}
	str, _ := s.AsStr()
	n, err := strconv.Atoi(str)
	if err != nil {
		return option.None[value.Value](), issue.InvalidValue(s, "not an integer")
	}
	return option.Some(value.Num(float64(n))), nil
}

func (parseIntTransform) Encode(in option.Option[value.Value], self *ast.Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	n, ok := option.Unwrap(in)
	if !ok {
		return option.None[value.Value](), nil
	}
	f, _ := n.AsNum()
	return option.Some(value.Str(strconv.Itoa(int(f)))), nil
}

func (parseIntTransform) Flip() ast.Transformer {
	return flippedParseInt{}
}

type flippedParseInt struct{}

func (flippedParseInt) Decode(in option.Option[value.Value], self *ast.Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	return parseIntTransform{}.Encode(in, self, opts)
}
func (flippedParseInt) Encode(in option.Option[value.Value], self *ast.Node, opts parseopts.Options) (option.Option[value.Value], *issue.Issue) {
	return parseIntTransform{}.Decode(in, self, opts)
}
func (flippedParseInt) Flip() ast.Transformer { return parseIntTransform{} }

func TestEncodeToChain(t *testing.T) {
	numFromStr := ast.EncodeTo(ast.NumberKw(), ast.StringKw(), parseIntTransform{})

	out, iss := Go(numFromStr)(option.Some(value.Str("42")), parseopts.Default())
	assert.Nil(t, iss)
	v, _ := option.Unwrap(out)
	n, _ := v.AsNum()
	assert.Equal(t, float64(42), n)

	_, iss = Go(numFromStr)(option.Some(value.Str("x")), parseopts.Default())
	assert.NotNil(t, iss)
	assert.Equal(t, issue.KindInvalidValue, iss.Kind())

	encoded, iss := EncodeUnknown(numFromStr, value.Num(42), parseopts.Default())
	assert.Nil(t, iss)
	ev, _ := option.Unwrap(encoded)
	s, _ := ev.AsStr()
	assert.Equal(t, "42", s)
}
