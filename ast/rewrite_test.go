package ast

import (
	"testing"

	"github.com/fpschema/fpschema/check"
	"github.com/fpschema/fpschema/value"
	"github.com/stretchr/testify/assert"
)

func TestFlipFlipIsIdentityWithoutEncoding(t *testing.T) {
	n := TypeLiteral([]PropertySignature{
		{Name: "a", Type: StringKw()},
		{Name: "b", Type: NumberKw()},
	})

	flipped := Flip(n)
	back := Flip(flipped)

	assert.Equal(t, n.Kind(), back.Kind())
	assert.Equal(t, len(n.TypeLiteral().PropertySigs), len(back.TypeLiteral().PropertySigs))
}

func TestTypeASTIdempotent(t *testing.T) {
	nonEmpty := check.Refine("non_empty", func(v value.Value) bool {
		s, _ := v.AsStr()
		return s != ""
	}, "must not be empty")
	n := Annotate(Check(StringKw(), nonEmpty), "title", "name")

	once := TypeAST(n)
	twice := TypeAST(once)

	assert.Equal(t, once.Kind(), twice.Kind())
	assert.Nil(t, twice.Extensions().Annotations)
	assert.Empty(t, twice.Extensions().Checks)
}

func TestTypeASTStripsExtensions(t *testing.T) {
	n := Annotate(StringKw(), "title", "name")
	stripped := TypeAST(n)

	assert.Nil(t, stripped.Extensions().Annotations)
	assert.Equal(t, KindStringKw, stripped.Kind())
}

func TestReplaceEncodingNoOpPreservesPayload(t *testing.T) {
	n := NumberKw()
	replaced := ReplaceEncoding(n, nil)

	assert.Equal(t, n.Kind(), replaced.Kind())
	assert.Empty(t, replaced.Extensions().Encoding)
}

func TestAppendChecksAccumulates(t *testing.T) {
	nonEmpty := check.Refine("non_empty", func(v value.Value) bool {
		s, _ := v.AsStr()
		return s != ""
	}, "must not be empty")
	n := AppendChecks(StringKw(), nonEmpty)
	n = AppendChecks(n, nonEmpty)

	assert.Equal(t, 2, len(n.Extensions().Checks))
}
