package parser

import (
	"testing"

	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/issue"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
	"github.com/stretchr/testify/assert"
)

func TestTypeLiteralMissingRequiredKey(t *testing.T) {
	schema := ast.TypeLiteral([]ast.PropertySignature{
		{Name: "name", Type: ast.StringKw()},
	})

	_, iss := Go(schema)(option.Some(value.Map()), parseopts.Default())

	assert.NotNil(t, iss)
	assert.Equal(t, issue.KindPointer, iss.Kind())
	assert.Equal(t, issue.KindMissingKey, iss.Inner().Kind())
}

func TestTypeLiteralOptionalKeyAbsent(t *testing.T) {
	schema := ast.TypeLiteral([]ast.PropertySignature{
		{Name: "name", Type: ast.OptionalKey(ast.StringKw())},
	})

	out, iss := Go(schema)(option.Some(value.Map()), parseopts.Default())

	assert.Nil(t, iss)
	v, _ := option.Unwrap(out)
	assert.False(t, v.Has("name"))
}

func TestIndexSignatureMerge(t *testing.T) {
	merge := &ast.Merge{
		Decode: func(k value.Key, a value.Value, b value.Value) (value.Key, value.Value) {
			an, _ := a.AsNum()
			bn, _ := b.AsNum()
			return k, value.Num(an + bn)
		},
	}
	schema := ast.TypeLiteral(nil, ast.IndexSignature{Parameter: ast.StringKw(), Type: ast.NumberKw(), Merge: merge})

	input := value.Map(
		value.Entry{Key: value.StringKey("a"), Value: value.Num(1)},
		value.Entry{Key: value.StringKey("a"), Value: value.Num(2)},
	)

	out, iss := Go(schema)(option.Some(input), parseopts.Default())

	assert.Nil(t, iss)
	v, _ := option.Unwrap(out)
	a, ok := v.Get("a")
	assert.True(t, ok)
	n, _ := a.AsNum()
	assert.Equal(t, float64(3), n)
}

func TestIndexSignatureCollisionWithoutMergeNotifiesAndLastWriteWins(t *testing.T) {
	schema := ast.TypeLiteral(nil, ast.IndexSignature{Parameter: ast.StringKw(), Type: ast.NumberKw()})

	input := value.Map(
		value.Entry{Key: value.StringKey("a"), Value: value.Num(1)},
		value.Entry{Key: value.StringKey("a"), Value: value.Num(2)},
	)

	var collided []value.Value
	opts := parseopts.Default()
	opts.OnKeyCollision = func(key any) { collided = append(collided, key.(value.Value)) }

	out, iss := Go(schema)(option.Some(input), opts)

	assert.Nil(t, iss)
	v, _ := option.Unwrap(out)
	a, _ := v.Get("a")
	n, _ := a.AsNum()
	assert.Equal(t, float64(2), n)
	assert.Len(t, collided, 1)
}
