package format

import (
	"testing"

	"github.com/fpschema/fpschema/ast"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrimitive(t *testing.T) {
	assert.Equal(t, "string", Format(ast.StringKw()))
}

func TestFormatTitleOverride(t *testing.T) {
	n := ast.Annotate(ast.StringKw(), "title", "Username")
	assert.Equal(t, "Username", Format(n))
}

func TestFormatTuple(t *testing.T) {
	n := ast.Tuple(false, []*ast.Node{ast.StringKw(), ast.NumberKw()})
	assert.Equal(t, "[string, number]", Format(n))
}

func TestFormatTypeLiteral(t *testing.T) {
	n := ast.TypeLiteral([]ast.PropertySignature{
		{Name: "name", Type: ast.StringKw()},
		{Name: "age", Type: ast.OptionalKey(ast.NumberKw())},
	})
	assert.Equal(t, "{ name: string; age?: number }", Format(n))
}

func TestFormatUnion(t *testing.T) {
	n := ast.Union(ast.AnyOf, ast.StringKw(), ast.NumberKw())
	assert.Equal(t, "string | number", Format(n))
}
