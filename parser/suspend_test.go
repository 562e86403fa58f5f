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

func TestRecursiveRecord(t *testing.T) {
	var tree *ast.Node
	tree = ast.TypeLiteral([]ast.PropertySignature{
		{Name: "v", Type: ast.StringKw()},
		{Name: "kids", Type: ast.Tuple(false, nil, ast.Suspend(func() *ast.Node { return tree }))},
	})

	input := value.Map(
		value.Entry{Key: value.StringKey("v"), Value: value.Str("r")},
		value.Entry{Key: value.StringKey("kids"), Value: value.Seq(
			value.Map(
				value.Entry{Key: value.StringKey("v"), Value: value.Str("a")},
				value.Entry{Key: value.StringKey("kids"), Value: value.Seq()},
			),
		)},
	)

	out, iss := Go(tree)(option.Some(input), parseopts.Default())

	assert.Nil(t, iss)
	v, ok := option.Unwrap(out)
	assert.True(t, ok)
	assert.True(t, value.Equal(input, v))
}

func TestGoMemoizesSameNode(t *testing.T) {
	builds := 0
	n := ast.Declare(nil, func([]*ast.Node) ast.DeclParserFunc {
		builds++
		return func(in option.Option[value.Value], _ *ast.Node, _ parseopts.Options) (option.Option[value.Value], *issue.Issue) {
			return in, nil
		}
	})
	Go(n)
	Go(n)
	assert.Equal(t, 1, builds)
}
