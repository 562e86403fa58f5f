package parser

import (
	"bytes"
	"log"
	"testing"

	"github.com/fpschema/fpschema/ast"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
	"github.com/stretchr/testify/assert"
)

func TestWithLoggerTracesSuccessAndFailure(t *testing.T) {
	var buf bytes.Buffer
	WithLogger(log.New(&buf, "", 0))
	defer func() { tracer = nil }()

	schema := ast.StringKw()
	Go(schema)(option.Some(value.Str("ok")), parseopts.Default())
	Go(schema)(option.Some(value.Num(1)), parseopts.Default())

	assert.Contains(t, buf.String(), "ok")
	assert.Contains(t, buf.String(), "failed")
}
