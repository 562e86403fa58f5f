package transform

import (
	"testing"

	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/value"
	"github.com/stretchr/testify/assert"
)

func TestTrimRoundTrip(t *testing.T) {
	decoded, iss := Trim.DecodeFn(option.Some(value.Str("  x  ")))
	assert.Nil(t, iss)
	v, _ := option.Unwrap(decoded)
	s, _ := v.AsStr()
	assert.Equal(t, "x", s)

	encoded, iss := Trim.EncodeFn(option.Some(value.Str("x")))
	assert.Nil(t, iss)
	v, _ = option.Unwrap(encoded)
	s, _ = v.AsStr()
	assert.Equal(t, "x", s)
}

func TestSnakeToCamelRoundTrip(t *testing.T) {
	decoded, iss := SnakeToCamel.DecodeFn(option.Some(value.Str("user_first_name")))
	assert.Nil(t, iss)
	v, _ := option.Unwrap(decoded)
	camel, _ := v.AsStr()
	assert.Equal(t, "userFirstName", camel)

	encoded, iss := SnakeToCamel.EncodeFn(option.Some(value.Str(camel)))
	assert.Nil(t, iss)
	v, _ = option.Unwrap(encoded)
	snake, _ := v.AsStr()
	assert.Equal(t, "user_first_name", snake)
}

func TestNumberCoercion(t *testing.T) {
	out, iss := Number.DecodeFn(option.Some(value.Str("42")))
	assert.Nil(t, iss)
	v, _ := option.Unwrap(out)
	n, _ := v.AsNum()
	assert.Equal(t, float64(42), n)

	_, iss = Number.DecodeFn(option.Some(value.Str("not-a-number")))
	assert.NotNil(t, iss)
}

func TestWithDecodingDefault(t *testing.T) {
	d := WithDecodingDefault(func() value.Value { return value.Num(7) })
	out, iss := d.DecodeFn(option.None[value.Value]())
	assert.Nil(t, iss)
	v, ok := option.Unwrap(out)
	assert.True(t, ok)
	n, _ := v.AsNum()
	assert.Equal(t, float64(7), n)
}

func TestOmitKeyUnless(t *testing.T) {
	omit := OmitKeyUnless(func(v value.Value) bool {
		n, _ := v.AsNum()
		return n > 0
	})
	out, iss := omit.DecodeFn(option.Some(value.Num(-1)))
	assert.Nil(t, iss)
	assert.False(t, option.IsSome(out))

	out, iss = omit.DecodeFn(option.Some(value.Num(1)))
	assert.Nil(t, iss)
	assert.True(t, option.IsSome(out))
}
