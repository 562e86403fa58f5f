package jsonvalue

import (
	"testing"

	"github.com/fpschema/fpschema/either"
	"github.com/fpschema/fpschema/eq"
	"github.com/fpschema/fpschema/value"
	"github.com/stretchr/testify/assert"
)

// valueEq witnesses the round-trip/idempotence property tests' equality
// check: two Values are equal iff value.Equal says so.
var valueEq = eq.FromEquals(value.Equal)

func TestUnmarshalObject(t *testing.T) {
	result := Unmarshal([]byte(`{"name":"ada","age":30,"tags":["x","y"]}`))
	assert.True(t, either.IsRight(result))

	v, _ := either.Unwrap(result)
	name, _ := v.Get("name")
	s, _ := name.AsStr()
	assert.Equal(t, "ada", s)

	tags, _ := v.Get("tags")
	seq, _ := tags.AsSeq()
	assert.Len(t, seq, 2)
}

func TestUnmarshalInvalidJSON(t *testing.T) {
	result := Unmarshal([]byte(`not json`))
	assert.True(t, either.IsLeft(result))
}

func TestMarshalRoundTrip(t *testing.T) {
	v := value.Map(
		value.Entry{Key: value.StringKey("a"), Value: value.Num(1)},
		value.Entry{Key: value.StringKey("b"), Value: value.Bool(true)},
	)

	marshaled := Marshal(v)
	assert.True(t, either.IsRight(marshaled))

	data, _ := either.Unwrap(marshaled)
	back := Unmarshal(data)
	assert.True(t, either.IsRight(back))

	roundTripped, _ := either.Unwrap(back)
	assert.True(t, valueEq.Equals(v, roundTripped))
}

func TestFromToJSONScalars(t *testing.T) {
	assert.Nil(t, ToJSON(value.Null()))
	assert.Equal(t, true, ToJSON(value.Bool(true)))
	assert.Equal(t, 3.5, ToJSON(value.Num(3.5)))
	assert.Equal(t, "hi", ToJSON(value.Str("hi")))
}
