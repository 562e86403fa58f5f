package schema

import (
	"testing"

	"github.com/fpschema/fpschema/check"
	"github.com/fpschema/fpschema/eq"
	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
	"github.com/stretchr/testify/assert"
)

// valueEq is the equality witness the round-trip/idempotence property tests
// use to compare a Value against what it decoded-then-encoded back into.
var valueEq = eq.FromEquals(value.Equal)

func TestStructDecode(t *testing.T) {
	user := Struct(
		Field("name", String()),
		OptionalField("age", Number()),
	)

	in := value.Map(
		value.Entry{Key: value.StringKey("name"), Value: value.Str("ada")},
	)

	out, iss := DecodeUnknown(user, in, parseopts.Default())
	assert.Nil(t, iss)
	got, ok := option.Unwrap(out)
	assert.True(t, ok)

	name, _ := got.Get("name")
	s, _ := name.AsStr()
	assert.Equal(t, "ada", s)
}

func TestArrayDecode(t *testing.T) {
	nums := Array(Number())
	in := value.Seq(value.Num(1), value.Num(2), value.Num(3))

	out, iss := DecodeUnknown(nums, in, parseopts.Default())
	assert.Nil(t, iss)
	got, _ := option.Unwrap(out)
	seq, _ := got.AsSeq()
	assert.Len(t, seq, 3)
}

func TestRecordDecode(t *testing.T) {
	dict := Record(String(), Number())
	in := value.Map(value.Entry{Key: value.StringKey("x"), Value: value.Num(1)})

	out, iss := DecodeUnknown(dict, in, parseopts.Default())
	assert.Nil(t, iss)
	got, _ := option.Unwrap(out)
	assert.True(t, got.Has("x"))
}

func TestUnionDecode(t *testing.T) {
	strOrNum := Union(String(), Number())

	_, iss := DecodeUnknown(strOrNum, value.Str("hi"), parseopts.Default())
	assert.Nil(t, iss)

	_, iss = DecodeUnknown(strOrNum, value.Bool(true), parseopts.Default())
	assert.NotNil(t, iss)
}

func TestGuards(t *testing.T) {
	assert.True(t, IsStringKw(String()))
	assert.True(t, IsTuple(Tuple(String())))
	assert.True(t, IsTypeLiteral(Struct()))
	assert.True(t, IsUnion(Union(String(), Number())))
	assert.False(t, HasChecks(String()))

	withCheck := Check(Number(), check.Refine("positive", func(v value.Value) bool {
		n, _ := v.AsNum()
		return n > 0
	}, "must be positive"))
	assert.True(t, HasChecks(withCheck))
}

func TestFormatRoundsTripsThroughTitle(t *testing.T) {
	n := WithTitle(String(), "Username")
	assert.Equal(t, "Username", Format(n))
}

func TestDecodeEncodeRoundTripIsIdempotent(t *testing.T) {
	user := Struct(
		Field("name", String()),
		OptionalField("age", Number()),
	)
	in := value.Map(
		value.Entry{Key: value.StringKey("name"), Value: value.Str("ada")},
		value.Entry{Key: value.StringKey("age"), Value: value.Num(36)},
	)

	decoded, iss := DecodeUnknown(user, in, parseopts.Default())
	assert.Nil(t, iss)
	typed, ok := option.Unwrap(decoded)
	assert.True(t, ok)

	encoded, iss := EncodeUnknown(user, typed, parseopts.Default())
	assert.Nil(t, iss)
	wire, ok := option.Unwrap(encoded)
	assert.True(t, ok)

	assert.True(t, valueEq.Equals(in, wire))

	redecoded, iss := DecodeUnknown(user, wire, parseopts.Default())
	assert.Nil(t, iss)
	retyped, ok := option.Unwrap(redecoded)
	assert.True(t, ok)
	assert.True(t, valueEq.Equals(typed, retyped))
}

func TestBuiltinsRegistryLookup(t *testing.T) {
	reg := Builtins()

	userSchema, err := reg.Lookup("user")
	assert.NoError(t, err)
	assert.NotNil(t, userSchema)

	_, err = reg.Lookup("missing")
	assert.Error(t, err)
}
