package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsRoundTripTag(t *testing.T) {
	assert.Equal(t, TagNull, Null().Tag())
	assert.Equal(t, TagUndefined, Undefined().Tag())

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	n, ok := Num(3.5).AsNum()
	assert.True(t, ok)
	assert.Equal(t, 3.5, n)

	s, ok := Str("hi").AsStr()
	assert.True(t, ok)
	assert.Equal(t, "hi", s)
}

func TestBigIntRoundTrip(t *testing.T) {
	bi := big.NewInt(9000)
	v := BigInt(bi)

	got, ok := v.AsBigInt()
	assert.True(t, ok)
	assert.Equal(t, 0, bi.Cmp(got))
}

func TestSeqCopiesInput(t *testing.T) {
	elements := []Value{Num(1), Num(2)}
	v := Seq(elements...)
	elements[0] = Num(99)

	seq, _ := v.AsSeq()
	n, _ := seq[0].AsNum()
	assert.Equal(t, float64(1), n)
}

func TestMapGetAndHas(t *testing.T) {
	v := Map(Entry{Key: StringKey("a"), Value: Num(1)})

	got, ok := v.Get("a")
	assert.True(t, ok)
	n, _ := got.AsNum()
	assert.Equal(t, float64(1), n)
	assert.True(t, v.Has("a"))
	assert.False(t, v.Has("b"))
}

func TestWithEntryOverwrites(t *testing.T) {
	v := Map(Entry{Key: StringKey("a"), Value: Num(1)})
	updated := v.WithEntry(StringKey("a"), Num(2))

	got, _ := updated.Get("a")
	n, _ := got.AsNum()
	assert.Equal(t, float64(2), n)
	assert.Equal(t, 1, updated.Len())
}
