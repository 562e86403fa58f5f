package either

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeftRight(t *testing.T) {
	r := Right[error](5)
	assert.True(t, IsRight(r))
	assert.False(t, IsLeft(r))

	l := Left[int](errors.New("boom"))
	assert.True(t, IsLeft(l))
}

func TestMapAndChain(t *testing.T) {
	r := Right[error](2)
	doubled := MonadMap(r, func(a int) int { return a * 2 })
	v, err := Unwrap(doubled)
	assert.NoError(t, err)
	assert.Equal(t, 4, v)

	chained := MonadChain(r, func(a int) Either[error, int] { return Right[error](a + 1) })
	v, err = Unwrap(chained)
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestTryCatchError(t *testing.T) {
	ok := TryCatchError(42, nil)
	assert.True(t, IsRight(ok))

	fail := TryCatchError(0, errors.New("bad"))
	assert.True(t, IsLeft(fail))
}
