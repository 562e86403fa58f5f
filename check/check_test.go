package check

import (
	"testing"

	"github.com/fpschema/fpschema/option"
	"github.com/fpschema/fpschema/parseopts"
	"github.com/fpschema/fpschema/value"
	"github.com/stretchr/testify/assert"
)

func positive(v value.Value) bool {
	n, _ := v.AsNum()
	return n > 0
}

func even(v value.Value) bool {
	n, _ := v.AsNum()
	return int(n)%2 == 0
}

func TestRunErrorsFirstShortCircuits(t *testing.T) {
	checks := []Check{
		Refine("positive", positive, "must be positive"),
		Refine("even", even, "must be even"),
	}

	result := Run(checks, value.Num(-3), nil, parseopts.ErrorsFirst)

	iss, ok := option.Unwrap(result)
	assert.True(t, ok)
	assert.Equal(t, 1, iss.LeafCount())
}

func TestRunErrorsAllAggregates(t *testing.T) {
	checks := []Check{
		Refine("positive", positive, "must be positive"),
		Refine("even", even, "must be even"),
	}

	result := Run(checks, value.Num(-3), nil, parseopts.ErrorsAll)

	iss, ok := option.Unwrap(result)
	assert.True(t, ok)
	assert.Equal(t, 2, iss.LeafCount())
}

func TestRunAllPass(t *testing.T) {
	checks := []Check{Refine("positive", positive, "must be positive")}

	result := Run(checks, value.Num(4), nil, parseopts.ErrorsFirst)

	assert.False(t, option.IsSome(result))
}

func TestFilterGroupStopsAtFirstFailure(t *testing.T) {
	group := NewFilterGroup("numeric", Refine("positive", positive, "must be positive"), Refine("even", even, "must be even"))

	result := group.Evaluate(value.Num(-4))

	iss, ok := option.Unwrap(result)
	assert.True(t, ok)
	assert.Equal(t, 1, iss.LeafCount())
}

func TestRejectFailsWhenPredicateHolds(t *testing.T) {
	negative := func(v value.Value) bool {
		n, _ := v.AsNum()
		return n < 0
	}
	c := Reject("non-negative", negative, "must not be negative")

	assert.True(t, option.IsSome(c.Evaluate(value.Num(-1))))
	assert.False(t, option.IsSome(c.Evaluate(value.Num(1))))
}

func TestRefineByAdaptsProjectedPredicate(t *testing.T) {
	strLen := func(v value.Value) int {
		s, _ := v.AsStr()
		return len(s)
	}
	c := RefineBy("nonempty", strLen, func(n int) bool { return n > 0 }, "must not be empty")

	assert.False(t, option.IsSome(c.Evaluate(value.Str("hi"))))
	assert.True(t, option.IsSome(c.Evaluate(value.Str(""))))
}

func TestAllRequiresEveryPredicate(t *testing.T) {
	c := All("positive-and-even", "must be positive and even", positive, even)

	assert.False(t, option.IsSome(c.Evaluate(value.Num(4))))
	assert.True(t, option.IsSome(c.Evaluate(value.Num(-4))))
	assert.True(t, option.IsSome(c.Evaluate(value.Num(3))))
}

func TestAnyRequiresOnePredicate(t *testing.T) {
	isNegative := func(v value.Value) bool {
		n, _ := v.AsNum()
		return n < 0
	}
	c := Any("even-or-negative", "must be even or negative", even, isNegative)

	assert.False(t, option.IsSome(c.Evaluate(value.Num(4))))
	assert.False(t, option.IsSome(c.Evaluate(value.Num(-3))))
	assert.True(t, option.IsSome(c.Evaluate(value.Num(3))))
}
