package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqualNullNeverMatches(t *testing.T) {
	assert.False(t, Null.Equal(Null))
	assert.False(t, Null.Equal(IntValue(0)))
	assert.False(t, IntValue(0).Equal(Null))
}

func TestValueEqualAcrossKinds(t *testing.T) {
	assert.False(t, IntValue(1).Equal(FloatValue(1)))
	assert.True(t, IntValue(1).Equal(IntValue(1)))
	assert.True(t, TextValue("a").Equal(TextValue("a")))
}

func TestValueCompareIncomparable(t *testing.T) {
	_, err := Null.Compare(IntValue(1))
	assert.ErrorIs(t, err, ErrIncomparable)

	_, err = IntValue(1).Compare(TextValue("1"))
	assert.ErrorIs(t, err, ErrIncomparable)
}

func TestValueCompareOrdering(t *testing.T) {
	cmp, err := IntValue(1).Compare(IntValue(2))
	assert.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = FloatValue(2.5).Compare(FloatValue(2.5))
	assert.NoError(t, err)
	assert.Equal(t, 0, cmp)
}

func TestValueRawAndString(t *testing.T) {
	assert.Nil(t, Null.Raw())
	assert.Equal(t, int64(5), IntValue(5).Raw())
	assert.Equal(t, "5", IntValue(5).String())
	assert.Equal(t, "NULL", Null.String())
}

func TestValueFromJSONRoundTrip(t *testing.T) {
	v, err := ValueFromJSON(float64(42), KindInt)
	assert.NoError(t, err)
	assert.Equal(t, IntValue(42), v)

	v, err = ValueFromJSON(nil, KindInt)
	assert.NoError(t, err)
	assert.True(t, v.IsNull())

	_, err = ValueFromJSON(float64(1.5), KindInt)
	assert.Error(t, err)
}
