package conversion_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/basics/internal/conversion"
)

func TestTryEvenNumber_Even(t *testing.T) {
	r := conversion.TryEvenNumber(8)

	require.True(t, r.IsOk())
	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, conversion.EvenNumber(8), v)
	assert.Equal(t, "Ok(8)", r.String())
}

func TestTryEvenNumber_Odd(t *testing.T) {
	r := conversion.TryEvenNumber(5)

	assert.False(t, r.IsOk())
	assert.ErrorIs(t, r.Err, conversion.ErrNotEven)
	assert.Equal(t, "Err(not an even number)", r.String())
}

func TestTryInto_MatchesTryEvenNumber(t *testing.T) {
	for _, v := range []int32{-4, -3, 0, 5, 8} {
		assert.Equal(t, conversion.TryEvenNumber(v), conversion.Int32(v).TryInto(), "value %d", v)
	}
}

func TestInto(t *testing.T) {
	assert.Equal(t, conversion.Number{Value: 5}, conversion.Int32(5).Into())
	assert.Equal(t, conversion.Number{Value: 30}, conversion.NumberFrom(30))
}

func TestFromInto_Output(t *testing.T) {
	var buf bytes.Buffer
	conversion.FromInto(&buf)

	assert.Equal(t, "My number is {Value:30}\nMy number is {Value:5}\n", buf.String())
}

func TestTryFromInto_AllChecksPass(t *testing.T) {
	var buf bytes.Buffer
	conversion.TryFromInto(&buf)

	out := buf.String()
	assert.Contains(t, out, "TryEvenNumber(8) = Ok(8) ... ok\n")
	assert.Contains(t, out, "TryEvenNumber(5) = Err(not an even number) ... ok\n")
	assert.NotContains(t, out, "MISMATCH")
}

func TestParseFromString_Output(t *testing.T) {
	var buf bytes.Buffer
	conversion.ParseFromString(&buf)

	assert.Equal(t, "Circle of radius 6\nto_string() : 6\nSum: 15\n", buf.String())
}
