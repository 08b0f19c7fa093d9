package bitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodedValue_RawIsCopy(t *testing.T) {
	v := MustEncode("5", 8, Unsigned)
	raw := v.Raw()
	raw.SetInt64(99)

	assert.Equal(t, int64(5), v.Raw().Int64())
}

func TestEncodedValue_Negative(t *testing.T) {
	assert.True(t, MustEncode("-1", 8, Signed).Negative())
	assert.True(t, MustEncode("0x80", 8, Hex).Negative())
	assert.False(t, MustEncode("127", 8, Signed).Negative())
	assert.False(t, EncodedValue{}.Negative())
}

func TestEncodedValue_ZeroValue(t *testing.T) {
	var v EncodedValue
	assert.True(t, v.IsZero())
	assert.Equal(t, int64(0), v.Raw().Int64())
	assert.Equal(t, Projections{}, v.Project())
	assert.Equal(t, uint64(0), v.SetBits().GetCardinality())

	assert.False(t, MustEncode("0", 8, Unsigned).IsZero())
}

func TestEncodedValue_SetBits(t *testing.T) {
	v := MustEncode("1010 0001", 8, Binary)

	rb := v.SetBits()
	assert.Equal(t, []uint32{0, 5, 7}, rb.ToArray())
	assert.Equal(t, 3, v.OnesCount())

	assert.Equal(t, 32, MustEncode("-1", 32, Signed).OnesCount())
	assert.Equal(t, 0, MustEncode("0", 32, Signed).OnesCount())
}
