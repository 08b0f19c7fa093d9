package bitconv

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitconv/testutil"
)

func TestProject_SignUnsignedConsistency(t *testing.T) {
	for _, bits := range []BitWidth{1, 2, 3, 4, 7, 8, 16, 31, 32, 33, 64} {
		maxSigned := bits.MaxSigned()
		modulus := bits.modulus()

		for _, raw := range testutil.EdgeRaws(uint32(bits)) {
			p, err := Project(raw, bits)
			require.NoError(t, err)

			assert.Equal(t, raw.String(), p.Unsigned)

			want := new(big.Int).Set(raw)
			if raw.Cmp(maxSigned) > 0 {
				want.Sub(want, modulus)
			}
			assert.Equal(t, want.String(), p.Signed, "bits=%d raw=%s", bits, raw)
		}
	}
}

func TestProject_PaddingInvariant(t *testing.T) {
	rng := testutil.NewRNG(7)

	for i := 0; i < 300; i++ {
		bits := BitWidth(rng.Width(80))
		p, err := Project(rng.Raw(uint32(bits)), bits)
		require.NoError(t, err)

		assert.Len(t, p.Binary, int(bits))
		assert.Len(t, p.Hex, (int(bits)+3)/4)
		assert.Len(t, p.BitPattern, int(bits))
		assert.Equal(t, strings.ToUpper(p.Hex), p.Hex)
	}
}

func TestProject_BitPatternMSBFirst(t *testing.T) {
	p, err := Project(big.NewInt(0b1001), 6)
	require.NoError(t, err)

	assert.Equal(t, "001001", p.Binary)
	assert.Equal(t, []bool{false, false, true, false, false, true}, p.BitPattern)
	for i, bit := range p.BitPattern {
		assert.Equal(t, p.Binary[i] == '1', bit)
	}
}

func TestProject_OddWidths(t *testing.T) {
	tests := []struct {
		bits   BitWidth
		raw    int64
		binary string
		hex    string
		signed string
	}{
		{1, 1, "1", "1", "-1"},
		{1, 0, "0", "0", "0"},
		{5, 16, "10000", "10", "-16"},
		{5, 15, "01111", "0F", "15"},
		{12, 0x800, "100000000000", "800", "-2048"},
	}

	for _, tt := range tests {
		p, err := Project(big.NewInt(tt.raw), tt.bits)
		require.NoError(t, err)
		assert.Equal(t, tt.binary, p.Binary)
		assert.Equal(t, tt.hex, p.Hex)
		assert.Equal(t, tt.signed, p.Signed)
		assert.Equal(t, tt.bits, p.Bits)
	}
}

func TestProject_Rejects(t *testing.T) {
	t.Run("negative raw", func(t *testing.T) {
		_, err := Project(big.NewInt(-1), 8)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("raw too large", func(t *testing.T) {
		_, err := Project(big.NewInt(256), 8)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("nil raw", func(t *testing.T) {
		_, err := Project(nil, 8)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("invalid width", func(t *testing.T) {
		_, err := Project(big.NewInt(0), 0)
		assert.ErrorIs(t, err, ErrInvalidBitWidth)
	})
}

func TestProjections_Text(t *testing.T) {
	p := MustEncode("-2", 8, Signed).Project()

	assert.Equal(t, "-2", p.Text(Signed))
	assert.Equal(t, "254", p.Text(Unsigned))
	assert.Equal(t, "11111110", p.Text(Binary))
	assert.Equal(t, "FE", p.Text(Hex))
	assert.Equal(t, "", p.Text(Notation(0)))
}

func TestProjections_GroupedBinary(t *testing.T) {
	tests := []struct {
		bits BitWidth
		raw  int64
		want string
	}{
		{4, 5, "0101"},
		{3, 5, "101"},
		{8, 0xA5, "1010 0101"},
		{7, 0x5A, "101 1010"},
		{16, 0x00FF, "0000 0000 1111 1111"},
	}

	for _, tt := range tests {
		p, err := Project(big.NewInt(tt.raw), tt.bits)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.GroupedBinary())
	}
}
