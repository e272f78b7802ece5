package bigint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernlabs/ecckit/bigint"
)

func TestFromHexAcceptsPrefixAndCase(t *testing.T) {
	a, err := bigint.FromHex("0xFF")
	require.NoError(t, err)
	b, err := bigint.FromHex("ff")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, "ff", a.Hex(false, 0))
	assert.Equal(t, "FF", a.Hex(true, 0))
}

func TestFromHexRejectsEmptyAndGarbage(t *testing.T) {
	_, err := bigint.FromHex("")
	assert.Error(t, err)
	_, err = bigint.FromHex("0xzz")
	assert.Error(t, err)
}

func TestFromDecimalRejectsEmpty(t *testing.T) {
	_, err := bigint.FromDecimal("")
	assert.Error(t, err)
}

func TestHexZeroPad(t *testing.T) {
	v := bigint.FromInt64(0x18E)
	padded := v.Hex(false, 64)
	assert.Len(t, padded, 64)
	assert.Equal(t, "18e", padded[len(padded)-3:])
}

func TestModIsAlwaysInRange(t *testing.T) {
	x := bigint.FromInt64(-7)
	m := bigint.FromInt64(5)
	r, err := bigint.Mod(x, m)
	require.NoError(t, err)
	assert.Equal(t, "3", r.Decimal())
}

func TestModRejectsNonPositiveModulus(t *testing.T) {
	_, err := bigint.Mod(bigint.FromInt64(3), bigint.FromInt64(0))
	assert.Error(t, err)
}

func TestDivByZeroFails(t *testing.T) {
	_, err := bigint.Div(bigint.FromInt64(1), bigint.FromInt64(0))
	assert.Error(t, err)
}

func TestBitwiseRoundTrip(t *testing.T) {
	a := bigint.FromInt64(0b1010)
	b := bigint.FromInt64(0b0110)
	assert.Equal(t, int64(0b0010), mustInt64(t, bigint.And(a, b)))
	assert.Equal(t, int64(0b1110), mustInt64(t, bigint.Or(a, b)))
	assert.Equal(t, int64(0b1100), mustInt64(t, bigint.Xor(a, b)))
}

func TestBitAtIndex(t *testing.T) {
	v := bigint.FromInt64(0b1010)
	assert.False(t, v.Bit(0))
	assert.True(t, v.Bit(1))
	assert.False(t, v.Bit(2))
	assert.True(t, v.Bit(3))
}

func TestShifts(t *testing.T) {
	v := bigint.FromInt64(1)
	assert.Equal(t, int64(8), mustInt64(t, bigint.Lsh(v, 3)))
	assert.Equal(t, int64(0), mustInt64(t, bigint.Rsh(v, 3)))
}

func TestPowModReducesResult(t *testing.T) {
	base := bigint.FromInt64(4)
	exp := bigint.FromInt64(13)
	m := bigint.FromInt64(497)
	r, err := bigint.Pow(base, exp, m)
	require.NoError(t, err)
	assert.Equal(t, "445", r.Decimal())
}

func TestPowRejectsNegativeExponent(t *testing.T) {
	_, err := bigint.Pow(bigint.FromInt64(2), bigint.FromInt64(-1), bigint.FromInt64(7))
	assert.Error(t, err)
}

func TestBytesRoundTrip(t *testing.T) {
	orig := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	v := bigint.FromBytes(orig)
	assert.Equal(t, orig, v.Bytes())
}

func mustInt64(t *testing.T, v *bigint.Int) int64 {
	t.Helper()
	return v.BigInt().Int64()
}
