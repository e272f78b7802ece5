package key_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernlabs/ecckit/bigint"
	"github.com/wyvernlabs/ecckit/curve"
	"github.com/wyvernlabs/ecckit/key"
	"github.com/wyvernlabs/ecckit/rng"
)

func secp256k1Descriptor(t *testing.T) *curve.Descriptor {
	t.Helper()
	d, err := curve.ByID(curve.Secp256k1)
	require.NoError(t, err)
	return d
}

func TestNewRejectsZeroScalar(t *testing.T) {
	d := secp256k1Descriptor(t)
	_, err := key.New(d, bigint.Zero())
	assert.Error(t, err)
}

func TestNewRejectsScalarAtOrAboveOrder(t *testing.T) {
	d := secp256k1Descriptor(t)
	_, err := key.New(d, d.N.Clone())
	assert.Error(t, err)
}

func TestFromHexRoundTripsThroughHex(t *testing.T) {
	d := secp256k1Descriptor(t)
	priv, err := key.FromHex(d, "0x18E")
	require.NoError(t, err)
	assert.Equal(t, 64, len(priv.Hex()))

	again, err := key.FromHex(d, priv.Hex())
	require.NoError(t, err)
	assert.Equal(t, 0, again.K.Cmp(priv.K))
}

func TestFromBase64RoundTrip(t *testing.T) {
	d := secp256k1Descriptor(t)
	priv, err := key.New(d, bigint.FromInt64(12345))
	require.NoError(t, err)

	again, err := key.FromBase64(d, priv.Base64())
	require.NoError(t, err)
	assert.Equal(t, 0, again.K.Cmp(priv.K))
}

func TestGenerateKeyProducesInRangeScalar(t *testing.T) {
	d := secp256k1Descriptor(t)
	priv, err := key.GenerateKey(d, rng.Secure())
	require.NoError(t, err)
	assert.True(t, priv.K.Sign() > 0)
	assert.True(t, priv.K.Cmp(d.N) < 0)
}

func TestZeroErasesScalar(t *testing.T) {
	d := secp256k1Descriptor(t)
	priv, err := key.New(d, bigint.FromInt64(999))
	require.NoError(t, err)
	priv.Zero()
	assert.Equal(t, 0, priv.K.Sign())
}

func TestDeriveOnShortWeierstrassMatchesGeneratorForOne(t *testing.T) {
	d := secp256k1Descriptor(t)
	priv, err := key.New(d, bigint.FromInt64(1))
	require.NoError(t, err)

	pub, err := key.Derive(priv, true, rng.Secure())
	require.NoError(t, err)
	assert.Equal(t, 0, pub.Point.X.Cmp(d.G.X))
	assert.Equal(t, 0, pub.Point.Y.Cmp(d.G.Y))
}

func TestDeriveCompressedAndUncompressedRoundTripLengths(t *testing.T) {
	d := secp256k1Descriptor(t)
	priv, err := key.New(d, bigint.FromInt64(42))
	require.NoError(t, err)
	pub, err := key.Derive(priv, true, rng.Secure())
	require.NoError(t, err)

	assert.Equal(t, 33, len(pub.Compressed()))
	assert.Equal(t, 65, len(pub.Uncompressed()))
	assert.True(t, pub.Compressed()[0] == 0x02 || pub.Compressed()[0] == 0x03)
	assert.Equal(t, byte(0x04), pub.Uncompressed()[0])
}

func TestDeriveOnMontgomeryCurve(t *testing.T) {
	d, err := curve.ByID(curve.Curve25519)
	require.NoError(t, err)
	priv, err := key.New(d, bigint.FromInt64(1))
	require.NoError(t, err)

	pub, err := key.Derive(priv, false, rng.Fixed([]byte("seed")))
	require.NoError(t, err)
	assert.Equal(t, 0, pub.Point.X.Cmp(d.G.X))
}

func TestParsePublicKeyRoundTripsUncompressed(t *testing.T) {
	d := secp256k1Descriptor(t)
	priv, err := key.New(d, bigint.FromInt64(7))
	require.NoError(t, err)
	pub, err := key.Derive(priv, true, rng.Secure())
	require.NoError(t, err)

	parsed, err := key.ParsePublicKey(d, pub.Uncompressed())
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Point.X.Cmp(pub.Point.X))
	assert.Equal(t, 0, parsed.Point.Y.Cmp(pub.Point.Y))
}

func TestParsePublicKeyRoundTripsCompressed(t *testing.T) {
	d := secp256k1Descriptor(t)
	priv, err := key.New(d, bigint.FromInt64(7))
	require.NoError(t, err)
	pub, err := key.Derive(priv, true, rng.Secure())
	require.NoError(t, err)

	parsed, err := key.ParsePublicKey(d, pub.Compressed())
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Point.X.Cmp(pub.Point.X))
	assert.Equal(t, 0, parsed.Point.Y.Cmp(pub.Point.Y))
}

func TestParsePublicKeyRejectsOffCurvePoint(t *testing.T) {
	d := secp256k1Descriptor(t)
	bad := make([]byte, 65)
	bad[0] = 0x04
	bigint.FromInt64(1).FillBytes(bad[1:33])
	bigint.FromInt64(2).FillBytes(bad[33:])

	_, err := key.ParsePublicKey(d, bad)
	assert.Error(t, err)
}

func TestParsePublicKeyRejectsWrongLength(t *testing.T) {
	d := secp256k1Descriptor(t)
	_, err := key.ParsePublicKey(d, []byte{0x04, 0x01, 0x02})
	assert.Error(t, err)
}

func TestDeriveOnMontgomeryCurveWithYRecoverySatisfiesCurveEquation(t *testing.T) {
	d, err := curve.ByID(curve.Curve25519)
	require.NoError(t, err)
	priv, err := key.New(d, bigint.FromInt64(2))
	require.NoError(t, err)

	pub, err := key.Derive(priv, true, rng.Fixed([]byte("seed-y")))
	require.NoError(t, err)

	f := d.Field
	lhs := f.Mul(d.B, f.Square(pub.Point.Y))
	rhs := f.Add(f.Add(f.Mul(f.Square(pub.Point.X), pub.Point.X), f.Mul(d.A, f.Square(pub.Point.X))), pub.Point.X)
	assert.Equal(t, 0, lhs.Cmp(rhs))
}
