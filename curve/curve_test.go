package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernlabs/ecckit/curve"
)

func TestRegisteredIncludesAllBuiltinCurves(t *testing.T) {
	ids := curve.Registered()
	assert.Contains(t, ids, curve.Secp256k1)
	assert.Contains(t, ids, curve.Secp256r1)
	assert.Contains(t, ids, curve.Curve25519)
}

func TestByIDRejectsUnknownCurve(t *testing.T) {
	_, err := curve.ByID("not-a-curve")
	assert.Error(t, err)
}

func TestByIDSecp256r1HasExpectedForm(t *testing.T) {
	d, err := curve.ByID(curve.Secp256r1)
	require.NoError(t, err)
	assert.Equal(t, curve.ShortWeierstrass, d.Form)
	assert.Equal(t, 1, d.H.Sign())
}

func TestByIDCurve25519HasMontgomeryForm(t *testing.T) {
	d, err := curve.ByID(curve.Curve25519)
	require.NoError(t, err)
	assert.Equal(t, curve.Montgomery, d.Form)
}

// TestRegisteredFieldModuliAreFullWidth guards against a truncated hex
// literal silently producing a composite, narrower field modulus (a
// modulus one byte short of the genuine 256-bit prime still parses as a
// number, just not the right one, and field.New's primality check is the
// only thing standing between that and a working-looking but wrong
// curve). secp256k1 and secp256r1 are 256-bit fields; Curve25519's
// 2^255 - 19 is a 255-bit field.
func TestRegisteredFieldModuliAreFullWidth(t *testing.T) {
	wantBits := map[curve.ID]int{
		curve.Secp256k1:  256,
		curve.Secp256r1:  256,
		curve.Curve25519: 255,
	}
	for _, id := range curve.Registered() {
		d, err := curve.ByID(id)
		require.NoError(t, err)
		assert.Equal(t, wantBits[id], d.Field.P().BitLen(), "curve %s field modulus bit length", id)
	}
}
