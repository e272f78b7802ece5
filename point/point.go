// Package point implements the three point representations spec.md §3/§4
// (C3) needs: Affine, Projective (the simple (X/Z, Y/Z) form, which is
// also what weierstrass's projective formulas operate on), and
// Montgomery-XZ. Every conversion accepts every input and maps identities
// to identities; ToAffine and ToAffineX return an error only when a
// nonzero Z has no inverse mod p.
package point

import (
	"github.com/wyvernlabs/ecckit/bigint"
	"github.com/wyvernlabs/ecckit/field"
)

// Affine is an ordinary (x, y) point, with Infinity the identity.
type Affine struct {
	X, Y     *bigint.Int
	Infinity bool
}

// AffineIdentity returns the point at infinity in affine form.
func AffineIdentity() Affine {
	return Affine{Infinity: true}
}

// Equal reports coordinate-wise equality, per spec.md §3.
func (a Affine) Equal(b Affine) bool {
	if a.Infinity || b.Infinity {
		return a.Infinity == b.Infinity
	}
	return a.X.Cmp(b.X) == 0 && a.Y.Cmp(b.Y) == 0
}

// Projective is the triple (X, Y, Z) with affine interpretation (X/Z, Y/Z)
// when Z != 0. Identity is (0, 1, 0).
type Projective struct {
	X, Y, Z *bigint.Int
}

// ProjectiveIdentity returns (0, 1, 0).
func ProjectiveIdentity() Projective {
	return Projective{X: bigint.Zero(), Y: bigint.FromInt64(1), Z: bigint.Zero()}
}

// IsIdentity reports whether p represents the point at infinity (Z == 0).
func (p Projective) IsIdentity() bool {
	return p.Z.Sign() == 0
}

// ToAffine normalises p through X/Z, Y/Z modulo f.P(). The point at
// infinity maps to the affine identity.
func (p Projective) ToAffine(f *field.Field) (Affine, error) {
	if p.IsIdentity() {
		return AffineIdentity(), nil
	}
	zInv, err := f.Inverse(p.Z)
	if err != nil {
		return Affine{}, err
	}
	return Affine{X: f.Mul(p.X, zInv), Y: f.Mul(p.Y, zInv)}, nil
}

// FromAffine lifts an affine point into projective coordinates with Z = 1
// (or the identity, for infinity).
func FromAffine(a Affine) Projective {
	if a.Infinity {
		return ProjectiveIdentity()
	}
	return Projective{X: a.X.Clone(), Y: a.Y.Clone(), Z: bigint.FromInt64(1)}
}

// MontgomeryXZ is the (x, z) pair the Montgomery ladder operates on. The y
// coordinate is never materialised (spec.md §3 invariant). Identity is
// (1, 0).
type MontgomeryXZ struct {
	X, Z *bigint.Int
}

// MontgomeryIdentity returns (1, 0).
func MontgomeryIdentity() MontgomeryXZ {
	return MontgomeryXZ{X: bigint.FromInt64(1), Z: bigint.Zero()}
}

// ToAffineX recovers the affine x-coordinate, x = X/Z mod p. Used once the
// ladder has finished; the y-coordinate, if needed, is recovered
// separately by the caller via field.SquareRoots on the curve equation
// (spec.md §4.6, §9).
func (m MontgomeryXZ) ToAffineX(f *field.Field) (*bigint.Int, error) {
	if m.Z.Sign() == 0 {
		return nil, nil
	}
	zInv, err := f.Inverse(m.Z)
	if err != nil {
		return nil, err
	}
	return f.Mul(m.X, zInv), nil
}

// FromAffineX lifts a bare x-coordinate into Montgomery-XZ form with Z = 1,
// the D.z == 1 precondition the differential addition formula requires.
func FromAffineX(x *bigint.Int) MontgomeryXZ {
	return MontgomeryXZ{X: x.Clone(), Z: bigint.FromInt64(1)}
}
