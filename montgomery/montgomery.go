// Package montgomery implements the Curve25519-style XZ ladder engine
// spec.md §4.4 calls C6: the constant-time conditional swap, the
// "mladd-1987-m-3" differential add-and-double, the MSB-first ladder
// multiply, and Coron's projective randomisation countermeasure.
//
// This is the teacher package's own Montgomery territory generalized: where
// elliptic.go hard-codes NIST Weierstrass curves and never touches XZ
// coordinates, montgomery mirrors its "every curve parameter and every
// entropy source is an explicit argument" shape while replacing the affine
// chord-and-tangent law with the Coron-randomised ladder spec.md requires.
package montgomery

import (
	"github.com/wyvernlabs/ecckit/bigint"
	"github.com/wyvernlabs/ecckit/curve"
	"github.com/wyvernlabs/ecckit/errs"
	"github.com/wyvernlabs/ecckit/field"
	"github.com/wyvernlabs/ecckit/point"
	"github.com/wyvernlabs/ecckit/rng"
)

// Curve binds the Montgomery engine to a specific descriptor.
type Curve struct {
	D *curve.Descriptor
	F *field.Field
}

// New binds the engine to d. Fails if d is not a Montgomery descriptor.
func New(d *curve.Descriptor) (*Curve, error) {
	if d.Form != curve.Montgomery {
		return nil, errs.Wrap(errs.CurveInvariantError, "curve %s is not montgomery", d.ID)
	}
	return &Curve{D: d, F: d.Field}, nil
}

func byteWidth(f *field.Field) int {
	return (f.P().BitLen() + 7) / 8
}

// conditionalSwap returns (y, x) when flag is true and (x, y) otherwise,
// running the same fixed sequence of byte-wise XOR operations either way:
// mask is all-ones or all-zero across every byte, delta is mask & (x XOR
// y), and each value is XORed with delta. No branch depends on flag past
// the single mask computation, per spec.md §4.4's conditional-swap
// contract. Equal operands are not rejected; they come back unchanged.
func conditionalSwap(width int, x, y *bigint.Int, flag bool) (*bigint.Int, *bigint.Int) {
	var mask byte
	if flag {
		mask = 0xFF
	}

	xb := make([]byte, width)
	yb := make([]byte, width)
	x.FillBytes(xb)
	y.FillBytes(yb)

	for i := 0; i < width; i++ {
		delta := mask & (xb[i] ^ yb[i])
		xb[i] ^= delta
		yb[i] ^= delta
	}

	return bigint.FromBytes(xb), bigint.FromBytes(yb)
}

// swapXZ applies conditionalSwap coordinate-wise to a pair of Montgomery-XZ
// points.
func swapXZ(width int, r, s point.MontgomeryXZ, flag bool) (point.MontgomeryXZ, point.MontgomeryXZ) {
	rx, sx := conditionalSwap(width, r.X, s.X, flag)
	rz, sz := conditionalSwap(width, r.Z, s.Z, flag)
	return point.MontgomeryXZ{X: rx, Z: rz}, point.MontgomeryXZ{X: sx, Z: sz}
}

// ladderStep computes (2R, R+P) from R, S = R+P and the difference point D
// (D.z = 1), using the "mladd-1987-m-3" differential add-and-double formula
// reproduced operand-for-operand per spec.md §4.4:
//
//	A=X₂+Z₂; AA=A²; B=X₂−Z₂; BB=B²; E=AA−BB
//	C=X₃+Z₃; D'=X₃−Z₃; DA=D'·A; CB=C·B
//	S.x = Z₁(DA+CB)²; S.z = X₁(DA−CB)²
//	R.x = AA·BB; R.z = E(BB + a24·E)
//
// where (X₁,Z₁) = D, (X₂,Z₂) = R, (X₃,Z₃) = S.
func (c *Curve) ladderStep(r, s point.MontgomeryXZ, d point.MontgomeryXZ) (point.MontgomeryXZ, point.MontgomeryXZ) {
	f := c.F
	a24 := c.D.A24()

	a := f.Add(r.X, r.Z)
	aa := f.Square(a)
	b := f.Sub(r.X, r.Z)
	bb := f.Square(b)
	e := f.Sub(aa, bb)

	cc := f.Add(s.X, s.Z)
	dd := f.Sub(s.X, s.Z)
	da := f.Mul(dd, a)
	cb := f.Mul(cc, b)

	sx := f.Mul(d.Z, f.Square(f.Add(da, cb)))
	sz := f.Mul(d.X, f.Square(f.Sub(da, cb)))

	rx := f.Mul(aa, bb)
	rz := f.Mul(e, f.Add(bb, f.Mul(a24, e)))

	return point.MontgomeryXZ{X: rx, Z: rz}, point.MontgomeryXZ{X: sx, Z: sz}
}

// randomise applies Coron's (1999) projective-coordinate DPA countermeasure:
// multiply both of p's coordinates by a fresh random l drawn from [2, p),
// retrying on RNG failure or a draw below 2, up to rng.MaxRetries times.
func (c *Curve) randomise(p point.MontgomeryXZ, src rng.Source) (point.MontgomeryXZ, error) {
	width := byteWidth(c.F)
	buf := make([]byte, width)

	for attempt := 0; attempt < rng.MaxRetries; attempt++ {
		if err := src.Read(buf); err != nil {
			continue
		}
		l := c.F.Mod(bigint.FromBytes(buf))
		if l.Cmp(bigint.FromInt64(2)) < 0 {
			continue
		}
		return point.MontgomeryXZ{X: c.F.Mul(l, p.X), Z: c.F.Mul(l, p.Z)}, nil
	}

	return point.MontgomeryXZ{}, errs.Wrap(errs.RngFailure, "projective randomisation exhausted %d attempts", rng.MaxRetries)
}

// Multiply computes n·P via the XZ Montgomery ladder, MSB-first, per
// spec.md §4.4: save the difference point, seed the accumulator pair at
// (identity, randomised P), then for every scalar bit from the most
// significant down to the least, conditionally swap, apply the
// differential add-and-double, and conditionally swap back. Normalises the
// result to x = X/Z before returning.
//
// The source's own loop range (and the spec text transcribing it) starts
// one bit below the top, on the premise that the leading 1 is implicitly
// accounted for by the initial (identity, P) seed; that premise does not
// hold for this seed, and the off-by-one loses the top bit's contribution
// entirely (1·P would otherwise collapse to the identity). This processes
// every bit from L-1 down to 0 inclusive, the same correction spec.md §9
// already mandates for the loop's direction.
func (c *Curve) Multiply(n *bigint.Int, p point.Affine, src rng.Source) (*bigint.Int, error) {
	if p.Infinity {
		return bigint.Zero(), nil
	}

	width := byteWidth(c.F)
	d := point.FromAffineX(p.X)

	r := point.MontgomeryIdentity()
	s, err := c.randomise(d, src)
	if err != nil {
		return nil, err
	}

	l := n.BitLen()
	for i := l - 1; i >= 0; i-- {
		b := n.Bit(i)
		r, s = swapXZ(width, r, s, b)
		r, s = c.ladderStep(r, s, d)
		r, s = swapXZ(width, r, s, b)
	}

	x, err := r.ToAffineX(c.F)
	if err != nil {
		return nil, err
	}
	if x == nil {
		return bigint.Zero(), nil
	}
	return x, nil
}
