// Package key implements private/public key construction and derivation,
// spec.md §4.6 calls C7: scalar range checking, curve-form dispatch for
// derivation, and the compressed/uncompressed wire forms the teacher's
// Marshal/MarshalCompressed/UnmarshalCompressed already define for
// Weierstrass curves, generalized to dispatch across both curve forms.
package key

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/wyvernlabs/ecckit/bigint"
	"github.com/wyvernlabs/ecckit/curve"
	"github.com/wyvernlabs/ecckit/errs"
	"github.com/wyvernlabs/ecckit/montgomery"
	"github.com/wyvernlabs/ecckit/point"
	"github.com/wyvernlabs/ecckit/rng"
	"github.com/wyvernlabs/ecckit/weierstrass"
)

// PrivateKey is a scalar bound to a specific curve, range-checked against
// that curve's group order at construction.
type PrivateKey struct {
	Curve *curve.Descriptor
	K     *bigint.Int
}

func validateScalar(d *curve.Descriptor, k *bigint.Int) error {
	if k.Sign() == 0 {
		return errs.Wrap(errs.ScalarOutOfRange, "private key scalar is zero")
	}
	if k.Cmp(d.N) >= 0 {
		return errs.Wrap(errs.ScalarOutOfRange, "private key scalar >= curve order")
	}
	return nil
}

// New constructs a PrivateKey from a raw scalar. Fails with
// errs.ScalarOutOfRange unless 1 <= k < n.
func New(d *curve.Descriptor, k *bigint.Int) (*PrivateKey, error) {
	if err := validateScalar(d, k); err != nil {
		return nil, err
	}
	return &PrivateKey{Curve: d, K: k.Clone()}, nil
}

// FromBytes constructs a PrivateKey from a big-endian byte buffer.
func FromBytes(d *curve.Descriptor, buf []byte) (*PrivateKey, error) {
	return New(d, bigint.FromBytes(buf))
}

// FromHex constructs a PrivateKey from a hex string (case-insensitive,
// optional "0x" prefix).
func FromHex(d *curve.Descriptor, s string) (*PrivateKey, error) {
	k, err := bigint.FromHex(s)
	if err != nil {
		return nil, err
	}
	return New(d, k)
}

// FromBase64 constructs a PrivateKey from a standard base64-encoded
// big-endian scalar.
func FromBase64(d *curve.Descriptor, s string) (*PrivateKey, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errs.Wrap(errs.ParseError, "invalid base64 private key: %v", err)
	}
	return FromBytes(d, buf)
}

// FromDecimal constructs a PrivateKey from a base-10 scalar string.
func FromDecimal(d *curve.Descriptor, s string) (*PrivateKey, error) {
	k, err := bigint.FromDecimal(s)
	if err != nil {
		return nil, err
	}
	return New(d, k)
}

// GenerateKey draws a uniformly random scalar in [1, n) from src, retrying
// rejected draws up to rng.MaxRetries times — the teacher's own
// GenerateKey retry-on-out-of-range loop, generalized to an explicit
// Source argument and an explicit retry budget instead of an unbounded
// for loop.
func GenerateKey(d *curve.Descriptor, src rng.Source) (*PrivateKey, error) {
	byteLen := (d.N.BitLen() + 7) / 8
	buf := make([]byte, byteLen)

	for attempt := 0; attempt < rng.MaxRetries; attempt++ {
		if err := src.Read(buf); err != nil {
			continue
		}
		k := bigint.FromBytes(buf)
		if k.Sign() == 0 || k.Cmp(d.N) >= 0 {
			continue
		}
		return &PrivateKey{Curve: d, K: k}, nil
	}
	return nil, errs.Wrap(errs.RngFailure, "key generation exhausted %d attempts", rng.MaxRetries)
}

// Hex renders the scalar as zero-padded hex sized to the curve's order.
func (p *PrivateKey) Hex() string {
	width := (p.Curve.N.BitLen() + 7) / 8
	return p.K.Hex(false, width*2)
}

// Base64 renders the scalar as a standard base64-encoded big-endian buffer,
// zero-padded to the curve's scalar width.
func (p *PrivateKey) Base64() string {
	width := (p.Curve.N.BitLen() + 7) / 8
	buf := make([]byte, width)
	p.K.FillBytes(buf)
	return base64.StdEncoding.EncodeToString(buf)
}

// Zero resets the private scalar to zero by replacing K with a fresh zero
// value. It zeroes only a temporary byte copy of the scalar; the words
// backing the previous K are not overwritten in place.
func (p *PrivateKey) Zero() {
	width := (p.Curve.N.BitLen() + 7) / 8
	buf := make([]byte, width)
	p.K.FillBytes(buf)
	for i := range buf {
		buf[i] = 0
	}
	p.K = bigint.Zero()
}

// PublicKey is the affine point derived from a PrivateKey.
type PublicKey struct {
	Curve *curve.Descriptor
	Point point.Affine
}

// Derive computes priv.K * G, dispatching on the curve's form: projective
// double-and-add for ShortWeierstrass, the XZ ladder for Montgomery.
// Montgomery derivation only recovers an x-coordinate by default;
// recoverY additionally solves the curve equation for the smaller of the
// two roots, per spec.md §4.6.
func Derive(priv *PrivateKey, recoverY bool, src rng.Source) (*PublicKey, error) {
	d := priv.Curve

	switch d.Form {
	case curve.ShortWeierstrass:
		eng, err := weierstrass.New(d)
		if err != nil {
			return nil, err
		}
		pt, err := eng.ScalarMult(priv.K, d.G)
		if err != nil {
			return nil, err
		}
		return &PublicKey{Curve: d, Point: pt}, nil

	case curve.Montgomery:
		eng, err := montgomery.New(d)
		if err != nil {
			return nil, err
		}
		x, err := eng.Multiply(priv.K, d.G, src)
		if err != nil {
			return nil, err
		}
		pt := point.Affine{X: x}
		if recoverY {
			y, err := recoverMontgomeryY(d, x)
			if err != nil {
				return nil, err
			}
			pt.Y = y
		} else {
			pt.Y = bigint.Zero()
		}
		return &PublicKey{Curve: d, Point: pt}, nil

	default:
		return nil, errs.Wrap(errs.CurveInvariantError, "unknown curve form %d", d.Form)
	}
}

// recoverMontgomeryY solves by^2 = x^3 + ax^2 + x for y and returns the
// smaller root, chosen for determinism per spec.md §4.6/§9.
func recoverMontgomeryY(d *curve.Descriptor, x *bigint.Int) (*bigint.Int, error) {
	f := d.Field
	rhs := f.Add(f.Add(f.Mul(f.Square(x), x), f.Mul(d.A, f.Square(x))), x)
	bInv, err := f.Inverse(d.B)
	if err != nil {
		return nil, err
	}
	ySquared := f.Mul(rhs, bInv)

	roots := f.SquareRoots(ySquared)
	if len(roots) == 0 {
		return nil, errs.Wrap(errs.ArithmeticError, "x-coordinate is not on the montgomery curve")
	}
	return roots[0], nil
}

// Compressed serialises pub as 0x02||x (even y) or 0x03||x (odd y).
func (pub *PublicKey) Compressed() []byte {
	width := byteWidth(pub.Curve)
	out := make([]byte, 1+width)
	if pub.Point.Y.Bit(0) {
		out[0] = 0x03
	} else {
		out[0] = 0x02
	}
	pub.Point.X.FillBytes(out[1:])
	return out
}

// Uncompressed serialises pub as 0x04||x||y.
func (pub *PublicKey) Uncompressed() []byte {
	width := byteWidth(pub.Curve)
	out := make([]byte, 1+2*width)
	out[0] = 0x04
	pub.Point.X.FillBytes(out[1 : 1+width])
	pub.Point.Y.FillBytes(out[1+width:])
	return out
}

func byteWidth(d *curve.Descriptor) int {
	return (d.Field.P().BitLen() + 7) / 8
}

// CompressedHex renders Compressed as a lower-case hex string.
func (pub *PublicKey) CompressedHex() string { return hex.EncodeToString(pub.Compressed()) }

// UncompressedHex renders Uncompressed as a lower-case hex string.
func (pub *PublicKey) UncompressedHex() string { return hex.EncodeToString(pub.Uncompressed()) }

// ParsePublicKey decodes a point serialised by Compressed or Uncompressed,
// generalizing the teacher's Unmarshal/UnmarshalCompressed pair (which only
// ever handled a=-3 NIST curves) across both curve forms. It rejects a
// buffer of the wrong length, an unrecognised tag byte, a coordinate not
// reduced mod p, or a point that fails the curve equation.
func ParsePublicKey(d *curve.Descriptor, buf []byte) (*PublicKey, error) {
	width := byteWidth(d)

	switch {
	case len(buf) == 1+2*width && buf[0] == 0x04:
		x := bigint.FromBytes(buf[1 : 1+width])
		y := bigint.FromBytes(buf[1+width:])
		if x.Cmp(d.Field.P()) >= 0 || y.Cmp(d.Field.P()) >= 0 {
			return nil, errs.Wrap(errs.ParseError, "uncompressed public key coordinate out of field range")
		}
		return onCurvePublicKey(d, point.Affine{X: x, Y: y})

	case len(buf) == 1+width && (buf[0] == 0x02 || buf[0] == 0x03):
		x := bigint.FromBytes(buf[1:])
		if x.Cmp(d.Field.P()) >= 0 {
			return nil, errs.Wrap(errs.ParseError, "compressed public key x-coordinate out of field range")
		}
		y, err := recoverY(d, x, buf[0]&1 == 1)
		if err != nil {
			return nil, err
		}
		return onCurvePublicKey(d, point.Affine{X: x, Y: y})

	default:
		return nil, errs.Wrap(errs.ParseError, "public key buffer is neither compressed nor uncompressed form")
	}
}

// recoverY solves the curve equation for x and returns whichever root's
// parity (y mod 2) matches wantOdd, mirroring the teacher's
// "negate if the parity bit disagrees" UnmarshalCompressed step.
func recoverY(d *curve.Descriptor, x *bigint.Int, wantOdd bool) (*bigint.Int, error) {
	f := d.Field

	var ySquared *bigint.Int
	switch d.Form {
	case curve.ShortWeierstrass:
		ySquared = f.Add(f.Add(f.Mul(f.Square(x), x), f.Mul(d.A, x)), d.B)
	case curve.Montgomery:
		rhs := f.Add(f.Add(f.Mul(f.Square(x), x), f.Mul(d.A, f.Square(x))), x)
		bInv, err := f.Inverse(d.B)
		if err != nil {
			return nil, err
		}
		ySquared = f.Mul(rhs, bInv)
	default:
		return nil, errs.Wrap(errs.CurveInvariantError, "unknown curve form %d", d.Form)
	}

	roots := f.SquareRoots(ySquared)
	if len(roots) == 0 {
		return nil, errs.Wrap(errs.ArithmeticError, "x-coordinate is not on the curve")
	}
	for _, root := range roots {
		if root.Bit(0) == wantOdd {
			return root, nil
		}
	}
	return nil, errs.Wrap(errs.InternalInvariantError, "square roots of a quadratic residue disagree on every parity")
}

func onCurvePublicKey(d *curve.Descriptor, p point.Affine) (*PublicKey, error) {
	switch d.Form {
	case curve.ShortWeierstrass:
		eng, err := weierstrass.New(d)
		if err != nil {
			return nil, err
		}
		if !eng.IsOnCurve(p) {
			return nil, errs.Wrap(errs.CurveInvariantError, "point is not on curve %s", d.ID)
		}
	case curve.Montgomery:
		f := d.Field
		lhs := f.Mul(d.B, f.Square(p.Y))
		rhs := f.Add(f.Add(f.Mul(f.Square(p.X), p.X), f.Mul(d.A, f.Square(p.X))), p.X)
		if lhs.Cmp(rhs) != 0 {
			return nil, errs.Wrap(errs.CurveInvariantError, "point is not on curve %s", d.ID)
		}
	default:
		return nil, errs.Wrap(errs.CurveInvariantError, "unknown curve form %d", d.Form)
	}
	return &PublicKey{Curve: d, Point: p}, nil
}
