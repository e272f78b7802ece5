// Package curve implements the curve descriptor spec.md §4.5 calls C4: a
// tagged variant over {ShortWeierstrass, Montgomery} (the "polymorphism
// over curve forms" design note in spec.md §9, replacing an open class
// hierarchy), validated against its discriminant condition at
// construction, plus a small constant-scan registry of named curves.
package curve

import (
	"github.com/wyvernlabs/ecckit/bigint"
	"github.com/wyvernlabs/ecckit/errs"
	"github.com/wyvernlabs/ecckit/field"
	"github.com/wyvernlabs/ecckit/point"
)

// Form tags which algebraic shape a Descriptor uses.
type Form int

const (
	// ShortWeierstrass curves satisfy y² = x³ + ax + b.
	ShortWeierstrass Form = iota
	// Montgomery curves satisfy by² = x(x² + ax + 1).
	Montgomery
)

func (f Form) String() string {
	switch f {
	case ShortWeierstrass:
		return "short-weierstrass"
	case Montgomery:
		return "montgomery"
	default:
		return "unknown"
	}
}

// ID names a registered curve.
type ID string

// Descriptor is the immutable record spec.md §3 calls {id, form, p, a, b,
// G, n, h}. It is safe to share by value across goroutines: nothing in it
// mutates after New returns.
type Descriptor struct {
	ID    ID
	Form  Form
	Field *field.Field
	A, B  *bigint.Int
	G     point.Affine
	N     *bigint.Int // group order
	H     *bigint.Int // cofactor

	// a24 = (a+2)/4 mod p, precomputed for the Montgomery ladder. Zero
	// (and unused) for ShortWeierstrass descriptors.
	a24 *bigint.Int
}

// A24 returns the Montgomery ladder's precomputed (a+2)/4 mod p constant.
// Only meaningful when Form == Montgomery.
func (d *Descriptor) A24() *bigint.Int { return d.a24.Clone() }

// New validates and constructs a curve descriptor.
//
// Short Weierstrass requires 4a³ + 27b² ≢ 0 (mod p); Montgomery requires
// b(a² - 4) ≢ 0 (mod p). Both are the non-singularity ("discriminant")
// conditions spec.md §3 lists; violating either fails with
// errs.CurveInvariantError.
func New(id ID, form Form, f *field.Field, a, b *bigint.Int, g point.Affine, n, h *bigint.Int) (*Descriptor, error) {
	d := &Descriptor{
		ID:    id,
		Form:  form,
		Field: f,
		A:     f.Mod(a),
		B:     f.Mod(b),
		G:     g,
		N:     n.Clone(),
		H:     h.Clone(),
	}

	switch form {
	case ShortWeierstrass:
		if err := checkWeierstrassDiscriminant(f, d.A, d.B); err != nil {
			return nil, err
		}
		d.a24 = bigint.Zero()
	case Montgomery:
		if err := checkMontgomeryDiscriminant(f, d.A, d.B); err != nil {
			return nil, err
		}
		a24, err := montgomeryA24(f, d.A)
		if err != nil {
			return nil, err
		}
		d.a24 = a24
	default:
		return nil, errs.Wrap(errs.CurveInvariantError, "unknown curve form %d", form)
	}

	return d, nil
}

func checkWeierstrassDiscriminant(f *field.Field, a, b *bigint.Int) error {
	// 4a^3+27b^2 is built entirely in plain bigint arithmetic and reduced
	// once via ModFunc, rather than after every intermediate +/*, since
	// nothing here is secret-dependent and the check only needs the final
	// reduced value.
	disc := f.ModFunc(func() *bigint.Int {
		a3 := bigint.Mul(bigint.Mul(a, a), a)
		b2 := bigint.Mul(b, b)
		return bigint.Add(bigint.Mul(bigint.FromInt64(4), a3), bigint.Mul(bigint.FromInt64(27), b2))
	})
	if disc.Sign() == 0 {
		return errs.Wrap(errs.CurveInvariantError, "short-weierstrass discriminant 4a^3+27b^2 is 0 mod p")
	}
	return nil
}

func checkMontgomeryDiscriminant(f *field.Field, a, b *bigint.Int) error {
	four := bigint.FromInt64(4)
	aSqMinus4 := f.Sub(f.Square(a), four)
	disc := f.Mul(b, aSqMinus4)
	if disc.Sign() == 0 {
		return errs.Wrap(errs.CurveInvariantError, "montgomery discriminant b(a^2-4) is 0 mod p")
	}
	return nil
}

func montgomeryA24(f *field.Field, a *bigint.Int) (*bigint.Int, error) {
	aPlus2 := bigint.Add(a, bigint.FromInt64(2))
	return f.Div(aPlus2, bigint.FromInt64(4))
}
