// Package field implements arithmetic in the prime field ℱ_p that spec.md
// §4.2 calls C2: reduction, inversion, division, and square-root
// extraction.
//
// The reduced-value arithmetic (inverse, multiply, add) is delegated to
// github.com/cronokirby/safenum's constant-time Nat/Modulus pair, exactly
// the library the teacher uses for its own field operations in
// elliptic.go. General reduction of a possibly-negative bigint.Int, and the
// (non-secret, so non-constant-time) square-root search, stay on
// math/big-backed bigint.Int, matching the teacher's own use of math/big
// for ModSqrt.
package field

import (
	"github.com/cronokirby/safenum"

	"github.com/wyvernlabs/ecckit/bigint"
	"github.com/wyvernlabs/ecckit/errs"
)

// Field is an immutable prime-field descriptor, shared by reference.
type Field struct {
	p   *bigint.Int
	mod *safenum.Modulus
}

// New builds the field ℱ_p. Fails with errs.ArithmeticError if p is not an
// odd prime greater than 3, per spec.md §3's field invariant.
func New(p *bigint.Int) (*Field, error) {
	if p.Sign() <= 0 {
		return nil, errs.Wrap(errs.ArithmeticError, "field modulus must be positive")
	}
	if p.Cmp(bigint.FromInt64(3)) <= 0 {
		return nil, errs.Wrap(errs.ArithmeticError, "field modulus must exceed 3")
	}
	if !p.BigInt().ProbablyPrime(40) {
		return nil, errs.Wrap(errs.ArithmeticError, "field modulus must be prime")
	}
	nat := natFromBigint(p, (p.BitLen()+7)/8)
	mod := safenum.ModulusFromNat(*nat)
	return &Field{p: p.Clone(), mod: mod}, nil
}

// P returns a copy of the field's modulus.
func (f *Field) P() *bigint.Int { return f.p.Clone() }

// Mod reduces x into [0, p).
func (f *Field) Mod(x *bigint.Int) *bigint.Int {
	r, err := bigint.Mod(x, f.p)
	if err != nil {
		// f.p > 3 > 0 was checked at construction; this cannot happen.
		panic(err)
	}
	return r
}

// ModFunc reduces the result of a deferred computation. The contract is
// purely "the reduced value of closure()": closure runs once and its
// unreduced result is reduced a single time, so callers can build a whole
// expression in plain bigint arithmetic and reduce only at the end.
func (f *Field) ModFunc(closure func() *bigint.Int) *bigint.Int {
	return f.Mod(closure())
}

// Add returns a + b mod p.
func (f *Field) Add(a, b *bigint.Int) *bigint.Int {
	an, bn := f.toNat(f.Mod(a)), f.toNat(f.Mod(b))
	return fromNat(new(safenum.Nat).ModAdd(an, bn, f.mod))
}

// Sub returns a - b mod p.
func (f *Field) Sub(a, b *bigint.Int) *bigint.Int {
	an, bn := f.toNat(f.Mod(a)), f.toNat(f.Mod(b))
	return fromNat(new(safenum.Nat).ModSub(an, bn, f.mod))
}

// Mul returns a * b mod p.
func (f *Field) Mul(a, b *bigint.Int) *bigint.Int {
	an, bn := f.toNat(f.Mod(a)), f.toNat(f.Mod(b))
	return fromNat(new(safenum.Nat).ModMul(an, bn, f.mod))
}

// Square returns a^2 mod p.
func (f *Field) Square(a *bigint.Int) *bigint.Int {
	return f.Mul(a, a)
}

// Inverse returns a⁻¹ mod p. Fails with errs.ArithmeticError when a ≡ 0,
// the only case where gcd(a, p) ≠ 1 for prime p.
func (f *Field) Inverse(a *bigint.Int) (*bigint.Int, error) {
	r := f.Mod(a)
	if r.Sign() == 0 {
		return nil, errs.Wrap(errs.ArithmeticError, "0 is not invertible mod p")
	}
	return fromNat(new(safenum.Nat).ModInverse(f.toNat(r), f.mod)), nil
}

// Div returns a * b⁻¹ mod p.
func (f *Field) Div(a, b *bigint.Int) (*bigint.Int, error) {
	bInv, err := f.Inverse(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, bInv), nil
}

// SquareRoots returns the (possibly empty) list of square roots of x in
// ℱ_p. When x is a nonzero quadratic residue, exactly two roots are
// returned, smaller first; x = 0 yields a single root, 0; a non-residue
// yields an empty slice.
//
// For p ≡ 3 (mod 4) the fast path r = x^((p+1)/4) mod p is used and
// verified by squaring. Otherwise Tonelli-Shanks applies. Neither path
// needs to run in constant time: square roots are only ever taken of
// public coordinates (curve-equation evaluation, Montgomery y-recovery),
// never of secret scalars.
func (f *Field) SquareRoots(x *bigint.Int) []*bigint.Int {
	x = f.Mod(x)
	if x.Sign() == 0 {
		return []*bigint.Int{bigint.Zero()}
	}

	one := bigint.FromInt64(1)
	three := bigint.FromInt64(3)
	four := bigint.FromInt64(4)

	var r *bigint.Int
	pMod4, _ := bigint.Mod(f.p, four)
	if pMod4.Cmp(three) == 0 {
		exp, _ := bigint.Div(bigint.Add(f.p, one), four)
		r, _ = bigint.Pow(x, exp, f.p)
	} else {
		var ok bool
		r, ok = f.tonelliShanks(x)
		if !ok {
			return nil
		}
	}

	if f.Mul(r, r).Cmp(x) != 0 {
		return nil
	}

	other := f.Sub(bigint.Zero(), r)
	if r.Cmp(other) == 0 {
		return []*bigint.Int{r}
	}
	if r.Cmp(other) < 0 {
		return []*bigint.Int{r, other}
	}
	return []*bigint.Int{other, r}
}

// tonelliShanks finds a square root of x modulo the odd prime p, for the
// general case p ≡ 1 (mod 4). Returns ok = false if x is a non-residue.
func (f *Field) tonelliShanks(x *bigint.Int) (*bigint.Int, bool) {
	one := bigint.FromInt64(1)
	two := bigint.FromInt64(2)

	// Euler's criterion: non-residue iff x^((p-1)/2) != 1.
	pMinus1 := bigint.Sub(f.p, one)
	legendreExp, _ := bigint.Div(pMinus1, two)
	legendre, _ := bigint.Pow(x, legendreExp, f.p)
	if legendre.Cmp(one) != 0 {
		return nil, false
	}

	// Factor p-1 = q * 2^s with q odd.
	q := pMinus1.Clone()
	s := 0
	for {
		rem, _ := bigint.Mod(q, two)
		if rem.Sign() != 0 {
			break
		}
		q, _ = bigint.Div(q, two)
		s++
	}

	// Find a quadratic non-residue z.
	z := bigint.FromInt64(2)
	for {
		zLegendre, _ := bigint.Pow(z, legendreExp, f.p)
		if f.Mod(zLegendre).Cmp(pMinus1) == 0 {
			break
		}
		z = bigint.Add(z, one)
	}

	m := s
	c, _ := bigint.Pow(z, q, f.p)
	qPlus1Over2, _ := bigint.Div(bigint.Add(q, one), two)
	t, _ := bigint.Pow(x, q, f.p)
	r, _ := bigint.Pow(x, qPlus1Over2, f.p)

	for {
		if t.Cmp(one) == 0 {
			return r, true
		}
		// Find least i, 0 < i < m, such that t^(2^i) = 1.
		i := 0
		tt := t.Clone()
		for tt.Cmp(one) != 0 {
			tt = f.Mul(tt, tt)
			i++
			if i == m {
				return nil, false
			}
		}

		bExp, _ := bigint.Pow(two, bigint.FromInt64(int64(m-i-1)), nil)
		b, _ := bigint.Pow(c, bExp, f.p)
		m = i
		c = f.Mul(b, b)
		t = f.Mul(t, c)
		r = f.Mul(r, b)
	}
}

// natFromBigint converts x to a safenum.Nat with a fixed announced length
// of width bytes. x.Bytes() (bigint/bigint.go) strips leading zero bytes,
// so feeding it straight to safenum.Nat.SetBytes would let a Nat's
// announced length vary with the operand's actual magnitude instead of
// the field's modulus — defeating safenum's constant-time contract on
// every operand that happens to be small. FillBytes into a fixed-size
// buffer first keeps the announced length pinned to width regardless of
// the value.
func natFromBigint(x *bigint.Int, width int) *safenum.Nat {
	buf := make([]byte, width)
	x.FillBytes(buf)
	return new(safenum.Nat).SetBytes(buf)
}

func (f *Field) byteWidth() int {
	return (f.p.BitLen() + 7) / 8
}

func (f *Field) toNat(x *bigint.Int) *safenum.Nat {
	return natFromBigint(x, f.byteWidth())
}

func fromNat(n *safenum.Nat) *bigint.Int {
	return bigint.FromBytes(n.Bytes())
}
