// Package bigint implements the signed arbitrary-precision integer spec.md
// §4.1 calls C1: the substrate every other ecckit package builds on.
//
// It is a thin, deterministic wrapper around math/big.Int — the library the
// teacher package itself reaches for whenever it needs general signed
// arithmetic, hex/decimal parsing, or big-endian byte export (see its
// Marshal/Unmarshal/UnmarshalCompressed). Packages that need constant-time
// modular arithmetic instead (field directly, montgomery through field) use
// github.com/cronokirby/safenum on top of values obtained from here; Int
// itself makes no constant-time promise.
package bigint

import (
	"math/big"
	"strings"

	"github.com/wyvernlabs/ecckit/errs"
)

// Int is a signed arbitrary-precision integer.
type Int struct {
	v big.Int
}

// Zero returns the additive identity.
func Zero() *Int { return &Int{} }

// FromInt64 constructs an Int from a machine integer.
func FromInt64(n int64) *Int {
	i := &Int{}
	i.v.SetInt64(n)
	return i
}

// FromBytes interprets buf as an unsigned, big-endian magnitude.
func FromBytes(buf []byte) *Int {
	i := &Int{}
	i.v.SetBytes(buf)
	return i
}

// FromWords builds a signed integer from its sign and a little-endian word
// array (spec.md's "signed word array" constructor).
func FromWords(neg bool, words []big.Word) *Int {
	i := &Int{}
	i.v.SetBits(append([]big.Word(nil), words...))
	if neg && i.v.Sign() != 0 {
		i.v.Neg(&i.v)
	}
	return i
}

// FromHex parses a hex string, case-insensitive, with an optional "0x" or
// "-0x" prefix. Empty strings and non-hex-digit characters are rejected.
func FromHex(s string) (*Int, error) {
	orig := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, errs.Wrap(errs.ParseError, "empty hex string %q", orig)
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, errs.Wrap(errs.ParseError, "invalid hex string %q", orig)
	}
	if neg {
		v.Neg(v)
	}
	return &Int{v: *v}, nil
}

// FromDecimal parses a base-10 string, with an optional leading "-".
func FromDecimal(s string) (*Int, error) {
	if s == "" {
		return nil, errs.Wrap(errs.ParseError, "empty decimal string")
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errs.Wrap(errs.ParseError, "invalid decimal string %q", s)
	}
	return &Int{v: *v}, nil
}

// Clone returns an independent copy.
func (x *Int) Clone() *Int {
	out := &Int{}
	out.v.Set(&x.v)
	return out
}

// Sign returns -1, 0, or +1.
func (x *Int) Sign() int { return x.v.Sign() }

// Cmp compares x and y as in math/big.
func (x *Int) Cmp(y *Int) int { return x.v.Cmp(&y.v) }

// Add returns x + y.
func Add(x, y *Int) *Int { return &Int{v: *new(big.Int).Add(&x.v, &y.v)} }

// Sub returns x - y.
func Sub(x, y *Int) *Int { return &Int{v: *new(big.Int).Sub(&x.v, &y.v)} }

// Mul returns x * y.
func Mul(x, y *Int) *Int { return &Int{v: *new(big.Int).Mul(&x.v, &y.v)} }

// Div returns x / y, truncated toward zero. Fails with errs.ArithmeticError
// when y is zero.
func Div(x, y *Int) (*Int, error) {
	if y.v.Sign() == 0 {
		return nil, errs.Wrap(errs.ArithmeticError, "division by zero")
	}
	return &Int{v: *new(big.Int).Quo(&x.v, &y.v)}, nil
}

// Mod returns x mod m in [0, m). Fails with errs.ArithmeticError when m is
// not positive.
func Mod(x, m *Int) (*Int, error) {
	if m.v.Sign() <= 0 {
		return nil, errs.Wrap(errs.ArithmeticError, "modulus must be positive")
	}
	return &Int{v: *new(big.Int).Mod(&x.v, &m.v)}, nil
}

// Neg returns -x.
func Neg(x *Int) *Int { return &Int{v: *new(big.Int).Neg(&x.v)} }

// Abs returns |x|.
func Abs(x *Int) *Int { return &Int{v: *new(big.Int).Abs(&x.v)} }

// And returns the bitwise AND of x and y (two's complement semantics).
func And(x, y *Int) *Int { return &Int{v: *new(big.Int).And(&x.v, &y.v)} }

// Or returns the bitwise OR of x and y.
func Or(x, y *Int) *Int { return &Int{v: *new(big.Int).Or(&x.v, &y.v)} }

// Xor returns the bitwise XOR of x and y.
func Xor(x, y *Int) *Int { return &Int{v: *new(big.Int).Xor(&x.v, &y.v)} }

// Not returns the bitwise complement of x.
func Not(x *Int) *Int { return &Int{v: *new(big.Int).Not(&x.v)} }

// Lsh returns x << n.
func Lsh(x *Int, n uint) *Int { return &Int{v: *new(big.Int).Lsh(&x.v, n)} }

// Rsh returns x >> n (arithmetic shift, as math/big defines it).
func Rsh(x *Int, n uint) *Int { return &Int{v: *new(big.Int).Rsh(&x.v, n)} }

// Bit reports whether bit i of |x| is set.
func (x *Int) Bit(i int) bool { return new(big.Int).Abs(&x.v).Bit(i) != 0 }

// BitLen returns the bit width of |x|.
func (x *Int) BitLen() int { return x.v.BitLen() }

// Pow computes base^exp mod m, exp >= 0. When m is nil the result is
// unreduced. Mirrors math/big.Int.Exp, which the teacher's own curve code
// relies on transitively through ModSqrt.
func Pow(base, exp, m *Int) (*Int, error) {
	if exp.v.Sign() < 0 {
		return nil, errs.Wrap(errs.ArithmeticError, "negative exponent")
	}
	var mod *big.Int
	if m != nil {
		mod = &m.v
	}
	return &Int{v: *new(big.Int).Exp(&base.v, &exp.v, mod)}, nil
}

// Hex renders |x| as hexadecimal, optionally upper-cased and zero-padded to
// width hex characters (spec.md wants 64 for 256-bit scalars). The sign is
// not encoded; callers needing signed hex should check Sign separately.
func (x *Int) Hex(upper bool, zeroPadWidth int) string {
	s := x.v.Text(16)
	s = strings.TrimPrefix(s, "-")
	if len(s) < zeroPadWidth {
		s = strings.Repeat("0", zeroPadWidth-len(s)) + s
	}
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}

// Decimal renders x in base 10, including a leading '-' for negative values.
func (x *Int) Decimal() string { return x.v.Text(10) }

// Bytes returns the big-endian byte encoding of |x|, with no leading zero
// byte and no sign.
func (x *Int) Bytes() []byte { return x.v.Bytes() }

// FillBytes writes the big-endian encoding of |x| into buf, left-padding
// with zeros, matching math/big.Int.FillBytes's panic-on-overflow contract.
func (x *Int) FillBytes(buf []byte) []byte { return x.v.FillBytes(buf) }

// BigInt exposes the underlying math/big.Int for interop with packages
// (field, curve) that need to hand values to safenum or crypto/elliptic
// shaped APIs.
func (x *Int) BigInt() *big.Int { return new(big.Int).Set(&x.v) }

// FromBigInt wraps an existing math/big.Int by value.
func FromBigInt(v *big.Int) *Int { return &Int{v: *new(big.Int).Set(v)} }

func (x *Int) String() string { return x.v.String() }
