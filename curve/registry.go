package curve

import (
	"sync"

	"github.com/wyvernlabs/ecckit/bigint"
	"github.com/wyvernlabs/ecckit/errs"
	"github.com/wyvernlabs/ecckit/field"
	"github.com/wyvernlabs/ecckit/internal/telemetry"
	"github.com/wyvernlabs/ecckit/point"
)

// Named curve identifiers. Registered curves must include at minimum
// secp256k1 and Curve25519 per spec.md §4.5; secp256r1 is a supplemental
// short-Weierstrass curve exercising the registry with more than one
// instance of its own form.
const (
	Secp256k1  ID = "secp256k1"
	Secp256r1  ID = "secp256r1"
	Curve25519 ID = "curve25519"
)

// mustHex parses a hex literal hard-coded in this file, panicking on a
// malformed constant — the same "errors in a source-code literal are a
// build-time bug, not a runtime condition" idiom the teacher pack uses for
// its own curve constants (e.g. ModChain-secp256k1's fromHex helper).
func mustHex(s string) *bigint.Int {
	v, err := bigint.FromHex(s)
	if err != nil {
		panic("ecckit/curve: invalid hex literal " + s + ": " + err.Error())
	}
	return v
}

func mustDecimal(s string) *bigint.Int {
	v, err := bigint.FromDecimal(s)
	if err != nil {
		panic("ecckit/curve: invalid decimal literal " + s + ": " + err.Error())
	}
	return v
}

func mustField(p *bigint.Int) *field.Field {
	f, err := field.New(p)
	if err != nil {
		panic("ecckit/curve: invalid field modulus: " + err.Error())
	}
	return f
}

func mustDescriptor(id ID, form Form, f *field.Field, a, b *bigint.Int, g point.Affine, n, h *bigint.Int) *Descriptor {
	d, err := New(id, form, f, a, b, g, n, h)
	if err != nil {
		panic("ecckit/curve: invalid built-in curve " + string(id) + ": " + err.Error())
	}
	return d
}

var (
	registryOnce sync.Once
	registry     map[ID]*Descriptor
	registryIDs  []ID
)

func buildRegistry() {
	registry = make(map[ID]*Descriptor, 3)
	registryIDs = nil

	secp256k1Field := mustField(mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"))
	secp256k1 := mustDescriptor(
		Secp256k1, ShortWeierstrass, secp256k1Field,
		bigint.FromInt64(0), bigint.FromInt64(7),
		point.Affine{
			X: mustHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
			Y: mustHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
		},
		mustHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		bigint.FromInt64(1),
	)

	secp256r1Field := mustField(mustHex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"))
	secp256r1 := mustDescriptor(
		Secp256r1, ShortWeierstrass, secp256r1Field,
		bigint.Sub(mustHex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"), bigint.FromInt64(3)),
		mustHex("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
		point.Affine{
			X: mustHex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
			Y: mustHex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
		},
		mustHex("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
		bigint.FromInt64(1),
	)

	curve25519Field := mustField(bigint.Sub(bigint.Lsh(bigint.FromInt64(1), 255), bigint.FromInt64(19)))
	curve25519 := mustDescriptor(
		Curve25519, Montgomery, curve25519Field,
		bigint.FromInt64(486662), bigint.FromInt64(1),
		point.Affine{
			X: bigint.FromInt64(9),
			Y: mustDecimal("14781619447589544791020593568409986887264606134616475288964881837755586237401"),
		},
		mustDecimal("7237005577332262213973186563042994240857116359379907606001950938285454250989"),
		bigint.FromInt64(8),
	)

	for _, d := range []*Descriptor{secp256k1, secp256r1, curve25519} {
		registry[d.ID] = d
		registryIDs = append(registryIDs, d.ID)
	}

	telemetry.Get().Debug().Int("count", len(registryIDs)).Msg("curve registry initialised")
}

// ByID looks up a registered curve. The scan always walks the full
// registry regardless of where (or whether) the match is found, so the
// cost is constant relative to the number of registered curves rather
// than data-dependent on the position of id — spec.md §4.5's
// constant-time-by-count lookup requirement.
func ByID(id ID) (*Descriptor, error) {
	registryOnce.Do(buildRegistry)

	var found *Descriptor
	for _, candidate := range registryIDs {
		d := registry[candidate]
		if candidate == id {
			found = d
		}
	}
	if found == nil {
		return nil, errs.Wrap(errs.ParseError, "unknown curve id %q", id)
	}
	return found, nil
}

// Registered returns the IDs of every built-in curve.
func Registered() []ID {
	registryOnce.Do(buildRegistry)
	out := make([]ID, len(registryIDs))
	copy(out, registryIDs)
	return out
}
