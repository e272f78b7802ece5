// Package address implements the blockchain-facing output codecs spec.md
// §6 lists as external collaborators of the cryptographic core: the WIF
// private-key envelope, the Base58Check P2PKH address, and the
// Zilliqa-style fingerprint. None of this is part of the core contract —
// spec.md explicitly scopes Base58/checksum/WIF construction out of C1-C7
// — but it is the stated target application (§1), so it gets its own
// package built on top of key and curve rather than folded into them.
package address

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/wyvernlabs/ecckit/errs"
	"github.com/wyvernlabs/ecckit/key"
)

// Network carries the WIF and P2PKH version bytes for a chain.
type Network struct {
	Name          string
	WIFPrefix     byte
	AddressPrefix byte
}

// Mainnet and Testnet are the two Bitcoin-style networks spec.md's WIF
// examples are drawn against.
var (
	Mainnet = Network{Name: "mainnet", WIFPrefix: 0x80, AddressPrefix: 0x00}
	Testnet = Network{Name: "testnet", WIFPrefix: 0xEF, AddressPrefix: 0x6F}
)

func doubleSHA256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// WIF encodes priv in Wallet Import Format for net, per spec.md §6:
//
//	uncompressed: wif_prefix || priv_bytes || checksum(prefix||priv)[0:4]
//	compressed:   wif_prefix || priv_bytes || 0x01 || checksum(...)[0:4]
//
// where checksum is double-SHA256, and the whole envelope is Base58-encoded.
func WIF(priv *key.PrivateKey, net Network, compressed bool) string {
	width := (priv.Curve.N.BitLen() + 7) / 8
	privBytes := make([]byte, width)
	priv.K.FillBytes(privBytes)

	payload := make([]byte, 0, 1+width+1)
	payload = append(payload, net.WIFPrefix)
	payload = append(payload, privBytes...)
	if compressed {
		payload = append(payload, 0x01)
	}

	checksum := doubleSHA256(payload)[:4]
	full := append(payload, checksum...)
	return base58.Encode(full)
}

// DecodeWIF reverses WIF, validating the checksum and stripping the
// network prefix and (if present) the compression flag.
func DecodeWIF(s string, net Network) (privBytes []byte, compressed bool, err error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, false, errs.Wrap(errs.ParseError, "invalid base58 WIF: %v", err)
	}
	if len(raw) < 1+4 {
		return nil, false, errs.Wrap(errs.ParseError, "WIF payload too short")
	}

	payload, checksum := raw[:len(raw)-4], raw[len(raw)-4:]
	want := doubleSHA256(payload)[:4]
	if string(want) != string(checksum) {
		return nil, false, errs.Wrap(errs.ParseError, "WIF checksum mismatch")
	}
	if payload[0] != net.WIFPrefix {
		return nil, false, errs.Wrap(errs.ParseError, "WIF network prefix mismatch")
	}

	body := payload[1:]
	if len(body) == 33 && body[32] == 0x01 {
		return body[:32], true, nil
	}
	return body, false, nil
}

// P2PKH computes the Base58Check pay-to-pubkey-hash address for pub, per
// spec.md §6: RIPEMD160(SHA256(pubkey_bytes)) prefixed with the network's
// address byte, double-SHA256 checksummed, Base58-encoded.
func P2PKH(pub *key.PublicKey, net Network, compressed bool) string {
	hash := pubkeyHash160(pub, compressed)

	payload := append([]byte{net.AddressPrefix}, hash...)
	checksum := doubleSHA256(payload)[:4]
	full := append(payload, checksum...)
	return base58.Encode(full)
}

func pubkeyHash160(pub *key.PublicKey, compressed bool) []byte {
	var encoded []byte
	if compressed {
		encoded = pub.Compressed()
	} else {
		encoded = pub.Uncompressed()
	}

	sha := sha256.Sum256(encoded)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}

// ZilliqaFingerprint returns the last 20 bytes of SHA256(pubkey_bytes) as
// uppercase hex, per spec.md §6.
func ZilliqaFingerprint(pub *key.PublicKey, compressed bool) string {
	var encoded []byte
	if compressed {
		encoded = pub.Compressed()
	} else {
		encoded = pub.Uncompressed()
	}
	sum := sha256.Sum256(encoded)
	last20 := sum[len(sum)-20:]
	return strings.ToUpper(hex.EncodeToString(last20))
}
