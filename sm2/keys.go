// Package sm2 implements the GM/T 0003 public-key algorithm suite: keypair
// generation, signing, verification, and public-key encryption/decryption
// over the SM2 elliptic curve, with SM3 supplying the hash and KDF
// primitives the protocols need.
package sm2

import (
	"github.com/vastbase/gmsm/internal/csrand"
	"github.com/vastbase/gmsm/internal/gfn"
	"github.com/vastbase/gmsm/sm2/internal/curve"
)

// DefaultID is the ASCII user identity GM/T 0003 specifies for callers
// that do not supply their own.
var DefaultID = []byte("1234567812345678")

// MaxRetries bounds the rejection-sampling loops in Sign and Encrypt. The
// engine this is modeled on hardcodes 100 attempts; named here so it can
// be overridden in tests that want to exercise ErrRetryBudgetExhausted
// without waiting out astronomically unlikely rejection runs.
var MaxRetries = 100

// PrivateKey is an SM2 signing/decryption key: a scalar d in [1, N-1].
type PrivateKey struct {
	D gfn.Elt
}

// PublicKey is an SM2 verification/encryption key: a curve point P = [d]G.
type PublicKey struct {
	P *curve.Point
}

// GenerateKey produces a new keypair using the OS CSPRNG.
func GenerateKey() (*PrivateKey, *PublicKey, error) {
	d, err := csrand.Scalar()
	if err != nil {
		return nil, nil, err
	}
	priv := &PrivateKey{D: d}
	return priv, priv.Public(), nil
}

// Public derives the public key P = [d]G from priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{P: curve.BaseScalarMult(priv.D)}
}

// Bytes encodes the private scalar as 32 big-endian bytes.
func (priv *PrivateKey) Bytes() []byte {
	b := priv.D.Bytes()
	return b[:]
}

// PrivateKeyFromBytes decodes a 32-byte big-endian scalar in [1, N-1].
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	d, err := gfn.FromBytesStrict(b)
	if err != nil {
		return nil, err
	}
	if d.IsZero() {
		return nil, errScalarOutOfRange
	}
	return &PrivateKey{D: d}, nil
}

// Bytes encodes the public point in uncompressed wire form (65 bytes).
func (pub *PublicKey) Bytes() []byte {
	return curve.Encode(pub.P)
}

// PublicKeyFromBytes decodes a public key from its 64- or 65-byte wire form.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	p, err := curve.Decode(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{P: p}, nil
}
