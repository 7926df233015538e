// Package gfp implements arithmetic in the prime field F_p, where p is the
// SM2 curve's 256-bit modulus p = 2^256 - 2^224 - 2^96 + 2^64 - 1. Elements
// are always kept reduced, i.e. strictly less than P.
package gfp

import (
	"github.com/vastbase/gmsm/internal/bigint256"
	"github.com/vastbase/gmsm/internal/gmerr"
)

// P is the SM2 prime field modulus.
var P = mustParse("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFF")

func mustParse(hexStr string) bigint256.U256 {
	var buf [32]byte
	for i := 0; i < 32; i++ {
		hi := unhex(hexStr[2*i])
		lo := unhex(hexStr[2*i+1])
		buf[i] = hi<<4 | lo
	}
	u, ok := bigint256.FromBytesBE(buf[:])
	if !ok {
		panic("gfp: bad constant")
	}
	return u
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	panic("gfp: bad hex digit")
}

// Elt is an element of F_p, always kept in [0, P).
type Elt struct {
	v bigint256.U256
}

// Zero is the additive identity.
var Zero = Elt{}

// One is the multiplicative identity.
var One = Elt{v: bigint256.U256{1}}

// FromBytes decodes a 32-byte big-endian buffer as a field element,
// rejecting values not already reduced modulo P.
func FromBytes(b []byte) (Elt, error) {
	u, ok := bigint256.FromBytesBE(b)
	if !ok {
		return Elt{}, gmerr.ErrInvalidInputLength
	}
	if bigint256.Cmp(&u, &P) >= 0 {
		return Elt{}, gmerr.ErrInvalidEncoding
	}
	return Elt{v: u}, nil
}

// Bytes encodes e as a 32-byte big-endian buffer.
func (e Elt) Bytes() [32]byte {
	return e.v.BytesBE()
}

// IsZero reports whether e is the zero element.
func (e Elt) IsZero() bool {
	return e.v.IsZero()
}

// Equal reports whether e and f represent the same field element.
func (e Elt) Equal(f Elt) bool {
	return bigint256.Cmp(&e.v, &f.v) == 0
}

// IsOdd reports whether the element's least significant bit is set.
func (e Elt) IsOdd() bool {
	return e.v[0]&1 == 1
}

// Add returns e+f mod P.
func (e Elt) Add(f Elt) Elt {
	var sum bigint256.U256
	carry := bigint256.Add(&sum, &e.v, &f.v)
	if carry != 0 || bigint256.Cmp(&sum, &P) >= 0 {
		bigint256.Sub(&sum, &sum, &P)
	}
	return Elt{v: sum}
}

// Sub returns e-f mod P.
func (e Elt) Sub(f Elt) Elt {
	var diff bigint256.U256
	borrow := bigint256.Sub(&diff, &e.v, &f.v)
	if borrow != 0 {
		bigint256.Add(&diff, &diff, &P)
	}
	return Elt{v: diff}
}

// Negate returns -e mod P.
func (e Elt) Negate() Elt {
	return Zero.Sub(e)
}

// Double returns 2*e mod P.
func (e Elt) Double() Elt {
	return e.Add(e)
}

// Mul returns e*f mod P.
func (e Elt) Mul(f Elt) Elt {
	prod := bigint256.Mul(&e.v, &f.v)
	return Elt{v: reduceWide(&prod)}
}

// Square returns e*e mod P.
func (e Elt) Square() Elt {
	return e.Mul(e)
}

// Inverse returns e^-1 mod P, or ErrInversionFailed if e is zero.
func (e Elt) Inverse() (Elt, error) {
	inv, ok := bigint256.BinaryInverse(e.v, P)
	if !ok {
		return Elt{}, gmerr.ErrInversionFailed
	}
	return Elt{v: inv}, nil
}

// Raw exposes the underlying limbs.
func (e Elt) Raw() bigint256.U256 {
	return e.v
}

// FromRaw wraps an already-reduced U256 as a field element without
// revalidating the range; callers must ensure u < P.
func FromRaw(u bigint256.U256) Elt {
	return Elt{v: u}
}
