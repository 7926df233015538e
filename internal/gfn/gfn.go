// Package gfn implements arithmetic modulo N, the SM2 curve's group order,
// a generic 256-bit prime with no special structure to exploit — reduction
// uses Barrett's method rather than the prime-specific fold gfp uses.
package gfn

import (
	"github.com/vastbase/gmsm/internal/bigint256"
	"github.com/vastbase/gmsm/internal/gmerr"
)

// N is the SM2 curve's order.
var N = mustParse("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFF7203DF6B21C6052B53BBF40939D54123")

func mustParse(hexStr string) bigint256.U256 {
	var buf [32]byte
	for i := 0; i < 32; i++ {
		buf[i] = unhex(hexStr[2*i])<<4 | unhex(hexStr[2*i+1])
	}
	u, ok := bigint256.FromBytesBE(buf[:])
	if !ok {
		panic("gfn: bad constant")
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
	panic("gfn: bad hex digit")
}

// Elt is an element of Z/N, always kept in [0, N).
type Elt struct {
	v bigint256.U256
}

// Zero is the additive identity.
var Zero = Elt{}

// One is the multiplicative identity.
var One = Elt{v: bigint256.U256{1}}

// FromBytes decodes a 32-byte big-endian buffer, reducing it modulo N. This
// differs from gfp.FromBytes: spec.md 4.4 step 2 computes e from a SM3
// digest interpreted as a 256-bit integer "with no modular reduction
// performed" before the mod-n additions that consume it, so the reduction
// here is exactly that later addition, not a validation gate.
func FromBytes(b []byte) (Elt, error) {
	u, ok := bigint256.FromBytesBE(b)
	if !ok {
		return Elt{}, gmerr.ErrInvalidInputLength
	}
	for bigint256.Cmp(&u, &N) >= 0 {
		bigint256.Sub(&u, &u, &N)
	}
	return Elt{v: u}, nil
}

// FromBytesStrict decodes a 32-byte big-endian buffer, rejecting values not
// already in [0, N) — used where the spec asks for a range check (e.g.
// signature components r, s) rather than a silent reduction.
func FromBytesStrict(b []byte) (Elt, error) {
	u, ok := bigint256.FromBytesBE(b)
	if !ok {
		return Elt{}, gmerr.ErrInvalidInputLength
	}
	if bigint256.Cmp(&u, &N) >= 0 {
		return Elt{}, gmerr.ErrScalarOutOfRange
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

// Equal reports whether e and f represent the same element.
func (e Elt) Equal(f Elt) bool {
	return bigint256.Cmp(&e.v, &f.v) == 0
}

// InRange reports whether e lies in [1, N-1], the range GM/T 0003 requires
// of private keys, ephemeral scalars, and signature components.
func (e Elt) InRange() bool {
	return !e.IsZero()
}

// Bit returns bit i of the element's canonical representative.
func (e Elt) Bit(i int) uint32 {
	return e.v.Bit(i)
}

// Add returns e+f mod N.
func (e Elt) Add(f Elt) Elt {
	var sum bigint256.U256
	carry := bigint256.Add(&sum, &e.v, &f.v)
	if carry != 0 || bigint256.Cmp(&sum, &N) >= 0 {
		bigint256.Sub(&sum, &sum, &N)
	}
	return Elt{v: sum}
}

// Sub returns e-f mod N.
func (e Elt) Sub(f Elt) Elt {
	var diff bigint256.U256
	borrow := bigint256.Sub(&diff, &e.v, &f.v)
	if borrow != 0 {
		bigint256.Add(&diff, &diff, &N)
	}
	return Elt{v: diff}
}

// Negate returns -e mod N.
func (e Elt) Negate() Elt {
	return Zero.Sub(e)
}

// Mul returns e*f mod N.
func (e Elt) Mul(f Elt) Elt {
	prod := bigint256.Mul(&e.v, &f.v)
	return Elt{v: reduceWide(&prod)}
}

// Inverse returns e^-1 mod N, or ErrInversionFailed if e is zero.
func (e Elt) Inverse() (Elt, error) {
	inv, ok := bigint256.BinaryInverse(e.v, N)
	if !ok {
		return Elt{}, gmerr.ErrInversionFailed
	}
	return Elt{v: inv}, nil
}

// Raw exposes the underlying limbs.
func (e Elt) Raw() bigint256.U256 {
	return e.v
}

// FromRaw wraps an already-reduced U256 without revalidating the range.
func FromRaw(u bigint256.U256) Elt {
	return Elt{v: u}
}
