// Package bigint256 implements fixed-width 256-bit unsigned integer
// arithmetic: eight 32-bit limbs in little-endian limb order (limb 0 is
// least significant), big-endian byte encoding on the wire.
package bigint256

import (
	"encoding/binary"
	"math/bits"
)

// Limbs is the number of 32-bit words in a U256.
const Limbs = 8

// U256 is an unsigned 256-bit integer stored as eight little-endian-order
// 32-bit limbs. The zero value is the integer 0.
type U256 [Limbs]uint32

// FromBytesBE decodes a 32-byte big-endian buffer into a U256.
func FromBytesBE(b []byte) (u U256, ok bool) {
	if len(b) != 32 {
		return U256{}, false
	}
	for i := 0; i < Limbs; i++ {
		u[i] = binary.BigEndian.Uint32(b[32-4*(i+1) : 32-4*i])
	}
	return u, true
}

// BytesBE encodes u as a 32-byte big-endian buffer.
func (u *U256) BytesBE() [32]byte {
	var out [32]byte
	for i := 0; i < Limbs; i++ {
		binary.BigEndian.PutUint32(out[32-4*(i+1):32-4*i], u[i])
	}
	return out
}

// IsZero reports whether u is the zero integer.
func (u *U256) IsZero() bool {
	var acc uint32
	for _, w := range u {
		acc |= w
	}
	return acc == 0
}

// Bit returns bit i (0 = least significant) of u, or 0 if i is out of range.
func (u *U256) Bit(i int) uint32 {
	if i < 0 || i >= Limbs*32 {
		return 0
	}
	return (u[i/32] >> uint(i%32)) & 1
}

// Cmp returns -1, 0, or 1 as u is less than, equal to, or greater than v,
// comparing from the most significant limb downward.
func Cmp(u, v *U256) int {
	for i := Limbs - 1; i >= 0; i-- {
		if u[i] != v[i] {
			if u[i] < v[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add computes u+v into out and returns the carry out of the top limb (0 or 1).
func Add(out, u, v *U256) uint32 {
	var carry uint64
	for i := 0; i < Limbs; i++ {
		sum := uint64(u[i]) + uint64(v[i]) + carry
		out[i] = uint32(sum)
		carry = sum >> 32
	}
	return uint32(carry)
}

// Sub computes u-v into out and returns the borrow out of the top limb (0 or 1).
func Sub(out, u, v *U256) uint32 {
	var borrow uint64
	for i := 0; i < Limbs; i++ {
		diff := uint64(u[i]) - uint64(v[i]) - borrow
		out[i] = uint32(diff)
		borrow = (diff >> 32) & 1
	}
	return uint32(borrow)
}

// Shr1 shifts u right by one bit in place.
func (u *U256) Shr1() {
	var carry uint32
	for i := Limbs - 1; i >= 0; i-- {
		next := u[i] & 1
		u[i] = (u[i] >> 1) | (carry << 31)
		carry = next
	}
}

// AddWord adds a single-limb value w into u (in place, limb 0), propagating
// carry through the remaining limbs, and returns the final carry out.
func (u *U256) AddWord(w uint32) uint32 {
	carry := uint64(w)
	for i := 0; i < Limbs && carry != 0; i++ {
		sum := uint64(u[i]) + carry
		u[i] = uint32(sum)
		carry = sum >> 32
	}
	return uint32(carry)
}

// Mul64 multiplies two uint32s producing a 64-bit product, exposed for
// callers doing manual schoolbook accumulation (see mul.go).
func Mul64(a, b uint32) (hi, lo uint32) {
	h, l := bits.Mul64(uint64(a), uint64(b))
	return uint32(h), uint32(l)
}
