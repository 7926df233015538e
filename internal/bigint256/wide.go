package bigint256

// The helpers in this file operate on variable-length little-endian uint32
// limb slices rather than the fixed-width U256/U512 types above. They back
// Barrett reduction in package gfn, which needs to multiply and compare
// numbers wider than 512 bits (the product of a 512-bit value by a
// 257-bit Barrett constant).

// MulWide computes the full product of a and b as a little-endian limb
// slice of length len(a)+len(b).
func MulWide(a, b []uint32) []uint32 {
	out := make([]uint32, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry uint64
		for j, bj := range b {
			acc := uint64(out[i+j]) + uint64(ai)*uint64(bj) + carry
			out[i+j] = uint32(acc)
			carry = acc >> 32
		}
		k := i + len(b)
		for carry != 0 {
			acc := uint64(out[k]) + carry
			out[k] = uint32(acc)
			carry = acc >> 32
			k++
		}
	}
	return out
}

// TrimWide drops trailing (most significant) zero limbs, keeping at least
// one limb.
func TrimWide(a []uint32) []uint32 {
	n := len(a)
	for n > 1 && a[n-1] == 0 {
		n--
	}
	return a[:n]
}

// CmpWide compares two trimmed-or-not limb slices as unsigned integers.
func CmpWide(a, b []uint32) int {
	a = TrimWide(a)
	b = TrimWide(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// SubWide computes a-b for a >= b, returning a trimmed limb slice.
func SubWide(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint64
	for i := range a {
		var bv uint64
		if i < len(b) {
			bv = uint64(b[i])
		}
		diff := uint64(a[i]) - bv - borrow
		out[i] = uint32(diff)
		borrow = (diff >> 32) & 1
	}
	return TrimWide(out)
}

// ToU256 copies the low 256 bits of a trimmed-or-not limb slice into a
// fixed-width U256 (any higher limbs are ignored; callers are expected to
// have already reduced below 2^256).
func ToU256(a []uint32) U256 {
	var out U256
	copy(out[:], a)
	return out
}
