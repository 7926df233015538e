package gfp

import "github.com/vastbase/gmsm/internal/bigint256"

// reduceWide folds a 512-bit product down to a value below P.
//
// The SM2 prime P = 2^256 - 2^224 - 2^96 + 2^64 - 1 satisfies
// 2^256 ≡ 2^224 + 2^96 - 2^64 + 1 (mod P), so splitting a 512-bit value
// into lo (bits 0..255) and hi (bits 256..) lets us replace hi*2^256 with
// hi*(2^224+2^96-2^64+1) — a strictly smaller integer added back into lo
// at word-aligned offsets (224, 96, 64, and 0 are all multiples of 32, so
// every "shift" below is a whole-limb move, not a bit shift).
//
// Repeating this fold on the shrinking accumulator converges to 8 limbs
// (256 bits) in at most a handful of rounds, after which an ordinary
// compare-and-subtract against P finishes the job. This is an iterative
// realization of the prime's fast-reduction identity rather than a single
// one-shot correction table: it trades a few extra additions for an
// implementation that is straightforward to get right limb-by-limb.
func reduceWide(prod *bigint256.U512) bigint256.U256 {
	acc := append([]uint32(nil), prod[:]...)
	for len(acc) > bigint256.Limbs {
		acc = foldStep(acc)
	}

	var lo bigint256.U256
	copy(lo[:], acc)
	for bigint256.Cmp(&lo, &P) >= 0 {
		bigint256.Sub(&lo, &lo, &P)
	}
	return lo
}

// foldStep performs one round of the fold described above, returning a
// trimmed limb slice (length >= bigint256.Limbs) representing the same
// value modulo P as the input.
func foldStep(a []uint32) []uint32 {
	lo := a[:bigint256.Limbs]
	hi := a[bigint256.Limbs:]

	width := len(hi) + 7
	if width < bigint256.Limbs {
		width = bigint256.Limbs
	}
	lanes := make([]int64, width+1)

	for i, w := range lo {
		lanes[i] += int64(w)
	}
	addShifted(lanes, hi, 7, 1)
	addShifted(lanes, hi, 3, 1)
	addShifted(lanes, hi, 2, -1)
	addShifted(lanes, hi, 0, 1)

	return propagate(lanes)
}

func addShifted(lanes []int64, src []uint32, wordShift int, sign int64) {
	for i, w := range src {
		lanes[wordShift+i] += sign * int64(w)
	}
}

// propagate carry-resolves a slice of signed 32-bit lane values (which may
// transiently go negative) into a canonical little-endian uint32 limb
// slice, using arithmetic shift to let negative lanes borrow from the
// lane above — correct because the fold's total is always nonnegative.
func propagate(lanes []int64) []uint32 {
	var carry int64
	out := make([]uint32, len(lanes))
	for i := range lanes {
		v := lanes[i] + carry
		out[i] = uint32(v)
		carry = v >> 32
	}
	n := len(out)
	for n > bigint256.Limbs && out[n-1] == 0 {
		n--
	}
	return out[:n]
}
