package gfn

import "github.com/vastbase/gmsm/internal/bigint256"

// muLimbs is floor(2^512 / N), precomputed at 9 limbs (257 bits, little
// endian) for Barrett reduction.
var muLimbs = []uint32{
	0xf15149a0, 0x12ac6361, 0xfa323c01, 0x8dfc2096,
	0x00000001, 0x00000001, 0x00000001, 0x00000001,
	0x00000001,
}

var nLimbs = []uint32{
	N[0], N[1], N[2], N[3], N[4], N[5], N[6], N[7],
}

// reduceWide reduces a 512-bit product modulo N using Barrett reduction:
// q = floor((x*mu) / 2^512), r = x - q*N, followed by the at-most-one
// correction subtraction Barrett reduction always leaves.
func reduceWide(prod *bigint256.U512) bigint256.U256 {
	x := append([]uint32(nil), prod[:]...)

	xmu := bigint256.MulWide(x, muLimbs)
	q := xmu[bigint256.Limbs*2:]

	qn := bigint256.MulWide(q, nLimbs)

	r := bigint256.SubWide(x, qn)
	for bigint256.CmpWide(r, nLimbs) >= 0 {
		r = bigint256.SubWide(r, nLimbs)
	}
	return bigint256.ToU256(r)
}
