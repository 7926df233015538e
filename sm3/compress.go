package sm3

import "encoding/binary"

func rotl(x uint32, n uint) uint32 {
	n %= 32
	return x<<n | x>>(32-n)
}

func ff(x, y, z uint32, j int) uint32 {
	if j < 16 {
		return x ^ y ^ z
	}
	return (x & y) | (x & z) | (y & z)
}

func gg(x, y, z uint32, j int) uint32 {
	if j < 16 {
		return x ^ y ^ z
	}
	return (x & y) | (^x & z)
}

func p0(x uint32) uint32 {
	return x ^ rotl(x, 9) ^ rotl(x, 17)
}

func p1(x uint32) uint32 {
	return x ^ rotl(x, 15) ^ rotl(x, 23)
}

func roundConst(j int) uint32 {
	if j < 16 {
		return 0x79cc4519
	}
	return 0x7a879d8a
}

// compress runs one round of the Merkle-Damgård compression function over
// a single 64-byte block, updating h in place.
//
// The block is expanded to 68 words W and 64 derived words W' = W[j]^W[j+4],
// then 64 rounds mix the state through FF/GG (which switch definition at
// round 16), the rotate-XOR permutations P0/P1, and the piecewise round
// constant T(j). The final chaining step XORs the compressed state into h
// rather than adding it, per GB/T 32905.
func compress(h *[8]uint32, block []byte) {
	var w [68]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i : 4*i+4])
	}
	for i := 16; i < 68; i++ {
		w[i] = p1(w[i-16]^w[i-9]^rotl(w[i-3], 15)) ^ rotl(w[i-13], 7) ^ w[i-6]
	}
	var wp [64]uint32
	for i := range wp {
		wp[i] = w[i] ^ w[i+4]
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for j := 0; j < 64; j++ {
		ss1 := rotl(rotl(a, 12)+e+rotl(roundConst(j), uint(j%32)), 7)
		ss2 := ss1 ^ rotl(a, 12)
		tt1 := ff(a, b, c, j) + d + ss2 + wp[j]
		tt2 := gg(e, f, g, j) + hh + ss1 + w[j]
		d = c
		c = rotl(b, 9)
		b = a
		a = tt1
		hh = g
		g = rotl(f, 19)
		f = e
		e = p0(tt2)
	}

	h[0] ^= a
	h[1] ^= b
	h[2] ^= c
	h[3] ^= d
	h[4] ^= e
	h[5] ^= f
	h[6] ^= g
	h[7] ^= hh
}
