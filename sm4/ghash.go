package sm4

import "encoding/binary"

// ghashBlockSize is the width of GF(2^128) elements: 16 bytes.
const ghashBlockSize = 16

// gfMul multiplies x and y in GF(2^128) under the reduction polynomial
// x^128 + x^7 + x^2 + x + 1, using the standard GCM bit convention: the
// most significant bit of x[0] is the coefficient multiplied first, and
// the field element is walked LSB-first with a conditional XOR of the
// encoded reduction constant 0xe1 (representing x^7+x^2+x+1) whenever the
// bit shifted out of the accumulator is 1.
func gfMul(x, y [ghashBlockSize]byte) [ghashBlockSize]byte {
	var z, v [ghashBlockSize]byte
	v = y
	for i := 0; i < 128; i++ {
		bit := (x[i/8] >> uint(7-i%8)) & 1
		if bit == 1 {
			for j := 0; j < ghashBlockSize; j++ {
				z[j] ^= v[j]
			}
		}
		lsb := v[ghashBlockSize-1] & 1
		for j := ghashBlockSize - 1; j > 0; j-- {
			v[j] = v[j]>>1 | (v[j-1]&1)<<7
		}
		v[0] >>= 1
		if lsb == 1 {
			v[0] ^= 0xe1
		}
	}
	return z
}

// ghashState is a running GHASH accumulator under a fixed subkey H.
type ghashState struct {
	h [ghashBlockSize]byte
	y [ghashBlockSize]byte
}

func newGHASH(h [ghashBlockSize]byte) *ghashState {
	return &ghashState{h: h}
}

func (g *ghashState) updateBlock(block [ghashBlockSize]byte) {
	for j := range g.y {
		g.y[j] ^= block[j]
	}
	g.y = gfMul(g.y, g.h)
}

// updateBytes folds data into the accumulator 16 bytes at a time,
// implicitly zero-padding a trailing partial block (the pad16 operation
// in spec.md's GHASH step).
func (g *ghashState) updateBytes(data []byte) {
	for len(data) > 0 {
		var block [ghashBlockSize]byte
		n := copy(block[:], data)
		g.updateBlock(block)
		data = data[n:]
	}
}

func (g *ghashState) sum() [ghashBlockSize]byte {
	return g.y
}

// ghashSum computes GHASH_H(A || pad16(A) || C || pad16(C) || len(A)_64be || len(C)_64be),
// the authentication tag input from spec.md's GCM step 4.
func ghashSum(h [ghashBlockSize]byte, aad, ciphertext []byte) [ghashBlockSize]byte {
	g := newGHASH(h)
	g.updateBytes(aad)
	g.updateBytes(ciphertext)
	var lenBlock [ghashBlockSize]byte
	binary.BigEndian.PutUint64(lenBlock[0:8], uint64(len(aad))*8)
	binary.BigEndian.PutUint64(lenBlock[8:16], uint64(len(ciphertext))*8)
	g.updateBlock(lenBlock)
	return g.sum()
}

// deriveJ0 computes the initial counter block. A 12-byte IV takes the fast
// path IV||0^31||1; any other length falls back to GHASH_H over the
// zero-padded IV followed by its 128-bit big-endian bit-length encoding.
func deriveJ0(h [ghashBlockSize]byte, iv []byte) [ghashBlockSize]byte {
	if len(iv) == 12 {
		var j0 [ghashBlockSize]byte
		copy(j0[:12], iv)
		j0[15] = 1
		return j0
	}
	g := newGHASH(h)
	g.updateBytes(iv)
	var lenBlock [ghashBlockSize]byte
	binary.BigEndian.PutUint64(lenBlock[8:16], uint64(len(iv))*8)
	g.updateBlock(lenBlock)
	return g.sum()
}
