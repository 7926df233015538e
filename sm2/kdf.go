package sm2

import (
	"encoding/binary"

	"github.com/vastbase/gmsm/sm3"
)

// kdf derives klen bytes from z by SM3 counter-mode iteration: concatenate
// SM3(z || ct) for ct = 1, 2, ... until there are enough bytes, then
// truncate. GM/T 32918.4 requires the caller reject an all-zero output;
// that check lives at the two call sites (encrypt/decrypt) since only they
// know whether "all zero" should trigger a retry or a hard failure.
func kdf(z []byte, klen int) []byte {
	out := make([]byte, 0, klen+sm3.Size)
	var ctBuf [4]byte
	for ct := uint32(1); len(out) < klen; ct++ {
		binary.BigEndian.PutUint32(ctBuf[:], ct)
		h := sm3.New()
		h.Write(z)
		h.Write(ctBuf[:])
		out = h.Sum(out)
	}
	return out[:klen]
}

func allZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
