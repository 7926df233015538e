package sm2

import (
	"encoding/binary"

	"github.com/vastbase/gmsm/sm2/internal/curve"
	"github.com/vastbase/gmsm/sm3"
)

// ComputeZ computes the GM/T 0003.2 user-identity hash
// Z = SM3(ENTL_A || ID_A || a || b || Gx || Gy || Px || Py), where ENTL_A
// is the bit length of id as a 16-bit big-endian value. A nil id uses
// DefaultID.
//
// Split out as its own entry point (rather than folded invisibly into
// Sign/Verify) so a caller signing many messages under one identity can
// compute Z once and reuse it via SignWithZ/VerifyWithZ instead of paying
// the same SM3 call on every signature.
func ComputeZ(pub *PublicKey, id []byte) []byte {
	if id == nil {
		id = DefaultID
	}
	entl := uint16(len(id) * 8)

	h := sm3.New()
	var entlBuf [2]byte
	binary.BigEndian.PutUint16(entlBuf[:], entl)
	h.Write(entlBuf[:])
	h.Write(id)

	aBytes := curve.A.Bytes()
	bBytes := curve.B.Bytes()
	gx := curve.G.X.Bytes()
	gy := curve.G.Y.Bytes()
	px := pub.P.X.Bytes()
	py := pub.P.Y.Bytes()

	h.Write(aBytes[:])
	h.Write(bBytes[:])
	h.Write(gx[:])
	h.Write(gy[:])
	h.Write(px[:])
	h.Write(py[:])

	return h.Sum(nil)
}
