package sm2

import (
	"github.com/vastbase/gmsm/internal/csrand"
	"github.com/vastbase/gmsm/sm2/internal/curve"
	"github.com/vastbase/gmsm/sm3"
)

// cipherOverhead is C1 (65 bytes, uncompressed point) + C3 (32-byte SM3 digest).
const cipherOverhead = 65 + sm3.Size

// Encrypt implements GM/T 0003.4 public-key encryption, committing to the
// C1||C3||C2 ciphertext layout (GM/T 2012 permits C1||C2||C3 as well; this
// engine always produces and expects the former).
func Encrypt(pub *PublicKey, plaintext []byte) ([]byte, error) {
	for attempt := 0; attempt < MaxRetries; attempt++ {
		k, err := csrand.Scalar()
		if err != nil {
			return nil, err
		}
		c1 := curve.BaseScalarMult(k)
		if c1 == nil {
			continue
		}
		kp := curve.ScalarMultElt(k, pub.P)
		if kp == nil {
			continue
		}
		x2 := kp.X.Bytes()
		y2 := kp.Y.Bytes()

		t := kdf(append(append([]byte{}, x2[:]...), y2[:]...), len(plaintext))
		if allZero(t) {
			continue
		}

		c2 := make([]byte, len(plaintext))
		for i := range plaintext {
			c2[i] = plaintext[i] ^ t[i]
		}

		h := sm3.New()
		h.Write(x2[:])
		h.Write(plaintext)
		h.Write(y2[:])
		c3 := h.Sum(nil)

		out := make([]byte, 0, 65+len(c3)+len(c2))
		out = append(out, curve.Encode(c1)...)
		out = append(out, c3...)
		out = append(out, c2...)
		return out, nil
	}
	return nil, errRetryBudgetExceeded
}

// Decrypt implements the inverse of Encrypt.
func Decrypt(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < cipherOverhead {
		return nil, errCiphertextTooShort
	}
	c1Bytes := ciphertext[:65]
	c3 := ciphertext[65:97]
	c2 := ciphertext[97:]

	c1, err := curve.Decode(c1Bytes)
	if err != nil {
		return nil, err
	}

	dc1 := curve.ScalarMultElt(priv.D, c1)
	if dc1 == nil {
		return nil, errCiphertextTooShort
	}
	x2 := dc1.X.Bytes()
	y2 := dc1.Y.Bytes()

	t := kdf(append(append([]byte{}, x2[:]...), y2[:]...), len(c2))
	if allZero(t) {
		return nil, errKDFAllZero
	}

	m := make([]byte, len(c2))
	for i := range c2 {
		m[i] = c2[i] ^ t[i]
	}

	h := sm3.New()
	h.Write(x2[:])
	h.Write(m)
	h.Write(y2[:])
	c3Computed := h.Sum(nil)

	if !constantTimeEqual(c3Computed, c3) {
		for i := range m {
			m[i] = 0
		}
		return nil, errC3Mismatch
	}
	return m, nil
}

func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
