package sm2

import (
	"github.com/vastbase/gmsm/internal/bigint256"
	"github.com/vastbase/gmsm/internal/csrand"
	"github.com/vastbase/gmsm/internal/gfn"
	"github.com/vastbase/gmsm/sm2/internal/curve"
	"github.com/vastbase/gmsm/sm3"
)

// Signature is a GM/T 0003.2 signature, the pair (r, s).
type Signature struct {
	R, S gfn.Elt
}

// Bytes encodes the signature as 64 bytes: r || s, each 32-byte big-endian.
func (sig Signature) Bytes() []byte {
	r := sig.R.Bytes()
	s := sig.S.Bytes()
	out := make([]byte, 64)
	copy(out[:32], r[:])
	copy(out[32:], s[:])
	return out
}

// SignatureFromBytes decodes a 64-byte signature, rejecting components
// outside [1, N-1].
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != 64 {
		return Signature{}, errSignatureLength
	}
	r, err := gfn.FromBytesStrict(b[:32])
	if err != nil || r.IsZero() {
		return Signature{}, errSigComponentRange
	}
	s, err := gfn.FromBytesStrict(b[32:])
	if err != nil || s.IsZero() {
		return Signature{}, errSigComponentRange
	}
	return Signature{R: r, S: s}, nil
}

// computeE hashes Z||M with SM3 and interprets the digest as a (not yet
// reduced) 256-bit big-endian integer, per spec.md 4.4 step 2. Reducing it
// mod N here rather than at each later use is equivalent, since modular
// addition distributes over the reduction.
func computeE(z, msg []byte) gfn.Elt {
	h := sm3.New()
	h.Write(z)
	h.Write(msg)
	digest := h.Sum(nil)
	e, _ := gfn.FromBytes(digest) // sm3.Sum always returns exactly 32 bytes
	return e
}

// Sign produces a GM/T 0003.2 signature over msg under priv, threading id
// through to the Z-value computation end to end (a nil id uses DefaultID;
// the default is never silently substituted for a caller-supplied id).
func Sign(priv *PrivateKey, msg []byte, id []byte) (Signature, error) {
	z := ComputeZ(priv.Public(), id)
	return SignWithZ(priv, z, msg)
}

// SignWithZ signs msg using a precomputed Z (see ComputeZ), skipping the
// public-key derivation and Z hashing Sign would otherwise repeat on every
// call for a caller signing many messages under one identity.
func SignWithZ(priv *PrivateKey, z, msg []byte) (Signature, error) {
	e := computeE(z, msg)

	for attempt := 0; attempt < MaxRetries; attempt++ {
		k, err := csrand.Scalar()
		if err != nil {
			return Signature{}, err
		}

		kg := curve.BaseScalarMult(k)
		if kg == nil {
			continue
		}
		x1Bytes := kg.X.Bytes()
		x1, err := gfn.FromBytes(x1Bytes[:])
		if err != nil {
			continue
		}
		r := e.Add(x1)
		if r.IsZero() {
			continue
		}
		if rPlusKEqualsN(r, k) {
			continue
		}

		onePlusD := gfn.One.Add(priv.D)
		onePlusDInv, err := onePlusD.Inverse()
		if err != nil {
			continue
		}
		rd := r.Mul(priv.D)
		s := onePlusDInv.Mul(k.Sub(rd))
		if s.IsZero() {
			continue
		}
		return Signature{R: r, S: s}, nil
	}
	return Signature{}, errRetryBudgetExceeded
}

// rPlusKEqualsN reports whether the ordinary integer sum r+k (not reduced
// mod N) equals N exactly — the spec.md 4.4 step-3 rejection condition,
// distinct from (r+k) mod N == 0.
func rPlusKEqualsN(r, k gfn.Elt) bool {
	rRaw, kRaw := r.Raw(), k.Raw()
	var sum bigint256.U256
	carry := bigint256.Add(&sum, &rRaw, &kRaw)
	if carry != 0 {
		return false
	}
	return bigint256.Cmp(&sum, &gfn.N) == 0
}

// Verify checks sig over msg under pub, using the same id the signer used.
func Verify(pub *PublicKey, msg []byte, id []byte, sig Signature) error {
	z := ComputeZ(pub, id)
	return VerifyWithZ(pub, z, msg, sig)
}

// VerifyWithZ is Verify taking a precomputed Z (see ComputeZ).
func VerifyWithZ(pub *PublicKey, z, msg []byte, sig Signature) error {
	if sig.R.IsZero() || sig.S.IsZero() {
		return errSigComponentRange
	}
	e := computeE(z, msg)
	t := sig.R.Add(sig.S)
	if t.IsZero() {
		return errSigRejectZeroT
	}
	sum := curve.Add(curve.BaseScalarMult(sig.S), curve.ScalarMultElt(t, pub.P))
	if sum == nil {
		return errSigRejectInfinity
	}
	x1Bytes := sum.X.Bytes()
	x1, err := gfn.FromBytes(x1Bytes[:])
	if err != nil {
		return errSigMismatch
	}
	if !e.Add(x1).Equal(sig.R) {
		return errSigMismatch
	}
	return nil
}
