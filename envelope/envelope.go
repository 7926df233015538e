// Package envelope implements a password-based encryption wrapper over
// SM4, mirroring the simple salted-KDF envelope shape used by legacy
// gs_encrypt-style tools: derive a key from a password with PBKDF2, prepend
// the salt and iteration count, then encrypt the payload.
package envelope

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/pbkdf2"

	"github.com/vastbase/gmsm/internal/csrand"
	"github.com/vastbase/gmsm/internal/gmerr"
	"github.com/vastbase/gmsm/sm3"
	"github.com/vastbase/gmsm/sm4"
)

// newSM3Hash adapts sm3.New to the func() hash.Hash shape pbkdf2.Key wants;
// *sm3.Digest satisfies hash.Hash but Go does not convert sm3.New's
// func() *sm3.Digest type implicitly.
func newSM3Hash() hash.Hash { return sm3.New() }

// DefaultIterations is the PBKDF2 round count used by Seal/SealGCM.
const DefaultIterations = 10000

const (
	saltSize   = 16
	headerSize = saltSize + 4 // salt || iterations_be32
)

// deriveKeyIV stretches password into a 16-byte SM4 key and 16-byte IV
// using PBKDF2-HMAC-SM3, producing 32 bytes of key material in one pass
// and splitting it in two.
func deriveKeyIV(password, salt []byte, iterations int) (key, iv []byte) {
	km := pbkdf2.Key(password, salt, iterations, sm4.KeySize+sm4.BlockSize, newSM3Hash)
	return km[:sm4.KeySize], km[sm4.KeySize:]
}

// Seal derives a key from password and encrypts plaintext with SM4-CBC,
// returning salt(16) || iterations_be32 || ciphertext. There is no MAC in
// this format; callers needing tamper detection should use SealGCM.
func Seal(password, plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if err := csrand.Bytes(salt); err != nil {
		return nil, err
	}
	key, iv := deriveKeyIV(password, salt, DefaultIterations)
	ct, err := sm4.CBCEncrypt(key, iv, plaintext)
	if err != nil {
		return nil, err
	}
	out := make([]byte, headerSize+len(ct))
	copy(out, salt)
	binary.BigEndian.PutUint32(out[saltSize:headerSize], uint32(DefaultIterations))
	copy(out[headerSize:], ct)
	return out, nil
}

// Open reverses Seal. Any structural defect (short input, bad padding)
// collapses into ErrAuthenticationFailed, since a wrong password and a
// corrupted envelope are indistinguishable without a MAC.
func Open(password, sealed []byte) ([]byte, error) {
	if len(sealed) < headerSize {
		return nil, gmerr.ErrAuthenticationFailed
	}
	salt := sealed[:saltSize]
	iterations := int(binary.BigEndian.Uint32(sealed[saltSize:headerSize]))
	ct := sealed[headerSize:]

	key, iv := deriveKeyIV(password, salt, iterations)
	pt, err := sm4.CBCDecrypt(key, iv, ct)
	if err != nil {
		return nil, gmerr.ErrAuthenticationFailed
	}
	return pt, nil
}

// SealGCM derives a key the same way as Seal but encrypts under SM4-GCM,
// giving callers an authenticated envelope without hand-rolling the KDF.
// Wire format: salt(16) || iterations_be32 || iv(12) || ciphertext || tag(16).
func SealGCM(password, plaintext, aad []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if err := csrand.Bytes(salt); err != nil {
		return nil, err
	}
	iv := make([]byte, 12)
	if err := csrand.Bytes(iv); err != nil {
		return nil, err
	}
	key, _ := deriveKeyIV(password, salt, DefaultIterations)
	ct, tag, err := sm4.GCMEncrypt(key, iv, aad, plaintext)
	if err != nil {
		return nil, err
	}
	out := make([]byte, headerSize+len(iv)+len(ct)+len(tag))
	copy(out, salt)
	binary.BigEndian.PutUint32(out[saltSize:headerSize], uint32(DefaultIterations))
	off := headerSize
	off += copy(out[off:], iv)
	off += copy(out[off:], ct)
	copy(out[off:], tag)
	return out, nil
}

// OpenGCM reverses SealGCM, verifying the authentication tag before
// returning any plaintext.
func OpenGCM(password, sealed, aad []byte) ([]byte, error) {
	const ivSize = 12
	if len(sealed) < headerSize+ivSize+sm4.TagSize {
		return nil, gmerr.ErrAuthenticationFailed
	}
	salt := sealed[:saltSize]
	iterations := int(binary.BigEndian.Uint32(sealed[saltSize:headerSize]))
	iv := sealed[headerSize : headerSize+ivSize]
	rest := sealed[headerSize+ivSize:]
	ct := rest[:len(rest)-sm4.TagSize]
	tag := rest[len(rest)-sm4.TagSize:]

	key, _ := deriveKeyIV(password, salt, iterations)
	return sm4.GCMDecrypt(key, iv, aad, ct, tag)
}
