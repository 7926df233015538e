package sm4

import (
	"crypto/cipher"
	"crypto/subtle"
	"encoding/binary"

	"github.com/vastbase/gmsm/internal/gmerr"
)

// TagSize is the GCM authentication tag length in bytes.
const TagSize = 16

// gcmStandardNonceSize is the nonce length the cipher.AEAD wrapper commits
// to; GCMEncrypt/GCMDecrypt accept any IV length per GB/T 32907-2016's GCM
// annex and fall back to the GHASH-derived J0 path for anything else.
const gcmStandardNonceSize = 12

// incr32 increments the low 32 bits of a counter block, wrapping on overflow,
// leaving the top 96 bits (the IV-derived portion) untouched.
func incr32(block [ghashBlockSize]byte) [ghashBlockSize]byte {
	out := block
	ctr := binary.BigEndian.Uint32(out[12:16])
	ctr++
	binary.BigEndian.PutUint32(out[12:16], ctr)
	return out
}

// gctr encrypts (or decrypts, being its own inverse) input by XORing it
// with the SM4 keystream generated from successive counter blocks starting
// at icb.
func gctr(block cipher.Block, icb [ghashBlockSize]byte, input []byte) []byte {
	out := make([]byte, len(input))
	counter := icb
	var keystream [BlockSize]byte
	for i := 0; i < len(input); i += BlockSize {
		block.Encrypt(keystream[:], counter[:])
		n := BlockSize
		if i+n > len(input) {
			n = len(input) - i
		}
		for j := 0; j < n; j++ {
			out[i+j] = input[i+j] ^ keystream[j]
		}
		counter = incr32(counter)
	}
	return out
}

// GCMEncrypt seals pt under key with the given IV (any non-zero length;
// 12 bytes is the fast path) and additional authenticated data aad,
// returning the ciphertext and a 16-byte tag.
func GCMEncrypt(key, iv, aad, pt []byte) (ciphertext, tag []byte, err error) {
	if len(iv) == 0 {
		return nil, nil, gmerr.ErrInvalidInputLength
	}
	block, err := NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	var zero, h [ghashBlockSize]byte
	block.Encrypt(h[:], zero[:])

	j0 := deriveJ0(h, iv)
	ciphertext = gctr(block, incr32(j0), pt)
	s := ghashSum(h, aad, ciphertext)
	tagFull := gctr(block, j0, s[:])
	return ciphertext, tagFull[:TagSize], nil
}

// GCMDecrypt verifies tag over aad and ct under key and IV, returning the
// recovered plaintext only on success. On any authentication failure it
// returns ErrAuthenticationFailed without exposing a partially decrypted
// buffer.
func GCMDecrypt(key, iv, aad, ct, tag []byte) ([]byte, error) {
	if len(iv) == 0 {
		return nil, gmerr.ErrInvalidInputLength
	}
	if len(tag) != TagSize {
		return nil, gmerr.ErrAuthenticationFailed
	}
	block, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	var zero, h [ghashBlockSize]byte
	block.Encrypt(h[:], zero[:])

	j0 := deriveJ0(h, iv)
	s := ghashSum(h, aad, ct)
	wantFull := gctr(block, j0, s[:])
	if subtle.ConstantTimeCompare(wantFull[:TagSize], tag) != 1 {
		return nil, gmerr.ErrAuthenticationFailed
	}
	return gctr(block, incr32(j0), ct), nil
}

// sm4GCM adapts GCMEncrypt/GCMDecrypt to the standard library's
// crypto/cipher.AEAD interface, fixing the nonce size at 12 bytes as that
// interface requires a single NonceSize. Callers needing other IV lengths
// should call GCMEncrypt/GCMDecrypt directly.
type sm4GCM struct {
	key []byte
}

// NewGCM wraps key as a cipher.AEAD using SM4-GCM with a 12-byte nonce.
func NewGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	return &sm4GCM{key: append([]byte{}, key...)}, nil
}

func (g *sm4GCM) NonceSize() int { return gcmStandardNonceSize }
func (g *sm4GCM) Overhead() int  { return TagSize }

func (g *sm4GCM) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != gcmStandardNonceSize {
		panic("sm4: incorrect nonce length for GCM")
	}
	ct, tag, err := GCMEncrypt(g.key, nonce, additionalData, plaintext)
	if err != nil {
		panic(err)
	}
	ret, out := sliceForAppend(dst, len(ct)+len(tag))
	copy(out, ct)
	copy(out[len(ct):], tag)
	return ret
}

func (g *sm4GCM) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != gcmStandardNonceSize {
		return nil, gmerr.ErrInvalidInputLength
	}
	if len(ciphertext) < TagSize {
		return nil, gmerr.ErrAuthenticationFailed
	}
	ct := ciphertext[:len(ciphertext)-TagSize]
	tag := ciphertext[len(ciphertext)-TagSize:]
	pt, err := GCMDecrypt(g.key, nonce, additionalData, ct, tag)
	if err != nil {
		return nil, err
	}
	ret, out := sliceForAppend(dst, len(pt))
	copy(out, pt)
	return ret, nil
}

// sliceForAppend extends dst by n bytes, reusing its backing array when
// there's room, mirroring crypto/cipher's GCM implementations.
func sliceForAppend(dst []byte, n int) (head, tail []byte) {
	total := len(dst) + n
	if cap(dst) >= total {
		head = dst[:total]
	} else {
		head = make([]byte, total)
		copy(head, dst)
	}
	tail = head[len(dst):]
	return
}
