package sm4

import "github.com/vastbase/gmsm/internal/gmerr"

// CBCEncrypt PKCS#7-pads pt and encrypts it under key with the given
// 16-byte IV. The caller is responsible for the IV not being derivable
// from the key.
func CBCEncrypt(key, iv, pt []byte) ([]byte, error) {
	if len(iv) != BlockSize {
		return nil, gmerr.ErrInvalidInputLength
	}
	block, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	padded := pkcs7Pad(pt)
	out := make([]byte, len(padded))
	prev := append([]byte{}, iv...)
	var xored [BlockSize]byte
	for i := 0; i < len(padded); i += BlockSize {
		for j := 0; j < BlockSize; j++ {
			xored[j] = padded[i+j] ^ prev[j]
		}
		block.Encrypt(out[i:i+BlockSize], xored[:])
		prev = out[i : i+BlockSize]
	}
	return out, nil
}

// CBCDecrypt decrypts ct under key with the given IV and strips PKCS#7
// padding. Per the padding-oracle design note, every ciphertext-dependent
// failure (bad ciphertext length, bad padding) collapses into
// ErrPaddingInvalid; a wrong-size IV returns ErrInvalidInputLength and a
// wrong-size key returns KeySizeError. GCM is the recommended mode for
// anything processing attacker-controlled ciphertext.
func CBCDecrypt(key, iv, ct []byte) ([]byte, error) {
	if len(iv) != BlockSize {
		return nil, gmerr.ErrInvalidInputLength
	}
	if len(ct) == 0 || len(ct)%BlockSize != 0 {
		return nil, gmerr.ErrPaddingInvalid
	}
	block, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(ct))
	prev := iv
	var rawOut [BlockSize]byte
	for i := 0; i < len(ct); i += BlockSize {
		block.Decrypt(rawOut[:], ct[i:i+BlockSize])
		for j := 0; j < BlockSize; j++ {
			out[i+j] = rawOut[j] ^ prev[j]
		}
		prev = ct[i : i+BlockSize]
	}
	return pkcs7Unpad(out)
}
