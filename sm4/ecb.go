package sm4

import "github.com/vastbase/gmsm/internal/gmerr"

// ECBEncrypt PKCS#7-pads pt and encrypts it one block at a time under key.
func ECBEncrypt(key, pt []byte) ([]byte, error) {
	block, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	padded := pkcs7Pad(pt)
	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += BlockSize {
		block.Encrypt(out[i:i+BlockSize], padded[i:i+BlockSize])
	}
	return out, nil
}

// ECBDecrypt decrypts ct one block at a time under key and strips PKCS#7
// padding.
func ECBDecrypt(key, ct []byte) ([]byte, error) {
	if len(ct) == 0 || len(ct)%BlockSize != 0 {
		return nil, gmerr.ErrInvalidInputLength
	}
	block, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(ct))
	for i := 0; i < len(ct); i += BlockSize {
		block.Decrypt(out[i:i+BlockSize], ct[i:i+BlockSize])
	}
	return pkcs7Unpad(out)
}
