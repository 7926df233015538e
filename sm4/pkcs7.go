package sm4

import "github.com/vastbase/gmsm/internal/gmerr"

func pkcs7Pad(data []byte) []byte {
	padLen := BlockSize - len(data)%BlockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

// pkcs7Unpad validates and strips PKCS#7 padding, collapsing every failure
// mode (zero length, pad byte 0 or >16, inconsistent pad bytes) into the
// single ErrPaddingInvalid sentinel so a CBC/ECB decrypt failure never
// reveals which check tripped.
func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%BlockSize != 0 {
		return nil, gmerr.ErrPaddingInvalid
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > BlockSize {
		return nil, gmerr.ErrPaddingInvalid
	}
	var bad byte
	for _, b := range data[len(data)-padLen:] {
		bad |= b ^ byte(padLen)
	}
	if bad != 0 {
		return nil, gmerr.ErrPaddingInvalid
	}
	return data[:len(data)-padLen], nil
}
