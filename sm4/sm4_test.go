package sm4

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestSingleBlockVector checks the GB/T 32907-2016 example 1 vector.
func TestSingleBlockVector(t *testing.T) {
	key := mustHex(t, "0123456789abcdeffedcba9876543210")
	pt := mustHex(t, "0123456789abcdeffedcba9876543210")
	wantBytes := mustHex(t, "681edf34d206965e86b3e94f536e4246")

	block, err := NewCipher(key)
	require.NoError(t, err)

	ct := make([]byte, BlockSize)
	block.Encrypt(ct, pt)
	require.Equal(t, wantBytes, ct)

	back := make([]byte, BlockSize)
	block.Decrypt(back, ct)
	require.Equal(t, pt, back)
}

// TestMillionRoundVector checks the GB/T 32907-2016 example 2 vector: the
// same key/plaintext encrypted 1,000,000 times in a row.
func TestMillionRoundVector(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1,000,000-round vector in short mode")
	}
	key := mustHex(t, "0123456789abcdeffedcba9876543210")
	block, err := NewCipher(key)
	require.NoError(t, err)

	buf := mustHex(t, "0123456789abcdeffedcba9876543210")
	tmp := make([]byte, BlockSize)
	for i := 0; i < 1000000; i++ {
		block.Encrypt(tmp, buf)
		copy(buf, tmp)
	}
	want := mustHex(t, "595298c7c6fd271f0402f804c33d3f66")
	require.Equal(t, want, buf)
}

func TestNewCipherRejectsBadKeySize(t *testing.T) {
	_, err := NewCipher(make([]byte, 8))
	require.Error(t, err)
}

func TestECBRoundTrip(t *testing.T) {
	key := mustHex(t, "0123456789abcdeffedcba9876543210")
	pt := []byte("the quick brown fox jumps over the lazy dog, 1234567890!")

	ct, err := ECBEncrypt(key, pt)
	require.NoError(t, err)

	got, err := ECBDecrypt(key, ct)
	require.NoError(t, err)
	require.Equal(t, pt, got)
}

func TestECBDecryptRejectsBadPadding(t *testing.T) {
	key := mustHex(t, "0123456789abcdeffedcba9876543210")
	ct, err := ECBEncrypt(key, []byte("short message"))
	require.NoError(t, err)

	ct[len(ct)-1] ^= 0xff
	_, err = ECBDecrypt(key, ct)
	require.Error(t, err)
}

func TestCBCRoundTrip(t *testing.T) {
	key := mustHex(t, "fedcba98765432100123456789abcdef")
	iv := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	pt := []byte("CBC mode message that spans more than one sixteen byte block easily")

	ct, err := CBCEncrypt(key, iv, pt)
	require.NoError(t, err)

	got, err := CBCDecrypt(key, iv, ct)
	require.NoError(t, err)
	require.Equal(t, pt, got)
}

func TestCBCDecryptWrongIVGarblesPlaintext(t *testing.T) {
	key := mustHex(t, "0123456789abcdeffedcba9876543210")
	iv := make([]byte, BlockSize)
	pt := []byte("another CBC message padded out to several blocks of content")

	ct, err := CBCEncrypt(key, iv, pt)
	require.NoError(t, err)

	badIV := make([]byte, BlockSize)
	badIV[0] = 0x01
	got, err := CBCDecrypt(key, badIV, ct)
	if err == nil {
		require.NotEqual(t, pt, got, "wrong IV should garble the first block")
	}
}

func TestCBCDecryptRejectsTruncatedCiphertext(t *testing.T) {
	key := mustHex(t, "0123456789abcdeffedcba9876543210")
	iv := make([]byte, BlockSize)
	_, err := CBCDecrypt(key, iv, make([]byte, 5))
	require.Error(t, err)
}
