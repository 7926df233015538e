package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	b := []byte{0x00, 0x01, 0xab, 0xff, 0x10}
	s := EncodeHex(b)
	require.Equal(t, "0001abff10", s)

	got, err := DecodeHex(s)
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestDecodeHexRejectsOddLength(t *testing.T) {
	_, err := DecodeHex("abc")
	require.Error(t, err)
}

func TestDecodeHexAcceptsUpperCase(t *testing.T) {
	got, err := DecodeHex("AB01")
	require.NoError(t, err)
	require.Equal(t, []byte{0xab, 0x01}, got)
}

func TestBase64RoundTrip(t *testing.T) {
	b := []byte("some binary-ish data \x00\x01\xff")
	s := EncodeBase64(b)
	got, err := DecodeBase64(s)
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestBase64URLRoundTrip(t *testing.T) {
	b := []byte{0xfb, 0xff, 0x00, 0x10, 0x20}
	s := EncodeBase64URL(b)
	require.NotContains(t, s, "+")
	require.NotContains(t, s, "/")
	require.NotContains(t, s, "=")

	got, err := DecodeBase64URL(s)
	require.NoError(t, err)
	require.Equal(t, b, got)
}
