package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execCLI runs rootCmd with args and returns its stdout, forcing cobra's
// usual os.Exit-on-error path off so failures surface as normal errors.
func execCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestSM3SumCommand(t *testing.T) {
	path := writeTempFile(t, []byte("abc"))
	out, err := execCLI(t, "sm3sum", path)
	require.NoError(t, err)
	require.Contains(t, out, "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0")
}

func TestSM2SignVerifyCommand(t *testing.T) {
	genOut, err := execCLI(t, "sm2", "genkey")
	require.NoError(t, err)

	var privHex, pubHex string
	for _, line := range strings.Split(genOut, "\n") {
		switch {
		case strings.HasPrefix(line, "private: "):
			privHex = strings.TrimPrefix(line, "private: ")
		case strings.HasPrefix(line, "public:  "):
			pubHex = strings.TrimPrefix(line, "public:  ")
		}
	}
	require.NotEmpty(t, privHex)
	require.NotEmpty(t, pubHex)

	msgPath := writeTempFile(t, []byte("message to sign from the CLI"))
	signOut, err := execCLI(t, "sm2", "sign", "--key", privHex, msgPath)
	require.NoError(t, err)
	sigHex := strings.TrimSpace(signOut)

	verifyOut, err := execCLI(t, "sm2", "verify", "--pub", pubHex, "--sig", sigHex, msgPath)
	require.NoError(t, err)
	require.Contains(t, verifyOut, "OK")
}

func TestSM2EncryptDecryptCommand(t *testing.T) {
	genOut, err := execCLI(t, "sm2", "genkey")
	require.NoError(t, err)

	var privHex, pubHex string
	for _, line := range strings.Split(genOut, "\n") {
		switch {
		case strings.HasPrefix(line, "private: "):
			privHex = strings.TrimPrefix(line, "private: ")
		case strings.HasPrefix(line, "public:  "):
			pubHex = strings.TrimPrefix(line, "public:  ")
		}
	}

	msgPath := writeTempFile(t, []byte("a secret to encrypt through the CLI"))
	encOut, err := execCLI(t, "sm2", "encrypt", "--pub", pubHex, msgPath)
	require.NoError(t, err)
	ctPath := writeTempFile(t, []byte(strings.TrimSpace(encOut)))

	decOut, err := execCLI(t, "sm2", "decrypt", "--key", privHex, ctPath)
	require.NoError(t, err)
	require.Equal(t, "a secret to encrypt through the CLI", decOut)
}

func TestSM4CBCEncryptDecryptCommand(t *testing.T) {
	keyHex := "0123456789abcdeffedcba9876543210"
	msgPath := writeTempFile(t, []byte("a CBC message long enough to span blocks of SM4 content"))

	encOut, err := execCLI(t, "sm4", "cbc", "encrypt", "--key", keyHex, msgPath)
	require.NoError(t, err)
	ctPath := writeTempFile(t, []byte(strings.TrimSpace(encOut)))

	decOut, err := execCLI(t, "sm4", "cbc", "decrypt", "--key", keyHex, ctPath)
	require.NoError(t, err)
	require.Equal(t, "a CBC message long enough to span blocks of SM4 content", decOut)
}

func TestSM4GCMEncryptDecryptCommand(t *testing.T) {
	keyHex := "0123456789abcdeffedcba9876543210"
	msgPath := writeTempFile(t, []byte("authenticated data sealed via the CLI's SM4-GCM path"))

	encOut, err := execCLI(t, "sm4", "gcm", "encrypt", "--key", keyHex, "--aad", "61616264", msgPath)
	require.NoError(t, err)
	ctPath := writeTempFile(t, []byte(strings.TrimSpace(encOut)))

	decOut, err := execCLI(t, "sm4", "gcm", "decrypt", "--key", keyHex, "--aad", "61616264", ctPath)
	require.NoError(t, err)
	require.Equal(t, "authenticated data sealed via the CLI's SM4-GCM path", decOut)
}

func TestEnvelopeSealOpenCommand(t *testing.T) {
	msgPath := writeTempFile(t, []byte("a message protected by a password-derived envelope"))

	sealOut, err := execCLI(t, "envelope", "seal", "--password", "hunter2", msgPath)
	require.NoError(t, err)
	sealedPath := writeTempFile(t, []byte(strings.TrimSpace(sealOut)))

	openOut, err := execCLI(t, "envelope", "open", "--password", "hunter2", sealedPath)
	require.NoError(t, err)
	require.Equal(t, "a message protected by a password-derived envelope", openOut)
}
