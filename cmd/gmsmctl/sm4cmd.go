package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vastbase/gmsm/codec"
	"github.com/vastbase/gmsm/internal/csrand"
	"github.com/vastbase/gmsm/sm4"
)

var sm4Cmd = &cobra.Command{
	Use:   "sm4",
	Short: "SM4 block-cipher encryption/decryption in ECB, CBC, or GCM mode",
}

func readHexFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return codec.DecodeHex(trimNewline(string(b)))
}

func writeHexLine(cmd *cobra.Command, b []byte) {
	fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeHex(b))
}

func newSM4ModeCmd(mode string) *cobra.Command {
	var keyHex, ivHex, aadHex string

	modeCmd := &cobra.Command{
		Use:   mode,
		Short: fmt.Sprintf("SM4-%s operations", mode),
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt <file>",
		Short: fmt.Sprintf("Encrypt a file with SM4-%s", mode),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("cmd", "sm4 "+mode+" encrypt").Str("file", args[0]).Msg("start")
			key, err := codec.DecodeHex(keyHex)
			if err != nil {
				return fmt.Errorf("decoding --key: %w", err)
			}
			pt, err := os.ReadFile(args[0])
			if err != nil {
				log.Error().Err(err).Str("file", args[0]).Msg("reading plaintext file")
				return err
			}
			switch mode {
			case "ecb":
				ct, err := sm4.ECBEncrypt(key, pt)
				if err != nil {
					log.Error().Err(err).Msg("encrypting")
					return err
				}
				writeHexLine(cmd, ct)
			case "cbc":
				iv, err := resolveIV(ivHex, sm4.BlockSize)
				if err != nil {
					return err
				}
				ct, err := sm4.CBCEncrypt(key, iv, pt)
				if err != nil {
					log.Error().Err(err).Msg("encrypting")
					return err
				}
				writeHexLine(cmd, append(iv, ct...))
			case "gcm":
				iv, err := resolveIV(ivHex, 12)
				if err != nil {
					return err
				}
				aad, err := optionalHex(aadHex)
				if err != nil {
					return err
				}
				ct, tag, err := sm4.GCMEncrypt(key, iv, aad, pt)
				if err != nil {
					log.Error().Err(err).Msg("encrypting")
					return err
				}
				out := append(append(append([]byte{}, iv...), ct...), tag...)
				writeHexLine(cmd, out)
			}
			log.Debug().Str("cmd", "sm4 "+mode+" encrypt").Msg("done")
			return nil
		},
	}

	decryptCmd := &cobra.Command{
		Use:   "decrypt <file>",
		Short: fmt.Sprintf("Decrypt a hex-encoded SM4-%s ciphertext file", mode),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("cmd", "sm4 "+mode+" decrypt").Str("file", args[0]).Msg("start")
			key, err := codec.DecodeHex(keyHex)
			if err != nil {
				return fmt.Errorf("decoding --key: %w", err)
			}
			blob, err := readHexFile(args[0])
			if err != nil {
				log.Error().Err(err).Str("file", args[0]).Msg("reading ciphertext file")
				return err
			}
			switch mode {
			case "ecb":
				pt, err := sm4.ECBDecrypt(key, blob)
				if err != nil {
					log.Error().Err(err).Msg("decrypting")
					return err
				}
				_, err = cmd.OutOrStdout().Write(pt)
				log.Debug().Str("cmd", "sm4 ecb decrypt").Msg("done")
				return err
			case "cbc":
				if len(blob) < sm4.BlockSize {
					return fmt.Errorf("ciphertext shorter than IV")
				}
				iv, ct := blob[:sm4.BlockSize], blob[sm4.BlockSize:]
				pt, err := sm4.CBCDecrypt(key, iv, ct)
				if err != nil {
					log.Error().Err(err).Msg("decrypting")
					return err
				}
				_, err = cmd.OutOrStdout().Write(pt)
				log.Debug().Str("cmd", "sm4 cbc decrypt").Msg("done")
				return err
			case "gcm":
				const ivSize = 12
				if len(blob) < ivSize+sm4.TagSize {
					return fmt.Errorf("ciphertext shorter than IV+tag")
				}
				iv := blob[:ivSize]
				rest := blob[ivSize:]
				ct := rest[:len(rest)-sm4.TagSize]
				tag := rest[len(rest)-sm4.TagSize:]
				aad, err := optionalHex(aadHex)
				if err != nil {
					return err
				}
				pt, err := sm4.GCMDecrypt(key, iv, aad, ct, tag)
				if err != nil {
					log.Error().Err(err).Msg("decrypting")
					return err
				}
				_, err = cmd.OutOrStdout().Write(pt)
				log.Debug().Str("cmd", "sm4 gcm decrypt").Msg("done")
				return err
			}
			return nil
		},
	}

	modeCmd.PersistentFlags().StringVar(&keyHex, "key", "", "hex-encoded 16-byte SM4 key (required)")
	_ = modeCmd.MarkPersistentFlagRequired("key")
	if mode != "ecb" {
		modeCmd.PersistentFlags().StringVar(&ivHex, "iv", "", "hex-encoded IV/nonce (random if omitted, encrypt only)")
	}
	if mode == "gcm" {
		modeCmd.PersistentFlags().StringVar(&aadHex, "aad", "", "hex-encoded additional authenticated data")
	}
	modeCmd.AddCommand(encryptCmd, decryptCmd)
	return modeCmd
}

// resolveIV decodes ivHex if set, otherwise draws a fresh random IV of the
// requested size — convenient for `encrypt`, where a missing --iv should
// not be an error.
func resolveIV(ivHex string, size int) ([]byte, error) {
	if ivHex == "" {
		iv := make([]byte, size)
		if err := csrand.Bytes(iv); err != nil {
			return nil, err
		}
		return iv, nil
	}
	iv, err := codec.DecodeHex(ivHex)
	if err != nil {
		return nil, fmt.Errorf("decoding --iv: %w", err)
	}
	if len(iv) != size {
		return nil, fmt.Errorf("--iv must be %d bytes, got %d", size, len(iv))
	}
	return iv, nil
}

func optionalHex(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return codec.DecodeHex(s)
}

func init() {
	sm4Cmd.AddCommand(newSM4ModeCmd("ecb"), newSM4ModeCmd("cbc"), newSM4ModeCmd("gcm"))
}
