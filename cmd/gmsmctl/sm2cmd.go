package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vastbase/gmsm/codec"
	"github.com/vastbase/gmsm/sm2"
)

var sm2Cmd = &cobra.Command{
	Use:   "sm2",
	Short: "SM2 keypair generation, signing, verification, and encryption",
}

var sm2GenkeyCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate a new SM2 keypair and print it hex-encoded",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Debug().Str("cmd", "sm2 genkey").Msg("start")
		priv, pub, err := sm2.GenerateKey()
		if err != nil {
			log.Error().Err(err).Msg("generating keypair")
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "private: %s\n", codec.EncodeHex(priv.Bytes()))
		fmt.Fprintf(out, "public:  %s\n", codec.EncodeHex(pub.Bytes()))
		log.Debug().Str("cmd", "sm2 genkey").Msg("done")
		return nil
	},
}

var (
	sm2SignKeyHex string
	sm2SignID     string
)

var sm2SignCmd = &cobra.Command{
	Use:   "sign <file>",
	Short: "Sign a file under a hex-encoded private key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Debug().Str("cmd", "sm2 sign").Str("file", args[0]).Msg("start")
		keyBytes, err := codec.DecodeHex(sm2SignKeyHex)
		if err != nil {
			return fmt.Errorf("decoding --key: %w", err)
		}
		priv, err := sm2.PrivateKeyFromBytes(keyBytes)
		if err != nil {
			return err
		}
		msg, err := os.ReadFile(args[0])
		if err != nil {
			log.Error().Err(err).Str("file", args[0]).Msg("reading message file")
			return err
		}
		sig, err := sm2.Sign(priv, msg, idOrDefault(sm2SignID))
		if err != nil {
			log.Error().Err(err).Msg("signing")
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeHex(sig.Bytes()))
		log.Debug().Str("cmd", "sm2 sign").Msg("done")
		return nil
	},
}

var (
	sm2VerifyPubHex string
	sm2VerifySigHex string
	sm2VerifyID     string
)

var sm2VerifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Verify a file's signature under a hex-encoded public key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Debug().Str("cmd", "sm2 verify").Str("file", args[0]).Msg("start")
		pubBytes, err := codec.DecodeHex(sm2VerifyPubHex)
		if err != nil {
			return fmt.Errorf("decoding --pub: %w", err)
		}
		pub, err := sm2.PublicKeyFromBytes(pubBytes)
		if err != nil {
			return err
		}
		sigBytes, err := codec.DecodeHex(sm2VerifySigHex)
		if err != nil {
			return fmt.Errorf("decoding --sig: %w", err)
		}
		sig, err := sm2.SignatureFromBytes(sigBytes)
		if err != nil {
			return err
		}
		msg, err := os.ReadFile(args[0])
		if err != nil {
			log.Error().Err(err).Str("file", args[0]).Msg("reading message file")
			return err
		}
		if err := sm2.Verify(pub, msg, idOrDefault(sm2VerifyID), sig); err != nil {
			log.Error().Err(err).Msg("signature rejected")
			return fmt.Errorf("signature rejected: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "OK")
		log.Debug().Str("cmd", "sm2 verify").Msg("done")
		return nil
	},
}

var sm2EncryptPubHex string

var sm2EncryptCmd = &cobra.Command{
	Use:   "encrypt <file>",
	Short: "Encrypt a file under a hex-encoded public key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Debug().Str("cmd", "sm2 encrypt").Str("file", args[0]).Msg("start")
		pubBytes, err := codec.DecodeHex(sm2EncryptPubHex)
		if err != nil {
			return fmt.Errorf("decoding --pub: %w", err)
		}
		pub, err := sm2.PublicKeyFromBytes(pubBytes)
		if err != nil {
			return err
		}
		pt, err := os.ReadFile(args[0])
		if err != nil {
			log.Error().Err(err).Str("file", args[0]).Msg("reading plaintext file")
			return err
		}
		ct, err := sm2.Encrypt(pub, pt)
		if err != nil {
			log.Error().Err(err).Msg("encrypting")
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeHex(ct))
		log.Debug().Str("cmd", "sm2 encrypt").Msg("done")
		return nil
	},
}

var sm2DecryptKeyHex string

var sm2DecryptCmd = &cobra.Command{
	Use:   "decrypt <file>",
	Short: "Decrypt a hex-encoded ciphertext file under a hex-encoded private key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Debug().Str("cmd", "sm2 decrypt").Str("file", args[0]).Msg("start")
		keyBytes, err := codec.DecodeHex(sm2DecryptKeyHex)
		if err != nil {
			return fmt.Errorf("decoding --key: %w", err)
		}
		priv, err := sm2.PrivateKeyFromBytes(keyBytes)
		if err != nil {
			return err
		}
		ctHex, err := os.ReadFile(args[0])
		if err != nil {
			log.Error().Err(err).Str("file", args[0]).Msg("reading ciphertext file")
			return err
		}
		ct, err := codec.DecodeHex(trimNewline(string(ctHex)))
		if err != nil {
			return fmt.Errorf("decoding ciphertext file: %w", err)
		}
		pt, err := sm2.Decrypt(priv, ct)
		if err != nil {
			log.Error().Err(err).Msg("decrypting")
			return err
		}
		_, err = cmd.OutOrStdout().Write(pt)
		log.Debug().Str("cmd", "sm2 decrypt").Msg("done")
		return err
	},
}

func idOrDefault(id string) []byte {
	if id == "" {
		return sm2.DefaultID
	}
	return []byte(id)
}

func init() {
	sm2SignCmd.Flags().StringVar(&sm2SignKeyHex, "key", "", "hex-encoded private key (required)")
	sm2SignCmd.Flags().StringVar(&sm2SignID, "id", "", "signer identity (default: GM/T 0003 default ID)")
	_ = sm2SignCmd.MarkFlagRequired("key")

	sm2VerifyCmd.Flags().StringVar(&sm2VerifyPubHex, "pub", "", "hex-encoded public key (required)")
	sm2VerifyCmd.Flags().StringVar(&sm2VerifySigHex, "sig", "", "hex-encoded signature (required)")
	sm2VerifyCmd.Flags().StringVar(&sm2VerifyID, "id", "", "signer identity (default: GM/T 0003 default ID)")
	_ = sm2VerifyCmd.MarkFlagRequired("pub")
	_ = sm2VerifyCmd.MarkFlagRequired("sig")

	sm2EncryptCmd.Flags().StringVar(&sm2EncryptPubHex, "pub", "", "hex-encoded public key (required)")
	_ = sm2EncryptCmd.MarkFlagRequired("pub")

	sm2DecryptCmd.Flags().StringVar(&sm2DecryptKeyHex, "key", "", "hex-encoded private key (required)")
	_ = sm2DecryptCmd.MarkFlagRequired("key")

	sm2Cmd.AddCommand(sm2GenkeyCmd, sm2SignCmd, sm2VerifyCmd, sm2EncryptCmd, sm2DecryptCmd)
}
