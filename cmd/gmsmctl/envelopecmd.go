package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vastbase/gmsm/codec"
	"github.com/vastbase/gmsm/envelope"
)

var envelopePassword string

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Password-based SM4 envelope (PBKDF2-HMAC-SM3 key derivation)",
}

var envelopeSealCmd = &cobra.Command{
	Use:   "seal <file>",
	Short: "Seal a file into a password-derived SM4-CBC envelope",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Debug().Str("cmd", "envelope seal").Str("file", args[0]).Msg("start")
		pt, err := os.ReadFile(args[0])
		if err != nil {
			log.Error().Err(err).Str("file", args[0]).Msg("reading plaintext file")
			return err
		}
		sealed, err := envelope.Seal([]byte(envelopePassword), pt)
		if err != nil {
			log.Error().Err(err).Msg("sealing")
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeHex(sealed))
		log.Debug().Str("cmd", "envelope seal").Msg("done")
		return nil
	},
}

var envelopeOpenCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Open a hex-encoded envelope produced by `seal`",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Debug().Str("cmd", "envelope open").Str("file", args[0]).Msg("start")
		blob, err := readHexFile(args[0])
		if err != nil {
			log.Error().Err(err).Str("file", args[0]).Msg("reading envelope file")
			return err
		}
		pt, err := envelope.Open([]byte(envelopePassword), blob)
		if err != nil {
			log.Error().Err(err).Msg("opening")
			return err
		}
		_, err = cmd.OutOrStdout().Write(pt)
		log.Debug().Str("cmd", "envelope open").Msg("done")
		return err
	},
}

func init() {
	envelopeCmd.PersistentFlags().StringVar(&envelopePassword, "password", "", "envelope password (required)")
	_ = envelopeCmd.MarkPersistentFlagRequired("password")
	envelopeCmd.AddCommand(envelopeSealCmd, envelopeOpenCmd)
}
