package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vastbase/gmsm/codec"
	"github.com/vastbase/gmsm/sm3"
)

var sm3sumCmd = &cobra.Command{
	Use:   "sm3sum [file]",
	Short: "Compute the SM3 digest of a file, or stdin if no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Debug().Str("cmd", "sm3sum").Msg("start")

		var in io.Reader = os.Stdin
		name := "-"
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				log.Error().Err(err).Str("file", args[0]).Msg("opening input file")
				return err
			}
			defer f.Close()
			in = f
			name = args[0]
		}
		log.Debug().Str("source", name).Msg("reading input")

		h := sm3.New()
		if _, err := io.Copy(h, in); err != nil {
			log.Error().Err(err).Str("source", name).Msg("reading input")
			return fmt.Errorf("reading %s: %w", name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", codec.EncodeHex(h.Sum(nil)), name)
		log.Debug().Str("cmd", "sm3sum").Msg("done")
		return nil
	},
}
