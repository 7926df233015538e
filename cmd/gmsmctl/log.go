package main

import (
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

// initLogger builds the CLI's structured logger at the requested level.
// It never touches the core sm2/sm3/sm4 packages, which stay logging-free.
func initLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return nil
}
