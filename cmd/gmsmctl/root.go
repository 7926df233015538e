package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gmsmctl",
	Short: "Command-line front end for the SM2/SM3/SM4 cryptographic engine",
	Long: `gmsmctl exposes the gmsm engine's digesting, signing, verifying,
and encrypting operations from the shell, plus a password-based envelope
format built on top of SM4.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger(viper.GetString("log-level"))
	},
}

// Execute runs the root command; called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.gmsmctl.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(sm3sumCmd)
	rootCmd.AddCommand(sm2Cmd)
	rootCmd.AddCommand(sm4Cmd)
	rootCmd.AddCommand(envelopeCmd)
}
