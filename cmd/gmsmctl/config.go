package main

import (
	"os"

	"github.com/spf13/viper"
)

// initConfig loads an optional $HOME/.gmsmctl.yaml config file and binds
// GMSMCTL_-prefixed environment variables over it; both are overridden by
// explicit flags via viper's normal precedence.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gmsmctl")
	}

	viper.SetEnvPrefix("GMSMCTL")
	viper.AutomaticEnv()

	// A missing config file is not an error; flags and env vars suffice.
	_ = viper.ReadInConfig()
}
