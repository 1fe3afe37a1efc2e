// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the toggl-to-timekeep CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the toggl-to-timekeep CLI.
var rootCmd = &cobra.Command{
	Use:   "toggl-to-timekeep",
	Short: "Convert Toggl Track reports to Obsidian Timekeep entries",
	Long: `toggl-to-timekeep reads Toggl Track detailed-report exports (PDF or CSV)
and produces the JSON entry list consumed by the Obsidian Timekeep plugin,
together with a readable text summary of the tracked time.

Each input gets its outputs written next to it: <name>.json with the entry
list, <name>_readable.txt with the summary, and <name>.yaml recording the
conversion run.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./toggl-to-timekeep.yaml or ~/.config/toggl-to-timekeep/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("toggl-to-timekeep")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "toggl-to-timekeep"))
		}
	}

	viper.SetEnvPrefix("TOGGL_TO_TIMEKEEP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
