package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moringa-school/karibu/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "karibu",
	Short: "Karibu is a graph-driven terminal chatbot",
	Long: `Karibu runs interactive conversations defined as a directed graph of
dialogue nodes, with per-session response styles, a live typing animation,
and append-only session transcripts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// initConfig wires viper: built-in defaults, an optional config file in the
// user's config directory, and KARIBU_* environment overrides. Flags bound
// per command take precedence over all of these.
func initConfig() {
	config.SetDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(config.ConfigDir())

	viper.SetEnvPrefix("KARIBU")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config file: %v\n", err)
		}
	}
}

// graphPath resolves the graph file for commands taking it as an optional
// positional argument.
func graphPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return viper.GetString("graph.path")
}
