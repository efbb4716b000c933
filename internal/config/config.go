// Package config holds the runtime configuration, loaded from a YAML file
// and KARIBU_* environment variables via viper.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete karibu configuration.
type Config struct {
	Graph      GraphConfig      `mapstructure:"graph"`
	Transcript TranscriptConfig `mapstructure:"transcript"`
	Chat       ChatConfig       `mapstructure:"chat"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// GraphConfig locates the conversation flow definition.
type GraphConfig struct {
	// Path is the graph file to load; .json, .yaml and .yml are accepted.
	Path string `mapstructure:"path"`
}

// TranscriptConfig controls conversation logging.
type TranscriptConfig struct {
	// Enabled turns transcript files on or off.
	Enabled bool `mapstructure:"enabled"`
	// Dir is where transcript files are written.
	Dir string `mapstructure:"dir"`
}

// ChatConfig controls the interactive session.
type ChatConfig struct {
	// Style pins the response style for every session. Empty rolls a
	// random style per session.
	Style string `mapstructure:"style"`
	// Plain skips the full-screen UI and runs a line-based loop.
	Plain bool `mapstructure:"plain"`
	// TypingDelayMs is the pause between typed-out characters.
	TypingDelayMs int `mapstructure:"typing_delay_ms"`
	// WordPauseMs is the longer pause after a space.
	WordPauseMs int `mapstructure:"word_pause_ms"`
}

// TypingDelay returns the per-character delay as a time.Duration.
func (c *ChatConfig) TypingDelay() time.Duration {
	return time.Duration(c.TypingDelayMs) * time.Millisecond
}

// WordPause returns the word-boundary delay as a time.Duration.
func (c *ChatConfig) WordPause() time.Duration {
	return time.Duration(c.WordPauseMs) * time.Millisecond
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Graph: GraphConfig{
			Path: "conversation_flow.json",
		},
		Transcript: TranscriptConfig{
			Enabled: true,
			Dir:     ".",
		},
		Chat: ChatConfig{
			Style:         "",
			Plain:         false,
			TypingDelayMs: 5,
			WordPauseMs:   45,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers the default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("graph.path", defaults.Graph.Path)
	viper.SetDefault("transcript.enabled", defaults.Transcript.Enabled)
	viper.SetDefault("transcript.dir", defaults.Transcript.Dir)
	viper.SetDefault("chat.style", defaults.Chat.Style)
	viper.SetDefault("chat.plain", defaults.Chat.Plain)
	viper.SetDefault("chat.typing_delay_ms", defaults.Chat.TypingDelayMs)
	viper.SetDefault("chat.word_pause_ms", defaults.Chat.WordPauseMs)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the user's karibu config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "karibu")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".karibu"
	}
	return filepath.Join(home, ".config", "karibu")
}
