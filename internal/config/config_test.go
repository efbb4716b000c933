package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graph.Path != "conversation_flow.json" {
		t.Errorf("Graph.Path = %q, want %q", cfg.Graph.Path, "conversation_flow.json")
	}
	if !cfg.Transcript.Enabled {
		t.Error("Transcript.Enabled should be true by default")
	}
	if cfg.Transcript.Dir != "." {
		t.Errorf("Transcript.Dir = %q, want %q", cfg.Transcript.Dir, ".")
	}
	if cfg.Chat.Style != "" {
		t.Errorf("Chat.Style = %q, want empty (random per session)", cfg.Chat.Style)
	}
	if cfg.Chat.Plain {
		t.Error("Chat.Plain should be false by default")
	}
	if cfg.Chat.TypingDelayMs != 5 {
		t.Errorf("Chat.TypingDelayMs = %d, want 5", cfg.Chat.TypingDelayMs)
	}
	if cfg.Chat.WordPauseMs != 45 {
		t.Errorf("Chat.WordPauseMs = %d, want 45", cfg.Chat.WordPauseMs)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("default config should validate, got: %v", ValidationErrors(errs))
	}
}

func TestChatConfig_Durations(t *testing.T) {
	chat := ChatConfig{TypingDelayMs: 5, WordPauseMs: 45}

	if got := chat.TypingDelay(); got != 5*time.Millisecond {
		t.Errorf("TypingDelay() = %v, want 5ms", got)
	}
	if got := chat.WordPause(); got != 45*time.Millisecond {
		t.Errorf("WordPause() = %v, want 45ms", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"Empty Graph Path", func(c *Config) { c.Graph.Path = "" }, "graph.path"},
		{"Unknown Style", func(c *Config) { c.Chat.Style = "sarcastic" }, "chat.style"},
		{"Negative Typing Delay", func(c *Config) { c.Chat.TypingDelayMs = -1 }, "chat.typing_delay_ms"},
		{"Negative Word Pause", func(c *Config) { c.Chat.WordPauseMs = -1 }, "chat.word_pause_ms"},
		{"Bad Log Level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("expected exactly one validation error, got %d: %v", len(errs), ValidationErrors(errs))
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}

	t.Run("Valid Pinned Style", func(t *testing.T) {
		cfg := Default()
		cfg.Chat.Style = "formal"
		if errs := cfg.Validate(); len(errs) > 0 {
			t.Errorf("unexpected errors: %v", ValidationErrors(errs))
		}
	})

	t.Run("Collects All Errors", func(t *testing.T) {
		cfg := Default()
		cfg.Graph.Path = ""
		cfg.Logging.Level = "loud"

		errs := cfg.Validate()
		if len(errs) != 2 {
			t.Fatalf("expected two validation errors, got %d", len(errs))
		}
		msg := ValidationErrors(errs).Error()
		if !strings.Contains(msg, "2 validation errors") {
			t.Errorf("combined message should count errors, got %q", msg)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		SetDefaults()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Graph.Path != "conversation_flow.json" {
			t.Errorf("Graph.Path = %q", cfg.Graph.Path)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		viper.Set("graph.path", "flows/welcome.yaml")
		viper.Set("chat.style", "playful")
		viper.Set("transcript.dir", "logs")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Graph.Path != "flows/welcome.yaml" {
			t.Errorf("Graph.Path = %q", cfg.Graph.Path)
		}
		if cfg.Chat.Style != "playful" {
			t.Errorf("Chat.Style = %q", cfg.Chat.Style)
		}
		if cfg.Transcript.Dir != "logs" {
			t.Errorf("Transcript.Dir = %q", cfg.Transcript.Dir)
		}
	})

	t.Run("Invalid Values Rejected", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		viper.Set("chat.style", "sarcastic")

		if _, err := Load(); err == nil {
			t.Fatal("expected a validation error")
		}
	})
}

func TestConfigDir(t *testing.T) {
	t.Run("XDG Config Home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		if got := ConfigDir(); got != filepath.Join("/tmp/xdg", "karibu") {
			t.Errorf("ConfigDir() = %q", got)
		}
	})

	t.Run("Home Fallback", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/home/tester")
		want := filepath.Join("/home/tester", ".config", "karibu")
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}
