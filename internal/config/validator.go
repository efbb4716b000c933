package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/moringa-school/karibu/pkg/dialog"
)

// ValidationError is a single invalid config value.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid value found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the accepted logging.level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config and returns all problems found, not just the
// first.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if c.Graph.Path == "" {
		errors = append(errors, ValidationError{
			Field:   "graph.path",
			Value:   c.Graph.Path,
			Message: "graph file path must not be empty",
		})
	}

	if c.Chat.Style != "" && !dialog.ValidStyle(c.Chat.Style) {
		errors = append(errors, ValidationError{
			Field:   "chat.style",
			Value:   c.Chat.Style,
			Message: fmt.Sprintf("must be empty or one of: %s", strings.Join(dialog.Styles, ", ")),
		})
	}

	if c.Chat.TypingDelayMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "chat.typing_delay_ms",
			Value:   c.Chat.TypingDelayMs,
			Message: "must not be negative",
		})
	}

	if c.Chat.WordPauseMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "chat.word_pause_ms",
			Value:   c.Chat.WordPauseMs,
			Message: "must not be negative",
		})
	}

	if !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
