package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/moringa-school/karibu/pkg/dialog"
)

// RunOptions contains all the configuration for the chat command.
type RunOptions struct {
	GraphPath     string
	Style         string
	Plain         bool
	Watch         bool
	Debug         bool
	Transcript    bool
	TranscriptDir string
	TypingDelay   time.Duration
	WordPause     time.Duration
}

// Execute handles the chat command logic, dispatching to Session or Watch
// mode.
func Execute(opts RunOptions) error {
	if opts.Style != "" && !dialog.ValidStyle(opts.Style) {
		return fmt.Errorf("unknown style %q (known styles: %s)",
			opts.Style, strings.Join(dialog.Styles, ", "))
	}

	if opts.Watch {
		return RunWatch(opts)
	}
	return RunSession(opts)
}
