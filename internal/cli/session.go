package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moringa-school/karibu"
	"github.com/moringa-school/karibu/internal/presentation/tui"
	"github.com/moringa-school/karibu/internal/runtime"
	"github.com/moringa-school/karibu/pkg/transcript"
)

// RunSession executes a single conversation. The full-screen UI is the
// default on a terminal; plain mode (explicit or forced by piped output)
// runs a line-based loop instead.
func RunSession(opts RunOptions) error {
	logger := createLogger(opts.Debug)
	plain := opts.Plain || !stdoutIsTTY()

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	tl, closeTranscript := openTranscript(opts, logger)
	defer closeTranscript()

	var rec runtime.Recorder
	if tl != nil {
		rec = tl
	}

	eng, err := createEngine(opts, logger, rec)
	if err != nil {
		return err
	}

	if plain {
		tui.PrintBanner(karibu.Version)
		pump := newLinePump(os.Stdin)
		err = runPlainSession(sigCtx, eng, pump, os.Stdout)
	} else {
		model := tui.NewModel(eng, opts.TypingDelay, opts.WordPause)
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(sigCtx))
		_, err = p.Run()
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			// A signal is a normal exit, not a failure. The program has
			// already restored the terminal by the time Run returns.
			err = nil
		}
	}

	if tl != nil {
		printSystemMessage("Transcript saved to '%s'.", tl.Path())
	}
	return err
}

// runPlainSession drives the conversation over line-based IO: print the
// styled reply, prompt, read, step. Quit keywords and terminal nodes are the
// engine's business; this loop only ends on Done, cancellation, or EOF.
func runPlainSession(ctx context.Context, eng *runtime.Engine, pump *linePump, w io.Writer) error {
	render := tui.NewRenderer()
	printReply := func(text string) {
		out := text
		if rendered, err := render(text); err == nil {
			out = rendered
		}
		fmt.Fprintln(w, strings.TrimSpace(out))
	}

	st, res := eng.Start()
	for {
		if res.Reply != "" {
			printReply(res.Reply)
		}
		if res.Done {
			return nil
		}

		fmt.Fprint(w, "> ")
		line, err := pump.ReadLine(ctx)
		if err != nil {
			if isInterrupted(err) {
				fmt.Fprintln(w)
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		res = eng.Step(st, line)
	}
}

// openTranscript opens the session transcript, or explains why there will
// not be one. A transcript failure never blocks the conversation.
func openTranscript(opts RunOptions, logger *slog.Logger) (*transcript.Logger, func()) {
	if !opts.Transcript {
		return nil, func() {}
	}

	tl, err := transcript.New(opts.TranscriptDir, time.Now(), transcript.WithLogger(logger))
	if err != nil {
		logger.Warn("transcript disabled for this session", "dir", opts.TranscriptDir, "err", err)
		return nil, func() {}
	}

	return tl, func() {
		if err := tl.Close(); err != nil {
			logger.Warn("failed to close transcript", "path", tl.Path(), "err", err)
		}
	}
}
