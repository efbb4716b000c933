package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"golang.org/x/term"

	"github.com/moringa-school/karibu/internal/logging"
)

// SignalContext wraps a context and captures the signal that cancelled it.
// It acts as a drop-in replacement for signal.NotifyContext but allows
// retrieving the signal afterwards.
type SignalContext struct {
	context.Context
	cancel context.CancelFunc

	mu  sync.Mutex
	sig os.Signal
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, cancel: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			sc.mu.Lock()
			sc.sig = sig
			sc.mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
	}()

	return sc
}

// Cancel releases the context and its signal watcher.
func (sc *SignalContext) Cancel() {
	sc.cancel()
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sig
}

// createLogger configures the application logger. Warnings always surface;
// debug mode opens the floodgates.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

// stdoutIsTTY reports whether stdout is an interactive terminal. Piped
// output falls back to the plain session automatically.
func stdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

type lineResult struct {
	text string
	err  error
}

// linePump reads stdin lines on a dedicated goroutine so the session loop
// can select between input and cancellation. One pump must be shared across
// watch-mode restarts; a second reader on the same stream would steal lines.
type linePump struct {
	ch chan lineResult
}

func newLinePump(r io.Reader) *linePump {
	p := &linePump{ch: make(chan lineResult)}
	go func() {
		reader := bufio.NewReader(r)
		for {
			text, err := reader.ReadString('\n')
			if text != "" {
				p.ch <- lineResult{text: text}
			}
			if err != nil {
				p.ch <- lineResult{err: err}
				close(p.ch)
				return
			}
		}
	}()
	return p
}

// ReadLine returns the next trimmed input line, ctx.Err() on cancellation,
// or io.EOF when the stream ends.
func (p *linePump) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.ch:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.text), nil
	}
}
