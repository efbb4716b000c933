package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/moringa-school/karibu"
	"github.com/moringa-school/karibu/internal/adapters/file"
	"github.com/moringa-school/karibu/internal/presentation/tui"
	"github.com/moringa-school/karibu/internal/runtime"
)

// RunWatch executes karibu in development mode: the graph file is watched
// and the session restarts with the reloaded graph on every change. Load
// errors keep the watcher alive so the author can edit-fix without leaving
// the loop. Watch mode always uses the plain session so system messages can
// interleave with the conversation.
func RunWatch(opts RunOptions) error {
	logger := createLogger(opts.Debug)
	tui.PrintBanner(karibu.Version)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	watchCh, err := file.Watch(sigCtx, opts.GraphPath)
	if err != nil {
		return fmt.Errorf("error watching graph file: %w", err)
	}

	logger.Info("watcher started", "path", opts.GraphPath)
	printSystemMessage("Watching '%s' for changes.", opts.GraphPath)

	// One pump for the whole watch run; a second stdin reader per restart
	// would become a ghost reader stealing lines.
	pump := newLinePump(os.Stdin)

	for {
		if !runWatchIteration(sigCtx, opts, logger, pump, watchCh) {
			return nil
		}
		printSystemMessage("Restarting with the reloaded graph.")
	}
}

// runWatchIteration runs one session against the current graph on disk.
// It returns true when the watcher should restart with a fresh load.
func runWatchIteration(parent *SignalContext, opts RunOptions, logger *slog.Logger, pump *linePump, watchCh <-chan string) bool {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	waitForChange := func() bool {
		select {
		case <-parent.Done():
			return false
		case _, ok := <-watchCh:
			if ok {
				printSystemMessage("Change detected in '%s'.", opts.GraphPath)
			}
			return ok
		}
	}

	tl, closeTranscript := openTranscript(opts, logger)
	defer closeTranscript()

	var rec runtime.Recorder
	if tl != nil {
		rec = tl
	}

	eng, err := createEngine(opts, logger, rec)
	if err != nil {
		logger.Error("graph load failed", "path", opts.GraphPath, "err", err)
		printSystemMessage("Graph load failed: %v", err)
		printSystemMessage("Waiting for changes...")
		return waitForChange()
	}

	done := make(chan error, 1)
	go func() {
		done <- runPlainSession(ctx, eng, pump, os.Stdout)
	}()

	select {
	case <-parent.Done():
		cancel()
		<-done
		fmt.Println()
		printSystemMessage("Interrupted.")
		return false

	case _, ok := <-watchCh:
		cancel()
		<-done
		if !ok {
			return false
		}
		fmt.Println()
		printSystemMessage("Change detected in '%s'.", opts.GraphPath)
		return true

	case err := <-done:
		if err != nil && !isInterrupted(err) {
			logger.Error("session error", "err", err)
		}
		printSystemMessage("Conversation finished. Waiting for changes...")
		return waitForChange()
	}
}
