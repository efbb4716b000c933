package cli

import (
	"fmt"
	"log/slog"

	"github.com/moringa-school/karibu/internal/adapters/file"
	"github.com/moringa-school/karibu/internal/runtime"
)

// createEngine loads the graph and assembles a dialogue engine with the
// standard CLI conventions: the shared logger, the pinned style when the
// user asked for one, and the transcript recorder when transcripts are on.
func createEngine(opts RunOptions, logger *slog.Logger, rec runtime.Recorder) (*runtime.Engine, error) {
	g, err := file.Load(opts.GraphPath)
	if err != nil {
		return nil, fmt.Errorf("error loading dialogue graph: %w", err)
	}

	engineOpts := []runtime.Option{
		runtime.WithLogger(logger),
	}
	if opts.Style != "" {
		engineOpts = append(engineOpts, runtime.WithStyle(opts.Style))
	}
	if rec != nil {
		engineOpts = append(engineOpts, runtime.WithRecorder(rec))
	}

	return runtime.NewEngine(g, engineOpts...), nil
}
