package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moringa-school/karibu/internal/adapters/file"
	"github.com/moringa-school/karibu/pkg/dialog"
)

var validateCmd = &cobra.Command{
	Use:   "validate [graph-file]",
	Short: "Check a dialogue graph for consistency",
	Long: `Loads the graph and reports duplicate node ids, a missing start node,
dangling references, and malformed nodes. Nodes unreachable from 'start' are
reported as warnings; they are legal but usually a mistake.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		g, err := file.Load(graphPath(args))
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		fmt.Printf("Graph is valid! ✅ (%d nodes, %d edges)\n", g.Len(), g.Edges())

		if unreachable := g.Unreachable(); len(unreachable) > 0 {
			fmt.Printf("Warning: %d node(s) unreachable from %q: %s\n",
				len(unreachable), dialog.StartID, strings.Join(unreachable, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
