package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moringa-school/karibu/internal/adapters/file"
	"github.com/moringa-school/karibu/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [graph-file]",
	Short: "Export the dialogue graph visualization",
	Long:  `Loads the graph and outputs a Mermaid diagram (graph TD) of its nodes and transitions.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		g, err := file.Load(graphPath(args))
		if err != nil {
			return err
		}

		fmt.Print(graph.GenerateMermaid(g.Nodes()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
