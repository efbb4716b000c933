package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moringa-school/karibu/internal/cli"
	"github.com/moringa-school/karibu/internal/config"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [graph-file]",
	Short: "Start an interactive conversation",
	Long: `Loads the dialogue graph and starts a conversation in the full-screen
terminal UI. When stdout is not a terminal (or with --plain) a line-based
loop runs instead. With --watch the graph file is reloaded on change and the
session restarts, which makes editing a flow an interactive loop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			viper.Set("graph.path", args[0])
		}
		if off, _ := cmd.Flags().GetBool("no-transcript"); off {
			viper.Set("transcript.enabled", false)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		debug, _ := cmd.Flags().GetBool("debug")
		watch, _ := cmd.Flags().GetBool("watch")

		// Config problems above reported usage; session errors should not.
		cmd.SilenceUsage = true

		return cli.Execute(cli.RunOptions{
			GraphPath:     cfg.Graph.Path,
			Style:         cfg.Chat.Style,
			Plain:         cfg.Chat.Plain,
			Watch:         watch,
			Debug:         debug,
			Transcript:    cfg.Transcript.Enabled,
			TranscriptDir: cfg.Transcript.Dir,
			TypingDelay:   cfg.Chat.TypingDelay(),
			WordPause:     cfg.Chat.WordPause(),
		})
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringP("graph", "g", "", "Graph file to load (.json, .yaml or .yml)")
	chatCmd.Flags().StringP("style", "s", "", "Pin the response style instead of rolling one per session")
	chatCmd.Flags().Bool("plain", false, "Line-based session without the full-screen UI")
	chatCmd.Flags().BoolP("watch", "w", false, "Reload the graph and restart the session on file changes")
	chatCmd.Flags().Bool("no-transcript", false, "Disable the session transcript")
	chatCmd.Flags().String("transcript-dir", "", "Directory for transcript files")

	viper.BindPFlag("graph.path", chatCmd.Flags().Lookup("graph"))
	viper.BindPFlag("chat.style", chatCmd.Flags().Lookup("style"))
	viper.BindPFlag("chat.plain", chatCmd.Flags().Lookup("plain"))
	viper.BindPFlag("transcript.dir", chatCmd.Flags().Lookup("transcript-dir"))

	// Bare "karibu" starts a chat.
	rootCmd.RunE = chatCmd.RunE
}
