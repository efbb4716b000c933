package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/moringa-school/karibu/internal/keyword"
	"github.com/moringa-school/karibu/internal/logging"
)

var keywordCmd = &cobra.Command{
	Use:   "keyword",
	Short: "Run the offline keyword-matcher chatbot",
	Long: `The stateless sibling of the graph chatbot: answers questions about the
Moringa School course catalogue by keyword matching against a canned
response table. Questions it cannot answer are appended to a CSV error log
so the table can be grown from real usage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logPath, _ := cmd.Flags().GetString("errors-log")
		debug, _ := cmd.Flags().GetBool("debug")

		level := slog.LevelWarn
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		errlog := keyword.NewErrorLog(logPath, keyword.WithErrorLogger(logger))
		return keyword.NewSession(os.Stdin, os.Stdout, nil, errlog).Run()
	},
}

func init() {
	rootCmd.AddCommand(keywordCmd)

	keywordCmd.Flags().String("errors-log", keyword.DefaultErrorLogPath, "CSV file for unanswered questions")
}
