package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moringa-school/karibu/internal/csvcheck"
	"github.com/moringa-school/karibu/internal/keyword"
)

var checklogCmd = &cobra.Command{
	Use:   "checklog [csv-file]",
	Short: "Validate an unknown-query log file",
	Long: `Checks an errors log produced by the keyword bot against its expected
schema (timestamp, previous_bot_message, user_message) and prints a
validation report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path := keyword.DefaultErrorLogPath
		if len(args) > 0 {
			path = args[0]
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		maxErrors, _ := cmd.Flags().GetInt("max-errors")

		v := csvcheck.New(keyword.ErrorLogSchema(), csvcheck.WithMaxErrors(maxErrors))
		report := v.ValidateFile(path)
		csvcheck.WriteReport(os.Stdout, report, verbose)

		if !report.Valid {
			return fmt.Errorf("%d validation error(s) in %s", report.ErrorCount(), path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checklogCmd)

	checklogCmd.Flags().BoolP("verbose", "v", false, "Print every finding, not just the summary")
	checklogCmd.Flags().Int("max-errors", 100, "Stop collecting findings after this many (0 for no cap)")
}
