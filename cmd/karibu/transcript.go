package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moringa-school/karibu/pkg/transcript"
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Inspect saved session transcripts",
	Long:  `List and read the append-only transcript files written during chat sessions.`,
}

var transcriptLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List transcript files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dir := viper.GetString("transcript.dir")
		infos, err := transcript.List(dir)
		if err != nil {
			return fmt.Errorf("error listing transcripts: %w", err)
		}

		if len(infos) == 0 {
			fmt.Println("No transcripts found.")
			return nil
		}

		for _, info := range infos {
			fmt.Printf("%s  %6d B  %s\n",
				info.ModTime.Format("2006-01-02 15:04"), info.Size, info.Name)
		}
		return nil
	},
}

var transcriptShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print one transcript's records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path := args[0]
		if _, err := os.Stat(path); os.IsNotExist(err) {
			// Bare filenames resolve against the transcript directory.
			path = filepath.Join(viper.GetString("transcript.dir"), path)
		}

		records, err := transcript.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading transcript: %w", err)
		}

		for _, rec := range records {
			fmt.Printf("%s  %-4s  %s\n", rec.At.Format("15:04:05"), rec.Speaker, rec.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transcriptCmd)
	transcriptCmd.AddCommand(transcriptLsCmd)
	transcriptCmd.AddCommand(transcriptShowCmd)
}
