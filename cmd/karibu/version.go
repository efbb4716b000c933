package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moringa-school/karibu"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of karibu",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("karibu version %s\n", karibu.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
