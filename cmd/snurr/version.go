package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0" // Replace or override at build time if desired

// versionCmd represents "snurr version"
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of Snurr",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Snurr version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
