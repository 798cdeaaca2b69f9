package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of uk",
	Long:  `Print the version number of uk.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "uk %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
