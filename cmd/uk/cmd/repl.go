package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/utilkit/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate operations interactively",
	Long: `Evaluate operations interactively.

Type an operation with its arguments, for example "pow 2 8" or
reverse "Hello World". Type help to list operations, quit or esc to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repl.Run(); err != nil {
			return fmt.Errorf("repl: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
