package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/utilkit/internal/ops"
	"github.com/pengelbrecht/utilkit/internal/styles"
)

var calcCmd = &cobra.Command{
	Use:   "calc <operation> [args...]",
	Short: "Run a calculator operation",
	Long: `Run a calculator operation.

Negative numbers look like flags, so put them after "--".

Examples:
  uk calc add 2 3
  uk calc div 15 3
  uk calc pow -- -2 3
  uk calc fact 5 --json`,
}

var strCmd = &cobra.Command{
	Use:   "str <operation> [args...]",
	Short: "Run a string operation",
	Long: `Run a string operation.

Examples:
  uk str reverse "Hello World"
  uk str palindrome "A man a plan a canal Panama"
  uk str split "a,b,,c" ,
  uk str join - a b c
  uk str join - "['a', 'b', 'c']"`,
}

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List available operations",
	Args:  cobra.NoArgs,
	RunE:  runOps,
}

var (
	opsJSON bool
	opJSON  bool
)

func init() {
	for _, o := range ops.Group(ops.GroupCalc) {
		calcCmd.AddCommand(newOpCommand(o))
	}
	for _, o := range ops.Group(ops.GroupStr) {
		strCmd.AddCommand(newOpCommand(o))
	}

	opsCmd.Flags().BoolVar(&opsJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(strCmd)
	rootCmd.AddCommand(opsCmd)
}

// newOpCommand wraps a registry operation as a cobra command.
func newOpCommand(o ops.Op) *cobra.Command {
	c := &cobra.Command{
		Use:     o.Usage,
		Short:   o.Summary,
		Aliases: wordAliases(o.Aliases),
		Args: func(cmd *cobra.Command, args []string) error {
			return o.CheckArgs(args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := o.Call(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opJSON {
				payload := map[string]any{
					"op":     o.Name,
					"args":   args,
					"result": result,
				}
				enc := json.NewEncoder(out)
				if err := enc.Encode(payload); err != nil {
					return fmt.Errorf("failed to encode json: %w", err)
				}
				return nil
			}

			fmt.Fprintln(out, result)
			return nil
		},
	}
	// Shared by every op command; only one runs per process.
	c.Flags().BoolVar(&opJSON, "json", false, "output as JSON")
	return c
}

// wordAliases drops symbolic aliases such as "+" that make poor sub-command names.
func wordAliases(aliases []string) []string {
	var out []string
	for _, a := range aliases {
		if a != "" && isWord(a) {
			out = append(out, a)
		}
	}
	return out
}

func isWord(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

func runOps(cmd *cobra.Command, args []string) error {
	all := ops.All()
	out := cmd.OutOrStdout()

	if opsJSON {
		type entry struct {
			Name    string   `json:"name"`
			Group   string   `json:"group"`
			Usage   string   `json:"usage"`
			Summary string   `json:"summary"`
			Aliases []string `json:"aliases,omitempty"`
		}
		list := make([]entry, 0, len(all))
		for _, o := range all {
			list = append(list, entry{Name: o.Name, Group: o.Group, Usage: o.Usage, Summary: o.Summary, Aliases: o.Aliases})
		}
		enc := json.NewEncoder(out)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	usageWidth := 0
	for _, o := range all {
		if w := styles.Width(o.Usage); w > usageWidth {
			usageWidth = w
		}
	}

	group := ""
	for _, o := range all {
		if o.Group != group {
			if group != "" {
				fmt.Fprintln(out)
			}
			group = o.Group
			fmt.Fprintln(out, styles.RenderHeader("uk "+group))
		}
		line := "  " + styles.PadRight(o.Usage, usageWidth) + "  " + styles.RenderDim(o.Summary)
		if len(o.Aliases) > 0 {
			line += styles.RenderDim(" (" + strings.Join(o.Aliases, ", ") + ")")
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
