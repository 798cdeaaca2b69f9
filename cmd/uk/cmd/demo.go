package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/utilkit/internal/config"
	"github.com/pengelbrecht/utilkit/internal/showcase"
	"github.com/pengelbrecht/utilkit/internal/styles"
	"github.com/pengelbrecht/utilkit/internal/watch"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show every operation on sample input",
	Long: `Show every operation on sample input.

The string section runs on the showcase inputs from the config file
(text, palindrome, email). With --watch the report is redrawn whenever
the config file changes.

Examples:
  uk demo
  uk demo --json
  uk demo --watch --config demo.yaml`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

var (
	demoJSON     bool
	demoWatch    bool
	demoWidth    int
	demoDebounce time.Duration
)

func init() {
	demoCmd.Flags().BoolVar(&demoJSON, "json", false, "output as JSON")
	demoCmd.Flags().BoolVarP(&demoWatch, "watch", "w", false, "redraw when the config file changes")
	demoCmd.Flags().IntVar(&demoWidth, "width", 0, "box width (default from config)")
	demoCmd.Flags().DurationVar(&demoDebounce, "debounce", watch.DefaultDebounce, "debounce interval for config changes")

	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path, err := renderDemo(out)
	if err != nil {
		return err
	}
	if !demoWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchDemo(ctx, out, path)
}

// renderDemo loads config, builds the report and writes it to out.
// It returns the config path so the caller can watch it.
func renderDemo(out io.Writer) (string, error) {
	cfg, path, err := loadConfig()
	if err != nil {
		return path, err
	}
	setupColor(cfg.Display)

	report := showcase.Build(inputsFromConfig(cfg))
	if demoJSON {
		return path, showcase.RenderJSON(out, report)
	}

	width := demoWidth
	if width == 0 {
		width = cfg.Display.GetWidth()
	}
	if err := showcase.RenderText(out, report, showcase.Options{Width: width, Plain: !colorEnabled(cfg.Display)}); err != nil {
		return path, fmt.Errorf("failed to render report: %w", err)
	}
	return path, nil
}

func watchDemo(ctx context.Context, out io.Writer, path string) error {
	w := watch.New(path, demoDebounce)
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	defer w.Stop()

	fmt.Fprintln(out, styles.RenderDim("Watching "+w.Path()+" (ctrl+c to stop)"))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			slog.Debug("config changed", "path", ev.Path, "event", ev.Type)
			fmt.Fprintln(out)
			if _, err := renderDemo(out); err != nil {
				// Keep watching; the next save may fix it.
				fmt.Fprintln(out, styles.RenderError("error: "+err.Error()))
			}
		}
	}
}

func inputsFromConfig(cfg config.Config) showcase.Inputs {
	return showcase.Inputs{
		Text:       cfg.Showcase.GetText(),
		Palindrome: cfg.Showcase.GetPalindrome(),
		Email:      cfg.Showcase.GetEmail(),
	}
}
