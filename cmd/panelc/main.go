// Command panelc compiles a panel description into a resolved geometric
// model and emits it in one of several fabrication-facing formats. See
// spec.md §6 for the external CLI contract this mirrors.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chazu/panelgo/internal/config"
	"github.com/chazu/panelgo/pkg/feature"
)

var (
	flagFile string
	flagHull bool
	flagJSON bool

	cfg config.Config
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("config: "+err.Error()))
		os.Exit(exitIO)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	feature.DefaultCircleSegmentFunc = cfg.SegmentFunc()

	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "source file (default: stdin)")
	rootCmd.PersistentFlags().BoolVarP(&flagHull, "hull", "c", cfg.ConvexHull, "replace the unioned outline with its convex hull before subtracting negatives")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print the rendered panel as JSON instead of a summary")

	rootCmd.AddCommand(checkCmd, genCmd, pngCmd, stlCmd)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, diagnostic(err))
		os.Exit(exitCodeOf(err))
	}
}
