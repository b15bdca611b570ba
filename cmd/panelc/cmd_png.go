package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazu/panelgo/pkg/emit"
)

var pngSize string

// pngCmd rasterizes the resolved panel to a PNG. --size takes the
// `z:N` form from spec.md §6 (N panel units per pixel); the leading
// "z:" is a legacy zoom-level prefix carried over unchanged.
var pngCmd = &cobra.Command{
	Use:   "png OUT",
	Short: "Rasterize the resolved panel to a PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unitsPerPixel, err := parsePNGSize(pngSize)
		if err != nil {
			return exitError{code: exitIO, err: err}
		}

		src, err := readSource(flagFile)
		if err != nil {
			return err
		}
		rendered, err := compile(src, flagHull)
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return exitError{code: exitIO, err: err}
		}
		defer f.Close()
		if err := emit.WritePNG(f, rendered, unitsPerPixel); err != nil {
			return exitError{code: exitIO, err: err}
		}
		fmt.Println(successStyle.Render("wrote " + args[0]))
		return nil
	},
}

func init() {
	pngCmd.Flags().StringVar(&pngSize, "size", "", "z:N units-per-pixel (default from PANELC_RASTER_UNITS_PER_PIXEL)")
}

func parsePNGSize(s string) (float64, error) {
	if s == "" {
		return cfg.RasterUnitsPerPixel, nil
	}
	rest, ok := strings.CutPrefix(s, "z:")
	if !ok {
		return 0, fmt.Errorf("png: --size must be of the form z:N, got %q", s)
	}
	n, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, fmt.Errorf("png: invalid --size value %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("png: --size must be positive, got %q", s)
	}
	return n, nil
}
