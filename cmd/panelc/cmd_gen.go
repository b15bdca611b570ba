package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chazu/panelgo/pkg/emit"
	"github.com/chazu/panelgo/pkg/feature"
	"github.com/chazu/panelgo/pkg/render"
)

var genFormat string

// genCmd emits a fabrication bundle: either a single zip archive or a
// directory of individual Gerber/Excellon files, per spec.md §6's
// `gen -f {zip|gerber-dir}` subcommand.
var genCmd = &cobra.Command{
	Use:   "gen OUT",
	Short: "Generate a fabrication bundle (zip or a directory of Gerber files)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(flagFile)
		if err != nil {
			return err
		}
		rendered, err := compile(src, flagHull)
		if err != nil {
			return err
		}

		out := args[0]
		switch genFormat {
		case "zip":
			return writeZip(rendered, out)
		case "gerber-dir":
			return writeGerberDir(rendered, out)
		default:
			return exitError{code: exitIO, err: fmt.Errorf("gen: unknown --format %q, want zip or gerber-dir", genFormat)}
		}
	},
}

func init() {
	// No -f shorthand here: the root command already claims -f for the
	// input file (spec.md §6) and cobra rejects a duplicate shorthand
	// once persistent and local flags are merged, so --format is
	// spelled out in full on this subcommand.
	genCmd.Flags().StringVar(&genFormat, "format", "zip", "output format: zip or gerber-dir")
}

func writeZip(r *render.Rendered, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return exitError{code: exitIO, err: err}
	}
	defer f.Close()
	if err := emit.WriteZipBundle(f, r); err != nil {
		return exitError{code: exitIO, err: err}
	}
	fmt.Println(successStyle.Render("wrote " + out))
	return nil
}

var gerberLayers = []struct {
	name  string
	layer feature.Layer
}{
	{"front-copper.gbr", feature.FrontCopper},
	{"front-mask.gbr", feature.FrontMask},
	{"front-legend.gbr", feature.FrontLegend},
	{"back-copper.gbr", feature.BackCopper},
	{"back-mask.gbr", feature.BackMask},
	{"back-legend.gbr", feature.BackLegend},
}

func writeGerberDir(r *render.Rendered, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return exitError{code: exitIO, err: err}
	}

	if err := writeFile(filepath.Join(dir, "edge-cuts.gbr"), func(f *os.File) error {
		return emit.WriteGerberOutline(f, r)
	}); err != nil {
		return err
	}
	for _, lf := range gerberLayers {
		layer := lf.layer
		if err := writeFile(filepath.Join(dir, lf.name), func(f *os.File) error {
			return emit.WriteGerberLayer(f, r, layer)
		}); err != nil {
			return err
		}
	}
	if err := writeFile(filepath.Join(dir, "drill.drl"), func(f *os.File) error {
		return emit.WriteExcellonDrill(f, r)
	}); err != nil {
		return err
	}

	fmt.Println(successStyle.Render("wrote " + dir))
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return exitError{code: exitIO, err: err}
	}
	defer f.Close()
	if err := write(f); err != nil {
		return exitError{code: exitIO, err: err}
	}
	return nil
}
