package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/panelgo/pkg/render"
)

var rootCmd = &cobra.Command{
	Use:   "panelc",
	Short: "Compile a panel description into a resolved geometric model",
	Long: "panelc compiles the panel description language (see spec.md §4.1) into\n" +
		"a resolved outer boundary, interior cut-outs, and a layered surface-\n" +
		"feature list. With no subcommand it parses, resolves, and combines the\n" +
		"input and prints a short summary (or the full Rendered JSON with --json).",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(flagFile)
		if err != nil {
			return err
		}
		rendered, err := compile(src, flagHull)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(rendered)
		}
		printSummary(rendered)
		return nil
	},
}

func printJSON(r *render.Rendered) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return exitError{code: exitIO, err: err}
	}
	fmt.Println(string(b))
	return nil
}

func printSummary(r *render.Rendered) {
	fmt.Println(successStyle.Render("panel compiled"))
	fmt.Printf("  %s %d\n", labelStyle.Render("outer vertices:"), len(r.Outer))
	fmt.Printf("  %s %d\n", labelStyle.Render("holes:"), len(r.Inners))
	fmt.Printf("  %s %d\n", labelStyle.Render("surface features:"), len(r.SurfaceFeatures))
	fmt.Printf("  %s %d\n", labelStyle.Render("named features:"), len(r.NamedFeatures))
	for _, n := range r.NamedFeatures {
		b := n.Bounds
		fmt.Printf("    %s [%.3f, %.3f, %.3f, %.3f]\n", valueStyle.Render(n.Name), b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
}
