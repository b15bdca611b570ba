package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/panelgo/pkg/emit"
	"github.com/chazu/panelgo/pkg/geom"
	"github.com/chazu/panelgo/pkg/kernel"
	"github.com/chazu/panelgo/pkg/kernel/sdfx"
	"github.com/chazu/panelgo/pkg/render"
	"github.com/chazu/panelgo/pkg/tessellate"
)

var stlThickness float64

// stlCmd extrudes the resolved outline to a fixed thickness and writes
// a binary STL solid, the optional 3D path spec.md §1's Non-goals allow
// without requiring (SPEC_FULL.md §6.3).
var stlCmd = &cobra.Command{
	Use:   "stl OUT",
	Short: "Extrude the resolved panel outline and write a binary STL solid",
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

		mesh, err := extrude(rendered, stlThickness)
		if err != nil {
			return exitError{code: exitIO, err: err}
		}

		f, err := os.Create(args[0])
		if err != nil {
			return exitError{code: exitIO, err: err}
		}
		defer f.Close()
		if err := emit.WriteSTL(f, mesh); err != nil {
			return exitError{code: exitIO, err: err}
		}
		fmt.Println(successStyle.Render("wrote " + args[0]))
		return nil
	},
}

func init() {
	stlCmd.Flags().Float64Var(&stlThickness, "thickness", 1.6, "panel thickness in millimeters")
}

func extrude(r *render.Rendered, thickness float64) (*kernel.Mesh, error) {
	k := sdfx.New()
	outer := ringPoints(r.Outer)
	holes := make([][][2]float64, len(r.Inners))
	for i, h := range r.Inners {
		holes[i] = ringPoints(h)
	}
	return tessellate.TessellatePanel(k, "panel", outer, holes, thickness)
}

func ringPoints(r geom.Ring) [][2]float64 {
	out := make([][2]float64, len(r))
	for i, p := range r {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}
