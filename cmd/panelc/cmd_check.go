package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCmd parses, resolves, and combines the input and reports the
// first error with source context, or a success line — the
// "browser-style check path" spec.md §7 asks the CLI to expose.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a panel description without emitting any output",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(flagFile)
		if err != nil {
			return err
		}
		rendered, err := compile(src, flagHull)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(fmt.Sprintf(
			"ok: %d outer vertices, %d holes, %d surface features",
			len(rendered.Outer), len(rendered.Inners), len(rendered.SurfaceFeatures))))
		return nil
	},
}
