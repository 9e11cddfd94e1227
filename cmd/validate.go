package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ingyamilmolinar/quadrants/core/model"
	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config and puzzle set without opening a window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, defs, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		canvas := cfg.Canvas()
		layout := model.Layout{
			Center:       utils.Pt(canvas.W/2, canvas.H/2),
			Radius:       cfg.LayoutRadius,
			VertexRadius: cfg.VertexRadius,
		}
		out := cmd.OutOrStdout()
		for i, def := range defs {
			g, err := model.Build(def, layout)
			if err != nil {
				return fmt.Errorf("puzzle %d %q: %w", i+1, def.Name, err)
			}
			regions := model.BuildRegions(canvas, cfg.CornerSize, g.Density)
			fmt.Fprintf(out, "%d\t%s\tvertices=%d edges=%d density=%d regions=%d\n",
				i+1, g.Name, len(g.Vertices), len(g.Edges), g.Density, len(regions))
		}
		logger.Infof("[MAIN] %d puzzles ok", len(defs))
		fmt.Fprintf(out, "ok: %d puzzles\n", len(defs))
		return nil
	},
}
