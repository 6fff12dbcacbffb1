package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebgw/driftbeam/internal/activation"
	"github.com/calebgw/driftbeam/internal/engine"
	"github.com/calebgw/driftbeam/internal/visualization"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Run the engine and render the final graph",
		Long:  `Execute a run and output its final graph in DOT (Graphviz) or JSON format, with nodes annotated by their last-step activation scores.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParams(cmd)
			if err != nil {
				return err
			}
			res, err := engine.Run(p)
			if err != nil {
				return fmt.Errorf("run engine: %w", err)
			}

			last := res.RunLog.Steps[len(res.RunLog.Steps)-1]
			scores := activation.Scores(last.Activations)

			format, _ := cmd.Flags().GetString("format")
			switch visualization.Format(format) {
			case visualization.FormatDOT:
				fmt.Fprint(cmd.OutOrStdout(), visualization.RenderDOT(res.FinalGraph, scores))
			case visualization.FormatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(visualization.RenderJSON(res.FinalGraph, scores)); err != nil {
					return fmt.Errorf("encode JSON: %w", err)
				}
			default:
				return fmt.Errorf("unknown format %q (valid: dot, json)", format)
			}
			return nil
		},
	}

	addParamFlags(cmd)
	cmd.Flags().String("format", "dot", "Output format: dot or json")
	return cmd
}
