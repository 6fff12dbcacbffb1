package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/calebgw/driftbeam/internal/preset"
)

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List named parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := preset.Builtin()
			if path, _ := cmd.Flags().GetString("presets-file"); path != "" {
				loaded, err := preset.Load(path)
				if err != nil {
					return err
				}
				presets = loaded
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(presets.Presets)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSEED\tNODES\tDENSITY\tDEPTH\tRIGIDITY\tBEAM\tTHRESHOLD")
			for _, name := range presets.Names() {
				p, _ := presets.Get(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%d\t%.2f\t%d\t%.2f\n",
					name, p.Seed, p.NodeCount, p.EdgeDensity, p.RecursionDepth,
					p.Rigidity, p.BeamWidth, p.ActivationThreshold)
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("presets-file", "", "YAML file of named presets (default: built-ins)")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
