// Command driftbeam runs the deterministic activation/pruning/reconstruction
// simulation and works with the runlogs it produces. The engine itself is a
// pure value computation; this binary is its file-and-terminal consumer.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "driftbeam",
		Short: "Deterministic activation-pruning-reconstruction simulator",
		Long: `driftbeam simulates an activation, pruning, reconstruction and
interpretation pipeline over a seeded random graph, producing a
deterministic, replayable runlog of per-step internal state.

The same seed and parameters always produce a bit-identical runlog
and an identical canonical hash.`,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity: info, debug, or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newHashCmd(),
		newPresetsCmd(),
		newGraphCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "driftbeam version %s\n", version)
			}
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
