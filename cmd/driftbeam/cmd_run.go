package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/calebgw/driftbeam/internal/engine"
	"github.com/calebgw/driftbeam/internal/logging"
	"github.com/calebgw/driftbeam/internal/runlog"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute one simulation run and export its runlog",
		Long: `Run the engine with the given parameters (or a named preset) and
write the resulting runlog as JSON. The export round-trips losslessly:
feeding it back to 'driftbeam hash' reproduces the canonical hash.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParams(cmd)
			if err != nil {
				return err
			}

			level, _ := cmd.Flags().GetString("log-level")
			log := logging.NewLogger(level, cmd.ErrOrStderr())

			start := time.Now()
			res, err := engine.Run(p)
			if err != nil {
				return fmt.Errorf("run engine: %w", err)
			}
			log.Debug("run complete",
				"steps", len(res.RunLog.Steps),
				"nodes", len(res.FinalGraph.Nodes),
				"edges", len(res.FinalGraph.Edges),
				"elapsed", time.Since(start))

			if tracePath, _ := cmd.Flags().GetString("trace"); tracePath != "" {
				if err := writeTrace(tracePath, res.RunLog); err != nil {
					return err
				}
			}

			hash, err := runlog.Hash(res.RunLog)
			if err != nil {
				return err
			}

			if hashOnly, _ := cmd.Flags().GetBool("hash"); hashOnly {
				fmt.Fprintln(cmd.OutOrStdout(), hash)
				return nil
			}

			out := cmd.OutOrStdout()
			if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
				log.Info("writing runlog", "path", outPath, "hash", hash)
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res.RunLog); err != nil {
				return fmt.Errorf("encode runlog: %w", err)
			}
			return nil
		},
	}

	addParamFlags(cmd)
	cmd.Flags().String("output", "", "Write the runlog JSON to a file instead of stdout")
	cmd.Flags().Bool("hash", false, "Print only the canonical runlog hash")
	cmd.Flags().String("trace", "", "Append per-step JSONL trace records to a file")
	return cmd
}

// writeTrace appends every step record of the runlog to a JSONL file.
func writeTrace(path string, log runlog.RunLog) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open trace file: %w", err)
	}
	defer f.Close()

	tw := logging.NewTraceWriter(f)
	for _, step := range log.Steps {
		tw.Write(step)
	}
	return nil
}
