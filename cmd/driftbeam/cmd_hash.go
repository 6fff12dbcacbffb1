package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calebgw/driftbeam/internal/runlog"
)

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash FILE",
		Short: "Print the canonical hash of an exported runlog",
		Long: `Read a runlog JSON file (as written by 'driftbeam run') and print
its canonical 8-hex-digit content hash. Key order in the file does not
matter; the canonical form sorts all mapping keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read runlog file: %w", err)
			}
			var r runlog.RunLog
			if err := json.Unmarshal(data, &r); err != nil {
				return fmt.Errorf("parse runlog file: %w", err)
			}
			hash, err := runlog.Hash(r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
