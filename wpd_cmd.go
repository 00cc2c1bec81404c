package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ossyrian/fabulanova/internal/wpd"
)

func newWpdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wpd",
		Short: "Unpack and repack WPD packages",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "unpack <package.wpd> [output-dir]",
		Short: "Write every record of a package to a directory with its manifest",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			if outDir == args[0] {
				outDir += "_unpacked"
			}
			if len(args) > 1 {
				outDir = args[1]
			}

			records, err := wpd.Unpack(args[0], outDir, cfg.DryRun)
			if err != nil {
				return err
			}
			slog.Info("done", "records", len(records))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "repack <dir> <package.wpd>",
		Short: "Build a package from an unpacked directory and its manifest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DryRun {
				entries, err := wpd.LoadDir(args[0])
				if err != nil {
					return err
				}
				slog.Info("dry run, nothing written", "records", len(entries))
				return nil
			}
			return wpd.Repack(args[0], args[1])
		},
	})

	return cmd
}
