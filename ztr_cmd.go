package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ossyrian/fabulanova/internal/ztr"
)

func newZtrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ztr",
		Short: "Convert ZTR text resources to and from editable text",
	}

	cmd.AddCommand(
		newZtrExportCmd(),
		newZtrImportCmd(),
		newZtrExportDirCmd(),
		newZtrBlobCmd("compress", "Dictionary-compress a file", func(b []byte) ([]byte, error) {
			return ztr.Compress(b), nil
		}),
		newZtrBlobCmd("decompress", "Expand a dictionary-compressed file", ztr.Decompress),
	)
	return cmd
}

// swapExt replaces the extension of path.
func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func newZtrExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.ztr> [file.txt]",
		Short: "Decode a ZTR file into id |:| text lines",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := selectedGame()
			if err != nil {
				return err
			}

			if cfg.DryRun {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()

				entries, err := ztr.Read(f, g, slog.With("file", args[0]))
				if err != nil {
					return err
				}
				slog.Info("dry run, nothing written", "lines", len(entries))
				return nil
			}

			out := swapExt(args[0], ".txt")
			if len(args) > 1 {
				out = args[1]
			}
			return ztr.ExportFile(args[0], out, g, slog.Default())
		},
	}
}

func newZtrImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.txt> [file.ztr]",
		Short: "Encode id |:| text lines into a ZTR file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := selectedGame()
			if err != nil {
				return err
			}

			if cfg.DryRun {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()

				entries, err := ztr.ParseText(f)
				if err != nil {
					return err
				}
				slog.Info("dry run, nothing written", "lines", len(entries))
				return nil
			}

			out := swapExt(args[0], ".ztr")
			if len(args) > 1 {
				out = args[1]
			}
			return ztr.ImportFile(args[0], out, g, ztr.Options{Compress: cfg.ZtrCompress}, slog.Default())
		},
	}

	cmd.Flags().Bool("compress", true, "dictionary-compress the written chunks")
	viper.BindPFlag("ztr_compress", cmd.Flags().Lookup("compress"))

	return cmd
}

func newZtrExportDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-dir <dir>",
		Short: "Export every .ztr file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := selectedGame()
			if err != nil {
				return err
			}

			res, err := ztr.ExportDir(args[0], g, cfg.Workers, slog.Default())
			if err != nil {
				return err
			}
			for _, f := range res.Failed {
				fmt.Fprintln(cmd.ErrOrStderr(), f.Error())
			}
			if len(res.Failed) > 0 {
				return fmt.Errorf("%d of %d files failed", len(res.Failed), res.Total)
			}
			return nil
		},
	}
}

func newZtrBlobCmd(use, short string, fn func([]byte) ([]byte, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <input> <output>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			out, err := fn(data)
			if err != nil {
				return fmt.Errorf("failed to %s %s: %w", use, args[0], err)
			}

			slog.Info(use+"ed", "input", args[0], "size", len(data), "output_size", len(out))

			if cfg.DryRun {
				return nil
			}
			if err := os.WriteFile(args[1], out, 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}
