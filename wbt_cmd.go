package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ossyrian/fabulanova/internal/wbt"
)

func newWbtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wbt",
		Short: "List, extract and repack WBT filelist/container archives",
	}

	cmd.PersistentFlags().Bool("backup", false, "copy the filelist and container to *.bak before rewriting them")
	viper.BindPFlag("backup", cmd.PersistentFlags().Lookup("backup"))

	cmd.AddCommand(newWbtListCmd(), newWbtExtractCmd(), newWbtRepackCmd(), newWbtInjectCmd())
	return cmd
}

func newWbtListCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list <filelist>",
		Short: "Print the entries of a filelist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := selectedGame()
			if err != nil {
				return err
			}
			fl, err := wbt.OpenFilelist(args[0], g)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INDEX\tOFFSET\tSIZE\tSTORED\tPATH")
			for _, e := range fl.FindByDirectory(dir) {
				fmt.Fprintf(tw, "%d\t%#x\t%d\t%d\t%s\n", e.Index, e.Offset, e.UncompressedSize, e.CompressedSize, e.Path)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "only list entries under this archive directory")
	return cmd
}

func newWbtExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <filelist> <container> <output-dir>",
		Short: "Extract entries of a container to a directory",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := selectedGame()
			if err != nil {
				return err
			}
			fl, err := wbt.OpenFilelist(args[0], g)
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open container: %w", err)
			}
			defer f.Close()

			c := wbt.NewContainer(f, fl.Entries, slog.With("file", args[1]))
			res, err := wbt.ExtractAll(c, args[2], wbt.ExtractOptions{
				Include: cfg.Include,
				Exclude: cfg.Exclude,
				DryRun:  cfg.DryRun,
			})
			if err != nil {
				return err
			}

			slog.Info("done", "extracted", res.Extracted, "skipped", res.Skipped, "bytes", res.Bytes)
			return nil
		},
	}

	cmd.Flags().StringSlice("include", nil, "glob rules for entries to extract (default all)")
	cmd.Flags().StringSlice("exclude", nil, "glob rules for entries to skip")
	viper.BindPFlag("include", cmd.Flags().Lookup("include"))
	viper.BindPFlag("exclude", cmd.Flags().Lookup("exclude"))

	return cmd
}

func newWbtRepackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repack <filelist> <container> <dir>",
		Short: "Rebuild a container from extracted files and rewrite its filelist",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRepacker(args[0], args[1])
			if err != nil {
				return err
			}
			if cfg.DryRun {
				slog.Info("dry run, nothing written")
				return nil
			}
			return r.RepackAll(args[2])
		},
	}
}

func newWbtInjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inject <filelist> <container> <archive-path=local-file>...",
		Short: "Replace individual container entries in place",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			patches, err := parsePatches(args[2:])
			if err != nil {
				return err
			}
			r, err := newRepacker(args[0], args[1])
			if err != nil {
				return err
			}
			if cfg.DryRun {
				slog.Info("dry run, nothing written", "patches", len(patches))
				return nil
			}
			return r.Inject(patches)
		},
	}
}

func newRepacker(filelistPath, containerPath string) (*wbt.Repacker, error) {
	g, err := selectedGame()
	if err != nil {
		return nil, err
	}
	r := wbt.NewRepacker(filelistPath, containerPath, g)
	r.Backup = cfg.Backup
	r.Workers = cfg.Workers
	return r, nil
}

// parsePatches turns "archive/path=local/file" arguments into a patch map.
func parsePatches(args []string) (map[string]string, error) {
	for _, arg := range args {
		if target, source, ok := strings.Cut(arg, "="); !ok || target == "" || source == "" {
			return nil, fmt.Errorf("invalid patch %q, want archive-path=local-file", arg)
		}
	}
	return lo.Associate(args, func(arg string) (string, string) {
		target, source, _ := strings.Cut(arg, "=")
		return target, source
	}), nil
}
