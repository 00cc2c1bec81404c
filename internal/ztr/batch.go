package ztr

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/ossyrian/fabulanova/internal/game"
)

// FileError records a file that could not be exported.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// DirResult summarizes an ExportDir run. Paths are relative to the
// exported directory.
type DirResult struct {
	Parsed []string
	Failed []FileError
	Total  int
}

type exportOutcome struct {
	path string
	err  error
}

// ExportDir exports every .ztr file under dir to a .txt file next to
// it, using up to workers goroutines. Files that fail are collected in
// the result; only a failure to walk dir is returned as an error. A nil
// logger discards output.
func ExportDir(dir string, g game.Code, workers int, logger *slog.Logger) (*DirResult, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".ztr") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	p := pool.NewWithResults[exportOutcome]().WithMaxGoroutines(max(workers, 1))
	for _, path := range files {
		p.Go(func() exportOutcome {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				rel = path
			}
			txtPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
			if err := ExportFile(path, txtPath, g, logger); err != nil {
				logger.Warn("failed to export", "file", rel, "error", err)
				return exportOutcome{path: rel, err: err}
			}
			return exportOutcome{path: rel}
		})
	}
	outcomes := p.Wait()

	res := &DirResult{
		Total: len(files),
		Parsed: lo.FilterMap(outcomes, func(o exportOutcome, _ int) (string, bool) {
			return o.path, o.err == nil
		}),
		Failed: lo.FilterMap(outcomes, func(o exportOutcome, _ int) (FileError, bool) {
			return FileError{Path: o.path, Err: o.err}, o.err != nil
		}),
	}
	slices.Sort(res.Parsed)
	slices.SortFunc(res.Failed, func(a, b FileError) int {
		return strings.Compare(a.Path, b.Path)
	})

	logger.Info("exported directory",
		"dir", dir,
		"total", res.Total,
		"parsed", len(res.Parsed),
		"failed", len(res.Failed),
	)

	return res, nil
}
