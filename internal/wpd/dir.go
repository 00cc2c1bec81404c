package wpd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/ossyrian/fabulanova/internal/errs"
)

// Unpack writes every record of the package at wpdPath into outDir,
// together with the manifest needed to repack them. With dryRun set the
// package is parsed and nothing is written.
func Unpack(wpdPath, outDir string, dryRun bool) ([]Record, error) {
	logger := slog.With("file", wpdPath)

	f, err := os.Open(wpdPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open package: %w", err)
	}
	defer f.Close()

	records, err := Read(f, logger)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if err := checkFileName(rec.FileName()); err != nil {
			return nil, err
		}
	}

	if dryRun {
		logger.Info("dry run, nothing written", "record_count", len(records))
		return records, nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	manifest, err := os.Create(filepath.Join(outDir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest: %w", err)
	}
	if err := WriteManifest(manifest, records); err != nil {
		manifest.Close()
		return nil, err
	}
	if err := manifest.Close(); err != nil {
		return nil, fmt.Errorf("failed to close manifest: %w", err)
	}

	for _, rec := range records {
		out := filepath.Join(outDir, rec.FileName())
		if err := os.WriteFile(out, rec.Data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", rec.FileName(), err)
		}
		logger.Debug("unpacked record", "path", out, "size", len(rec.Data))
	}

	logger.Info("unpacked package", "output", outDir, "record_count", len(records))

	return records, nil
}

// Repack builds a package at wpdPath from the loose files in inDir,
// following the order and extensions recorded in its manifest.
func Repack(inDir, wpdPath string) error {
	logger := slog.With("file", wpdPath)

	entries, err := LoadDir(inDir)
	if err != nil {
		return err
	}

	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(inDir, e.FileName()))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", e.FileName(), err)
		}
		records = append(records, Record{Name: e.Name, Extension: e.Extension, Data: data})
	}

	f, err := os.Create(wpdPath)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	if err := Write(f, records, logger); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadDir reads the manifest in dir and checks that every file it
// names is present.
func LoadDir(dir string) ([]ManifestEntry, error) {
	f, err := os.Open(filepath.Join(dir, ManifestName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s in %s", errs.ErrMissingManifest, ManifestName, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	entries, err := ReadManifest(f)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if err := checkFileName(e.FileName()); err != nil {
			return nil, err
		}
	}

	missing := lo.Filter(entries, func(e ManifestEntry, _ int) bool {
		_, err := os.Stat(filepath.Join(dir, e.FileName()))
		return errors.Is(err, fs.ErrNotExist)
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", errs.ErrMissingFile, filepath.Join(dir, missing[0].FileName()))
	}

	return entries, nil
}

// checkFileName rejects record names that would escape the unpack directory.
func checkFileName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || !filepath.IsLocal(name) {
		return fmt.Errorf("%w: unsafe record file name %q", errs.ErrFormat, name)
	}
	return nil
}
