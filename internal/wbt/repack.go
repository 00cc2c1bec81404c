package wbt

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/ossyrian/fabulanova/internal/errs"
	"github.com/ossyrian/fabulanova/internal/game"
)

// BackupSuffix is appended to the filelist and container names when
// backups are taken before a repack.
const BackupSuffix = ".bak"

// Repacker rewrites a filelist/container pair.
type Repacker struct {
	filelistPath  string
	containerPath string
	game          game.Code

	// Backup copies both files to *.bak before they are modified.
	Backup bool

	// Workers bounds concurrent compression. Zero or less means one.
	Workers int

	logger *slog.Logger
}

// NewRepacker returns a Repacker for the given archive pair.
func NewRepacker(filelistPath, containerPath string, g game.Code) *Repacker {
	return &Repacker{
		filelistPath:  filelistPath,
		containerPath: containerPath,
		game:          g,
		Workers:       1,
		logger:        slog.With("filelist", filelistPath, "container", containerPath),
	}
}

// packed is one entry's data as it will be stored in the container.
type packed struct {
	data  []byte
	usize uint32
}

// RepackAll rebuilds the container from the loose files under dir, laid
// out at sector alignment in filelist order, then rewrites the filelist.
// An entry whose loose file is missing is stored empty.
func (r *Repacker) RepackAll(dir string) error {
	fl, err := OpenFilelist(r.filelistPath, r.game)
	if err != nil {
		return err
	}

	r.logger.Info("repacking all entries", "dir", dir, "entries", len(fl.Entries))

	for _, e := range fl.Entries {
		if _, err := localPath(dir, e.Path); err != nil {
			return err
		}
	}

	items := make([]packed, len(fl.Entries))
	p := pool.New().WithErrors().WithMaxGoroutines(max(r.Workers, 1))
	for i, e := range fl.Entries {
		p.Go(func() error {
			src, _ := localPath(dir, e.Path)
			data, err := os.ReadFile(src)
			if errors.Is(err, fs.ErrNotExist) {
				r.logger.Warn("loose file missing, storing empty entry", "path", e.Path)
				data = nil
			} else if err != nil {
				return fmt.Errorf("failed to read %s: %w", src, err)
			}

			item := packed{data: data, usize: uint32(len(data))}
			if e.Compressed() && len(data) > 0 {
				if item.data, err = deflate(data); err != nil {
					return fmt.Errorf("%s: %w", e.Path, err)
				}
			}
			items[i] = item
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	if err := r.backup(); err != nil {
		return err
	}

	out, err := os.Create(r.containerPath)
	if err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}
	defer out.Close()

	var offset uint64
	for i := range fl.Entries {
		e := &fl.Entries[i]
		item := items[i]

		if pad := alignUp(offset) - offset; pad > 0 {
			if _, err := out.Write(make([]byte, pad)); err != nil {
				return fmt.Errorf("failed to pad container: %w", err)
			}
			offset += pad
		}

		if _, err := out.Write(item.data); err != nil {
			return fmt.Errorf("failed to write %s: %w", e.Path, err)
		}

		e.setLocation(offset, item.usize, uint32(len(item.data)))
		offset += uint64(len(item.data))

		r.logger.Debug("wrote entry",
			"index", i,
			"path", e.Path,
			"sector", e.Offset/SectorSize,
			"size", len(item.data),
		)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close container: %w", err)
	}

	r.logger.Info("container written", "entries", len(fl.Entries), "size", offset)

	return fl.WriteFile(r.filelistPath)
}

// Inject replaces the archive entries named by the keys of patches with
// the contents of the local files they map to. Data that fits the old
// slot is written in place, anything larger is appended at the next
// sector boundary. Untouched entries keep their path strings verbatim.
func (r *Repacker) Inject(patches map[string]string) error {
	fl, err := OpenFilelist(r.filelistPath, r.game)
	if err != nil {
		return err
	}

	byPath := lo.Associate(fl.Entries, func(e Entry) (string, int) {
		return normalizeArchivePath(e.Path), e.Index
	})

	targets := make(map[int]string, len(patches))
	for archivePath, src := range patches {
		i, ok := byPath[normalizeArchivePath(archivePath)]
		if !ok {
			return fmt.Errorf("%w: %s is not in the filelist", errs.ErrIndexOutOfRange, archivePath)
		}
		if _, err := os.Stat(src); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s", errs.ErrMissingFile, src)
			}
			return fmt.Errorf("failed to stat %s: %w", src, err)
		}
		targets[i] = src
	}

	indices := lo.Keys(targets)
	slices.Sort(indices)

	items := make([]packed, len(indices))
	p := pool.New().WithErrors().WithMaxGoroutines(max(r.Workers, 1))
	for n, i := range indices {
		p.Go(func() error {
			data, err := os.ReadFile(targets[i])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", targets[i], err)
			}

			item := packed{data: data, usize: uint32(len(data))}
			if fl.Entries[i].Compressed() {
				if item.data, err = deflate(data); err != nil {
					return fmt.Errorf("%s: %w", fl.Entries[i].Path, err)
				}
			}
			items[n] = item
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	if err := r.backup(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.containerPath, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("failed to open container: %w", err)
	}
	defer f.Close()

	var inPlace, appended int
	for n, i := range indices {
		e := &fl.Entries[i]
		item := items[n]

		if _, err := f.WriteAt(make([]byte, e.CompressedSize), int64(e.Offset)); err != nil {
			return fmt.Errorf("failed to clear old slot of %s: %w", e.Path, err)
		}

		offset := e.Offset
		if uint64(len(item.data)) > uint64(e.CompressedSize) {
			end, err := f.Seek(0, io.SeekEnd)
			if err != nil {
				return fmt.Errorf("failed to seek to container end: %w", err)
			}
			offset = alignUp(uint64(end))
			appended++
		} else {
			inPlace++
		}

		if _, err := f.WriteAt(item.data, int64(offset)); err != nil {
			return fmt.Errorf("failed to write %s: %w", e.Path, err)
		}

		r.logger.Debug("patched entry",
			"index", i,
			"path", e.Path,
			"old_offset", e.Offset,
			"new_offset", offset,
			"old_size", e.CompressedSize,
			"new_size", len(item.data),
		)

		e.setLocation(offset, item.usize, uint32(len(item.data)))
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close container: %w", err)
	}

	r.logger.Info("patched container",
		"in_place", inPlace,
		"appended", appended,
		"unchanged", len(fl.Entries)-len(indices),
	)

	return fl.WriteFile(r.filelistPath)
}

func (r *Repacker) backup() error {
	if !r.Backup {
		return nil
	}
	for _, p := range []string{r.filelistPath, r.containerPath} {
		if err := copyFile(p, p+BackupSuffix); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				r.logger.Warn("nothing to back up", "path", p)
				continue
			}
			return fmt.Errorf("failed to back up %s: %w", p, err)
		}
		r.logger.Debug("backup created", "path", p+BackupSuffix)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// setLocation points e at new data and regenerates its path string.
func (e *Entry) setLocation(offset uint64, usize, csize uint32) {
	e.Offset = offset
	e.UncompressedSize = usize
	e.CompressedSize = csize
	e.PathString = formatPathString(offset/SectorSize, usize, csize, e.Path)
}

func alignUp(n uint64) uint64 {
	return (n + SectorSize - 1) / SectorSize * SectorSize
}

// localPath maps an archive path onto dir.
func localPath(dir, archivePath string) (string, error) {
	rel := filepath.FromSlash(strings.TrimPrefix(strings.ReplaceAll(archivePath, "\\", "/"), "/"))
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: path %q escapes %s", errs.ErrFormat, archivePath, dir)
	}
	return filepath.Join(dir, rel), nil
}
