package wpd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ossyrian/fabulanova/internal/errs"
)

// ManifestEntry is one record line of the manifest.
type ManifestEntry struct {
	Name      string
	Extension string
}

// FileName is the loose file holding the entry's data.
func (e ManifestEntry) FileName() string {
	return fileName(e.Name, e.Extension)
}

// WriteManifest writes the record count followed by one
// "name |-| ext" line per record, in record order.
func WriteManifest(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(records))
	for _, rec := range records {
		ext := rec.Extension
		if ext == "" {
			ext = ManifestNullExtension
		}
		fmt.Fprintf(bw, "%s%s%s\n", rec.Name, manifestSeparator, ext)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest parses a manifest written by WriteManifest.
// Lines past the declared count are ignored.
func ReadManifest(r io.Reader) ([]ManifestEntry, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read manifest: %w", err)
		}
		return nil, fmt.Errorf("%w: empty manifest", errs.ErrFormat)
	}

	count, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: invalid manifest record count %q", errs.ErrFormat, sc.Text())
	}

	entries := make([]ManifestEntry, 0, count)
	for i := 0; i < count; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("failed to read manifest: %w", err)
			}
			return nil, fmt.Errorf("%w: manifest declares %d records, found %d",
				errs.ErrIndexOutOfRange, count, i)
		}

		line := strings.TrimRight(sc.Text(), "\r")
		name, ext, ok := strings.Cut(line, manifestSeparator)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: malformed manifest line %d: %q", errs.ErrFormat, i+2, line)
		}
		if ext == ManifestNullExtension {
			ext = ""
		}

		entries = append(entries, ManifestEntry{Name: name, Extension: ext})
	}

	return entries, nil
}
