package wbt

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/ossyrian/fabulanova/internal/errs"
)

// Container extracts entries from a WhiteBin container blob.
//
// A Container shares one read cursor across calls; extract from a single
// goroutine or give each goroutine its own Container.
type Container struct {
	file    io.ReadSeeker
	entries []Entry
	logger  *slog.Logger
}

// NewContainer returns a Container reading entries from file. A nil
// logger discards output.
func NewContainer(file io.ReadSeeker, entries []Entry, logger *slog.Logger) *Container {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Container{file: file, entries: entries, logger: logger}
}

// Len is the number of entries.
func (c *Container) Len() int {
	return len(c.entries)
}

// Entries returns the entries in filelist order.
func (c *Container) Entries() []Entry {
	return c.entries
}

// Extract returns the virtual path and the decompressed bytes of entry i.
func (c *Container) Extract(i int) (string, []byte, error) {
	if i < 0 || i >= len(c.entries) {
		return "", nil, fmt.Errorf("%w: entry %d, container has %d",
			errs.ErrIndexOutOfRange, i, len(c.entries))
	}
	e := c.entries[i]

	if e.Offset > uint64(1<<63-1) {
		return "", nil, fmt.Errorf("%w: entry %d offset %d", errs.ErrFormat, i, e.Offset)
	}
	if _, err := c.file.Seek(int64(e.Offset), io.SeekStart); err != nil {
		return "", nil, fmt.Errorf("failed to seek to %s at offset %d: %w", e.Path, e.Offset, err)
	}

	if !e.Compressed() {
		data := make([]byte, e.UncompressedSize)
		if _, err := io.ReadFull(c.file, data); err != nil {
			return "", nil, fmt.Errorf("failed to read %s: %w", e.Path, err)
		}
		c.logger.Debug("extracted entry", "index", i, "path", e.Path, "size", len(data))
		return e.Path, data, nil
	}

	packed := make([]byte, e.CompressedSize)
	if _, err := io.ReadFull(c.file, packed); err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", e.Path, err)
	}

	data, err := inflate(bytes.NewReader(packed), e.UncompressedSize)
	if err != nil {
		return "", nil, fmt.Errorf("failed to inflate %s: %w", e.Path, err)
	}

	c.logger.Debug("extracted entry",
		"index", i,
		"path", e.Path,
		"compressed_size", e.CompressedSize,
		"size", len(data),
	)
	return e.Path, data, nil
}
