// Package binio holds the small binary field helpers shared by the
// package and text readers.
package binio

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// ReadFixedString reads a width-byte field and returns it with the
// trailing null padding removed.
func ReadFixedString(r io.Reader, width int) (string, error) {
	buf := make([]byte, width)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("failed to read %d-byte string field: %w", width, err)
	}
	return strings.TrimRight(string(buf), "\x00"), nil
}

// FixedString returns s truncated or null-padded to exactly width bytes.
// Truncation is byte-wise and silent.
func FixedString(s string, width int) []byte {
	buf := make([]byte, width)
	copy(buf, s)
	return buf
}

// ReadUint32BE reads one big-endian uint32.
func ReadUint32BE(r io.Reader) (uint32, error) {
	var v uint32
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// PatchUint32BE writes v at absolute offset off, then restores the
// stream position to where it was before the call.
func PatchUint32BE(w io.WriteSeeker, off int64, v uint32) (err error) {
	pos, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("failed to get current position: %w", err)
	}
	defer func() {
		if _, seekErr := w.Seek(pos, io.SeekStart); seekErr != nil && err == nil {
			err = fmt.Errorf("failed to seek back: %w", seekErr)
		}
	}()

	if _, err := w.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to patch offset %d: %w", off, err)
	}
	if err := binary.Write(w, binary.BigEndian, v); err != nil {
		return fmt.Errorf("failed to patch value at %d: %w", off, err)
	}
	return nil
}

// PadTo returns the number of zero bytes needed to bring n up to a
// multiple of align.
func PadTo(n int64, align int64) int64 {
	if rem := n % align; rem != 0 {
		return align - rem
	}
	return 0
}
