// Package wbt reads and rebuilds WhiteBin archives: a filelist that
// indexes every file, and a container blob holding the (optionally
// zlib-compressed) file data at 2048-byte sector offsets.
package wbt

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/ossyrian/fabulanova/internal/errs"
)

const (
	// SectorSize is the container alignment; filelist offsets count sectors.
	SectorSize = 2048

	// EncryptedMagic marks an encrypted FF13-2/LR filelist (u32 LE at offset 20).
	EncryptedMagic = 0x1DE03478

	// EncryptionHeaderSize is the plaintext prefix of an encrypted filelist.
	EncryptionHeaderSize = 32

	filelistHeaderSize = 12
	entrySize          = 8
	chunkInfoSize      = 12

	// continuationFlag is set on FF13-2/LR path positions.
	continuationFlag = 0x8000

	endMarker = "end\x00"
)

// ErrInvalidPathString is returned for a filelist path string that is
// not "sector:uncompressed:compressed:path" in hex.
var ErrInvalidPathString = fmt.Errorf("%w: invalid path string", errs.ErrFormat)

// Entry is one resolved filelist entry.
type Entry struct {
	Index    int
	FileCode uint32
	Chunk    uint32
	TypeID   uint8 // FF13-2/LR only

	Offset           uint64
	UncompressedSize uint32
	CompressedSize   uint32

	// Path is the virtual path inside the archive, '/' separated.
	Path string

	// PathString is the raw "sector:usize:csize:path" text from the filelist.
	PathString string

	pos uint32 // path string position within its chunk
}

// Name is the base name of the entry's path.
func (e Entry) Name() string {
	return path.Base(e.Path)
}

// Compressed reports whether the stored data is zlib-compressed.
func (e Entry) Compressed() bool {
	return e.CompressedSize != e.UncompressedSize
}

// parsePathString splits "hexSector:hexUncompressed:hexCompressed:path".
// The path itself may contain ':'.
func parsePathString(s string) (offset uint64, usize, csize uint32, p string, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 4 {
		return 0, 0, 0, "", fmt.Errorf("%w: %q", ErrInvalidPathString, s)
	}

	sector, err := strconv.ParseUint(parts[0], 16, 64)
	if err != nil {
		return 0, 0, 0, "", fmt.Errorf("%w: bad sector in %q", ErrInvalidPathString, s)
	}
	u, err := strconv.ParseUint(parts[1], 16, 32)
	if err != nil {
		return 0, 0, 0, "", fmt.Errorf("%w: bad uncompressed size in %q", ErrInvalidPathString, s)
	}
	c, err := strconv.ParseUint(parts[2], 16, 32)
	if err != nil {
		return 0, 0, 0, "", fmt.Errorf("%w: bad compressed size in %q", ErrInvalidPathString, s)
	}

	return sector * SectorSize, uint32(u), uint32(c), strings.Join(parts[3:], ":"), nil
}

func formatPathString(sector uint64, usize, csize uint32, p string) string {
	return fmt.Sprintf("%x:%x:%x:%s", sector, usize, csize, p)
}

// normalizeArchivePath is the form used for path lookups.
func normalizeArchivePath(p string) string {
	return strings.ToLower(strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "/"))
}
