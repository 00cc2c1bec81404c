package wbt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ossyrian/fabulanova/internal/errs"
	"github.com/ossyrian/fabulanova/internal/game"
)

// Filelist is the parsed index of a WhiteBin container.
type Filelist struct {
	Entries []Entry

	game       game.Code
	chunkCount int
	continued  []bool // FF13-2/LR raw position flag, per entry

	// encryptionHeader is the 32-byte plaintext prefix read from an
	// encrypted filelist, nil for plain ones.
	encryptionHeader []byte

	logger *slog.Logger
}

// NewFilelist builds a plain filelist from entries. Only Chunk, FileCode,
// TypeID and PathString are read from each entry; the location fields
// are parsed from PathString.
func NewFilelist(g game.Code, entries []Entry, logger *slog.Logger) (*Filelist, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	chunks := 0
	for i := range entries {
		e := &entries[i]
		e.Index = i
		chunks = max(chunks, int(e.Chunk)+1)

		var err error
		e.Offset, e.UncompressedSize, e.CompressedSize, e.Path, err = parsePathString(e.PathString)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return &Filelist{
		Entries:    entries,
		game:       g,
		chunkCount: chunks,
		continued:  make([]bool, len(entries)),
		logger:     logger,
	}, nil
}

// OpenFilelist reads the filelist at path.
func OpenFilelist(path string, g game.Code) (*Filelist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open filelist: %w", err)
	}
	defer f.Close()

	return ReadFilelist(f, g, slog.With("file", path))
}

// ReadFilelist parses a filelist, decrypting it first when it is an
// encrypted FF13-2/LR filelist. A nil logger discards output.
func ReadFilelist(r io.Reader, g game.Code, logger *slog.Logger) (*Filelist, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read filelist: %w", err)
	}

	fl := &Filelist{game: g, logger: logger}

	body := data
	if g.HasEncryptedFilelists() && isEncrypted(data) {
		logger.Debug("decrypting filelist", "size", len(data))

		var verified bool
		body, verified, err = decryptFilelist(data)
		if err != nil {
			return nil, err
		}
		if !verified {
			logger.Warn("filelist footer does not match decrypted body")
		}
		fl.encryptionHeader = bytes.Clone(data[:EncryptionHeaderSize])
	}

	if len(body) < filelistHeaderSize {
		return nil, fmt.Errorf("%w: filelist too small: %d bytes", errs.ErrFormat, len(body))
	}

	infoOff := binary.LittleEndian.Uint32(body[0:4])
	dataOff := binary.LittleEndian.Uint32(body[4:8])
	total := binary.LittleEndian.Uint32(body[8:12])

	logger.Debug("filelist header",
		"chunk_info_offset", infoOff,
		"chunk_data_offset", dataOff,
		"total_files", total,
	)

	if end := uint64(filelistHeaderSize) + uint64(total)*entrySize; end > uint64(len(body)) {
		return nil, fmt.Errorf("%w: %d entries need %d bytes, filelist has %d",
			errs.ErrFormat, total, end, len(body))
	}
	if infoOff > dataOff || uint64(dataOff) > uint64(len(body)) {
		return nil, fmt.Errorf("%w: chunk table [%d, %d) outside filelist of %d bytes",
			errs.ErrFormat, infoOff, dataOff, len(body))
	}

	if err := fl.readEntries(body[filelistHeaderSize:], int(total)); err != nil {
		return nil, err
	}

	chunks, err := readChunks(body, infoOff, dataOff)
	if err != nil {
		return nil, err
	}
	fl.chunkCount = len(chunks)

	for i := range fl.Entries {
		if err := fl.resolve(&fl.Entries[i], chunks); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	logger.Info("read filelist",
		"entries", len(fl.Entries),
		"chunks", len(chunks),
		"encrypted", fl.Encrypted(),
	)

	return fl, nil
}

func (fl *Filelist) readEntries(table []byte, total int) error {
	fl.Entries = make([]Entry, total)
	fl.continued = make([]bool, total)

	// FF13-2/LR entries carry no usable chunk number; it advances every
	// time a position restarts at zero.
	chunk := -1

	for i := 0; i < total; i++ {
		raw := table[i*entrySize : (i+1)*entrySize]
		e := &fl.Entries[i]
		e.Index = i
		e.FileCode = binary.LittleEndian.Uint32(raw[0:4])

		if fl.game == game.FF13_1 {
			e.Chunk = uint32(binary.LittleEndian.Uint16(raw[4:6]))
			e.pos = uint32(binary.LittleEndian.Uint16(raw[6:8]))
			continue
		}

		pos := uint32(binary.LittleEndian.Uint16(raw[4:6]))
		e.TypeID = raw[7]
		fl.continued[i] = pos >= continuationFlag

		switch {
		case pos == 0:
			chunk++
		case pos == continuationFlag:
			chunk++
			pos = 0
		case pos > continuationFlag:
			pos -= continuationFlag
		}
		if chunk < 0 {
			return fmt.Errorf("%w: entry %d has position %d before any chunk start",
				errs.ErrFormat, i, pos)
		}

		e.Chunk = uint32(chunk)
		e.pos = pos
	}
	return nil
}

func readChunks(body []byte, infoOff, dataOff uint32) ([][]byte, error) {
	count := int(dataOff-infoOff) / chunkInfoSize
	chunks := make([][]byte, 0, count)

	for i := 0; i < count; i++ {
		info := body[int(infoOff)+i*chunkInfoSize:]
		csize := binary.LittleEndian.Uint32(info[4:8])
		start := uint64(dataOff) + uint64(binary.LittleEndian.Uint32(info[8:12]))

		if start+uint64(csize) > uint64(len(body)) {
			return nil, fmt.Errorf("%w: path chunk %d spans [%d, %d), filelist has %d bytes",
				errs.ErrFormat, i, start, start+uint64(csize), len(body))
		}

		chunk, err := inflateAll(body[start : start+uint64(csize)])
		if err != nil {
			return nil, fmt.Errorf("path chunk %d: %w", i, err)
		}
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// resolve fills in the location fields of e from its path string.
func (fl *Filelist) resolve(e *Entry, chunks [][]byte) error {
	if int(e.Chunk) >= len(chunks) {
		return fmt.Errorf("%w: chunk %d, filelist has %d", errs.ErrFormat, e.Chunk, len(chunks))
	}

	chunk := chunks[e.Chunk]
	if int(e.pos) >= len(chunk) {
		return fmt.Errorf("%w: path position %d past end of chunk %d (%d bytes)",
			errs.ErrFormat, e.pos, e.Chunk, len(chunk))
	}

	s := chunk[e.pos:]
	if n := bytes.IndexByte(s, 0); n >= 0 {
		s = s[:n]
	}
	e.PathString = string(s)

	var err error
	e.Offset, e.UncompressedSize, e.CompressedSize, e.Path, err = parsePathString(e.PathString)
	return err
}

// Encrypted reports whether the filelist was read from (and will be
// written as) an encrypted filelist.
func (fl *Filelist) Encrypted() bool {
	return fl.encryptionHeader != nil
}

// SetEncryptionHeader makes the filelist encrypted on write, seeded from
// the first 16 bytes of header. Only FF13-2/LR filelists can be encrypted.
func (fl *Filelist) SetEncryptionHeader(header []byte) error {
	if !fl.game.HasEncryptedFilelists() {
		return fmt.Errorf("%w: %s filelists are never encrypted", errs.ErrFormat, fl.game)
	}
	if len(header) < 16 {
		return fmt.Errorf("%w: encryption header needs 16 bytes, got %d", errs.ErrFormat, len(header))
	}

	h := make([]byte, EncryptionHeaderSize)
	copy(h, header[:16])
	fl.encryptionHeader = h
	return nil
}

// Game is the variant the filelist was read for.
func (fl *Filelist) Game() game.Code {
	return fl.game
}

// FindByPath returns the entry whose path matches p, ignoring case and
// slash direction.
func (fl *Filelist) FindByPath(p string) (Entry, bool) {
	target := normalizeArchivePath(p)
	for _, e := range fl.Entries {
		if normalizeArchivePath(e.Path) == target {
			return e, true
		}
	}
	return Entry{}, false
}

// FindByDirectory returns the entries under dir.
func (fl *Filelist) FindByDirectory(dir string) []Entry {
	prefix := normalizeArchivePath(dir)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var matches []Entry
	for _, e := range fl.Entries {
		if strings.HasPrefix(normalizeArchivePath(e.Path), prefix) {
			matches = append(matches, e)
		}
	}
	return matches
}
