package ztr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/ossyrian/fabulanova/internal/binio"
	"github.com/ossyrian/fabulanova/internal/errs"
	"github.com/ossyrian/fabulanova/internal/game"
)

// Reader parses a ZTR file held in memory.
type Reader struct {
	data   []byte
	logger *slog.Logger
	header *Header // set by ReadHeader
}

// NewReader reads all of r. A nil logger discards output.
func NewReader(r io.Reader, logger *slog.Logger) (*Reader, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read ZTR data: %w", err)
	}
	return &Reader{data: data, logger: logger}, nil
}

// ReadHeader parses the file header and checks that the offset and
// line tables fit.
func (r *Reader) ReadHeader() (*Header, error) {
	if len(r.data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for a ZTR header",
			errs.ErrFormat, len(r.data))
	}

	br := bytes.NewReader(r.data[:HeaderSize])
	h := &Header{}
	if err := binary.Read(br, binary.BigEndian, &h.Magic); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	for _, field := range []*uint32{&h.LineCount, &h.IDsSize, &h.OffsetsCount} {
		v, err := binio.ReadUint32BE(br)
		if err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		*field = v
	}

	if h.Magic != Magic {
		return nil, fmt.Errorf("%w: invalid ZTR magic %#x", errs.ErrFormat, h.Magic)
	}
	if h.OffsetsCount == 0 && h.LineCount > 0 {
		return nil, fmt.Errorf("%w: %d lines but no line chunks", errs.ErrFormat, h.LineCount)
	}
	if end := r.tablesEnd(h); end > int64(len(r.data)) {
		return nil, fmt.Errorf("%w: tables need %d bytes, file has %d",
			errs.ErrFormat, end, len(r.data))
	}

	r.logger.Debug("header is valid",
		"line_count", h.LineCount,
		"ids_size", h.IDsSize,
		"chunk_count", max(int(h.OffsetsCount)-1, 0),
	)

	r.header = h
	return h, nil
}

func (r *Reader) tablesEnd(h *Header) int64 {
	return HeaderSize + int64(h.OffsetsCount)*4 + int64(h.LineCount)*lineInfoSize
}

// ReadRaw returns every entry with its text still in game encoding.
func (r *Reader) ReadRaw() ([]RawEntry, error) {
	if r.header == nil {
		if _, err := r.ReadHeader(); err != nil {
			return nil, err
		}
	}
	h := r.header

	pos := HeaderSize
	offsets := make([]uint32, h.OffsetsCount)
	for i := range offsets {
		offsets[i] = binary.BigEndian.Uint32(r.data[pos:])
		pos += 4
	}
	infos := make([]LineInfo, h.LineCount)
	for i := range infos {
		infos[i] = LineInfo{
			Chunk: r.data[pos],
			Skip:  r.data[pos+1],
			Pos:   binary.BigEndian.Uint16(r.data[pos+2:]),
		}
		pos += lineInfoSize
	}

	ids, n, err := r.readIDs(pos, int(h.LineCount))
	if err != nil {
		return nil, err
	}
	pos += n

	chunks, err := splitChunks(r.data[pos:], offsets)
	if err != nil {
		return nil, err
	}

	entries := make([]RawEntry, 0, len(infos))
	for i, info := range infos {
		line, terminated, err := readLine(chunks, info)
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d (%s): %w", i, ids[i], err)
		}
		if !terminated {
			r.logger.Warn("line runs to end of data without terminator", "index", i, "id", ids[i])
		}
		entries = append(entries, RawEntry{ID: ids[i], Data: line})

		r.logger.Debug("read line",
			"index", i,
			"id", ids[i],
			"chunk", info.Chunk,
			"pos", info.Pos,
			"size", len(line),
		)
	}

	r.logger.Info("read text", "line_count", len(entries))

	return entries, nil
}

// Read returns every entry decoded for game g.
func (r *Reader) Read(g game.Code) ([]Entry, error) {
	raw, err := r.ReadRaw()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(raw))
	for i, e := range raw {
		entries[i] = Entry{ID: e.ID, Text: Decode(e.Data, g)}
	}
	return entries, nil
}

// readIDs decompresses the id section starting at pos and returns count
// ids along with the section's stored size.
func (r *Reader) readIDs(pos, count int) ([]string, int, error) {
	var (
		section   []byte
		remaining = int(r.header.IDsSize)
		start     = pos
	)
	for remaining > 0 {
		want := min(remaining, ChunkSize)
		out, n, err := expandChunk(r.data[pos:], want)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read id chunk at %d: %w", pos, err)
		}
		section = append(section, out...)
		remaining -= want
		pos += n
	}

	ids := make([]string, 0, count)
	for len(ids) < count {
		if len(section) == 0 {
			return nil, 0, fmt.Errorf("%w: id section holds %d ids, need %d",
				errs.ErrFormat, len(ids), count)
		}
		raw, rest, _ := bytes.Cut(section, []byte{0})
		if !utf8.Valid(raw) {
			return nil, 0, fmt.Errorf("%w: id %d is not valid UTF-8: %q", errs.ErrFormat, len(ids), raw)
		}
		ids = append(ids, string(raw))
		section = rest
	}
	return ids, pos - start, nil
}

// expandChunk decompresses one blob at the start of data, stopping once
// want bytes have been produced, and returns the bytes and the blob's
// stored length.
func expandChunk(data []byte, want int) ([]byte, int, error) {
	d, payload, err := parseDictionary(data)
	if err != nil {
		return nil, 0, err
	}

	out := make([]byte, 0, want)
	used := 0
	for len(out) < want {
		if used == len(payload) {
			return nil, 0, fmt.Errorf("%w: chunk ends after %d of %d bytes",
				errs.ErrFormat, len(out), want)
		}
		out = append(out, d.expand(payload[used])...)
		used++
	}
	if len(out) != want {
		return nil, 0, fmt.Errorf("%w: chunk expands past %d bytes", errs.ErrFormat, want)
	}
	return out, len(data) - len(payload) + used, nil
}

type lineChunk struct {
	dict    *dictionary
	payload []byte
}

// splitChunks parses the line section into its compressed chunks.
func splitChunks(section []byte, offsets []uint32) ([]lineChunk, error) {
	if len(offsets) == 0 {
		return nil, nil
	}
	chunks := make([]lineChunk, 0, len(offsets)-1)
	for i := 0; i+1 < len(offsets); i++ {
		start, end := offsets[i], offsets[i+1]
		if start > end || uint64(end) > uint64(len(section)) {
			return nil, fmt.Errorf("%w: line chunk %d spans [%d, %d), section has %d bytes",
				errs.ErrFormat, i, start, end, len(section))
		}
		d, payload, err := parseDictionary(section[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to read line chunk %d: %w", i, err)
		}
		chunks = append(chunks, lineChunk{dict: d, payload: payload})
	}
	return chunks, nil
}

// readLine streams expanded bytes from info's position until a 00 00
// terminator, moving on to the following chunks as each one runs out.
func readLine(chunks []lineChunk, info LineInfo) ([]byte, bool, error) {
	c, pos := int(info.Chunk), int(info.Pos)
	if c >= len(chunks) || pos >= len(chunks[c].payload) {
		return nil, false, fmt.Errorf("%w: line starts at chunk %d pos %d outside the data",
			errs.ErrFormat, c, pos)
	}

	var line []byte
	prev := byte(0xFF)
	skip := int(info.Skip)

	for ; c < len(chunks); c, pos = c+1, 0 {
		ch := chunks[c]
		for ; pos < len(ch.payload); pos++ {
			b := ch.payload[pos]
			exp := ch.dict.expand(b)
			if skip > 0 {
				if ch.dict.defined[b] {
					if skip >= len(exp) {
						return nil, false, fmt.Errorf("%w: skip %d past a %d-byte expansion",
							errs.ErrFormat, skip, len(exp))
					}
					exp = exp[skip:]
				}
				skip = 0
			}
			for _, x := range exp {
				line = append(line, x)
				if prev == 0 && x == 0 {
					return line, true, nil
				}
				prev = x
			}
		}
	}
	return line, false, nil
}

// Read parses a whole ZTR stream and decodes it for game g.
func Read(r io.Reader, g game.Code, logger *slog.Logger) ([]Entry, error) {
	zr, err := NewReader(r, logger)
	if err != nil {
		return nil, err
	}
	return zr.Read(g)
}

// ReadRaw parses a whole ZTR stream without decoding the text.
func ReadRaw(r io.Reader, logger *slog.Logger) ([]RawEntry, error) {
	zr, err := NewReader(r, logger)
	if err != nil {
		return nil, err
	}
	return zr.ReadRaw()
}
