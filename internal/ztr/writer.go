package ztr

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/ossyrian/fabulanova/internal/errs"
	"github.com/ossyrian/fabulanova/internal/game"
)

// Options controls how a ZTR file is written.
type Options struct {
	// Compress byte-pair encodes each chunk. Otherwise chunks are stored
	// with an empty dictionary.
	Compress bool
}

// Writer serializes entries into the ZTR layout.
type Writer struct {
	opts   Options
	logger *slog.Logger
}

// NewWriter returns a Writer. A nil logger discards output.
func NewWriter(opts Options, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Writer{opts: opts, logger: logger}
}

// Write encodes entries for game g and writes them to w.
func (zw *Writer) Write(w io.Writer, entries []Entry, g game.Code) error {
	raw := make([]RawEntry, len(entries))
	for i, e := range entries {
		raw[i] = RawEntry{ID: e.ID, Data: Encode(e.Text, g)}
	}
	return zw.WriteRaw(w, raw)
}

// WriteRaw writes entries whose text is already in game encoding. A
// missing 00 00 terminator is added.
func (zw *Writer) WriteRaw(w io.Writer, entries []RawEntry) error {
	if uint64(len(entries)) > math.MaxUint32 {
		return fmt.Errorf("too many lines: %d", len(entries))
	}

	var ids, lines []byte
	starts := make([]int, len(entries))
	for i, e := range entries {
		ids = appendID(ids, e.ID)
		starts[i] = len(lines)
		lines = append(lines, terminate(e.Data)...)
	}

	lineChunks, infos, err := zw.buildLineChunks(lines, starts)
	if err != nil {
		return err
	}

	var idBlobs []byte
	for off := 0; off < len(ids); off += ChunkSize {
		idBlobs = append(idBlobs, zw.pack(ids[off:min(off+ChunkSize, len(ids))])...)
	}

	out := make([]byte, HeaderSize, HeaderSize+4*(len(lineChunks)+1)+lineInfoSize*len(infos)+len(idBlobs))
	binary.BigEndian.PutUint64(out[0:], Magic)
	binary.BigEndian.PutUint32(out[8:], uint32(len(entries)))
	binary.BigEndian.PutUint32(out[12:], uint32(len(ids)))
	binary.BigEndian.PutUint32(out[16:], uint32(len(lineChunks)+1))

	var sectionSize uint32
	out = binary.BigEndian.AppendUint32(out, 0)
	for _, chunk := range lineChunks {
		sectionSize += uint32(len(chunk))
		out = binary.BigEndian.AppendUint32(out, sectionSize)
	}
	for _, info := range infos {
		out = append(out, info.Chunk, info.Skip)
		out = binary.BigEndian.AppendUint16(out, info.Pos)
	}
	out = append(out, idBlobs...)

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write ZTR tables: %w", err)
	}
	for i, chunk := range lineChunks {
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("failed to write line chunk %d: %w", i, err)
		}
	}

	zw.logger.Info("wrote text",
		"line_count", len(entries),
		"chunk_count", len(lineChunks),
		"size", len(out)+int(sectionSize),
	)

	return nil
}

// buildLineChunks splits the line stream into ChunkSize pieces, packs
// each one and locates every line start inside the packed payloads.
func (zw *Writer) buildLineChunks(lines []byte, starts []int) ([][]byte, []LineInfo, error) {
	count := (len(lines) + ChunkSize - 1) / ChunkSize
	if count > maxLineChunks {
		return nil, nil, fmt.Errorf("%w: %d bytes of text need %d chunks, limit is %d",
			errs.ErrFormat, len(lines), count, maxLineChunks)
	}

	chunks := make([][]byte, count)
	infos := make([]LineInfo, len(starts))
	next := 0

	for c := range count {
		base := c * ChunkSize
		raw := lines[base:min(base+ChunkSize, len(lines))]

		first := next
		for next < len(starts) && starts[next] < base+len(raw) {
			next++
		}
		local := make([]int, next-first)
		for i := range local {
			local[i] = starts[first+i] - base
		}

		blob := zw.pack(raw)
		chunkInfos, ok := locate(blob, local)
		if !ok {
			zw.logger.Debug("line start too deep in a page, storing chunk uncompressed", "chunk", c)
			blob = store(raw)
			chunkInfos, _ = locate(blob, local)
		}
		for i, info := range chunkInfos {
			info.Chunk = uint8(c)
			infos[first+i] = info
		}
		chunks[c] = blob

		zw.logger.Debug("packed line chunk",
			"chunk", c,
			"lines", len(local),
			"size", len(raw),
			"packed_size", len(blob),
		)
	}
	return chunks, infos, nil
}

// locate maps ascending decompressed offsets to payload positions. It
// fails when a start lies more than 255 bytes into an expansion.
func locate(blob []byte, offsets []int) ([]LineInfo, bool) {
	d, payload, err := parseDictionary(blob)
	if err != nil {
		return nil, false
	}

	infos := make([]LineInfo, len(offsets))
	i, at := 0, 0
	for pos, b := range payload {
		n := len(d.expand(b))
		for i < len(offsets) && offsets[i] < at+n {
			skip := offsets[i] - at
			if skip > math.MaxUint8 {
				return nil, false
			}
			infos[i] = LineInfo{Skip: uint8(skip), Pos: uint16(pos)}
			i++
		}
		at += n
	}
	return infos, i == len(offsets)
}

func (zw *Writer) pack(data []byte) []byte {
	if zw.opts.Compress {
		return Compress(data)
	}
	return store(data)
}

// store wraps data as a blob with an empty dictionary.
func store(data []byte) []byte {
	out := make([]byte, dictLenSize, dictLenSize+len(data))
	return append(out, data...)
}

// terminate returns data ending in exactly one 00 00 terminator,
// reusing a trailing 00 when present.
func terminate(data []byte) []byte {
	n := len(data)
	switch {
	case n >= 2 && data[n-2] == 0 && data[n-1] == 0:
		return data
	case n >= 1 && data[n-1] == 0:
		return append(data[:n:n], 0)
	default:
		return append(data[:n:n], 0, 0)
	}
}

// appendID appends id and its null terminator.
func appendID(buf []byte, id string) []byte {
	buf = append(buf, id...)
	return append(buf, 0)
}

// Write encodes entries for game g into w.
func Write(w io.Writer, entries []Entry, g game.Code, opts Options, logger *slog.Logger) error {
	return NewWriter(opts, logger).Write(w, entries, g)
}
