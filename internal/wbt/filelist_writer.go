package wbt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ossyrian/fabulanova/internal/errs"
	"github.com/ossyrian/fabulanova/internal/game"
)

// Write serializes the filelist. Path chunks are rebuilt from each
// entry's PathString in entry order and positions are recomputed.
func (fl *Filelist) Write(w io.Writer) error {
	chunks, err := fl.buildChunks()
	if err != nil {
		return err
	}

	var info, data bytes.Buffer
	for i, chunk := range chunks {
		packed, err := deflate(chunk)
		if err != nil {
			return fmt.Errorf("path chunk %d: %w", i, err)
		}

		var ci [chunkInfoSize]byte
		binary.LittleEndian.PutUint32(ci[0:4], uint32(len(chunk)))
		binary.LittleEndian.PutUint32(ci[4:8], uint32(len(packed)))
		binary.LittleEndian.PutUint32(ci[8:12], uint32(data.Len()))
		info.Write(ci[:])
		data.Write(packed)
	}

	infoOff := filelistHeaderSize + len(fl.Entries)*entrySize
	dataOff := infoOff + info.Len()

	body := make([]byte, 0, dataOff+data.Len())
	body = binary.LittleEndian.AppendUint32(body, uint32(infoOff))
	body = binary.LittleEndian.AppendUint32(body, uint32(dataOff))
	body = binary.LittleEndian.AppendUint32(body, uint32(len(fl.Entries)))

	for i, e := range fl.Entries {
		body = binary.LittleEndian.AppendUint32(body, e.FileCode)
		if fl.game == game.FF13_1 {
			body = binary.LittleEndian.AppendUint16(body, uint16(e.Chunk))
			body = binary.LittleEndian.AppendUint16(body, uint16(e.pos))
			continue
		}

		pos := uint16(e.pos)
		if fl.continued[i] {
			pos += continuationFlag
		}
		body = binary.LittleEndian.AppendUint16(body, pos)
		body = append(body, byte(e.Chunk), e.TypeID)
	}

	body = append(body, info.Bytes()...)
	body = append(body, data.Bytes()...)

	if fl.Encrypted() {
		body = encryptFilelist(fl.encryptionHeader, body)
	}

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write filelist: %w", err)
	}

	fl.logger.Info("wrote filelist",
		"entries", len(fl.Entries),
		"chunks", len(chunks),
		"encrypted", fl.Encrypted(),
		"size", len(body),
	)
	return nil
}

// WriteFile writes the filelist to path, replacing it.
func (fl *Filelist) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create filelist: %w", err)
	}
	if err := fl.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// buildChunks lays out every path string in its chunk and records the
// new positions on the entries.
func (fl *Filelist) buildChunks() ([][]byte, error) {
	maxPos := uint32(math.MaxUint16)
	if fl.game != game.FF13_1 {
		maxPos = continuationFlag - 1
	}

	count := fl.chunkCount
	for i, e := range fl.Entries {
		count = max(count, int(e.Chunk)+1)

		// Chunk numbers of these variants are implied by position resets,
		// so entries must walk the chunks in order.
		if fl.game != game.FF13_1 && i > 0 && e.Chunk != fl.Entries[i-1].Chunk &&
			e.Chunk != fl.Entries[i-1].Chunk+1 {
			return nil, fmt.Errorf("%w: entry %d jumps from chunk %d to %d",
				errs.ErrFormat, i, fl.Entries[i-1].Chunk, e.Chunk)
		}
	}
	if fl.game != game.FF13_1 && len(fl.Entries) > 0 && fl.Entries[0].Chunk != 0 {
		return nil, fmt.Errorf("%w: first entry is in chunk %d, expected 0",
			errs.ErrFormat, fl.Entries[0].Chunk)
	}

	chunks := make([][]byte, count)
	for i := range fl.Entries {
		e := &fl.Entries[i]
		pos := len(chunks[e.Chunk])
		if uint64(pos) > uint64(maxPos) {
			return nil, fmt.Errorf("%w: entry %d path position %d exceeds %d",
				errs.ErrFormat, i, pos, maxPos)
		}
		e.pos = uint32(pos)
		chunks[e.Chunk] = append(chunks[e.Chunk], e.PathString...)
		chunks[e.Chunk] = append(chunks[e.Chunk], 0)
	}

	if n := len(fl.Entries); n > 0 {
		last := fl.Entries[n-1].Chunk
		chunks[last] = append(chunks[last], endMarker...)
	}

	fl.chunkCount = count
	return chunks, nil
}
