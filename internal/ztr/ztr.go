// Package ztr reads and writes ZTR text resources.
//
// A ZTR file holds a list of (id, text) entries. Ids are UTF-8
// strings; text is Shift-JIS mixed with game control codes. Both are
// stored in 4096-byte chunks, each compressed with a byte-pair
// dictionary:
//
//	header        magic u64 = 1, line_count u32, ids_size u32, offsets_count u32
//	chunk offsets offsets_count x u32, relative to the line data section
//	line infos    line_count x {chunk u8, skip u8, pos u16}
//	id chunks     ceil(ids_size/4096) compressed blobs
//	line chunks   offsets_count-1 compressed blobs
//
// All integers are big-endian.
package ztr

const (
	// Magic is the first header field of every ZTR file.
	Magic = 1

	// HeaderSize is the size of the fixed file header.
	HeaderSize = 20

	// ChunkSize is the decompressed size of every id and line chunk but
	// the last.
	ChunkSize = 4096

	lineInfoSize = 4

	// maxLineChunks is bounded by the u8 chunk field of LineInfo.
	maxLineChunks = 256
)

// Header is the fixed ZTR file header.
type Header struct {
	Magic        uint64
	LineCount    uint32
	IDsSize      uint32 // decompressed size of the id section
	OffsetsCount uint32 // line chunk count + 1
}

// LineInfo locates the start of a line in the compressed line chunks.
type LineInfo struct {
	Chunk uint8
	// Skip is the number of bytes to drop from the first dictionary
	// expansion when a line starts inside one.
	Skip uint8
	// Pos is the offset of the line's first byte in the chunk payload,
	// after the dictionary.
	Pos uint16
}

// Entry is one decoded text entry.
type Entry struct {
	ID   string
	Text string
}

// RawEntry is one entry with its text still in game encoding, including
// the 00 00 terminator.
type RawEntry struct {
	ID   string
	Data []byte
}
