package wbt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/ossyrian/fabulanova/internal/errs"
)

// inflate reads exactly size bytes of zlib output from r. Trailing
// compressed data or a bad checksum is an error.
func inflate(r io.Reader, size uint32) ([]byte, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecompression, err)
	}
	defer zr.Close()

	out := make([]byte, size)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, fmt.Errorf("%w: inflated fewer than %d bytes: %w", errs.ErrDecompression, size, err)
	}

	var extra [1]byte
	n, err := zr.Read(extra[:])
	if n > 0 {
		return nil, fmt.Errorf("%w: inflated more than %d bytes", errs.ErrDecompression, size)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecompression, err)
	}
	return out, nil
}

// inflateAll decompresses a whole zlib stream of unknown length.
func inflateAll(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecompression, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecompression, err)
	}
	return out, nil
}

func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("failed to deflate: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to deflate: %w", err)
	}
	return buf.Bytes(), nil
}
