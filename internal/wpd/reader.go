package wpd

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ossyrian/fabulanova/internal/binio"
	"github.com/ossyrian/fabulanova/internal/errs"
)

// Reader reads records from a WPD package.
type Reader struct {
	file   io.ReadSeeker
	logger *slog.Logger
	size   int64   // total stream length, used to bounds-check offsets
	header *Header // set by ReadHeader
}

// NewReader returns a Reader over file. A nil logger discards output.
func NewReader(file io.ReadSeeker, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{file: file, logger: logger}
}

// ReadHeader reads the 16-byte package header and checks that the
// offset table it announces fits inside the stream.
func (r *Reader) ReadHeader() (*Header, error) {
	size, err := r.file.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get package size: %w", err)
	}
	r.size = size

	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to header: %w", err)
	}

	var raw [HeaderSize]byte
	if _, err := io.ReadFull(r.file, raw[:]); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", errs.ErrFormat, err)
	}

	h := &Header{
		Magic:       strings.Trim(string(raw[:4]), "\x00"),
		RecordCount: binary.BigEndian.Uint32(raw[4:8]),
	}
	if h.Magic != Magic {
		return nil, fmt.Errorf("%w: invalid WPD magic: expected %q, got %q",
			errs.ErrFormat, Magic, h.Magic)
	}

	tableEnd := int64(HeaderSize) + int64(h.RecordCount)*RecordHeaderSize
	if tableEnd > r.size {
		return nil, fmt.Errorf("%w: %d record headers need %d bytes, package has %d",
			errs.ErrFormat, h.RecordCount, tableEnd, r.size)
	}

	r.logger.Debug("header is valid",
		"magic", h.Magic,
		"record_count", h.RecordCount,
	)

	r.header = h
	return h, nil
}

// ReadRecordHeader reads the offset table entry at the current position.
func (r *Reader) ReadRecordHeader() (*RecordHeader, error) {
	rh := &RecordHeader{}

	var err error
	if rh.Name, err = binio.ReadFixedString(r.file, NameWidth); err != nil {
		return nil, fmt.Errorf("failed to read record name: %w", err)
	}
	if rh.Offset, err = binio.ReadUint32BE(r.file); err != nil {
		return nil, fmt.Errorf("failed to read offset for %s: %w", rh.Name, err)
	}
	if rh.Size, err = binio.ReadUint32BE(r.file); err != nil {
		return nil, fmt.Errorf("failed to read size for %s: %w", rh.Name, err)
	}
	if rh.Extension, err = binio.ReadFixedString(r.file, ExtensionWidth); err != nil {
		return nil, fmt.Errorf("failed to read extension for %s: %w", rh.Name, err)
	}

	if end := int64(rh.Offset) + int64(rh.Size); end > r.size {
		return nil, fmt.Errorf("%w: record %s spans [%d, %d), package has %d bytes",
			errs.ErrFormat, rh.Name, rh.Offset, end, r.size)
	}

	return rh, nil
}

// ReadRecordHeaders reads the whole offset table.
func (r *Reader) ReadRecordHeaders() ([]RecordHeader, error) {
	if r.header == nil {
		if _, err := r.ReadHeader(); err != nil {
			return nil, err
		}
	}

	if _, err := r.file.Seek(HeaderSize, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to record table: %w", err)
	}

	headers := make([]RecordHeader, 0, r.header.RecordCount)
	for i := 0; i < int(r.header.RecordCount); i++ {
		rh, err := r.ReadRecordHeader()
		if err != nil {
			return nil, fmt.Errorf("failed to read record header %d: %w", i, err)
		}
		headers = append(headers, *rh)

		r.logger.Debug("read record header",
			"index", i,
			"name", rh.Name,
			"extension", rh.Extension,
			"offset", rh.Offset,
			"size", rh.Size,
		)
	}

	return headers, nil
}

// ReadRecords returns every record in offset table order.
func (r *Reader) ReadRecords() ([]Record, error) {
	headers, err := r.ReadRecordHeaders()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(headers))
	for _, rh := range headers {
		if _, err := r.file.Seek(int64(rh.Offset), io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to seek to %s data at offset %d: %w", rh.Name, rh.Offset, err)
		}

		data := make([]byte, rh.Size)
		if _, err := io.ReadFull(r.file, data); err != nil {
			return nil, fmt.Errorf("failed to read %s data: %w", rh.Name, err)
		}

		records = append(records, Record{
			Name:      rh.Name,
			Extension: rh.Extension,
			Data:      data,
		})
	}

	r.logger.Info("read package", "record_count", len(records))

	return records, nil
}

// Read parses a whole package from file.
func Read(file io.ReadSeeker, logger *slog.Logger) ([]Record, error) {
	return NewReader(file, logger).ReadRecords()
}
