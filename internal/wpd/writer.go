package wpd

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/ossyrian/fabulanova/internal/binio"
)

// Write serializes records to w starting at offset 0.
//
// The header and offset table are written first with zeroed offset and
// size fields; each field is patched once its record's data has been
// appended. w should be empty, since nothing past the written data is
// truncated.
func Write(w io.WriteSeeker, records []Record, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if uint64(len(records)) > math.MaxUint32 {
		return fmt.Errorf("too many records: %d", len(records))
	}

	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to start: %w", err)
	}

	header := binio.FixedString(Magic, HeaderSize)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binio.PatchUint32BE(w, 4, uint32(len(records))); err != nil {
		return fmt.Errorf("failed to write record count: %w", err)
	}

	for i, rec := range records {
		block := make([]byte, 0, RecordHeaderSize)
		block = append(block, binio.FixedString(rec.Name, NameWidth)...)
		block = append(block, make([]byte, 8)...) // offset + size placeholders
		block = append(block, binio.FixedString(rec.Extension, ExtensionWidth)...)

		if _, err := w.Write(block); err != nil {
			return fmt.Errorf("failed to write record header %d: %w", i, err)
		}
	}

	pos := int64(HeaderSize) + int64(len(records))*RecordHeaderSize
	for i, rec := range records {
		start := pos
		if start > math.MaxUint32 || uint64(len(rec.Data)) > math.MaxUint32 {
			return fmt.Errorf("record %s does not fit a 32-bit offset table", rec.Name)
		}

		if _, err := w.Write(rec.Data); err != nil {
			return fmt.Errorf("failed to write %s data: %w", rec.Name, err)
		}
		pos += int64(len(rec.Data))

		if pad := binio.PadTo(pos, DataAlignment); pad > 0 {
			if _, err := w.Write(make([]byte, pad)); err != nil {
				return fmt.Errorf("failed to pad %s data: %w", rec.Name, err)
			}
			pos += pad
		}

		fieldOffset := int64(HeaderSize) + int64(i)*RecordHeaderSize + NameWidth
		if err := binio.PatchUint32BE(w, fieldOffset, uint32(start)); err != nil {
			return fmt.Errorf("failed to patch %s offset: %w", rec.Name, err)
		}
		if err := binio.PatchUint32BE(w, fieldOffset+4, uint32(len(rec.Data))); err != nil {
			return fmt.Errorf("failed to patch %s size: %w", rec.Name, err)
		}

		logger.Debug("wrote record",
			"index", i,
			"name", rec.Name,
			"extension", rec.Extension,
			"offset", start,
			"size", len(rec.Data),
		)
	}

	logger.Info("wrote package", "record_count", len(records), "size", pos)

	return nil
}
