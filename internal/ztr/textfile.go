package ztr

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ossyrian/fabulanova/internal/game"
)

// TextSeparator divides an entry id from its text in exported files.
const TextSeparator = " |:| "

// WriteText writes entries as "id |:| text" lines.
func WriteText(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s%s%s\n", e.ID, TextSeparator, e.Text); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", e.ID, err)
		}
	}
	return bw.Flush()
}

// ParseText reads the format written by WriteText. A line without the
// separator continues the previous entry's text; lines before the
// first entry are ignored. Lines may end in "\n" or "\r\n".
func ParseText(r io.Reader) ([]Entry, error) {
	var entries []Entry

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if id, text, ok := strings.Cut(line, TextSeparator); ok {
			entries = append(entries, Entry{ID: id, Text: text})
			continue
		}
		if n := len(entries); n > 0 {
			entries[n-1].Text += "\n" + line
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}
	return entries, nil
}

// ExportFile decodes the ZTR file at ztrPath into a text file. A nil
// logger discards output.
func ExportFile(ztrPath, txtPath string, g game.Code, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("file", ztrPath)

	in, err := os.Open(ztrPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", ztrPath, err)
	}
	defer in.Close()

	entries, err := Read(in, g, logger)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ztrPath, err)
	}

	out, err := os.Create(txtPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", txtPath, err)
	}
	if err := WriteText(out, entries); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", txtPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", txtPath, err)
	}

	logger.Info("exported text", "output", txtPath, "line_count", len(entries))
	return nil
}

// ImportFile encodes the text file at txtPath into a ZTR file. A nil
// logger discards output.
func ImportFile(txtPath, ztrPath string, g game.Code, opts Options, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("file", txtPath)

	in, err := os.Open(txtPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", txtPath, err)
	}
	defer in.Close()

	entries, err := ParseText(in)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", txtPath, err)
	}

	out, err := os.Create(ztrPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", ztrPath, err)
	}
	if err := Write(out, entries, g, opts, logger); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", ztrPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", ztrPath, err)
	}

	logger.Info("imported text", "output", ztrPath, "line_count", len(entries))
	return nil
}
