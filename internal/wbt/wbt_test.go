package wbt_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/ossyrian/fabulanova/internal/errs"
	"github.com/ossyrian/fabulanova/internal/game"
	"github.com/ossyrian/fabulanova/internal/wbt"
)

type fixture struct {
	path     string
	data     []byte
	compress bool
}

var sampleFiles = []fixture{
	{"sys/script/a.txt", []byte("plain entry"), false},
	{"chr/pc/c000.trb", bytes.Repeat([]byte("lightning "), 50), true},
	{"chr/pc/c001.trb", bytes.Repeat([]byte("snow "), 40), true},
	{"sound/empty.bin", nil, false},
}

func deflateBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// buildEntries lays out files at sector boundaries in container and
// returns the matching filelist entries, all in chunk 0.
func buildEntries(t *testing.T, files []fixture, container *bytes.Buffer) []wbt.Entry {
	t.Helper()

	entries := make([]wbt.Entry, 0, len(files))
	for i, f := range files {
		for container.Len()%wbt.SectorSize != 0 {
			container.WriteByte(0)
		}
		sector := container.Len() / wbt.SectorSize

		stored := f.data
		if f.compress {
			stored = deflateBytes(t, f.data)
		}
		container.Write(stored)

		entries = append(entries, wbt.Entry{
			FileCode:   uint32(0xA000 + i),
			TypeID:     uint8(i),
			PathString: fmt.Sprintf("%x:%x:%x:%s", sector, len(f.data), len(stored), f.path),
		})
	}
	return entries
}

// buildArchive writes a filelist and container pair into a temp dir.
func buildArchive(t *testing.T, g game.Code, files []fixture) (filelistPath, containerPath string) {
	t.Helper()

	var container bytes.Buffer
	fl, err := wbt.NewFilelist(g, buildEntries(t, files, &container), nil)
	if err != nil {
		t.Fatalf("NewFilelist() error = %v", err)
	}

	dir := t.TempDir()
	filelistPath = filepath.Join(dir, "filelist.bin")
	containerPath = filepath.Join(dir, "white_img.bin")

	if err := fl.WriteFile(filelistPath); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.WriteFile(containerPath, container.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return filelistPath, containerPath
}

func openContainer(t *testing.T, filelistPath, containerPath string, g game.Code) *wbt.Container {
	t.Helper()

	fl, err := wbt.OpenFilelist(filelistPath, g)
	if err != nil {
		t.Fatalf("OpenFilelist() error = %v", err)
	}
	f, err := os.Open(containerPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })

	return wbt.NewContainer(f, fl.Entries, nil)
}

func TestFilelist_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		game      game.Code
		chunks    []uint32
		encrypted bool
	}{
		{"ff13-1 single chunk", game.FF13_1, []uint32{0, 0, 0, 0}, false},
		{"ff13-1 scattered chunks", game.FF13_1, []uint32{1, 0, 1, 0}, false},
		{"ff13-2 plain", game.FF13_2, []uint32{0, 0, 1, 1}, false},
		{"ff13-2 encrypted", game.FF13_2, []uint32{0, 1, 1, 2}, true},
		{"ff13-lr encrypted", game.FF13_3, []uint32{0, 0, 0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var container bytes.Buffer
			entries := buildEntries(t, sampleFiles, &container)
			for i := range entries {
				entries[i].Chunk = tt.chunks[i]
			}

			fl, err := wbt.NewFilelist(tt.game, entries, nil)
			if err != nil {
				t.Fatalf("NewFilelist() error = %v", err)
			}
			if tt.encrypted {
				if err := fl.SetEncryptionHeader([]byte("\x85\x01\x6b\x02\x03\x04\x05\x06\x07\xea\x08\x09\xb4\x0a\x0b\x0c")); err != nil {
					t.Fatalf("SetEncryptionHeader() error = %v", err)
				}
			}

			var buf bytes.Buffer
			if err := fl.Write(&buf); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			raw := buf.Bytes()
			gotMagic := len(raw) >= 24 && binary.LittleEndian.Uint32(raw[20:24]) == wbt.EncryptedMagic
			if gotMagic != tt.encrypted {
				t.Errorf("encryption magic present = %v, want %v", gotMagic, tt.encrypted)
			}

			got, err := wbt.ReadFilelist(bytes.NewReader(raw), tt.game, nil)
			if err != nil {
				t.Fatalf("ReadFilelist() error = %v", err)
			}
			if got.Encrypted() != tt.encrypted {
				t.Errorf("Encrypted() = %v, want %v", got.Encrypted(), tt.encrypted)
			}
			if len(got.Entries) != len(entries) {
				t.Fatalf("got %d entries, want %d", len(got.Entries), len(entries))
			}

			for i, want := range fl.Entries {
				e := got.Entries[i]
				if e.Index != i || e.FileCode != want.FileCode || e.Chunk != want.Chunk ||
					e.PathString != want.PathString || e.Path != want.Path ||
					e.Offset != want.Offset || e.UncompressedSize != want.UncompressedSize ||
					e.CompressedSize != want.CompressedSize {
					t.Errorf("entry %d = %+v, want %+v", i, e, want)
				}
				if tt.game != game.FF13_1 && e.TypeID != want.TypeID {
					t.Errorf("entry %d type = %d, want %d", i, e.TypeID, want.TypeID)
				}
			}

			// Rewriting what was read must reproduce the same plaintext.
			var again bytes.Buffer
			if err := got.Write(&again); err != nil {
				t.Fatalf("second Write() error = %v", err)
			}
			if !bytes.Equal(again.Bytes(), raw) {
				t.Error("rewriting a parsed filelist changed its bytes")
			}
		})
	}
}

func TestFilelist_EncryptedRejectedForFF131(t *testing.T) {
	fl, err := wbt.NewFilelist(game.FF13_1, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := fl.SetEncryptionHeader(make([]byte, 16)); !errors.Is(err, errs.ErrFormat) {
		t.Errorf("SetEncryptionHeader() error = %v, want ErrFormat", err)
	}
}

func TestNewFilelist_Errors(t *testing.T) {
	tests := []struct {
		name    string
		game    game.Code
		entries []wbt.Entry
		wantErr error
	}{
		{
			name:    "too few path parts",
			game:    game.FF13_1,
			entries: []wbt.Entry{{PathString: "0:1:1"}},
			wantErr: wbt.ErrInvalidPathString,
		},
		{
			name:    "bad hex",
			game:    game.FF13_1,
			entries: []wbt.Entry{{PathString: "0:xyz:1:a.bin"}},
			wantErr: wbt.ErrInvalidPathString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wbt.NewFilelist(tt.game, tt.entries, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, errs.ErrFormat) {
				t.Errorf("error = %v, want it to wrap ErrFormat", err)
			}
		})
	}
}

func TestFilelist_WriteRejectsChunkGap(t *testing.T) {
	fl, err := wbt.NewFilelist(game.FF13_2, []wbt.Entry{
		{Chunk: 0, PathString: "0:1:1:a"},
		{Chunk: 2, PathString: "1:1:1:b"},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := fl.Write(io.Discard); !errors.Is(err, errs.ErrFormat) {
		t.Errorf("Write() error = %v, want ErrFormat", err)
	}
}

func TestReadFilelist_Malformed(t *testing.T) {
	valid := func() []byte {
		fl, err := wbt.NewFilelist(game.FF13_1, []wbt.Entry{{PathString: "0:1:1:a"}}, nil)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := fl.Write(&buf); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}

	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{"truncated header", func(b []byte) []byte { return b[:8] }},
		{"entry count too large", func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[8:12], 1000)
			return b
		}},
		{"chunk data offset past end", func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[4:8], uint32(len(b)+1))
			return b
		}},
		{"position past chunk end", func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[18:20], 500)
			return b
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wbt.ReadFilelist(bytes.NewReader(tt.mutate(valid())), game.FF13_1, nil)
			if !errors.Is(err, errs.ErrFormat) {
				t.Errorf("error = %v, want ErrFormat", err)
			}
		})
	}
}

func TestFilelist_Find(t *testing.T) {
	var container bytes.Buffer
	fl, err := wbt.NewFilelist(game.FF13_1, buildEntries(t, sampleFiles, &container), nil)
	if err != nil {
		t.Fatal(err)
	}

	e, ok := fl.FindByPath(`CHR\PC\c001.TRB`)
	if !ok || e.Index != 2 {
		t.Errorf("FindByPath() = %+v, %v, want entry 2", e, ok)
	}
	if _, ok := fl.FindByPath("chr/pc/missing.trb"); ok {
		t.Error("FindByPath() found a missing path")
	}

	got := fl.FindByDirectory("chr/pc")
	if len(got) != 2 || got[0].Index != 1 || got[1].Index != 2 {
		t.Errorf("FindByDirectory(chr/pc) = %+v", got)
	}
	if got := fl.FindByDirectory("chr/p"); len(got) != 0 {
		t.Errorf("FindByDirectory(chr/p) matched a partial directory name: %+v", got)
	}
	if got := fl.FindByDirectory(""); len(got) != len(sampleFiles) {
		t.Errorf("FindByDirectory(\"\") = %d entries, want %d", len(got), len(sampleFiles))
	}
	if e := fl.Entries[1]; e.Name() != "c000.trb" || !e.Compressed() {
		t.Errorf("entry 1 Name() = %q, Compressed() = %v", e.Name(), e.Compressed())
	}
}

func TestContainer_Extract(t *testing.T) {
	filelistPath, containerPath := buildArchive(t, game.FF13_1, sampleFiles)
	c := openContainer(t, filelistPath, containerPath, game.FF13_1)

	if c.Len() != len(sampleFiles) {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(sampleFiles))
	}

	for i, f := range sampleFiles {
		p, data, err := c.Extract(i)
		if err != nil {
			t.Fatalf("Extract(%d) error = %v", i, err)
		}
		if p != f.path {
			t.Errorf("Extract(%d) path = %q, want %q", i, p, f.path)
		}
		if !bytes.Equal(data, f.data) && len(data)+len(f.data) > 0 {
			t.Errorf("Extract(%d) data = %q, want %q", i, data, f.data)
		}
	}

	for _, i := range []int{-1, len(sampleFiles)} {
		if _, _, err := c.Extract(i); !errors.Is(err, errs.ErrIndexOutOfRange) {
			t.Errorf("Extract(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestContainer_ExtractFailures(t *testing.T) {
	payload := bytes.Repeat([]byte("abc"), 100)
	packed := deflateBytes(t, payload)

	corrupt := bytes.Clone(packed)
	corrupt[len(corrupt)/2] ^= 0xFF

	badChecksum := bytes.Clone(packed)
	badChecksum[len(badChecksum)-1] ^= 0xFF

	tests := []struct {
		name      string
		container []byte
		entry     string
		wantErr   error
	}{
		{
			name:      "corrupt stream",
			container: corrupt,
			entry:     fmt.Sprintf("0:%x:%x:a", len(payload), len(corrupt)),
			wantErr:   errs.ErrDecompression,
		},
		{
			name:      "bad checksum",
			container: badChecksum,
			entry:     fmt.Sprintf("0:%x:%x:a", len(payload), len(badChecksum)),
			wantErr:   errs.ErrDecompression,
		},
		{
			name:      "short inflate",
			container: packed,
			entry:     fmt.Sprintf("0:%x:%x:a", len(payload)+10, len(packed)),
			wantErr:   errs.ErrDecompression,
		},
		{
			name:      "long inflate",
			container: packed,
			entry:     fmt.Sprintf("0:%x:%x:a", len(payload)-10, len(packed)),
			wantErr:   errs.ErrDecompression,
		},
		{
			name:      "truncated container",
			container: packed[:10],
			entry:     fmt.Sprintf("0:%x:%x:a", len(payload), len(packed)),
			wantErr:   io.ErrUnexpectedEOF,
		},
		{
			name:      "truncated stored entry",
			container: []byte("abc"),
			entry:     "0:10:10:a",
			wantErr:   io.ErrUnexpectedEOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fl, err := wbt.NewFilelist(game.FF13_1, []wbt.Entry{{PathString: tt.entry}}, nil)
			if err != nil {
				t.Fatal(err)
			}
			c := wbt.NewContainer(bytes.NewReader(tt.container), fl.Entries, nil)

			_, _, err = c.Extract(0)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Extract() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExtractAll(t *testing.T) {
	tests := []struct {
		name    string
		opts    wbt.ExtractOptions
		want    []string
		skipped int
	}{
		{
			name: "everything",
			want: []string{"sys/script/a.txt", "chr/pc/c000.trb", "chr/pc/c001.trb", "sound/empty.bin"},
		},
		{
			name:    "include only",
			opts:    wbt.ExtractOptions{Include: []string{"chr/**"}},
			want:    []string{"chr/pc/c000.trb", "chr/pc/c001.trb"},
			skipped: 2,
		},
		{
			name:    "include with exclude",
			opts:    wbt.ExtractOptions{Include: []string{"chr/**"}, Exclude: []string{"*c001*"}},
			want:    []string{"chr/pc/c000.trb"},
			skipped: 3,
		},
		{
			name:    "exclude only",
			opts:    wbt.ExtractOptions{Exclude: []string{"*.trb"}},
			want:    []string{"sys/script/a.txt", "sound/empty.bin"},
			skipped: 2,
		},
		{
			name:    "dry run",
			opts:    wbt.ExtractOptions{DryRun: true},
			want:    nil,
			skipped: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filelistPath, containerPath := buildArchive(t, game.FF13_1, sampleFiles)
			c := openContainer(t, filelistPath, containerPath, game.FF13_1)
			outDir := t.TempDir()

			res, err := wbt.ExtractAll(c, outDir, tt.opts)
			if err != nil {
				t.Fatalf("ExtractAll() error = %v", err)
			}
			if res.Skipped != tt.skipped {
				t.Errorf("Skipped = %d, want %d", res.Skipped, tt.skipped)
			}

			var written []string
			err = filepath.WalkDir(outDir, func(p string, d os.DirEntry, err error) error {
				if err != nil || d.IsDir() {
					return err
				}
				rel, _ := filepath.Rel(outDir, p)
				written = append(written, filepath.ToSlash(rel))
				return nil
			})
			if err != nil {
				t.Fatal(err)
			}

			if len(written) != len(tt.want) {
				t.Fatalf("wrote %v, want %v", written, tt.want)
			}
			for _, w := range tt.want {
				data, err := os.ReadFile(filepath.Join(outDir, filepath.FromSlash(w)))
				if err != nil {
					t.Errorf("missing %s: %v", w, err)
					continue
				}
				for _, f := range sampleFiles {
					if f.path == w && !bytes.Equal(data, f.data) && len(data)+len(f.data) > 0 {
						t.Errorf("%s = %q, want %q", w, data, f.data)
					}
				}
			}

			if tt.opts.DryRun && res.Extracted != len(sampleFiles) {
				t.Errorf("dry run Extracted = %d, want %d", res.Extracted, len(sampleFiles))
			}
		})
	}
}

func TestExtractAll_RejectsEscapingPath(t *testing.T) {
	var container bytes.Buffer
	fl, err := wbt.NewFilelist(game.FF13_1, buildEntries(t, []fixture{{"../evil.txt", []byte("x"), false}}, &container), nil)
	if err != nil {
		t.Fatal(err)
	}
	c := wbt.NewContainer(bytes.NewReader(container.Bytes()), fl.Entries, nil)

	if _, err := wbt.ExtractAll(c, t.TempDir(), wbt.ExtractOptions{}); !errors.Is(err, errs.ErrFormat) {
		t.Errorf("ExtractAll() error = %v, want ErrFormat", err)
	}
}

func TestRepacker_RepackAll(t *testing.T) {
	for _, g := range []game.Code{game.FF13_1, game.FF13_2} {
		t.Run(g.String(), func(t *testing.T) {
			filelistPath, containerPath := buildArchive(t, g, sampleFiles)
			dir := t.TempDir()

			if _, err := wbt.ExtractAll(openContainer(t, filelistPath, containerPath, g), dir, wbt.ExtractOptions{}); err != nil {
				t.Fatal(err)
			}

			modified := bytes.Repeat([]byte("edited "), 400)
			if err := os.WriteFile(filepath.Join(dir, "chr", "pc", "c000.trb"), modified, 0o644); err != nil {
				t.Fatal(err)
			}
			if err := os.Remove(filepath.Join(dir, "sys", "script", "a.txt")); err != nil {
				t.Fatal(err)
			}

			r := wbt.NewRepacker(filelistPath, containerPath, g)
			r.Backup = true
			r.Workers = 2
			if err := r.RepackAll(dir); err != nil {
				t.Fatalf("RepackAll() error = %v", err)
			}

			for _, p := range []string{filelistPath, containerPath} {
				if _, err := os.Stat(p + wbt.BackupSuffix); err != nil {
					t.Errorf("backup of %s missing: %v", p, err)
				}
			}

			c := openContainer(t, filelistPath, containerPath, g)
			want := [][]byte{nil, modified, sampleFiles[2].data, nil}
			for i, e := range c.Entries() {
				if e.Offset%wbt.SectorSize != 0 {
					t.Errorf("entry %d offset %d not sector aligned", i, e.Offset)
				}
				_, data, err := c.Extract(i)
				if err != nil {
					t.Fatalf("Extract(%d) error = %v", i, err)
				}
				if !bytes.Equal(data, want[i]) && len(data)+len(want[i]) > 0 {
					t.Errorf("entry %d = %q, want %q", i, data, want[i])
				}
			}
			if !c.Entries()[1].Compressed() {
				t.Error("repacked compressed entry was stored raw")
			}
		})
	}
}

func TestRepacker_Inject(t *testing.T) {
	stored := []fixture{
		{"a.txt", []byte("0123456789"), false},
		{"b/c.bin", bytes.Repeat([]byte("zip"), 64), true},
		{"d.txt", []byte("tail"), false},
	}

	writeSource := func(t *testing.T, data []byte) string {
		t.Helper()
		p := filepath.Join(t.TempDir(), "patch.bin")
		if err := os.WriteFile(p, data, 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	t.Run("in place", func(t *testing.T) {
		filelistPath, containerPath := buildArchive(t, game.FF13_1, stored)
		before := openContainer(t, filelistPath, containerPath, game.FF13_1).Entries()

		src := writeSource(t, []byte("short"))
		if err := wbt.NewRepacker(filelistPath, containerPath, game.FF13_1).Inject(map[string]string{`A.TXT`: src}); err != nil {
			t.Fatalf("Inject() error = %v", err)
		}

		c := openContainer(t, filelistPath, containerPath, game.FF13_1)
		after := c.Entries()
		if after[0].Offset != before[0].Offset {
			t.Errorf("offset moved from %d to %d", before[0].Offset, after[0].Offset)
		}
		if _, data, err := c.Extract(0); err != nil || string(data) != "short" {
			t.Errorf("Extract(0) = %q, %v", data, err)
		}
		for _, i := range []int{1, 2} {
			if after[i].PathString != before[i].PathString {
				t.Errorf("untouched entry %d path string changed: %q -> %q", i, before[i].PathString, after[i].PathString)
			}
		}

		raw, err := os.ReadFile(containerPath)
		if err != nil {
			t.Fatal(err)
		}
		if got := raw[5:10]; !bytes.Equal(got, make([]byte, 5)) {
			t.Errorf("old slot tail not cleared: %q", got)
		}
	})

	t.Run("appended", func(t *testing.T) {
		filelistPath, containerPath := buildArchive(t, game.FF13_2, stored)
		info, err := os.Stat(containerPath)
		if err != nil {
			t.Fatal(err)
		}

		big := []byte(strings.Repeat("a much longer replacement ", 200))
		src := writeSource(t, big)
		if err := wbt.NewRepacker(filelistPath, containerPath, game.FF13_2).Inject(map[string]string{"a.txt": src}); err != nil {
			t.Fatalf("Inject() error = %v", err)
		}

		c := openContainer(t, filelistPath, containerPath, game.FF13_2)
		e := c.Entries()[0]
		wantOffset := uint64((info.Size() + wbt.SectorSize - 1) / wbt.SectorSize * wbt.SectorSize)
		if e.Offset != wantOffset {
			t.Errorf("appended offset = %d, want %d", e.Offset, wantOffset)
		}
		if _, data, err := c.Extract(0); err != nil || !bytes.Equal(data, big) {
			t.Errorf("Extract(0) = %d bytes, %v", len(data), err)
		}
		if _, data, err := c.Extract(1); err != nil || !bytes.Equal(data, stored[1].data) {
			t.Errorf("Extract(1) = %q, %v", data, err)
		}
	})

	t.Run("compressed entry stays compressed", func(t *testing.T) {
		filelistPath, containerPath := buildArchive(t, game.FF13_1, stored)
		payload := bytes.Repeat([]byte("zap"), 64)
		src := writeSource(t, payload)

		if err := wbt.NewRepacker(filelistPath, containerPath, game.FF13_1).Inject(map[string]string{"b/c.bin": src}); err != nil {
			t.Fatalf("Inject() error = %v", err)
		}

		c := openContainer(t, filelistPath, containerPath, game.FF13_1)
		if !c.Entries()[1].Compressed() {
			t.Error("injected entry stored raw")
		}
		if _, data, err := c.Extract(1); err != nil || !bytes.Equal(data, payload) {
			t.Errorf("Extract(1) = %q, %v", data, err)
		}
	})

	t.Run("errors", func(t *testing.T) {
		filelistPath, containerPath := buildArchive(t, game.FF13_1, stored)
		r := wbt.NewRepacker(filelistPath, containerPath, game.FF13_1)

		if err := r.Inject(map[string]string{"nope.txt": writeSource(t, nil)}); !errors.Is(err, errs.ErrIndexOutOfRange) {
			t.Errorf("unknown target error = %v, want ErrIndexOutOfRange", err)
		}
		if err := r.Inject(map[string]string{"a.txt": filepath.Join(t.TempDir(), "missing")}); !errors.Is(err, errs.ErrMissingFile) {
			t.Errorf("missing source error = %v, want ErrMissingFile", err)
		}
	})
}
