package ztr_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/ossyrian/fabulanova/internal/errs"
	"github.com/ossyrian/fabulanova/internal/ztr"
)

func TestCompress(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{
			name:  "empty",
			input: nil,
			want:  []byte{0, 0, 0, 0},
		},
		{
			name:  "four pairs",
			input: []byte("ABABABAB"),
			want:  []byte{0, 0, 0, 3, 0, 'A', 'B', 0, 0, 0, 0},
		},
		{
			name:  "three pairs stay literal",
			input: []byte("ABABAB"),
			want:  []byte{0, 0, 0, 0, 'A', 'B', 'A', 'B', 'A', 'B'},
		},
		{
			name:  "two rounds",
			input: []byte("ABABABABCDCDCDCD"),
			want:  []byte{0, 0, 0, 6, 0, 'A', 'B', 1, 'C', 'D', 0, 0, 0, 0, 1, 1, 1, 1},
		},
		{
			name:  "tie goes to first occurrence",
			input: []byte("CDCDCDCDABABABAB"),
			want:  []byte{0, 0, 0, 6, 0, 'C', 'D', 1, 'A', 'B', 0, 0, 0, 0, 1, 1, 1, 1},
		},
		{
			name:  "overlapping run counts non-overlapping",
			input: []byte("AAAAAAA"),
			want:  []byte{0, 0, 0, 0, 'A', 'A', 'A', 'A', 'A', 'A', 'A'},
		},
		{
			name:  "overlapping run of eight",
			input: []byte("AAAAAAAA"),
			want:  []byte{0, 0, 0, 3, 0, 'A', 'A', 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ztr.Compress(tt.input)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Compress(%q) = % x, want % x", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompress_SkipsPageEight(t *testing.T) {
	input := append([]byte{0, 1, 2, 3, 4, 5, 6, 7}, "ABABABAB"...)

	got := ztr.Compress(input)

	want := append([]byte{0, 0, 0, 3, 9, 'A', 'B', 0, 1, 2, 3, 4, 5, 6, 7}, 9, 9, 9, 9)
	if !bytes.Equal(got, want) {
		t.Errorf("Compress() = % x, want % x", got, want)
	}
}

func TestCompress_NoFreePages(t *testing.T) {
	var input []byte
	for v := range 256 {
		input = append(input, byte(v))
	}
	input = append(input, "ABABABABABAB"...)

	got := ztr.Compress(input)

	if !bytes.Equal(got[:4], []byte{0, 0, 0, 0}) {
		t.Errorf("dictionary length = % x, want 0", got[:4])
	}
	if !bytes.Equal(got[4:], input) {
		t.Error("payload differs from input")
	}
}

func TestCompress_NeverUsesPageEight(t *testing.T) {
	// Enough distinct repeated pairs to exhaust the low pages.
	var sb strings.Builder
	for c := 'a'; c <= 'z'; c++ {
		sb.WriteString(strings.Repeat(string([]rune{c, c + 1}), 6))
	}

	got := ztr.Compress([]byte(sb.String()))

	n := int(got[3])
	for i := 4; i < 4+n; i += 3 {
		if got[i] == 8 {
			t.Fatalf("page 8 used at dictionary offset %d", i-4)
		}
	}
	if n/3 < 10 {
		t.Errorf("only %d pages created, expected page 8 to be passed over", n/3)
	}
}

func TestCompress_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	inputs := map[string][]byte{
		"empty":       {},
		"single byte": {0x42},
		"text":        []byte(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 40)),
		"zeros":       make([]byte, 512),
	}

	small := make([]byte, 4096)
	for i := range small {
		small[i] = byte(rng.IntN(6)) + 'a'
	}
	inputs["small alphabet"] = small

	noisy := make([]byte, 3000)
	for i := range noisy {
		noisy[i] = byte(rng.IntN(256))
	}
	inputs["random"] = noisy

	var all []byte
	for v := range 256 {
		all = append(all, byte(v), byte(v), byte(v))
	}
	inputs["every byte value"] = all

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := ztr.Decompress(ztr.Compress(input))
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			if !bytes.Equal(got, input) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(input))
			}
		})
	}
}

func TestDecompress(t *testing.T) {
	tests := []struct {
		name    string
		blob    []byte
		want    []byte
		wantErr error
	}{
		{
			name: "nested pages",
			blob: []byte{0, 0, 0, 6, 0, 'A', 'B', 1, 0, 0, 1, 'C'},
			want: []byte("ABABC"),
		},
		{
			name: "self reference kept literal",
			blob: []byte{0, 0, 0, 3, 'A', 'A', 'B', 'A'},
			want: []byte("AB"),
		},
		{
			name: "empty dictionary",
			blob: []byte{0, 0, 0, 0, 'x', 'y'},
			want: []byte("xy"),
		},
		{
			name:    "too short",
			blob:    []byte{0, 0},
			wantErr: errs.ErrFormat,
		},
		{
			name:    "dictionary not triples",
			blob:    []byte{0, 0, 0, 2, 1, 2},
			wantErr: errs.ErrFormat,
		},
		{
			name:    "dictionary past end",
			blob:    []byte{0, 0, 0, 6, 0, 'A', 'B'},
			wantErr: errs.ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ztr.Decompress(tt.blob)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decompress() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Decompress() = %q, want %q", got, tt.want)
			}
		})
	}
}
