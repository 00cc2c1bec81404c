package ztr

import (
	"bytes"
	"testing"
)

func TestPairCounter_ReusedAcrossRounds(t *testing.T) {
	pc := new(pairCounter)

	tests := []struct {
		input     string
		b1, b2    byte
		wantCount int
	}{
		{"ABABABAB", 'A', 'B', 4},
		{"xCDCDCDCD", 'C', 'D', 4},
		{"ABAB", 'A', 'B', 2},
		{"Q", 0, 0, 0},
		{"EFEFGHGHGH", 'G', 'H', 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b1, b2, count := pc.best([]byte(tt.input))
			if b1 != tt.b1 || b2 != tt.b2 || count != tt.wantCount {
				t.Errorf("best(%q) = (%q, %q, %d), want (%q, %q, %d)",
					tt.input, b1, b2, count, tt.b1, tt.b2, tt.wantCount)
			}
		})
	}
}

func TestDictionary_CyclicExpansionNotCached(t *testing.T) {
	// 'A' -> 'B' 'x', 'B' -> 'A' 'y'
	d := newDictionary([]byte{'A', 'B', 'x', 'B', 'A', 'y'})

	if got := d.expand('A'); !bytes.Equal(got, []byte("Ayx")) {
		t.Errorf("expand('A') = %q, want %q", got, "Ayx")
	}
	if got := d.expand('B'); !bytes.Equal(got, []byte("Bxy")) {
		t.Errorf("expand('B') = %q, want %q", got, "Bxy")
	}
	if got := d.expand('A'); !bytes.Equal(got, []byte("Ayx")) {
		t.Errorf("second expand('A') = %q, want %q", got, "Ayx")
	}
}

func TestDictionary_AcyclicExpansionCached(t *testing.T) {
	d := newDictionary([]byte{0, 'A', 'B', 1, 0, 0})

	if got := d.expand(1); !bytes.Equal(got, []byte("ABAB")) {
		t.Fatalf("expand(1) = %q, want %q", got, "ABAB")
	}
	if d.expanded[0] == nil || d.expanded[1] == nil {
		t.Error("acyclic pages were not cached")
	}
}
