package ztr_test

import (
	"bytes"
	"testing"

	"github.com/ossyrian/fabulanova/internal/game"
	"github.com/ossyrian/fabulanova/internal/ztr"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		game  game.Code
		want  string
	}{
		{
			name:  "ascii with terminator",
			input: []byte{'H', 'i', 0, 0},
			game:  game.FF13_1,
			want:  "Hi",
		},
		{
			name:  "terminator stops decoding",
			input: []byte{'A', 0, 0, 'B'},
			game:  game.FF13_1,
			want:  "A",
		},
		{
			name:  "lone null is a tag",
			input: []byte{'A', 0, 'B'},
			game:  game.FF13_1,
			want:  "A{End}B",
		},
		{
			name:  "single keys",
			input: []byte{1, 2, 3, 4, 5},
			game:  game.FF13_1,
			want:  "{Escape}{Italic}{StraightLine}{Article}{ArticleMany}",
		},
		{
			name:  "color key",
			input: []byte{0xF9, 0x40, 'H', 'i', 0, 0},
			game:  game.FF13_2,
			want:  "{Color White}Hi",
		},
		{
			name:  "icon differs per game",
			input: []byte{0xF2, 0x73},
			game:  game.FF13_3,
			want:  "{Icon Gil}",
		},
		{
			name:  "icon ff13-2",
			input: []byte{0xF0, 0x43},
			game:  game.FF13_2,
			want:  "{Icon Gil}",
		},
		{
			name:  "button key",
			input: []byte{'P', 0xF1, 0x40},
			game:  game.FF13_1,
			want:  "P{Btn A}",
		},
		{
			name:  "ascii-led special key",
			input: []byte{'a', 0x40, 0x72, 'b'},
			game:  game.FF13_1,
			want:  "a{Text NewLine}b",
		},
		{
			name:  "character page",
			input: []byte{0x85, 0x40},
			game:  game.FF13_1,
			want:  "{€}",
		},
		{
			name:  "shift-jis",
			input: []byte{0x82, 0xB1, 0x82, 0xF1, 0x82, 0xC9, 0x82, 0xBF, 0x82, 0xCD, 0, 0},
			game:  game.FF13_1,
			want:  "こんにちは",
		},
		{
			name:  "control table wins over shift-jis",
			input: []byte{0x81, 0x40},
			game:  game.FF13_1,
			want:  "{Unk81 40}",
		},
		{
			name:  "unmapped byte",
			input: []byte{0xA5, 'x'},
			game:  game.FF13_1,
			want:  "{A5}x",
		},
		{
			name:  "lead byte at end",
			input: []byte{'x', 0x82},
			game:  game.FF13_1,
			want:  "x{82}",
		},
		{
			name:  "empty",
			input: nil,
			game:  game.FF13_1,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ztr.Decode(tt.input, tt.game); got != tt.want {
				t.Errorf("Decode(% x) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		game  game.Code
		want  []byte
	}{
		{
			name:  "color key",
			input: "{Color White}Hi",
			game:  game.FF13_2,
			want:  []byte{0xF9, 0x40, 'H', 'i'},
		},
		{
			name:  "end tag",
			input: "Hello{End}",
			game:  game.FF13_1,
			want:  []byte{'H', 'e', 'l', 'l', 'o', 0},
		},
		{
			name:  "icon per game",
			input: "{Icon Gil}",
			game:  game.FF13_3,
			want:  []byte{0xF2, 0x73},
		},
		{
			name:  "hex tag",
			input: "{A5}",
			game:  game.FF13_1,
			want:  []byte{0xA5},
		},
		{
			name:  "lowercase hex tag",
			input: "{0f}",
			game:  game.FF13_1,
			want:  []byte{0x0F},
		},
		{
			name:  "unknown tag kept as text",
			input: "{Nope}",
			game:  game.FF13_1,
			want:  []byte("{Nope}"),
		},
		{
			name:  "unclosed brace",
			input: "a{b",
			game:  game.FF13_1,
			want:  []byte("a{b"),
		},
		{
			name:  "shift-jis",
			input: "日本",
			game:  game.FF13_1,
			want:  []byte{0x93, 0xFA, 0x96, 0x7B},
		},
		{
			name:  "unencodable rune",
			input: "a😀b",
			game:  game.FF13_1,
			want:  []byte("a&#128512;b"),
		},
		{
			name:  "no terminator added",
			input: "",
			game:  game.FF13_1,
			want:  []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ztr.Encode(tt.input, tt.game)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%q) = % x, want % x", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncode_DecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
		game game.Code
	}{
		{"tags and text", "{Color White}Welcome{Text NewLine}Press {Btn A} for {Icon Gil}", game.FF13_2},
		{"lightning returns icons", "{Icon Gil} x3{Italic}", game.FF13_3},
		{"japanese", "こんにちは{Escape}日本ー", game.FF13_1},
		{"hex byte", "a{A5}b", game.FF13_1},
		{"unknown tag", "{Nope} stays", game.FF13_1},
		{"character page", "{€}100", game.FF13_1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := append(ztr.Encode(tt.text, tt.game), 0, 0)
			if got := ztr.Decode(raw, tt.game); got != tt.text {
				t.Errorf("Decode(Encode(%q)) = %q", tt.text, got)
			}
		})
	}
}

func TestDecode_EncodeRoundTrip(t *testing.T) {
	raw := []byte{0xF9, 0x40, 'H', 'i', 0x40, 0x72, 0x82, 0xB1, 0xA5, 0xF1, 0x40, 0x85, 0x40, 0, 0}

	text := ztr.Decode(raw, game.FF13_1)
	got := ztr.Encode(text, game.FF13_1)

	if !bytes.Equal(got, raw[:len(raw)-2]) {
		t.Errorf("Encode(%q) = % x, want % x", text, got, raw[:len(raw)-2])
	}
}
