package ztr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"

	"github.com/ossyrian/fabulanova/internal/game"
)

// Encode converts a string with {Tag} placeholders back into raw game
// text. Known tags become their control codes, {XX} becomes the byte
// 0xXX, and anything else is written as Shift-JIS text. Characters
// Shift-JIS cannot represent are written as decimal character
// references ("&#128512;"). No terminator is appended.
func Encode(text string, g game.Code) []byte {
	tables := tablesFor(g)
	enc := japanese.ShiftJIS.NewEncoder()

	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); {
		if text[i] == '{' {
			if end := strings.IndexByte(text[i+1:], '}'); end >= 0 {
				tag := text[i : i+end+2]
				out = appendTag(out, enc, tables, tag)
				i += len(tag)
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		out = appendRune(out, enc, r)
		i += size
	}
	return out
}

func appendTag(out []byte, enc *encoding.Encoder, tables []*keyTable, tag string) []byte {
	if b, ok := singleKeysByTag[tag]; ok {
		return append(out, b)
	}
	if pair, ok := lookupTag(tables, tag); ok {
		return append(out, pair[0], pair[1])
	}
	if inner := tag[1 : len(tag)-1]; len(inner) == 2 {
		if v, err := strconv.ParseUint(inner, 16, 8); err == nil {
			return append(out, byte(v))
		}
	}
	for _, r := range tag {
		out = appendRune(out, enc, r)
	}
	return out
}

func appendRune(out []byte, enc *encoding.Encoder, r rune) []byte {
	if r < utf8.RuneSelf {
		return append(out, byte(r))
	}
	b, err := enc.Bytes(utf8.AppendRune(nil, r))
	if err != nil {
		return fmt.Appendf(out, "&#%d;", r)
	}
	return append(out, b...)
}
