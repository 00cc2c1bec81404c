package ztr

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"

	"github.com/ossyrian/fabulanova/internal/game"
)

// isShiftJISLead reports whether b starts a two-byte Shift-JIS
// character. The control-code lead bytes 0x85, 0x86 and 0xF0-0xF9 are
// left out.
func isShiftJISLead(b byte) bool {
	switch {
	case b >= 0x81 && b <= 0x84,
		b == 0x87, b == 0x88, b == 0x98, b == 0xEA,
		b >= 0x89 && b <= 0x97,
		b >= 0x99 && b <= 0x9F,
		b >= 0xE0 && b <= 0xE9,
		b >= 0xFA && b <= 0xFC:
		return true
	}
	return false
}

// Decode converts one raw text entry into a string with {Tag}
// placeholders for control codes. Decoding stops after a 00 00
// terminator; bytes that map to nothing come out as {XX}.
func Decode(data []byte, g game.Code) string {
	tables := tablesFor(g)
	dec := japanese.ShiftJIS.NewDecoder()

	var sb strings.Builder
	sb.Grow(len(data))

	for i := 0; i < len(data); {
		b1 := data[i]

		if int(b1) < len(singleKeys) {
			if b1 == 0 && i+1 < len(data) && data[i+1] == 0 {
				break
			}
			sb.WriteString(singleKeys[b1])
			i++
			continue
		}

		if i+1 < len(data) {
			if tag, ok := lookupPair(tables, b1, data[i+1]); ok {
				sb.WriteString(tag)
				i += 2
				continue
			}

			if isShiftJISLead(b1) {
				if s, err := dec.Bytes(data[i : i+2]); err == nil {
					sb.Write(s)
				} else {
					sb.WriteRune(utf8.RuneError)
				}
				i += 2
				continue
			}
		}

		if b1 < 0x80 {
			sb.WriteByte(b1)
		} else {
			fmt.Fprintf(&sb, "{%02X}", b1)
		}
		i++
	}

	return sb.String()
}
