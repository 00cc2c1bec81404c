package ztr

import (
	"encoding/binary"
	"fmt"

	"github.com/ossyrian/fabulanova/internal/errs"
)

const (
	// minPairCount is the fewest occurrences worth a dictionary page.
	minPairCount = 4

	// reservedPage is never handed out as a page index.
	reservedPage = 8

	dictLenSize = 4
)

// Compress byte-pair encodes data. The result is a big-endian u32
// dictionary length, the dictionary as (page, b1, b2) triples in the
// order they were created, then the compressed payload.
//
// Pages are the byte values absent from data, taken lowest first. Each
// round replaces the most frequent non-overlapping pair, ties going to
// the pair seen first, until no pair occurs at least four times or the
// pages run out.
func Compress(data []byte) []byte {
	buf := append([]byte(nil), data...)
	pages := freePages(buf)
	pc := new(pairCounter)
	var dict []byte

	for len(pages) > 0 {
		b1, b2, count := pc.best(buf)
		if count < minPairCount {
			break
		}
		page := pages[0]
		pages = pages[1:]
		dict = append(dict, page, b1, b2)
		buf = replacePair(buf, b1, b2, page)
	}

	out := make([]byte, dictLenSize, dictLenSize+len(dict)+len(buf))
	binary.BigEndian.PutUint32(out, uint32(len(dict)))
	out = append(out, dict...)
	return append(out, buf...)
}

// freePages returns the byte values not present in buf, ascending.
// Newly emitted pages never collide with data, so the set is computed
// once and consumed in order.
func freePages(buf []byte) []byte {
	var used [256]bool
	for _, b := range buf {
		used[b] = true
	}
	used[reservedPage] = true

	pages := make([]byte, 0, 256)
	for v := range 256 {
		if !used[v] {
			pages = append(pages, byte(v))
		}
	}
	return pages
}

// pairCounter holds the per-pair tallies for one round. It is reused
// across rounds of a single Compress call.
type pairCounter struct {
	counts [1 << 16]int32
	next   [1 << 16]int32 // first position a new match may start at
	first  [1 << 16]int32
}

// best returns the pair with the most non-overlapping occurrences,
// counted greedily left to right.
func (pc *pairCounter) best(buf []byte) (b1, b2 byte, count int) {
	if len(buf) < 2 {
		return 0, 0, 0
	}

	clear(pc.counts[:])
	clear(pc.next[:])
	for i := range pc.first {
		pc.first[i] = -1
	}

	for i := 0; i+1 < len(buf); i++ {
		p := int(buf[i])<<8 | int(buf[i+1])
		if pc.first[p] < 0 {
			pc.first[p] = int32(i)
		}
		if int32(i) >= pc.next[p] {
			pc.counts[p]++
			pc.next[p] = int32(i) + 2
		}
	}

	best, bestFirst := -1, int32(len(buf))
	for p, c := range pc.counts {
		if c == 0 {
			continue
		}
		if int(c) > count || (int(c) == count && pc.first[p] < bestFirst) {
			best, count, bestFirst = p, int(c), pc.first[p]
		}
	}
	if best < 0 {
		return 0, 0, 0
	}
	return byte(best >> 8), byte(best), count
}

func replacePair(buf []byte, b1, b2, page byte) []byte {
	out := buf[:0]
	for i := 0; i < len(buf); i++ {
		if i+1 < len(buf) && buf[i] == b1 && buf[i+1] == b2 {
			out = append(out, page)
			i++
			continue
		}
		out = append(out, buf[i])
	}
	return out
}

// Decompress reverses Compress, expanding pages recursively.
func Decompress(blob []byte) ([]byte, error) {
	d, payload, err := parseDictionary(blob)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(payload)*2)
	for _, b := range payload {
		out = append(out, d.expand(b)...)
	}
	return out, nil
}

// dictionary holds the pages of one compressed blob with their
// expansions cached.
type dictionary struct {
	pairs    [256][2]byte
	defined  [256]bool
	expanded [256][]byte
	visiting [256]bool
}

// parseDictionary splits a compressed blob into its dictionary and
// payload.
func parseDictionary(blob []byte) (*dictionary, []byte, error) {
	if len(blob) < dictLenSize {
		return nil, nil, fmt.Errorf("%w: compressed blob of %d bytes has no dictionary length",
			errs.ErrFormat, len(blob))
	}
	n := binary.BigEndian.Uint32(blob)
	if n%3 != 0 || uint64(n) > uint64(len(blob)-dictLenSize) {
		return nil, nil, fmt.Errorf("%w: dictionary length %d invalid for %d-byte blob",
			errs.ErrFormat, n, len(blob))
	}

	d := newDictionary(blob[dictLenSize : dictLenSize+int(n)])
	return d, blob[dictLenSize+int(n):], nil
}

func newDictionary(triples []byte) *dictionary {
	d := &dictionary{}
	for i := 0; i+2 < len(triples); i += 3 {
		page := triples[i]
		d.pairs[page] = [2]byte{triples[i+1], triples[i+2]}
		d.defined[page] = true
	}
	return d
}

// expand returns the literal bytes b stands for. A page that refers
// back to itself is kept as a literal.
func (d *dictionary) expand(b byte) []byte {
	e, _ := d.expandPage(b)
	return e
}

// expandPage reports whether the result is independent of the pages
// currently being expanded. Only such results are cached.
func (d *dictionary) expandPage(b byte) ([]byte, bool) {
	if !d.defined[b] {
		return []byte{b}, true
	}
	if d.visiting[b] {
		return []byte{b}, false
	}
	if e := d.expanded[b]; e != nil {
		return e, true
	}

	d.visiting[b] = true
	pair := d.pairs[b]
	left, leftOK := d.expandPage(pair[0])
	right, rightOK := d.expandPage(pair[1])
	d.visiting[b] = false

	e := make([]byte, 0, len(left)+len(right))
	e = append(e, left...)
	e = append(e, right...)
	if leftOK && rightOK {
		d.expanded[b] = e
	}
	return e, leftOK && rightOK
}
