package ztr

import "github.com/ossyrian/fabulanova/internal/game"

type keyEntry struct {
	b1, b2 byte
	tag    string
}

// singleKeys are the one-byte control codes, indexed by byte value.
var singleKeys = [...]string{
	0x00: "{End}",
	0x01: "{Escape}",
	0x02: "{Italic}",
	0x03: "{StraightLine}",
	0x04: "{Article}",
	0x05: "{ArticleMany}",
}

var singleKeysByTag = func() map[string]byte {
	m := make(map[string]byte, len(singleKeys))
	for i, tag := range singleKeys {
		m[tag] = byte(i)
	}
	return m
}()

// keyTable maps two-byte control codes to tags and back.
type keyTable struct {
	byPair map[[2]byte]string
	byTag  map[string][2]byte
}

func newKeyTable(entries []keyEntry) *keyTable {
	t := &keyTable{
		byPair: make(map[[2]byte]string, len(entries)),
		byTag:  make(map[string][2]byte, len(entries)),
	}
	for _, e := range entries {
		pair := [2]byte{e.b1, e.b2}
		if _, ok := t.byPair[pair]; !ok {
			t.byPair[pair] = e.tag
		}
		if _, ok := t.byTag[e.tag]; !ok {
			t.byTag[e.tag] = pair
		}
	}
	return t
}

var (
	baseCharaTable = newKeyTable(baseCharaKeys)
	specialTable   = newKeyTable(specialKeys)
	exCharaTable   = newKeyTable(exCharaKeys)
	unkTable       = newKeyTable(unkKeys)
	unk2Table      = newKeyTable(unk2Keys)
)

// variantTables returns the two-byte tables in lookup priority order:
// color, icon, button, then the shared character, special and unknown
// tables.
func variantTables(color, icon, button []keyEntry) []*keyTable {
	return []*keyTable{
		newKeyTable(color),
		newKeyTable(icon),
		newKeyTable(button),
		baseCharaTable,
		specialTable,
		exCharaTable,
		unkTable,
		unk2Table,
	}
}

var tablesByGame = map[game.Code][]*keyTable{
	game.FF13_1: variantTables(ff131ColorKeys, ff131IconKeys, ff131ButtonKeys),
	game.FF13_2: variantTables(ff132ColorKeys, ff132IconKeys, ff132ButtonKeys),
	game.FF13_3: variantTables(ff133ColorKeys, ff133IconKeys, ff133ButtonKeys),
}

func tablesFor(g game.Code) []*keyTable {
	if t, ok := tablesByGame[g]; ok {
		return t
	}
	return tablesByGame[game.FF13_1]
}

func lookupPair(tables []*keyTable, b1, b2 byte) (string, bool) {
	pair := [2]byte{b1, b2}
	for _, t := range tables {
		if tag, ok := t.byPair[pair]; ok {
			return tag, true
		}
	}
	return "", false
}

func lookupTag(tables []*keyTable, tag string) ([2]byte, bool) {
	for _, t := range tables {
		if pair, ok := t.byTag[tag]; ok {
			return pair, true
		}
	}
	return [2]byte{}, false
}
