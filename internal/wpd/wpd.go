// Package wpd reads and writes WPD packages: a flat list of named,
// uncompressed records behind a fixed-width offset table.
//
// Layout (all integers big-endian):
//
//	[0x00] "WPD" + 13 nulls, record count patched in at 0x04
//	[0x10] record headers, 32 bytes each:
//	       name[16] offset(u32) size(u32) extension[8]
//	[....] record data, each block padded to a 4-byte boundary
package wpd

import "fmt"

const (
	// Magic is the tag at the start of every package.
	Magic = "WPD"

	HeaderSize       = 16
	RecordHeaderSize = 32
	NameWidth        = 16
	ExtensionWidth   = 8

	// DataAlignment is the boundary each record's data block is padded to.
	DataAlignment = 4

	// ManifestName is the record list written next to unpacked records.
	ManifestName = "!!WPD_Records.txt"

	// ManifestNullExtension stands in for an empty extension in the manifest.
	ManifestNullExtension = "null"

	manifestSeparator = " |-| "
)

// Header is the fixed 16-byte package header.
type Header struct {
	Magic       string
	RecordCount uint32
}

// RecordHeader is one entry of the offset table.
type RecordHeader struct {
	Name      string
	Offset    uint32
	Size      uint32
	Extension string
}

// Record is a named blob stored in a package. Name and Extension are
// truncated to NameWidth and ExtensionWidth bytes when written.
type Record struct {
	Name      string
	Extension string
	Data      []byte
}

// FileName is the name the record is unpacked to: "name" or "name.ext".
func (r Record) FileName() string {
	return fileName(r.Name, r.Extension)
}

func fileName(name, ext string) string {
	if ext == "" {
		return name
	}
	return fmt.Sprintf("%s.%s", name, ext)
}
