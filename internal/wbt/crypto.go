package wbt

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/ossyrian/fabulanova/internal/errs"
)

// Constants for filelist encryption
const (
	// xorTableSize is the expanded key table: one seed-derived block
	// followed by 32 blocks generated by multiplication.
	xorTableSize = 264

	// blockSize is the cipher block size in bytes.
	blockSize = 8

	// keyConstant is added to the block counter key material.
	keyConstant = 0xA1652347

	// byteMixConstant offsets every table byte in the per-byte substitution.
	byteMixConstant = 120

	blockIDMask = 69
)

// xorTable is the key table used by the filelist block cipher.
//
// Table generation:
//  1. Reverse the 8-byte seed
//  2. Rotate the low half left by 8 bits and the high half left by 16 bits
//  3. Swap the halves and chain-mix the 8 bytes into the first block
//  4. Each following block is the previous block (u64 LE) times 5
type xorTable [xorTableSize]byte

func newXorTable(seed [8]byte) *xorTable {
	var rev [8]byte
	for i := range seed {
		rev[i] = seed[7-i]
	}

	a := bits.RotateLeft32(binary.LittleEndian.Uint32(rev[0:4]), 8)
	b := bits.RotateLeft32(binary.LittleEndian.Uint32(rev[4:8]), 16)

	var blk [8]byte
	binary.LittleEndian.PutUint32(blk[0:4], b)
	binary.LittleEndian.PutUint32(blk[4:8], a)

	blk[0] += 0x45
	for i := 1; i < len(blk); i++ {
		blk[i] = (blk[i] + 0xD4 + blk[i-1]) ^ (blk[i-1] << 2) ^ 0x45
	}

	t := new(xorTable)
	copy(t[0:8], blk[:])

	v := binary.LittleEndian.Uint64(blk[:])
	for off := blockSize; off < xorTableSize; off += blockSize {
		v *= 5
		binary.LittleEndian.PutUint64(t[off:], v)
	}
	return t
}

// substitute runs one byte forward through the 8 table bytes at off.
func (t *xorTable) substitute(b byte, off int) byte {
	for i := 0; i < blockSize; i++ {
		b = b + byteMixConstant - t[off+i]
	}
	return b
}

// unsubstitute is the inverse of substitute.
func (t *xorTable) unsubstitute(b byte, off int) byte {
	for i := blockSize - 1; i >= 0; i-- {
		b = b + t[off+i] - byteMixConstant
	}
	return b
}

// blockKeys derives the table offset and the two 32-bit special keys
// for the block at byte position counter.
func blockKeys(counter uint32) (off int, k1, k2 uint32) {
	c := uint64(counter)
	e := uint32(c<<30) | uint32(c) | uint32(c<<20) | uint32(c<<10)
	f := uint32(c<<30>>32) | uint32(c<<20>>32) | uint32(c<<10>>32)

	k1, carry := bits.Add32(e, keyConstant, 0)
	k2 = f + carry
	return int(counter & 0xF8), k1, k2
}

// decryptBlocks decrypts len(data)/8 blocks of data in place.
func (t *xorTable) decryptBlocks(data []byte) {
	var counter uint32
	for pos := 0; pos+blockSize <= len(data); pos += blockSize {
		blk := data[pos : pos+blockSize]
		off, k1, k2 := blockKeys(counter)

		var d [8]byte
		d[0] = t.substitute(byte(counter>>3)^blockIDMask^blk[0], off)
		for i := 1; i < blockSize; i++ {
			d[i] = t.substitute(blk[i-1]^blk[i], off)
		}

		xl := binary.LittleEndian.Uint32(t[off:])
		xh := binary.LittleEndian.Uint32(t[off+4:])
		lo := binary.LittleEndian.Uint32(d[0:4])
		hi := binary.LittleEndian.Uint32(d[4:8])

		lo, borrow := bits.Sub32(lo, xl, 0)
		hi, _ = bits.Sub32(hi, xh, borrow)

		binary.LittleEndian.PutUint32(blk[0:4], hi^k2^xh)
		binary.LittleEndian.PutUint32(blk[4:8], lo^k1^xl)

		counter += blockSize
	}
}

// encryptBlocks encrypts len(data)/8 blocks of data in place.
func (t *xorTable) encryptBlocks(data []byte) {
	var counter uint32
	for pos := 0; pos+blockSize <= len(data); pos += blockSize {
		blk := data[pos : pos+blockSize]
		off, k1, k2 := blockKeys(counter)

		xl := binary.LittleEndian.Uint32(t[off:])
		xh := binary.LittleEndian.Uint32(t[off+4:])
		hi := binary.LittleEndian.Uint32(blk[0:4])
		lo := binary.LittleEndian.Uint32(blk[4:8])

		lo, carry := bits.Add32(lo^xl^k1, xl, 0)
		hi, _ = bits.Add32(hi^xh^k2, xh, carry)

		var comp [8]byte
		binary.LittleEndian.PutUint32(comp[0:4], lo)
		binary.LittleEndian.PutUint32(comp[4:8], hi)

		prev := byte(counter>>3) ^ blockIDMask
		for i := range comp {
			blk[i] = t.unsubstitute(comp[i], off) ^ prev
			prev = blk[i]
		}

		counter += blockSize
	}
}

// checksum sums every 4th byte of data for n positions.
func checksum(data []byte, n int) uint32 {
	var sum uint32
	for i, pos := 0, 0; i < n; i, pos = i+1, pos+4 {
		if pos < len(data) {
			sum += uint32(data[pos])
		}
	}
	return sum
}

// isEncrypted reports whether a filelist starts with the encryption header.
func isEncrypted(data []byte) bool {
	return len(data) >= EncryptionHeaderSize+16 &&
		binary.LittleEndian.Uint32(data[20:24]) == EncryptedMagic
}

// seedFromHeader derives the cipher seed from the plaintext header.
// The seed is bytes 9, 12, 2 and 0 packed into a sign-extended 32-bit
// value, stored little-endian.
func seedFromHeader(h []byte) [8]byte {
	v := int32(uint32(h[9])<<24 | uint32(h[12])<<16 | uint32(h[2])<<8 | uint32(h[0]))

	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], uint64(int64(v)))
	return seed
}

// decryptFilelist returns the plaintext body of an encrypted filelist.
// data is not modified. verified is false when the trailing size or
// checksum fields do not match the decrypted body.
func decryptFilelist(data []byte) (body []byte, verified bool, err error) {
	bodySize := binary.BigEndian.Uint32(data[16:20])
	cryptSize := uint64(bodySize) + blockSize
	if uint64(EncryptionHeaderSize)+cryptSize > uint64(len(data)) {
		return nil, false, fmt.Errorf("%w: encrypted body of %d bytes exceeds file size %d",
			errs.ErrFormat, cryptSize, len(data)-EncryptionHeaderSize)
	}

	body = make([]byte, len(data)-EncryptionHeaderSize)
	copy(body, data[EncryptionHeaderSize:])

	// A plaintext body still carries its size in clear after the data.
	if alreadyDecrypted(body, bodySize) {
		return body, true, nil
	}

	newXorTable(seedFromHeader(data)).decryptBlocks(body[:cryptSize])

	verified = alreadyDecrypted(body, bodySize) &&
		binary.LittleEndian.Uint32(body[bodySize+4:]) == checksum(body, int(bodySize/4))
	return body, verified, nil
}

func alreadyDecrypted(body []byte, bodySize uint32) bool {
	return uint64(bodySize)+4 <= uint64(len(body)) &&
		binary.LittleEndian.Uint32(body[bodySize:]) == bodySize
}

// encryptFilelist wraps a plaintext filelist body in the encryption
// header taken from hdr and encrypts it.
func encryptFilelist(hdr []byte, body []byte) []byte {
	padded := len(body) + (blockSize-len(body)%blockSize)%blockSize
	size := uint32(padded)

	buf := make([]byte, padded+blockSize+blockSize)
	copy(buf, body)
	binary.LittleEndian.PutUint32(buf[padded:], size)
	binary.LittleEndian.PutUint32(buf[padded+4:], checksum(buf, int(size/4)))

	newXorTable(seedFromHeader(hdr)).encryptBlocks(buf[:padded+blockSize])

	out := make([]byte, EncryptionHeaderSize, EncryptionHeaderSize+len(buf))
	copy(out, hdr[:16])
	binary.BigEndian.PutUint32(out[16:20], size)
	binary.LittleEndian.PutUint32(out[20:24], EncryptedMagic)
	return append(out, buf...)
}
