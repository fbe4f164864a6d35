// SPDX-License-Identifier: GPL-2.0-only

package lzss

// dictWindow is the 4096-byte ring buffer used by the dictionary-backed
// variants (0x01, 0x03). It is seeded with a fixed pattern before decode and
// mirrors every output byte as it is emitted, so that later back-references
// can resolve against either the seed pattern or previously emitted output.
type dictWindow struct {
	buf [dictSize]byte
	pos int
}

// newDictWindow builds a dictionary window with the fixed seed pattern and
// positions its write cursor at the starting offset for the given type.
func newDictWindow(t Type) *dictWindow {
	d := &dictWindow{}
	seedDict(&d.buf)
	if t == TypeDictRuns {
		d.pos = dictCursorInit03
	} else {
		d.pos = dictCursorInit01
	}
	return d
}

// seedDict fills buf with the deterministic initialization pattern: 2048
// bytes of {i,0,i,0,i,0,i,0} groups, 1792 bytes of {i,0xFF,i,0xFF,i,0xFF,i}
// groups, then 256 zero bytes.
func seedDict(buf *[dictSize]byte) {
	pos := 0
	for i := 0; i < 256; i++ {
		b := byte(i)
		buf[pos+0] = b
		buf[pos+1] = 0x00
		buf[pos+2] = b
		buf[pos+3] = 0x00
		buf[pos+4] = b
		buf[pos+5] = 0x00
		buf[pos+6] = b
		buf[pos+7] = 0x00
		pos += 8
	}
	for i := 0; i < 256; i++ {
		b := byte(i)
		buf[pos+0] = b
		buf[pos+1] = 0xFF
		buf[pos+2] = b
		buf[pos+3] = 0xFF
		buf[pos+4] = b
		buf[pos+5] = 0xFF
		buf[pos+6] = b
		pos += 7
	}
	for ; pos < dictSize; pos++ {
		buf[pos] = 0
	}
}

// push mirrors one emitted output byte into the dictionary and advances the
// write cursor.
func (d *dictWindow) push(b byte) {
	d.buf[d.pos] = b
	d.pos = (d.pos + 1) & dictMask
}

// at returns the byte at absolute dictionary offset off, modulo dictSize.
func (d *dictWindow) at(off int) byte {
	return d.buf[off&dictMask]
}
