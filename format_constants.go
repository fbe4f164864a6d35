// SPDX-License-Identifier: GPL-2.0-only

package lzss

// Type identifies one of the five compressed container formats by its
// one-byte tag, as carried in the container header (see package container).
type Type byte

// The five supported compression types.
const (
	TypeStored   Type = 0x00 // no compression, payload copied verbatim
	TypeDict     Type = 0x01 // dictionary-backed LZSS
	TypeDictRuns Type = 0x03 // dictionary-backed LZSS with run-length tokens
	TypeSelf     Type = 0x81 // self-referential LZSS
	TypeSelfRuns Type = 0x83 // self-referential LZSS with run-length tokens
)

// IsDictionary reports whether t resolves back-references against the
// pre-seeded 4 KiB dictionary window rather than the output buffer.
func (t Type) IsDictionary() bool {
	return t == TypeDict || t == TypeDictRuns
}

// HasRuns reports whether t supports the short-run and long-run token kinds.
func (t Type) HasRuns() bool {
	return t == TypeDictRuns || t == TypeSelfRuns
}

// Valid reports whether t is one of the five recognized type tags.
func (t Type) Valid() bool {
	switch t {
	case TypeStored, TypeDict, TypeDictRuns, TypeSelf, TypeSelfRuns:
		return true
	default:
		return false
	}
}

const (
	// overrunSlack is the number of extra bytes a caller must allocate past the
	// declared uncompressed length, to absorb a long-run token's worst-case write.
	overrunSlack = 273

	// maxUncompressedLen is the 16-bit boundary enforced at the container layer.
	maxUncompressedLen = 0xFFFF

	// dictSize is the size in bytes of the pre-initialized dictionary window
	// used by the dictionary-backed variants.
	dictSize = 4096
	dictMask = dictSize - 1

	// dictCursorInit01 and dictCursorInit03 are the starting values of dictpos
	// for 0x01 and 0x03 respectively; 0x03 starts one higher to account for
	// its different alignment with run-length tokens.
	dictCursorInit01 = 0x0FEE
	dictCursorInit03 = 0x0FEF

	// Back-reference bounds shared by all four compressed variants.
	minBackrefLen = 3
	maxBackrefLen = 18

	// Run-length token bounds (0x03 / 0x83 only).
	minShortRunLen = 4
	maxShortRunLen = 18
	minLongRunLen  = 19
	maxLongRunLen  = 274

	// runSelectionNibble marks a non-literal token as a run rather than a
	// back-reference. Which nibble of the second token byte carries it is
	// variant-dependent: high for self-referential, low for dictionary.
	runSelectionNibble = 0xF

	// Encoder-only bounds (self-referential variants): the match window and
	// the longest back-reference the greedy encoder ever emits.
	maxSelfWindow = 4095
	maxEncBackref = 17
	maxEncRunLen  = maxLongRunLen
)
