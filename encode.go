// SPDX-License-Identifier: GPL-2.0-only

package lzss

// Encode compresses input into one of the supported variants. TypeStored is
// accepted for symmetry with Decode and returns input unchanged. The
// dictionary-backed variants have no encoder: the original pipeline never
// shipped one either, only a throwaway all-literal tool, so decoding is the
// only direction those formats are exercised in.
func Encode(t Type, input []byte) ([]byte, error) {
	switch t {
	case TypeStored:
		return EncodeStored(input), nil
	case TypeSelf, TypeSelfRuns:
		return encodeCore(t, input), nil
	case TypeDict, TypeDictRuns:
		return nil, ErrUnsupportedType
	default:
		return nil, ErrUnsupportedType
	}
}

// EncodeStored returns input unchanged, the payload for a stored container.
func EncodeStored(input []byte) []byte {
	out := make([]byte, len(input))
	copy(out, input)
	return out
}

// Encode81 compresses input as self-referential LZSS with no run tokens.
func Encode81(input []byte) []byte { return encodeCore(TypeSelf, input) }

// Encode83 compresses input as self-referential LZSS with run tokens.
func Encode83(input []byte) []byte { return encodeCore(TypeSelfRuns, input) }

// encodeCore is a greedy, non-optimal encoder for the self-referential
// variants: at every position it weighs a same-byte run (0x83 only, when
// long enough to pay for the token) against the longest back-reference the
// window search can find, emits whichever covers more input (a tie goes to
// the back-reference), and falls back to a literal when neither is valid. It
// never looks ahead to see whether deferring a match would do better overall.
func encodeCore(t Type, input []byte) []byte {
	cw := newCommandWriter(len(input))

	pos := 0
	n := len(input)
	for pos < n {
		run := 0
		if t.HasRuns() {
			if r := sameByteRunLength(input, pos); r >= minShortRunLen {
				run = r
				if run > maxEncRunLen {
					run = maxEncRunLen
				}
			}
		}

		dist, length := bestSelfMatch(input, pos, maxEncBackref)
		if length < minBackrefLen {
			length = 0
		}

		// Both candidates valid: longer payload wins, ties fall to the
		// back-reference (2 bytes on the wire at any length it can express).
		switch {
		case length > 0 && length >= run:
			emitSelfBackref(cw, dist, length)
			pos += length
		case run > 0:
			emitRun(cw, input[pos], run)
			pos += run
		default:
			cw.putFlag(true)
			cw.writeByte(input[pos])
			pos++
		}
	}

	return cw.bytes()
}

// emitRun writes a short-run or long-run token for the self-referential
// variant, where the run-selection nibble sits in the high nibble of the
// second token byte.
func emitRun(cw *commandWriter, b byte, count int) {
	cw.putFlag(false)
	if count <= maxShortRunLen {
		other := byte(count - minBackrefLen)
		cw.writeByte(b)
		cw.writeByte(runSelectionNibble<<4 | other)
		return
	}

	cw.writeByte(byte(count - minLongRunLen))
	cw.writeByte(runSelectionNibble << 4)
	cw.writeByte(b)
}

// emitSelfBackref writes a back-reference token for the self-referential
// variants: offset = c0 | (blow<<8), length nibble = bhigh.
func emitSelfBackref(cw *commandWriter, dist, length int) {
	cw.putFlag(false)
	cw.writeByte(byte(dist & 0xFF))
	blow := byte((dist >> 8) & 0x0F)
	bhigh := byte(length - minBackrefLen)
	cw.writeByte(bhigh<<4 | blow)
}
