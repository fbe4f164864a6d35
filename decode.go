// SPDX-License-Identifier: GPL-2.0-only

package lzss

// DecodeBufferLen returns the minimum destination buffer length a caller
// must provide to Decode and its per-type wrappers for a given declared
// uncompressed length: the length itself plus the 273-byte overrun slack a
// long-run or dictionary-copy token may write past it before the decoder's
// next per-token bounds check.
func DecodeBufferLen(uncompressedLength int) int {
	return uncompressedLength + overrunSlack
}

// Decode decompresses a payload of the given type into dst, which must be at
// least DecodeBufferLen(uncompressedLength) bytes long. It returns the
// number of bytes written. The length bound is only checked between tokens,
// so a final run or back-reference token can leave that count above
// uncompressedLength.
func Decode(t Type, compressed, dst []byte, uncompressedLength int) (int, error) {
	if t == TypeStored {
		return decodeStored(compressed, dst, uncompressedLength)
	}
	if !t.Valid() {
		return 0, ErrUnsupportedType
	}
	return decodeCore(t, compressed, dst, uncompressedLength)
}

// Decode00 is the stored-payload decoder: it copies the payload verbatim.
func Decode00(compressed, dst []byte, uncompressedLength int) (int, error) {
	return decodeStored(compressed, dst, uncompressedLength)
}

// Decode01 decodes a dictionary-backed LZSS payload (no run-length tokens).
func Decode01(compressed, dst []byte, uncompressedLength int) (int, error) {
	return decodeCore(TypeDict, compressed, dst, uncompressedLength)
}

// Decode03 decodes a dictionary-backed LZSS payload with run-length tokens.
func Decode03(compressed, dst []byte, uncompressedLength int) (int, error) {
	return decodeCore(TypeDictRuns, compressed, dst, uncompressedLength)
}

// Decode81 decodes a self-referential LZSS payload (no run-length tokens).
func Decode81(compressed, dst []byte, uncompressedLength int) (int, error) {
	return decodeCore(TypeSelf, compressed, dst, uncompressedLength)
}

// Decode83 decodes a self-referential LZSS payload with run-length tokens.
func Decode83(compressed, dst []byte, uncompressedLength int) (int, error) {
	return decodeCore(TypeSelfRuns, compressed, dst, uncompressedLength)
}

func decodeStored(compressed, dst []byte, uncompressedLength int) (int, error) {
	if len(dst) < uncompressedLength {
		return 0, ErrOutputOverrun
	}
	if len(compressed) < uncompressedLength {
		return 0, ErrInputOverrun
	}
	copy(dst[:uncompressedLength], compressed[:uncompressedLength])
	return uncompressedLength, nil
}

// decodeCore is the token decoder shared by the four LZSS variants. They
// differ only in whether back-references resolve against the dictionary
// window or the output buffer itself, whether run-length tokens exist at
// all, and which nibble of the second token byte plays which role (the
// dictionary variants swap the two nibbles).
func decodeCore(t Type, compressed, dst []byte, uncompressedLength int) (int, error) {
	if len(dst) < DecodeBufferLen(uncompressedLength) {
		return 0, ErrBufferTooSmall
	}

	var dict *dictWindow
	if t.IsDictionary() {
		dict = newDictWindow(t)
	}

	cr := newCommandReader(compressed)
	out := 0

	emit := func(b byte) {
		dst[out] = b
		out++
		if dict != nil {
			dict.push(b)
		}
	}

	for out < uncompressedLength {
		literal, err := cr.nextFlag()
		if err != nil {
			return 0, err
		}

		if literal {
			b, err := cr.readByte()
			if err != nil {
				return 0, err
			}
			emit(b)
			continue
		}

		c0, err := cr.readByte()
		if err != nil {
			return 0, err
		}
		c1, err := cr.readByte()
		if err != nil {
			return 0, err
		}
		blow := int(c1 & 0x0F)
		bhigh := int(c1&0xF0) >> 4

		// The run-selection nibble and the back-reference length nibble are
		// the same field: if it reads 0xF (and this variant has runs), the
		// token is a run; otherwise it is directly the length nibble.
		var runSel int
		if t.IsDictionary() {
			runSel = blow
		} else {
			runSel = bhigh
		}

		if t.HasRuns() && runSel == runSelectionNibble {
			var other int
			if t.IsDictionary() {
				other = bhigh
			} else {
				other = blow
			}

			var count int
			var b byte
			if other != 0 {
				// Short run: count 4-18, repeated byte is c0.
				count = other + minBackrefLen
				b = c0
			} else {
				c2, err := cr.readByte()
				if err != nil {
					return 0, err
				}
				// Long run: count 19-274, repeated byte is c2.
				count = int(c0) + minLongRunLen
				b = c2
			}

			if out+count > len(dst) {
				return 0, ErrOutputOverrun
			}
			for i := 0; i < count; i++ {
				emit(b)
			}
			continue
		}

		length := runSel + minBackrefLen

		if t.IsDictionary() {
			off := int(c0) | (bhigh << 8)
			if out+length > len(dst) {
				return 0, ErrOutputOverrun
			}
			copyDictBackref(dst, out, dict, off, length)
			out += length
		} else {
			dist := int(c0) | (blow << 8)
			if dist == 0 || out < dist {
				return 0, ErrBadBackref
			}
			if out+length > len(dst) {
				return 0, ErrOutputOverrun
			}
			copySelfBackref(dst, out, dist, length)
			out += length
		}
	}

	return out, nil
}
