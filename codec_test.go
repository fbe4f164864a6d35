// SPDX-License-Identifier: GPL-2.0-only

package lzss

import (
	"bytes"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, lzss test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 2000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "all-distinct", data: []byte("abcdefgh")},
	}
}

func decodeFor(t Type, compressed []byte, uncompressedLength int) ([]byte, error) {
	dst := make([]byte, DecodeBufferLen(uncompressedLength))
	n, err := Decode(t, compressed, dst, uncompressedLength)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func TestRoundTrip_SelfReferentialVariants(t *testing.T) {
	for _, tc := range testInputSet() {
		for _, typ := range []Type{TypeSelf, TypeSelfRuns} {
			t.Run(tc.name+"/"+typeName(typ), func(t *testing.T) {
				compressed, err := Encode(typ, tc.data)
				if err != nil {
					t.Fatalf("Encode failed: %v", err)
				}

				maxLen := len(tc.data) + len(tc.data)/8 + 1
				if len(compressed) > maxLen {
					t.Fatalf("compressed length %d exceeds upper bound %d", len(compressed), maxLen)
				}

				out, err := decodeFor(typ, compressed, len(tc.data))
				if err != nil {
					t.Fatalf("Decode failed: %v", err)
				}
				if !bytes.Equal(out, tc.data) {
					t.Fatalf("round-trip mismatch: got %v want %v", out, tc.data)
				}
			})
		}
	}
}

func typeName(t Type) string {
	switch t {
	case TypeSelf:
		return "0x81"
	case TypeSelfRuns:
		return "0x83"
	case TypeDict:
		return "0x01"
	case TypeDictRuns:
		return "0x03"
	default:
		return "0x00"
	}
}

func TestStoredPath_IdentityCopy(t *testing.T) {
	data := []byte("stored payloads are copied verbatim")
	out, err := decodeFor(TypeStored, data, len(data))
	if err != nil {
		t.Fatalf("Decode00 failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("stored decode mismatch: got %v want %v", out, data)
	}
}

func TestDictionarySeed_KnownOffsets(t *testing.T) {
	var buf [dictSize]byte
	seedDict(&buf)

	cases := []struct {
		offset int
		want   byte
	}{
		{0, 0x00},
		{2047, 0x00},
		{2048, 0x00},
		{3839, 0xFF},
		{3840, 0x00},
		{4095, 0x00},
	}
	for _, c := range cases {
		if got := buf[c.offset]; got != c.want {
			t.Errorf("seed[%d] = 0x%02x, want 0x%02x", c.offset, got, c.want)
		}
	}
}

func TestEncode83_RunBoundaries(t *testing.T) {
	t.Run("four-identical-bytes-is-a-run", func(t *testing.T) {
		compressed := Encode83(bytes.Repeat([]byte{'A'}, 4))
		want := []byte{0x00, 'A', 0xF1}
		if !bytes.Equal(compressed, want) {
			t.Fatalf("got % x want % x", compressed, want)
		}
	})

	t.Run("five-identical-bytes-is-a-short-run", func(t *testing.T) {
		compressed := Encode83(bytes.Repeat([]byte{'A'}, 5))
		want := []byte{0x00, 'A', 0xF2}
		if !bytes.Equal(compressed, want) {
			t.Fatalf("got % x want % x", compressed, want)
		}
	})

	t.Run("three-identical-bytes-is-literals", func(t *testing.T) {
		compressed := Encode83(bytes.Repeat([]byte{'A'}, 3))
		want := []byte{0x07, 'A', 'A', 'A'}
		if !bytes.Equal(compressed, want) {
			t.Fatalf("got % x want % x", compressed, want)
		}
	})

	t.Run("274-byte-run-is-one-long-run-token", func(t *testing.T) {
		data := bytes.Repeat([]byte{'Z'}, 274)
		compressed := Encode83(data)
		want := []byte{0x00, 0xFF, 0xF0, 'Z'}
		if !bytes.Equal(compressed, want) {
			t.Fatalf("got % x want % x", compressed, want)
		}

		out, err := decodeFor(TypeSelfRuns, compressed, len(data))
		if err != nil {
			t.Fatalf("Decode83 failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatal("round-trip mismatch on 274-byte run")
		}
	})

	t.Run("275-byte-run-is-long-run-plus-literal", func(t *testing.T) {
		data := bytes.Repeat([]byte{'Z'}, 275)
		compressed := Encode83(data)
		want := []byte{0x02, 0xFF, 0xF0, 'Z', 'Z'}
		if !bytes.Equal(compressed, want) {
			t.Fatalf("got % x want % x", compressed, want)
		}

		out, err := decodeFor(TypeSelfRuns, compressed, len(data))
		if err != nil {
			t.Fatalf("Decode83 failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatal("round-trip mismatch on 275-byte run")
		}
	})
}

func TestEncode81_BackrefBoundaries(t *testing.T) {
	data := []byte("ABCDABCD")
	compressed := Encode81(data)

	want := []byte{0x0F, 'A', 'B', 'C', 'D', 0x04, 0x10}
	if !bytes.Equal(compressed, want) {
		t.Fatalf("got % x want % x", compressed, want)
	}

	out, err := decodeFor(TypeSelf, compressed, len(data))
	if err != nil {
		t.Fatalf("Decode81 failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch: got %q want %q", out, data)
	}
}

func TestDecode81_SelfPropagatingBackref(t *testing.T) {
	// placeholder 0x01: literal, then a backref with offset 1, length 5 -> RLE.
	compressed := []byte{0x01, 'x', 0x01, 0x20}
	out, err := decodeFor(TypeSelf, compressed, 6)
	if err != nil {
		t.Fatalf("Decode81 failed: %v", err)
	}
	want := bytes.Repeat([]byte{'x'}, 6)
	if !bytes.Equal(out, want) {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestDecode81_InvalidBackref(t *testing.T) {
	t.Run("offset-zero", func(t *testing.T) {
		compressed := []byte{0x00, 0x00, 0x00}
		_, err := decodeFor(TypeSelf, compressed, 3)
		if err != ErrBadBackref {
			t.Fatalf("got %v want ErrBadBackref", err)
		}
	})

	t.Run("offset-past-start", func(t *testing.T) {
		compressed := []byte{0x01, 'x', 0x0A, 0x00}
		_, err := decodeFor(TypeSelf, compressed, 2)
		if err != ErrBadBackref {
			t.Fatalf("got %v want ErrBadBackref", err)
		}
	})

	t.Run("truncated-stream", func(t *testing.T) {
		compressed := []byte{0x00}
		_, err := decodeFor(TypeSelf, compressed, 4)
		if err != ErrInputOverrun {
			t.Fatalf("got %v want ErrInputOverrun", err)
		}
	})
}

func TestDecode01_DictionaryBackref(t *testing.T) {
	// A single back-reference copying 3 bytes from dictionary offset 0xFEE,
	// which the seed table fills with zero bytes (region 3).
	c0 := byte(0xEE)
	c1 := byte(0xF0) // bhigh = 0xF (offset high nibble), blow = 0 (length-3)
	compressed := []byte{0x00, c0, c1}
	out, err := decodeFor(TypeDict, compressed, 3)
	if err != nil {
		t.Fatalf("Decode01 failed: %v", err)
	}
	want := []byte{0, 0, 0}
	if !bytes.Equal(out, want) {
		t.Fatalf("got %v want %v", out, want)
	}
}

func TestDecode03_RunTokens(t *testing.T) {
	t.Run("short-run", func(t *testing.T) {
		// Dictionary variants keep the run sentinel in the low nibble:
		// c1 = (count-3)<<4 | 0xF.
		compressed := []byte{0x00, 'Q', 0x2F}
		out, err := decodeFor(TypeDictRuns, compressed, 5)
		if err != nil {
			t.Fatalf("Decode03 failed: %v", err)
		}
		if want := bytes.Repeat([]byte{'Q'}, 5); !bytes.Equal(out, want) {
			t.Fatalf("got %q want %q", out, want)
		}
	})

	t.Run("long-run", func(t *testing.T) {
		// bhigh = 0 selects the long form; count = c0 + 19, byte is c2.
		compressed := []byte{0x00, 0x01, 0x0F, 'R'}
		out, err := decodeFor(TypeDictRuns, compressed, 20)
		if err != nil {
			t.Fatalf("Decode03 failed: %v", err)
		}
		if want := bytes.Repeat([]byte{'R'}, 20); !bytes.Equal(out, want) {
			t.Fatalf("got %q want %q", out, want)
		}
	})
}

func TestDecode03_MirrorSelfPropagation(t *testing.T) {
	// A literal lands at dict[0xFEF] (the 0x03 starting cursor); a
	// back-reference to that same offset then reads it back, and each copied
	// byte is mirrored just ahead of the read cursor, so the copy
	// self-propagates through the dictionary exactly like an overlapping
	// self-referential copy does through the output buffer.
	compressed := []byte{0x01, 'a', 0xEF, 0xF0}
	out, err := decodeFor(TypeDictRuns, compressed, 4)
	if err != nil {
		t.Fatalf("Decode03 failed: %v", err)
	}
	if want := []byte("aaaa"); !bytes.Equal(out, want) {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestEncode_DictionaryVariantsUnsupported(t *testing.T) {
	for _, typ := range []Type{TypeDict, TypeDictRuns} {
		if _, err := Encode(typ, []byte("abc")); err != ErrUnsupportedType {
			t.Errorf("Encode(%s) err = %v, want ErrUnsupportedType", typeName(typ), err)
		}
	}
}

func TestEndToEnd_Scenarios(t *testing.T) {
	t.Run("empty-input", func(t *testing.T) {
		compressed := Encode83(nil)
		if len(compressed) != 0 {
			t.Fatalf("expected empty compressed stream, got % x", compressed)
		}
		out, err := decodeFor(TypeSelfRuns, compressed, 0)
		if err != nil {
			t.Fatalf("Decode83 failed: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("expected no output, got %v", out)
		}
	})

	t.Run("all-literals-eight-bytes", func(t *testing.T) {
		data := []byte("abcdefgh")
		compressed := Encode83(data)
		want := append([]byte{0xFF}, data...)
		if !bytes.Equal(compressed, want) {
			t.Fatalf("got % x want % x", compressed, want)
		}
	})

	t.Run("nine-literals", func(t *testing.T) {
		data := []byte("abcdefghi")
		compressed := Encode83(data)
		want := append(append([]byte{0xFF}, []byte("abcdefgh")...), 0x01, 'i')
		if !bytes.Equal(compressed, want) {
			t.Fatalf("got % x want % x", compressed, want)
		}
	})

	t.Run("simple-backreference", func(t *testing.T) {
		data := []byte("ABABABAB")
		compressed := Encode81(data)
		want := []byte{0x03, 'A', 'B', 0x02, 0x30}
		if !bytes.Equal(compressed, want) {
			t.Fatalf("got % x want % x", compressed, want)
		}
	})
}

func FuzzRoundTrip81(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("ABCDABCD"))
	f.Add(bytes.Repeat([]byte{0xAA}, 512))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}
		compressed := Encode81(data)
		out, err := decodeFor(TypeSelf, compressed, len(data))
		if err != nil {
			t.Fatalf("Decode81 failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}

func FuzzRoundTrip83(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello world"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024))
	f.Add(bytes.Repeat([]byte("abc"), 500))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}
		compressed := Encode83(data)
		out, err := decodeFor(TypeSelfRuns, compressed, len(data))
		if err != nil {
			t.Fatalf("Decode83 failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
