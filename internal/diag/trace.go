// SPDX-License-Identifier: GPL-2.0-only

// Package diag walks a compressed stream token by token and reports what it
// finds, independent of the bit-exact decode loop in package lzss. It backs
// the CLI's inspect subcommand and any test that wants to assert on the
// token sequence an encoder produced rather than only the final bytes.
package diag

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"

	"github.com/keelwerk/lzss"
)

// Kind identifies what a traced token represents.
type Kind string

const (
	KindLiteral  Kind = "literal"
	KindBackref  Kind = "backref"
	KindShortRun Kind = "short-run"
	KindLongRun  Kind = "long-run"
)

// Token is one decoded event in a compressed stream's trace.
type Token struct {
	Index    int  // token sequence number, starting at 0
	Kind     Kind
	Length   int  // bytes this token will emit
	RefAddr  int  // offset/distance for backref tokens; unused otherwise
	Literal  byte // payload byte for literal and run tokens
	OutputAt int  // output cursor position before this token is applied
}

// String renders a token the way a human reading a trace would want it.
func (t Token) String() string {
	switch t.Kind {
	case KindLiteral:
		return fmt.Sprintf("[%d] @%d literal 0x%02x", t.Index, t.OutputAt, t.Literal)
	case KindBackref:
		return fmt.Sprintf("[%d] @%d backref ref=%d len=%d", t.Index, t.OutputAt, t.RefAddr, t.Length)
	default:
		return fmt.Sprintf("[%d] @%d %s byte=0x%02x len=%d", t.Index, t.OutputAt, t.Kind, t.Literal, t.Length)
	}
}

// Trace walks compressed under type t until uncompressedLength output bytes
// have been accounted for, returning the token sequence it found. It does
// not validate back-references or write any output; a stream the production
// decoder would reject can still be traced up to the failing token.
func Trace(t lzss.Type, compressed []byte, uncompressedLength int) ([]Token, error) {
	if t == lzss.TypeStored {
		return nil, fmt.Errorf("diag: %w: stored payload has no tokens to trace", lzss.ErrUnsupportedType)
	}
	if !t.Valid() {
		return nil, lzss.ErrUnsupportedType
	}

	r := bitio.NewReader(bytes.NewReader(compressed))

	var tokens []Token
	bits := 0
	out := 0
	idx := 0

	nextFlag := func() (bool, error) {
		flag := bits & 1
		bits >>= 1
		if bits == 0 {
			b := r.TryReadByte()
			if r.TryError != nil {
				return false, fmt.Errorf("diag: %w", lzss.ErrInputOverrun)
			}
			flag = int(b) & 1
			bits = 0x80 | int(b>>1)
		}
		return flag != 0, nil
	}

	readByte := func() (byte, error) {
		b := r.TryReadByte()
		if r.TryError != nil {
			return 0, fmt.Errorf("diag: %w", lzss.ErrInputOverrun)
		}
		return b, nil
	}

	for out < uncompressedLength {
		literal, err := nextFlag()
		if err != nil {
			return tokens, err
		}

		if literal {
			b, err := readByte()
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, Token{Index: idx, Kind: KindLiteral, Length: 1, Literal: b, OutputAt: out})
			out++
			idx++
			continue
		}

		c0, err := readByte()
		if err != nil {
			return tokens, err
		}
		c1, err := readByte()
		if err != nil {
			return tokens, err
		}
		blow := int(c1 & 0x0F)
		bhigh := int(c1&0xF0) >> 4

		dictionary := t.IsDictionary()
		runSel := bhigh
		if dictionary {
			runSel = blow
		}

		if t.HasRuns() && runSel == 0xF {
			other := blow
			if dictionary {
				other = bhigh
			}

			var count int
			var b byte
			kind := KindShortRun
			if other != 0 {
				count = other + 3
				b = c0
			} else {
				c2, err := readByte()
				if err != nil {
					return tokens, err
				}
				count = int(c0) + 19
				b = c2
				kind = KindLongRun
			}
			tokens = append(tokens, Token{Index: idx, Kind: kind, Length: count, Literal: b, OutputAt: out})
			out += count
			idx++
			continue
		}

		length := runSel + 3
		var ref int
		if dictionary {
			ref = int(c0) | (bhigh << 8)
		} else {
			ref = int(c0) | (blow << 8)
		}
		tokens = append(tokens, Token{Index: idx, Kind: KindBackref, Length: length, RefAddr: ref, OutputAt: out})
		out += length
		idx++
	}

	return tokens, nil
}
