// SPDX-License-Identifier: GPL-2.0-only

// Package container reads and writes the 9-byte header that prefixes every
// compressed file produced by this pipeline, and dispatches a header plus
// its payload to the matching codec entry point. It depends on the lzss
// package but never the reverse, so the bit-exact codec stays free of file
// and header concerns.
package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/keelwerk/lzss"
)

// maxLength16 is the 16-bit ceiling both length fields are historically
// confined to, even though the wire fields are 32 bits wide.
const maxLength16 = 0xFFFF

// Header is the 9-byte little-endian header prefixing every compressed
// file: a one-byte compression type tag followed by two uint32 length
// fields.
type Header struct {
	Type               lzss.Type
	CompressedLength   uint32
	UncompressedLength uint32
}

// ReadHeader reads a 9-byte header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var raw [9]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return Header{}, fmt.Errorf("container: read header: %w", err)
	}
	h := Header{
		Type:               lzss.Type(raw[0]),
		CompressedLength:   binary.LittleEndian.Uint32(raw[1:5]),
		UncompressedLength: binary.LittleEndian.Uint32(raw[5:9]),
	}
	return h, nil
}

// WriteTo writes the 9-byte header to w, satisfying io.WriterTo.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	var raw [9]byte
	raw[0] = byte(h.Type)
	binary.LittleEndian.PutUint32(raw[1:5], h.CompressedLength)
	binary.LittleEndian.PutUint32(raw[5:9], h.UncompressedLength)
	n, err := w.Write(raw[:])
	if err != nil {
		return int64(n), fmt.Errorf("container: write header: %w", err)
	}
	return int64(n), nil
}

// Validate rejects a header whose type tag is unrecognized or whose length
// fields exceed the 16-bit boundary this format has historically honored.
func (h Header) Validate() error {
	if !h.Type.Valid() {
		return fmt.Errorf("container: %w: type 0x%02x", ErrUnknownType, byte(h.Type))
	}
	if h.CompressedLength > maxLength16 {
		return fmt.Errorf("container: %w: compressed length %d", ErrLengthOverflow, h.CompressedLength)
	}
	if h.UncompressedLength > maxLength16 {
		return fmt.Errorf("container: %w: uncompressed length %d", ErrLengthOverflow, h.UncompressedLength)
	}
	if h.Type == lzss.TypeStored && h.CompressedLength != h.UncompressedLength {
		return fmt.Errorf("container: %w", ErrStoredLengthMismatch)
	}
	return nil
}

// DecodeContainer decompresses payload according to h, dispatching to the
// matching lzss entry point (or the identity copy for a stored payload).
func DecodeContainer(h Header, payload []byte) ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	uncompressedLen := int(h.UncompressedLength)
	dst := make([]byte, lzss.DecodeBufferLen(uncompressedLen))
	n, err := lzss.Decode(h.Type, payload, dst, uncompressedLen)
	if err != nil {
		return nil, fmt.Errorf("container: decode: %w", err)
	}
	return dst[:n], nil
}

// EncodeContainer compresses input under the given type and returns a
// ready-to-write header plus payload pair.
func EncodeContainer(t lzss.Type, input []byte) (Header, []byte, error) {
	payload, err := lzss.Encode(t, input)
	if err != nil {
		return Header{}, nil, fmt.Errorf("container: encode: %w", err)
	}
	h := Header{
		Type:               t,
		CompressedLength:   uint32(len(payload)),
		UncompressedLength: uint32(len(input)),
	}
	if err := h.Validate(); err != nil {
		return Header{}, nil, err
	}
	return h, payload, nil
}
