// SPDX-License-Identifier: GPL-2.0-only

package lzss

import "errors"

// Sentinel errors for decompression and compression.
var (
	// ErrInputOverrun is returned when the decoder reads past the end of the compressed buffer.
	ErrInputOverrun = errors.New("lzss: input overrun")
	// ErrOutputOverrun is returned when decoding would write past the destination buffer.
	ErrOutputOverrun = errors.New("lzss: output overrun")
	// ErrBadBackref is returned when a self-referential back-reference has offset 0
	// or points before the start of the output written so far.
	ErrBadBackref = errors.New("lzss: invalid back-reference offset")
	// ErrBufferTooSmall is returned when the caller's destination buffer does not carry
	// the 273-byte overrun slack this format requires.
	ErrBufferTooSmall = errors.New("lzss: destination buffer too small")
	// ErrUnsupportedType is returned for a type tag this package does not decode or encode.
	ErrUnsupportedType = errors.New("lzss: unsupported compression type")
)
