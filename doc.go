// SPDX-License-Identifier: GPL-2.0-only

/*
Package lzss implements the family of LZSS-derived compressed containers
used by topdec-style game asset pipelines.

Five formats share one bit-stream framing and token layout, distinguished
by a one-byte type tag:

	0x00  stored, no compression
	0x01  dictionary-backed LZSS
	0x03  dictionary-backed LZSS with run-length tokens
	0x81  self-referential LZSS
	0x83  self-referential LZSS with run-length tokens

# Decompress

OutLen (the declared uncompressed length) is required; the destination
buffer must additionally carry 273 bytes of slack past it (see
[DecodeBufferLen]):

	dst := make([]byte, lzss.DecodeBufferLen(outLen))
	n, err := lzss.Decode81(compressed, dst, outLen)
	dst = dst[:n]

# Compress

Only the self-referential variants have an encoder; there is no encoder
for the dictionary-backed variants; the original pipeline never shipped one:

	compressed := lzss.Encode83(data)

The 9-byte container header that prefixes compressed files on disk is
handled by the sibling package [github.com/keelwerk/lzss/container], not
by this package.
*/
package lzss
