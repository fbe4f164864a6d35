// SPDX-License-Identifier: GPL-2.0-only

package lzss

// sameByteRunLength reports how many consecutive bytes starting at pos equal
// data[pos], capped by the end of data. The run-length token kinds exist
// precisely to make long stretches like this cheap to encode.
func sameByteRunLength(data []byte, pos int) int {
	if pos >= len(data) {
		return 0
	}
	b := data[pos]
	n := 1
	for pos+n < len(data) && data[pos+n] == b {
		n++
	}
	return n
}

// bestSelfMatch searches the already-seen window behind pos (up to
// maxSelfWindow bytes back) for the longest run matching data[pos:], capped
// at maxLen. Matches are allowed to reach into data at or past pos: a
// self-referential back-reference whose distance is shorter than its length
// self-propagates at decode time, and since the whole input is available up
// front here the encoder can verify that propagation produces the bytes
// actually present at those later positions. Ties prefer the nearest
// candidate, which costs nothing extra to encode.
func bestSelfMatch(data []byte, pos, maxLen int) (dist, length int) {
	if maxLen > len(data)-pos {
		maxLen = len(data) - pos
	}
	if maxLen < minBackrefLen {
		return 0, 0
	}

	start := pos - maxSelfWindow
	if start < 0 {
		start = 0
	}

	for cand := pos - 1; cand >= start; cand-- {
		n := 0
		for n < maxLen && data[cand+n] == data[pos+n] {
			n++
		}
		if n > length {
			length = n
			dist = pos - cand
			if n == maxLen {
				break
			}
		}
	}
	return dist, length
}
