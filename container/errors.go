// SPDX-License-Identifier: GPL-2.0-only

package container

import "errors"

var (
	ErrUnknownType          = errors.New("container: unrecognized compression type")
	ErrLengthOverflow       = errors.New("container: length field exceeds 16-bit boundary")
	ErrStoredLengthMismatch = errors.New("container: stored payload length mismatch")
)
