// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrTruncatedRecord = errors.New("truncated record")

// requireLen fails unless b holds at least n bytes. Every record decoder
// calls it before touching any offset.
func requireLen(b []byte, n int, record string) error {
	if len(b) < n {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrTruncatedRecord, record, n, len(b))
	}
	return nil
}

func readU32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}

func readU64(b []byte, off int) uint64 {
	return binary.BigEndian.Uint64(b[off : off+8])
}

func readHash(b []byte, off int) Hash {
	var h Hash
	copy(h[:], b[off:off+HashLength])
	return h
}
