// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// =========================
// Hash type (32 bytes)
// =========================

const HashLength = 32

type Hash [HashLength]byte

func (h Hash) String() string {
	return hexutil.Encode(h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

// MarshalText renders the hash as 0x-prefixed hex.
func (h Hash) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

// UnmarshalText parses 0x-prefixed hex of exactly 32 bytes.
func (h *Hash) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash", input, h[:])
}

// Encode renders the hash in API form under prefix, e.g. "th" or "kh".
func (h Hash) Encode(prefix string) string {
	return EncodeAPI(prefix, h[:])
}

// BytesToHash copies b into a Hash; b must be exactly HashLength bytes.
func BytesToHash(b []byte) (Hash, bool) {
	var h Hash
	if len(b) != HashLength {
		return h, false
	}
	copy(h[:], b)
	return h, true
}
