// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const checksumLength = 4

var (
	ErrInvalidEncoding = errors.New("invalid api encoding")
	ErrBadChecksum     = errors.New("api encoding checksum mismatch")
)

// ContentHash is the blake2b-256 digest used for transaction and block
// hashes.
func ContentHash(data []byte) Hash {
	return Hash(blake2b.Sum256(data))
}

func checksum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}

// EncodeAPI renders data as "<prefix>_" followed by base58 of data and
// its double-sha256 checksum.
func EncodeAPI(prefix string, data []byte) string {
	buf := make([]byte, 0, len(data)+checksumLength)
	buf = append(buf, data...)
	buf = append(buf, checksum(data)...)
	return prefix + "_" + base58.Encode(buf)
}

// DecodeAPI is the inverse of EncodeAPI. It returns the prefix and the
// payload with the checksum verified and stripped.
func DecodeAPI(s string) (string, []byte, error) {
	prefix, body, ok := strings.Cut(s, "_")
	if !ok || prefix == "" {
		return "", nil, ErrInvalidEncoding
	}
	raw, err := base58.Decode(body)
	if err != nil {
		return "", nil, ErrInvalidEncoding
	}
	if len(raw) < checksumLength {
		return "", nil, ErrInvalidEncoding
	}
	data, sum := raw[:len(raw)-checksumLength], raw[len(raw)-checksumLength:]
	if !bytes.Equal(checksum(data), sum) {
		return "", nil, ErrBadChecksum
	}
	return prefix, data, nil
}
