// SPDX-License-Identifier: MIT
// Dev: KryperAI

package types

import (
	"errors"
	"fmt"
)

// IdLength is the serialized size of an identifier: one tag byte
// followed by a 32-byte value.
const IdLength = 1 + HashLength

// IdTag says what an identifier refers to.
type IdTag uint8

const (
	IdAccount    IdTag = 1
	IdName       IdTag = 2
	IdCommitment IdTag = 3
	IdOracle     IdTag = 4
	IdContract   IdTag = 5
	IdChannel    IdTag = 6
)

var idPrefixes = map[IdTag]string{
	IdAccount:    "ak",
	IdName:       "nm",
	IdCommitment: "cm",
	IdOracle:     "ok",
	IdContract:   "ct",
	IdChannel:    "ch",
}

var ErrInvalidId = errors.New("invalid identifier")

// Id is a typed reference to an account, name, oracle, contract, etc.
type Id struct {
	Tag   IdTag
	Value Hash
}

// Prefix returns the API prefix for the identifier's tag.
func (id Id) Prefix() string {
	return idPrefixes[id.Tag]
}

// String returns the API form, e.g. "ak_2a1j2...".
func (id Id) String() string {
	return EncodeAPI(id.Prefix(), id.Value[:])
}

func (id Id) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// ParseId decodes the serialized 33-byte form.
func ParseId(b []byte) (Id, error) {
	if len(b) != IdLength {
		return Id{}, fmt.Errorf("%w: length %d", ErrInvalidId, len(b))
	}
	tag := IdTag(b[0])
	if _, ok := idPrefixes[tag]; !ok {
		return Id{}, fmt.Errorf("%w: unknown tag %d", ErrInvalidId, tag)
	}
	id := Id{Tag: tag}
	copy(id.Value[:], b[1:])
	return id, nil
}

// Bytes returns the serialized 33-byte form.
func (id Id) Bytes() []byte {
	out := make([]byte, IdLength)
	out[0] = byte(id.Tag)
	copy(out[1:], id.Value[:])
	return out
}

// DecodeId parses the API form back into an identifier.
func DecodeId(s string) (Id, error) {
	prefix, data, err := DecodeAPI(s)
	if err != nil {
		return Id{}, err
	}
	if len(data) != HashLength {
		return Id{}, fmt.Errorf("%w: value length %d", ErrInvalidId, len(data))
	}
	for tag, p := range idPrefixes {
		if p == prefix {
			id := Id{Tag: tag}
			copy(id.Value[:], data)
			return id, nil
		}
	}
	return Id{}, fmt.Errorf("%w: unknown prefix %q", ErrInvalidId, prefix)
}
