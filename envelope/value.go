// SPDX-License-Identifier: MIT
// Dev: KryperAI

package envelope

import (
	"fmt"
	"math/big"
	"unicode/utf8"
)

// MaxDepth bounds list nesting for eager decoding and display.
const MaxDepth = 64

// Value is an eagerly decoded tree: either a byte string or a list of
// values. It is what transaction schemas are matched against.
type Value struct {
	data   []byte
	items  []Value
	isList bool
}

// DecodeValue materialises e and everything below it.
func DecodeValue(e Envelope) (Value, error) {
	return decodeValue(e, 0)
}

// DecodeList decodes e and requires it to be a list, returning its items.
func DecodeList(e Envelope) ([]Value, error) {
	v, err := DecodeValue(e)
	if err != nil {
		return nil, err
	}
	return v.Items()
}

func decodeValue(e Envelope, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, fmt.Errorf("%w: nesting deeper than %d", ErrMalformed, MaxDepth)
	}
	if !e.IsList() {
		data, err := e.Data()
		if err != nil {
			return Value{}, err
		}
		return Value{data: data}, nil
	}

	it, err := e.Iter()
	if err != nil {
		return Value{}, err
	}
	items := make([]Value, 0)
	for it.Next() {
		v, err := decodeValue(it.Value(), depth+1)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	if err := it.Err(); err != nil {
		return Value{}, err
	}
	return Value{items: items, isList: true}, nil
}

// BytesValue builds a byte-string value.
func BytesValue(b []byte) Value { return Value{data: b} }

// ListValue builds a list value.
func ListValue(items ...Value) Value { return Value{items: items, isList: true} }

func (v Value) IsList() bool { return v.isList }

func (v Value) Bytes() ([]byte, error) {
	if v.isList {
		return nil, ErrNotScalar
	}
	return v.data, nil
}

func (v Value) Items() ([]Value, error) {
	if !v.isList {
		return nil, ErrNotList
	}
	return v.items, nil
}

func (v Value) Uint64() (uint64, error) {
	b, err := v.Bytes()
	if err != nil {
		return 0, err
	}
	if len(b) > 8 {
		return 0, fmt.Errorf("%w: integer of %d bytes", ErrMalformed, len(b))
	}
	var x uint64
	for _, c := range b {
		x = x<<8 | uint64(c)
	}
	return x, nil
}

func (v Value) Uint32() (uint32, error) {
	x, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if x > 0xffffffff {
		return 0, fmt.Errorf("%w: %d overflows uint32", ErrMalformed, x)
	}
	return uint32(x), nil
}

// BigInt reads an unbounded unsigned integer; token amounts routinely
// exceed 64 bits.
func (v Value) BigInt() (*big.Int, error) {
	b, err := v.Bytes()
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// Text reads a byte string as UTF-8.
func (v Value) Text() (string, error) {
	b, err := v.Bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: invalid utf-8", ErrMalformed)
	}
	return string(b), nil
}
