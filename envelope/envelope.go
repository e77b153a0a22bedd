// SPDX-License-Identifier: MIT
// Dev: KryperAI

package envelope

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

var (
	ErrMalformed  = errors.New("malformed envelope")
	ErrNotList    = fmt.Errorf("%w: expected list", ErrMalformed)
	ErrNotScalar  = fmt.Errorf("%w: expected byte string", ErrMalformed)
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrMalformed)
)

// Envelope is a read-only view over one RLP encoded value. Nothing is
// parsed until a method is called, and children share the parent's
// backing array.
type Envelope struct {
	raw []byte
}

// Parse wraps b, which must hold exactly one complete value.
func Parse(b []byte) (Envelope, error) {
	_, _, rest, err := rlp.Split(b)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rest) != 0 {
		return Envelope{}, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(rest))
	}
	return Envelope{raw: b}, nil
}

// Wrap returns a view over b without checking it. Errors surface on
// first access; use Parse to validate up front.
func Wrap(b []byte) Envelope { return Envelope{raw: b} }

// Raw returns the full encoding, header included.
func (e Envelope) Raw() []byte { return e.raw }

// Size is the length of the full encoding in bytes.
func (e Envelope) Size() int { return len(e.raw) }

func (e Envelope) split() (rlp.Kind, []byte, error) {
	k, content, _, err := rlp.Split(e.raw)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return k, content, nil
}

// IsList reports whether the value is a Sequence. Undecodable input is
// reported as not a list.
func (e Envelope) IsList() bool {
	k, _, err := e.split()
	return err == nil && k == rlp.List
}

// Data returns the content of a Scalar.
func (e Envelope) Data() ([]byte, error) {
	k, content, err := e.split()
	if err != nil {
		return nil, err
	}
	if k == rlp.List {
		return nil, ErrNotScalar
	}
	return content, nil
}

// Len returns the number of items in a Sequence.
func (e Envelope) Len() (int, error) {
	k, content, err := e.split()
	if err != nil {
		return 0, err
	}
	if k != rlp.List {
		return 0, ErrNotList
	}
	n, err := rlp.CountValues(content)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return n, nil
}

// At returns the i-th item of a Sequence.
func (e Envelope) At(i int) (Envelope, error) {
	it, err := e.Iter()
	if err != nil {
		return Envelope{}, err
	}
	for n := 0; it.Next(); n++ {
		if n == i {
			return it.Value(), nil
		}
	}
	if err := it.Err(); err != nil {
		return Envelope{}, err
	}
	return Envelope{}, fmt.Errorf("%w: %d", ErrOutOfRange, i)
}

// Nested reinterprets the content of a Scalar as a complete envelope of
// its own.
func (e Envelope) Nested() (Envelope, error) {
	data, err := e.Data()
	if err != nil {
		return Envelope{}, err
	}
	return Parse(data)
}

// Uint reads a Scalar as a big-endian unsigned integer of at most eight
// bytes. Zero may arrive as an empty string or as a single 0x00 byte, so
// leading zeros are accepted.
func (e Envelope) Uint() (uint64, error) {
	data, err := e.Data()
	if err != nil {
		return 0, err
	}
	if len(data) > 8 {
		return 0, fmt.Errorf("%w: integer of %d bytes", ErrMalformed, len(data))
	}
	var x uint64
	for _, b := range data {
		x = x<<8 | uint64(b)
	}
	return x, nil
}

// Byte reads a Scalar integer that must fit in one byte.
func (e Envelope) Byte() (uint8, error) {
	x, err := e.Uint()
	if err != nil {
		return 0, err
	}
	if x > 0xff {
		return 0, fmt.Errorf("%w: %d overflows uint8", ErrMalformed, x)
	}
	return uint8(x), nil
}

// UintAt is shorthand for At(i) followed by Uint.
func (e Envelope) UintAt(i int) (uint64, error) {
	item, err := e.At(i)
	if err != nil {
		return 0, err
	}
	return item.Uint()
}

// ByteAt is shorthand for At(i) followed by Byte.
func (e Envelope) ByteAt(i int) (uint8, error) {
	item, err := e.At(i)
	if err != nil {
		return 0, err
	}
	return item.Byte()
}

// DataAt is shorthand for At(i) followed by Data.
func (e Envelope) DataAt(i int) ([]byte, error) {
	item, err := e.At(i)
	if err != nil {
		return nil, err
	}
	return item.Data()
}

// Iter returns a fresh iterator over the items of a Sequence. Calling it
// again restarts from the first item.
func (e Envelope) Iter() (*Iterator, error) {
	k, content, err := e.split()
	if err != nil {
		return nil, err
	}
	if k != rlp.List {
		return nil, ErrNotList
	}
	return &Iterator{rest: content}, nil
}

// Iterator walks the items of a Sequence one at a time.
type Iterator struct {
	rest []byte
	cur  Envelope
	err  error
}

// Next advances to the next item. It returns false at the end of the
// list or on the first malformed item; check Err afterwards.
func (it *Iterator) Next() bool {
	if it.err != nil || len(it.rest) == 0 {
		return false
	}
	_, _, rest, err := rlp.Split(it.rest)
	if err != nil {
		it.err = fmt.Errorf("%w: %v", ErrMalformed, err)
		it.rest = nil
		return false
	}
	it.cur = Envelope{raw: it.rest[:len(it.rest)-len(rest)]}
	it.rest = rest
	return true
}

// Value returns the current item.
func (it *Iterator) Value() Envelope { return it.cur }

// Err returns the error that stopped iteration, if any.
func (it *Iterator) Err() error { return it.err }
