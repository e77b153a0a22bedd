// SPDX-License-Identifier: MIT
// Dev: KryperAI

package envelope

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValueTree(t *testing.T) {
	e, err := Parse(encode(t, []interface{}{
		uint64(12),
		[]byte("hello"),
		[]interface{}{[]byte{0xff}, []interface{}{}},
	}))
	require.NoError(t, err)

	v, err := DecodeValue(e)
	require.NoError(t, err)
	require.True(t, v.IsList())

	items, err := v.Items()
	require.NoError(t, err)
	require.Len(t, items, 3)

	tag, err := items[0].Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(12), tag)

	text, err := items[1].Text()
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	sub, err := items[2].Items()
	require.NoError(t, err)
	require.Len(t, sub, 2)
	b, err := sub[0].Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff}, b)
	empty, err := sub[1].Items()
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = items[2].Bytes()
	assert.ErrorIs(t, err, ErrNotScalar)
	_, err = items[0].Items()
	assert.ErrorIs(t, err, ErrNotList)
}

func TestDecodeListRequiresList(t *testing.T) {
	e, err := Parse(encode(t, []byte("abc")))
	require.NoError(t, err)
	_, err = DecodeList(e)
	assert.ErrorIs(t, err, ErrNotList)
}

func TestValueNumbers(t *testing.T) {
	large := BytesValue([]byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0})

	_, err := large.Uint64()
	assert.ErrorIs(t, err, ErrMalformed)

	n, err := large.BigInt()
	require.NoError(t, err)
	assert.Equal(t, 0, n.Cmp(new(big.Int).Lsh(big.NewInt(1), 64)))

	_, err = BytesValue([]byte{0x01, 0, 0, 0, 0}).Uint32()
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = BytesValue([]byte{0xff, 0xfe}).Text()
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ListValue().BigInt()
	assert.ErrorIs(t, err, ErrNotScalar)
}
