// SPDX-License-Identifier: MIT
// Dev: KryperAI

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseId(t *testing.T) {
	raw := append([]byte{byte(IdAccount)}, make([]byte, 32)...)
	id, err := ParseId(raw)
	require.NoError(t, err)
	assert.Equal(t, IdAccount, id.Tag)
	assert.Equal(t, "ak_11111111111111111111111111111111273Yts", id.String())
	assert.Equal(t, raw, id.Bytes())

	back, err := DecodeId(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, back)
}

func TestIdPrefixes(t *testing.T) {
	for tag, prefix := range idPrefixes {
		id := Id{Tag: tag}
		copy(id.Value[:], seq(32, byte(tag)))
		assert.Equal(t, prefix, id.String()[:2])

		back, err := DecodeId(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, back)
	}
}

func TestParseIdErrors(t *testing.T) {
	_, err := ParseId(make([]byte, 32))
	assert.ErrorIs(t, err, ErrInvalidId)

	_, err = ParseId(append([]byte{9}, make([]byte, 32)...))
	assert.ErrorIs(t, err, ErrInvalidId)

	_, err = DecodeId(EncodeAPI("zz", make([]byte, 32)))
	assert.ErrorIs(t, err, ErrInvalidId)

	_, err = DecodeId(EncodeAPI("ak", make([]byte, 5)))
	assert.ErrorIs(t, err, ErrInvalidId)
}
