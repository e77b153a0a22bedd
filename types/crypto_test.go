// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	h := ContentHash([]byte{})
	assert.Equal(t, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8", hex.EncodeToString(h[:]))
}

func TestEncodeAPI(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		data   []byte
		want   string
	}{
		{"zero account", "ak", make([]byte, 32), "ak_11111111111111111111111111111111273Yts"},
		{"counting bytes", "th", seq(32, 0), "th_16qJFWMMHFy3xDdLmvUeyc2S6FrWRhJP51HsvDYdz9d1FsYG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeAPI(tt.prefix, tt.data)
			assert.Equal(t, tt.want, got)

			prefix, data, err := DecodeAPI(got)
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.data, data)
		})
	}
}

func TestDecodeAPIErrors(t *testing.T) {
	_, _, err := DecodeAPI("no-separator")
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, _, err = DecodeAPI("ak_0OIl")
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	// Last character changed, so the checksum no longer matches.
	_, _, err = DecodeAPI("ak_11111111111111111111111111111111273Ytt")
	assert.ErrorIs(t, err, ErrBadChecksum)
}

func TestHashText(t *testing.T) {
	var h Hash
	require.NoError(t, h.UnmarshalText([]byte("0x"+hex.EncodeToString(seq(32, 1)))))
	assert.Equal(t, byte(1), h[0])
	assert.Equal(t, byte(32), h[31])
	assert.False(t, h.IsZero())

	out, err := h.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, h.String(), string(out))

	assert.Error(t, h.UnmarshalText([]byte("0x0102")))

	_, ok := BytesToHash(make([]byte, 31))
	assert.False(t, ok)
}

// seq returns n consecutive byte values starting at start.
func seq(n int, start byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = start + byte(i)
	}
	return out
}
