// SPDX-License-Identifier: MIT
// Dev: KryperAI

package p2p

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"

	"aewire/types"
)

// newTestDispatcher logs everything, trace included, into the returned
// buffer.
func newTestDispatcher() (*Dispatcher, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewLogger(log.NewTerminalHandlerWithLevel(&buf, log.LevelTrace, false))
	return NewDispatcher(logger), &buf
}

func encodeRLP(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := rlp.EncodeToBytes(v)
	require.NoError(t, err)
	return b
}

func frameOf(t *testing.T, tag MsgType, v interface{}) []byte {
	t.Helper()
	return EncodeFrame(tag, encodeRLP(t, v))
}

func keyHeaderBytes(height uint64) []byte {
	b := make([]byte, types.KeyHeaderSize)
	binary.BigEndian.PutUint32(b[0:], 5)
	binary.BigEndian.PutUint64(b[8:], height)
	copy(b[112:144], bytes.Repeat([]byte{0x11}, 32))
	binary.BigEndian.PutUint64(b[356:], 1700000000000+height)
	return b
}

func microHeaderBytes(height uint64, hasFraud bool) []byte {
	layout := types.LayoutFor(hasFraud)
	b := make([]byte, layout.Size)
	binary.BigEndian.PutUint32(b[0:], 5)
	b[4] = types.MicroFlagMicro
	if hasFraud {
		b[4] |= types.MicroFlagHasFraud
	}
	binary.BigEndian.PutUint64(b[8:], height)
	copy(b[layout.SignatureOffset:], bytes.Repeat([]byte{0x5a}, types.SignatureSize))
	return b
}

func accountId(fill byte) []byte {
	return append([]byte{byte(types.IdAccount)}, bytes.Repeat([]byte{fill}, 32)...)
}

// signedSpendTx returns a serialized signed spend transaction.
func signedSpendTx(t *testing.T, nonce uint64) []byte {
	t.Helper()
	spend := encodeRLP(t, []interface{}{
		uint64(12), uint64(1),
		accountId(0x01), accountId(0x02),
		uint64(1000), uint64(20000), uint64(0), nonce,
		[]byte{},
	})
	return encodeRLP(t, []interface{}{
		uint64(11), uint64(1),
		[]interface{}{bytes.Repeat([]byte{0x33}, 64)},
		spend,
	})
}
