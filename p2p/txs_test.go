// SPDX-License-Identifier: MIT
// Dev: KryperAI

package p2p

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aewire/types"
)

func TestTxs(t *testing.T) {
	d, _ := newTestDispatcher()
	first := signedSpendTx(t, 1)
	second := signedSpendTx(t, 2)

	msg, err := d.HandleFrame(frameOf(t, MsgTxs, []interface{}{
		uint64(1), []interface{}{first, second},
	}))
	require.NoError(t, err)
	txs, ok := msg.(*Txs)
	require.True(t, ok)
	require.Len(t, txs.Txs, 2)

	tx := txs.Txs[0]
	assert.Equal(t, "SpendTx", tx.Type)
	assert.Equal(t, types.TxHashString(types.TxHash(first)), tx.Hash)
	assert.NotEqual(t, tx.Hash, txs.Txs[1].Hash)

	nonce, ok := txs.Txs[1].Get("nonce")
	require.True(t, ok)
	assert.Equal(t, big.NewInt(2), nonce)
}

func TestTxsEmptyList(t *testing.T) {
	d, _ := newTestDispatcher()
	msg, err := d.HandleFrame(frameOf(t, MsgTxs, []interface{}{uint64(1), []interface{}{}}))
	require.NoError(t, err)
	assert.Empty(t, msg.(*Txs).Txs)
}

func TestTxsVersionCheckedFirst(t *testing.T) {
	d, _ := newTestDispatcher()
	_, err := d.HandleFrame(frameOf(t, MsgTxs, []interface{}{
		uint64(2), []interface{}{[]byte{0xff, 0xfe}},
	}))
	assert.ErrorIs(t, err, ErrProtocolViolation)
}

func TestTxsFieldCount(t *testing.T) {
	d, _ := newTestDispatcher()
	_, err := d.HandleFrame(frameOf(t, MsgTxs, []interface{}{
		uint64(1), []interface{}{}, uint64(0),
	}))
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestTxsFailFast(t *testing.T) {
	d, _ := newTestDispatcher()
	msg, err := d.HandleFrame(frameOf(t, MsgTxs, []interface{}{
		uint64(1), []interface{}{signedSpendTx(t, 1), []byte{0xc5, 0x01}},
	}))
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
	assert.Nil(t, msg)
}
