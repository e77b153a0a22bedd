// SPDX-License-Identifier: MIT
// Dev: KryperAI

package p2p

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchIgnoredTags(t *testing.T) {
	d, _ := newTestDispatcher()

	tests := []struct {
		name  string
		frame []byte
	}{
		{"unknown tag", frameOf(t, MsgType(200), []interface{}{uint64(1)})},
		{"no handler", frameOf(t, MsgHeader, []interface{}{uint64(1), []byte("hdr")})},
		{"close without body", EncodeFrame(MsgClose, nil)},
		{"fragment", frameOf(t, MsgFragment, []interface{}{uint64(1), uint64(2), []byte("part")})},
		{"unknown tag with raw body", []byte{0x00, 0xc8, 0xff, 0xff}},
		// fragment bodies are <<index:16, total:16, data>>, not an encoded value
		{"raw fragment", []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x03, 0xf9, 0x01, 0x02}},
		{"no handler with trailing byte", append(frameOf(t, MsgHeader, []interface{}{uint64(1)}), 0x01)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := d.HandleFrame(tt.frame)
			assert.NoError(t, err)
			assert.Nil(t, msg)
		})
	}
}

func TestEveryKnownTagHasAnEntry(t *testing.T) {
	for tag := range msgNames {
		_, ok := handlers[tag]
		assert.True(t, ok, "no handler entry for %s", tag)
	}
	assert.Len(t, handlers, len(msgNames))
}

func TestHandleFrameTooShort(t *testing.T) {
	d := NewDispatcher(nil)
	_, err := d.HandleFrame([]byte{0x01})
	assert.ErrorIs(t, err, ErrMalformedEnvelope)

	_, err = d.HandleFrame(nil)
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestHandleFrameMalformedBody(t *testing.T) {
	d, _ := newTestDispatcher()
	_, err := d.HandleFrame([]byte{0x00, byte(MsgTxs), 0xc5, 0x01})
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestTxPoolSyncInit(t *testing.T) {
	d, _ := newTestDispatcher()
	msg, err := d.HandleFrame(EncodeFrame(MsgTxPoolSyncInit, nil))
	require.NoError(t, err)
	require.IsType(t, &TxPoolSyncInit{}, msg)
	assert.Equal(t, MsgTxPoolSyncInit, msg.Type())
}

func TestHandleFrameTrailingBytes(t *testing.T) {
	d, _ := newTestDispatcher()
	frame := append(frameOf(t, MsgTxs, []interface{}{uint64(1), []interface{}{}}), 0x01)
	_, err := d.HandleFrame(frame)
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestHandleFrameKeepsGoingAfterIgnoredFrames(t *testing.T) {
	d, _ := newTestDispatcher()
	frames := [][]byte{
		{0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0xff},
		{0x00, 0xc8, 0xff},
		EncodeFrame(MsgTxPoolSyncInit, nil),
	}
	var got []Message
	for _, f := range frames {
		msg, err := d.HandleFrame(f)
		require.NoError(t, err)
		if msg != nil {
			got = append(got, msg)
		}
	}
	require.Len(t, got, 1)
	assert.Equal(t, MsgTxPoolSyncInit, got[0].Type())
}

func TestTraceLogging(t *testing.T) {
	d, buf := newTestDispatcher()
	_, err := d.HandleFrame(frameOf(t, MsgResponse, []interface{}{
		uint64(1), uint64(0), uint64(MsgTxs), []byte("hash"), []byte{},
	}))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Inbound message")
	assert.Contains(t, buf.String(), "data(4)")
}

func TestMsgTypeString(t *testing.T) {
	assert.Equal(t, "p2p_response", MsgResponse.String())
	assert.Equal(t, "key_block", MsgKeyBlock.String())
	assert.Equal(t, "unknown(200)", MsgType(200).String())
	assert.True(t, MsgClose.Known())
	assert.False(t, MsgType(2).Known())
}

func TestSplitFrame(t *testing.T) {
	tag, body, err := SplitFrame([]byte{0x00, 0x14})
	require.NoError(t, err)
	assert.Equal(t, MsgTxPoolSyncInit, tag)
	assert.Equal(t, 0, body.Size())

	frame := EncodeFrame(MsgType(300), []byte{0x01})
	assert.Equal(t, []byte{0x01, 0x2c, 0x01}, frame)

	tag, body, err = SplitFrame(frame)
	require.NoError(t, err)
	assert.Equal(t, MsgType(300), tag)
	assert.Equal(t, []byte{0x01}, body.Raw())

	// Bodies are split off unchecked.
	tag, body, err = SplitFrame([]byte{0x00, 0x00, 0xf9, 0x01})
	require.NoError(t, err)
	assert.Equal(t, MsgFragment, tag)
	assert.Equal(t, []byte{0xf9, 0x01}, body.Raw())
}
