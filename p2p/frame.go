// SPDX-License-Identifier: MIT
// Dev: KryperAI

package p2p

import (
	"encoding/binary"
	"fmt"

	"aewire/envelope"
)

const tagSize = 2

// SplitFrame separates the big-endian type tag from the body. The body
// is not validated here: some message kinds carry raw bytes, and unknown
// kinds are never looked at.
func SplitFrame(frame []byte) (MsgType, envelope.Envelope, error) {
	if len(frame) < tagSize {
		return 0, envelope.Envelope{}, fmt.Errorf("%w: frame of %d bytes has no type tag", ErrMalformedEnvelope, len(frame))
	}
	tag := MsgType(binary.BigEndian.Uint16(frame[:tagSize]))
	return tag, envelope.Wrap(frame[tagSize:]), nil
}

// EncodeFrame prepends the type tag to an already encoded body.
func EncodeFrame(tag MsgType, body []byte) []byte {
	out := make([]byte, tagSize+len(body))
	binary.BigEndian.PutUint16(out[:tagSize], uint16(tag))
	copy(out[tagSize:], body)
	return out
}
