// SPDX-License-Identifier: MIT
// Dev: KryperAI

package p2p

import (
	"fmt"

	"aewire/envelope"
	"aewire/types"
)

const keyBlockMarker = 1

// KeyBlocks is a batch of key headers. It is either decoded whole or
// not at all.
type KeyBlocks struct {
	Headers []*types.KeyHeader `json:"headers"`
}

func (*KeyBlocks) Type() MsgType { return MsgKeyBlock }

// [marker, header, marker, header, ...] with every marker equal to 1.
func handleKeyBlocks(d *Dispatcher, body envelope.Envelope) (Message, error) {
	n, err := body.Len()
	if err != nil {
		return nil, fmt.Errorf("key_block: %w", err)
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: key_block has odd item count %d", ErrProtocolViolation, n)
	}

	it, err := body.Iter()
	if err != nil {
		return nil, fmt.Errorf("key_block: %w", err)
	}
	kb := &KeyBlocks{Headers: make([]*types.KeyHeader, 0, n/2)}
	for pair := 0; it.Next(); pair++ {
		marker, err := it.Value().Uint()
		if err != nil {
			return nil, fmt.Errorf("key_block pair %d marker: %w", pair, err)
		}
		if marker != keyBlockMarker {
			return nil, fmt.Errorf("%w: key_block pair %d has marker %d", ErrProtocolViolation, pair, marker)
		}
		if !it.Next() {
			if err := it.Err(); err != nil {
				return nil, fmt.Errorf("key_block pair %d record: %w", pair, err)
			}
			return nil, fmt.Errorf("%w: key_block pair %d has no record", ErrMalformedEnvelope, pair)
		}
		record, err := it.Value().Data()
		if err != nil {
			return nil, fmt.Errorf("key_block pair %d record: %w", pair, err)
		}
		hdr, err := types.DecodeKeyHeader(record)
		if err != nil {
			return nil, fmt.Errorf("key_block pair %d: %w", pair, err)
		}
		d.log.Debug("Decoded key header", "height", hdr.Height, "header", hdr)
		kb.Headers = append(kb.Headers, hdr)
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("key_block: %w", err)
	}
	return kb, nil
}
