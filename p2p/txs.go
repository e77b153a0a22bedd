// SPDX-License-Identifier: MIT
// Dev: KryperAI

package p2p

import (
	"fmt"

	"aewire/envelope"
	"aewire/txcodec"
	"aewire/types"
)

const (
	txListVersion    = 1
	txListFields     = 2
	signedTxBodyItem = 3
)

// Txs is a batch of decoded transactions. A single bad transaction fails
// the whole batch.
type Txs struct {
	Version uint8         `json:"version"`
	Txs     []*txcodec.Tx `json:"txs"`
}

func (*Txs) Type() MsgType { return MsgTxs }

func handleTxs(d *Dispatcher, body envelope.Envelope) (Message, error) {
	txs, err := d.decodeTxList(body)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// [version == 1, [signed_tx, ...]]
func (d *Dispatcher) decodeTxList(body envelope.Envelope) (*Txs, error) {
	n, err := body.Len()
	if err != nil {
		return nil, fmt.Errorf("txs: %w", err)
	}
	if n != txListFields {
		return nil, fmt.Errorf("%w: txs has %d fields, want %d", ErrMalformedEnvelope, n, txListFields)
	}
	version, err := body.ByteAt(0)
	if err != nil {
		return nil, fmt.Errorf("txs version: %w", err)
	}
	if version != txListVersion {
		return nil, fmt.Errorf("%w: unsupported txs version %d", ErrProtocolViolation, version)
	}

	list, err := body.At(1)
	if err != nil {
		return nil, fmt.Errorf("txs list: %w", err)
	}
	it, err := list.Iter()
	if err != nil {
		return nil, fmt.Errorf("txs list: %w", err)
	}
	out := &Txs{Version: version, Txs: make([]*txcodec.Tx, 0)}
	for i := 0; it.Next(); i++ {
		tx, err := decodeSignedTx(it.Value())
		if err != nil {
			return nil, fmt.Errorf("txs item %d: %w", i, err)
		}
		d.log.Debug("Decoded transaction", "hash", tx.Hash, "type", tx.Type)
		out.Txs = append(out.Txs, tx)
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("txs list: %w", err)
	}
	return out, nil
}

// decodeSignedTx takes the byte string holding a serialized signed
// transaction, [tag, version, [signatures], tx].
func decodeSignedTx(item envelope.Envelope) (*txcodec.Tx, error) {
	raw, err := item.Data()
	if err != nil {
		return nil, err
	}
	signed, err := envelope.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("signed tx: %w", err)
	}
	inner, err := signed.At(signedTxBodyItem)
	if err != nil {
		return nil, fmt.Errorf("signed tx body: %w", err)
	}
	txEnv, err := inner.Nested()
	if err != nil {
		return nil, fmt.Errorf("tx: %w", err)
	}
	values, err := envelope.DecodeList(txEnv)
	if err != nil {
		return nil, fmt.Errorf("tx: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty transaction", ErrMalformedEnvelope)
	}
	tag, err := values[0].Uint32()
	if err != nil {
		return nil, fmt.Errorf("tx tag: %w", err)
	}
	tx, err := txcodec.Decode(tag, values)
	if err != nil {
		return nil, err
	}
	tx.Hash = types.TxHashString(types.TxHash(raw))
	return tx, nil
}
