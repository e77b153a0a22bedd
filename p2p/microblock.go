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
	microBlockFields = 3
	microHeaderItem  = 2
	microTxsItem     = 3
)

// MicroBlock carries either full transactions or, for light blocks,
// references to them.
type MicroBlock struct {
	Version uint8              `json:"version"`
	Light   bool               `json:"light"`
	Header  *types.MicroHeader `json:"header"`
	Txs     []*txcodec.Tx      `json:"txs,omitempty"`
	TxRefs  []string           `json:"txRefs,omitempty"`
}

func (*MicroBlock) Type() MsgType { return MsgMicroBlock }

/*
   [version, block, light]

   block is itself encoded: [tag, version, header, txs, pof]
   light != 0 means txs holds hashes or ids instead of signed transactions
*/
func handleMicroBlock(d *Dispatcher, body envelope.Envelope) (Message, error) {
	n, err := body.Len()
	if err != nil {
		return nil, fmt.Errorf("micro_block: %w", err)
	}
	if n != microBlockFields {
		return nil, fmt.Errorf("%w: micro_block has %d fields, want %d", ErrMalformedEnvelope, n, microBlockFields)
	}
	version, err := body.ByteAt(0)
	if err != nil {
		return nil, fmt.Errorf("micro_block version: %w", err)
	}
	blockItem, err := body.At(1)
	if err != nil {
		return nil, fmt.Errorf("micro_block block: %w", err)
	}
	block, err := blockItem.Nested()
	if err != nil {
		return nil, fmt.Errorf("micro_block block: %w", err)
	}
	light, err := body.ByteAt(2)
	if err != nil {
		return nil, fmt.Errorf("micro_block light: %w", err)
	}
	d.traceEnvelope("Micro block payload", MsgMicroBlock, block)

	headerBytes, err := block.DataAt(microHeaderItem)
	if err != nil {
		return nil, fmt.Errorf("micro_block header: %w", err)
	}
	hdr, err := types.DecodeMicroHeader(headerBytes)
	if err != nil {
		return nil, fmt.Errorf("micro_block: %w", err)
	}
	txs, err := block.At(microTxsItem)
	if err != nil {
		return nil, fmt.Errorf("micro_block txs: %w", err)
	}

	mb := &MicroBlock{Version: version, Light: light != 0, Header: hdr}
	if mb.Light {
		refs, err := lightTxRefs(txs)
		if err != nil {
			return nil, fmt.Errorf("micro_block light txs: %w", err)
		}
		mb.TxRefs = refs
	} else {
		list, err := d.decodeTxList(txs)
		if err != nil {
			return nil, fmt.Errorf("micro_block: %w", err)
		}
		mb.Txs = list.Txs
	}

	d.log.Debug("Decoded micro block", "height", hdr.Height, "light", mb.Light, "txs", len(mb.Txs)+len(mb.TxRefs), "header", hdr)
	return mb, nil
}

// lightTxRefs renders each item of a light block's transaction list as
// an identifier when it parses as one and as a transaction hash
// otherwise.
func lightTxRefs(txs envelope.Envelope) ([]string, error) {
	values, err := envelope.DecodeList(txs)
	if err != nil {
		return nil, err
	}
	refs := make([]string, 0, len(values))
	for i, v := range values {
		b, err := v.Bytes()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if id, err := types.ParseId(b); err == nil {
			refs = append(refs, id.String())
			continue
		}
		refs = append(refs, types.EncodeAPI(types.PrefixTxHash, b))
	}
	return refs, nil
}
