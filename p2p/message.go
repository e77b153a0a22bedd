// SPDX-License-Identifier: MIT
// Dev: KryperAI

package p2p

import "fmt"

// MsgType is the 2-byte tag that opens every frame.
type MsgType uint16

const (
	MsgFragment          MsgType = 0
	MsgPing              MsgType = 1
	MsgGetHeaderByHash   MsgType = 3
	MsgHeader            MsgType = 4
	MsgGetNSuccessors    MsgType = 5
	MsgHeaderHashes      MsgType = 6
	MsgGetBlockTxs       MsgType = 7
	MsgGetGeneration     MsgType = 8
	MsgTxs               MsgType = 9
	MsgKeyBlock          MsgType = 10
	MsgMicroBlock        MsgType = 11
	MsgGeneration        MsgType = 12
	MsgBlockTxs          MsgType = 13
	MsgGetHeaderByHeight MsgType = 15
	MsgTxPoolSyncInit    MsgType = 20
	MsgTxPoolSyncUnfold  MsgType = 21
	MsgTxPoolSyncGet     MsgType = 22
	MsgTxPoolSyncFinish  MsgType = 23
	MsgResponse          MsgType = 100
	MsgClose             MsgType = 127
)

var msgNames = map[MsgType]string{
	MsgFragment:          "fragment",
	MsgPing:              "ping",
	MsgGetHeaderByHash:   "get_header_by_hash",
	MsgHeader:            "header",
	MsgGetNSuccessors:    "get_n_successors",
	MsgHeaderHashes:      "header_hashes",
	MsgGetBlockTxs:       "get_block_txs",
	MsgGetGeneration:     "get_generation",
	MsgTxs:               "txs",
	MsgKeyBlock:          "key_block",
	MsgMicroBlock:        "micro_block",
	MsgGeneration:        "generation",
	MsgBlockTxs:          "block_txs",
	MsgGetHeaderByHeight: "get_header_by_height",
	MsgTxPoolSyncInit:    "tx_pool_sync_init",
	MsgTxPoolSyncUnfold:  "tx_pool_sync_unfold",
	MsgTxPoolSyncGet:     "tx_pool_sync_get",
	MsgTxPoolSyncFinish:  "tx_pool_sync_finish",
	MsgResponse:          "p2p_response",
	MsgClose:             "close",
}

// Known reports whether t is part of the enumerated protocol set.
func (t MsgType) Known() bool {
	_, ok := msgNames[t]
	return ok
}

func (t MsgType) String() string {
	if name, ok := msgNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint16(t))
}

// Message is a decoded inbound message.
type Message interface {
	Type() MsgType
}
