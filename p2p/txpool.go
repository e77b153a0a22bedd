// SPDX-License-Identifier: MIT
// Dev: KryperAI

package p2p

import "aewire/envelope"

// TxPoolSyncInit opens a transaction pool sync session. It has no body.
type TxPoolSyncInit struct{}

func (*TxPoolSyncInit) Type() MsgType { return MsgTxPoolSyncInit }

func handleTxPoolSyncInit(_ *Dispatcher, _ envelope.Envelope) (Message, error) {
	return &TxPoolSyncInit{}, nil
}
