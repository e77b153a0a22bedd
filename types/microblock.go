// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

/*
   MICRO BLOCK HEADER (216 or 248 bytes)

   version      [0:4]
   flags        [4:8]     bit 31 micro tag, bit 30 has fraud
   height       [8:16]
   prev_hash    [16:48]
   prev_key     [48:80]
   state_hash   [80:112]
   txs_hash     [112:144]
   time         [144:152]
   fraud_hash   [152:184] only when has fraud
   signature    64 bytes right after time or fraud hash
*/

const (
	MicroFlagMicro    byte = 0b1000_0000
	MicroFlagHasFraud byte = 0b0100_0000

	microFlagsOffset = 4
	microFixedSize   = 152
	SignatureSize    = 64
)

// MicroLayout holds the offsets of the variable part of a micro header.
type MicroLayout struct {
	FraudOffset     int // -1 when there is no fraud hash
	SignatureOffset int
	Size            int
}

// LayoutFor computes where the fraud hash and signature sit for the
// given fraud flag. All micro header slicing goes through it.
func LayoutFor(hasFraud bool) MicroLayout {
	if hasFraud {
		return MicroLayout{
			FraudOffset:     microFixedSize,
			SignatureOffset: microFixedSize + HashLength,
			Size:            microFixedSize + HashLength + SignatureSize,
		}
	}
	return MicroLayout{
		FraudOffset:     -1,
		SignatureOffset: microFixedSize,
		Size:            microFixedSize + SignatureSize,
	}
}

type MicroHeader struct {
	Version     uint32        `json:"version"`
	Flags       uint32        `json:"flags"`
	IsMicro     bool          `json:"isMicro"`
	HasFraud    bool          `json:"hasFraud"`
	Height      uint64        `json:"height"`
	PrevHash    Hash          `json:"prevHash"`
	PrevKeyHash Hash          `json:"prevKeyHash"`
	StateHash   Hash          `json:"stateHash"`
	TxsHash     Hash          `json:"txsHash"`
	Time        uint64        `json:"time"`
	FraudHash   *Hash         `json:"fraudHash,omitempty"`
	Signature   hexutil.Bytes `json:"signature"`
}

// DecodeMicroHeader reads a micro header. The flag byte is inspected
// first; the required length depends on it.
func DecodeMicroHeader(b []byte) (*MicroHeader, error) {
	if err := requireLen(b, microFlagsOffset+1, "micro header flags"); err != nil {
		return nil, err
	}
	flags := b[microFlagsOffset]
	hasFraud := flags&MicroFlagHasFraud != 0

	layout := LayoutFor(hasFraud)
	if err := requireLen(b, layout.Size, "micro header"); err != nil {
		return nil, err
	}

	h := &MicroHeader{
		Version:     readU32(b, 0),
		Flags:       readU32(b, 4),
		IsMicro:     flags&MicroFlagMicro != 0,
		HasFraud:    hasFraud,
		Height:      readU64(b, 8),
		PrevHash:    readHash(b, 16),
		PrevKeyHash: readHash(b, 48),
		StateHash:   readHash(b, 80),
		TxsHash:     readHash(b, 112),
		Time:        readU64(b, 144),
	}
	if hasFraud {
		fraud := readHash(b, layout.FraudOffset)
		h.FraudHash = &fraud
	}
	h.Signature = append(hexutil.Bytes(nil), b[layout.SignatureOffset:layout.SignatureOffset+SignatureSize]...)
	return h, nil
}

func (h *MicroHeader) String() string {
	fraud := "none"
	if h.FraudHash != nil {
		fraud = h.FraudHash.String()
	}
	return fmt.Sprintf(
		"MicroHeader{version: %d flags: %#x height: %d prev: %s prev_key: %s state: %s txs: %s time: %d fraud: %s sig: %s}",
		h.Version, h.Flags, h.Height,
		h.PrevHash, h.PrevKeyHash,
		h.StateHash.Encode(PrefixStateHash), h.TxsHash.Encode(PrefixTxsHash),
		h.Time, fraud, EncodeAPI(PrefixSignature, h.Signature),
	)
}
