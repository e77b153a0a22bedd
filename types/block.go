// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

/*
   KEY BLOCK HEADER (364 bytes, fixed)

   version      [0:4]
   flags        [4:8]     key tag + unused bits
   height       [8:16]
   prev_hash    [16:48]
   prev_key     [48:80]
   state_hash   [80:112]
   miner        [112:144]
   beneficiary  [144:176]
   target       [176:180]
   pow          [180:348] 42 x uint32 cuckoo cycle
   nonce        [348:356]
   time         [356:364]
*/

const (
	KeyHeaderSize = 364
	PowSize       = 168
	PowEdges      = PowSize / 4
)

type KeyHeader struct {
	Version     uint32        `json:"version"`
	Flags       uint32        `json:"flags"`
	Height      uint64        `json:"height"`
	PrevHash    Hash          `json:"prevHash"`
	PrevKeyHash Hash          `json:"prevKeyHash"`
	StateHash   Hash          `json:"stateHash"`
	Miner       Hash          `json:"miner"`
	Beneficiary Hash          `json:"beneficiary"`
	Target      uint32        `json:"target"`
	Pow         hexutil.Bytes `json:"pow"`
	Nonce       uint64        `json:"nonce"`
	Time        uint64        `json:"time"`
}

// DecodeKeyHeader reads a key header. Bytes past KeyHeaderSize are
// ignored.
func DecodeKeyHeader(b []byte) (*KeyHeader, error) {
	if err := requireLen(b, KeyHeaderSize, "key header"); err != nil {
		return nil, err
	}

	h := &KeyHeader{
		Version:     readU32(b, 0),
		Flags:       readU32(b, 4),
		Height:      readU64(b, 8),
		PrevHash:    readHash(b, 16),
		PrevKeyHash: readHash(b, 48),
		StateHash:   readHash(b, 80),
		Miner:       readHash(b, 112),
		Beneficiary: readHash(b, 144),
		Target:      readU32(b, 176),
		Nonce:       readU64(b, 348),
		Time:        readU64(b, 356),
	}
	h.Pow = append(hexutil.Bytes(nil), b[180:180+PowSize]...)
	return h, nil
}

// Solution returns the proof of work as its 42 cycle edges.
func (h *KeyHeader) Solution() []uint32 {
	out := make([]uint32, len(h.Pow)/4)
	for i := range out {
		out[i] = binary.BigEndian.Uint32(h.Pow[i*4 : i*4+4])
	}
	return out
}

// MinerId is the miner's account identifier.
func (h *KeyHeader) MinerId() Id { return Id{Tag: IdAccount, Value: h.Miner} }

// BeneficiaryId is the beneficiary's account identifier.
func (h *KeyHeader) BeneficiaryId() Id { return Id{Tag: IdAccount, Value: h.Beneficiary} }

func (h *KeyHeader) String() string {
	return fmt.Sprintf(
		"KeyHeader{version: %d flags: %#x height: %d prev: %s prev_key: %s state: %s miner: %s beneficiary: %s target: %#x nonce: %d time: %d}",
		h.Version, h.Flags, h.Height,
		h.PrevHash, h.PrevKeyHash, h.StateHash.Encode(PrefixStateHash),
		h.MinerId(), h.BeneficiaryId(),
		h.Target, h.Nonce, h.Time,
	)
}
