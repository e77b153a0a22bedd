// SPDX-License-Identifier: MIT
// Dev: KryperAI

package p2p

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"

	"aewire/envelope"
)

const (
	pingVersion = 1
	pingFields  = 8
)

// Ping announces a node's chain view to a peer.
type Ping struct {
	Version     uint16          `json:"version"`
	Port        uint16          `json:"port"`
	Share       uint16          `json:"share"`
	GenesisHash hexutil.Bytes   `json:"genesisHash"`
	Difficulty  uint64          `json:"difficulty"`
	TopHash     hexutil.Bytes   `json:"topHash"`
	SyncAllowed bool            `json:"syncAllowed"`
	Peers       []hexutil.Bytes `json:"peers"`
}

func (*Ping) Type() MsgType { return MsgPing }

// NewPing builds an outbound ping. The peer list is always sent empty.
func NewPing(port, share uint16, genesisHash []byte, difficulty uint64, topHash []byte, syncAllowed bool) *Ping {
	return &Ping{
		Version:     pingVersion,
		Port:        port,
		Share:       share,
		GenesisHash: genesisHash,
		Difficulty:  difficulty,
		TopHash:     topHash,
		SyncAllowed: syncAllowed,
	}
}

// pingRLP fixes the field order on the wire.
type pingRLP struct {
	Version     uint16
	Port        uint16
	Share       uint16
	GenesisHash []byte
	Difficulty  uint64
	TopHash     []byte
	SyncAllowed uint16
	Peers       []rlp.RawValue
}

// EncodePing serializes p into a complete frame: tag, then the mangled
// body.
func EncodePing(p *Ping) ([]byte, error) {
	if p == nil {
		return nil, errors.New("nil ping")
	}
	wire := pingRLP{
		Version:     pingVersion,
		Port:        p.Port,
		Share:       p.Share,
		GenesisHash: p.GenesisHash,
		Difficulty:  p.Difficulty,
		TopHash:     p.TopHash,
		Peers:       []rlp.RawValue{},
	}
	if p.SyncAllowed {
		wire.SyncAllowed = 1
	}
	body, err := rlp.EncodeToBytes(&wire)
	if err != nil {
		return nil, fmt.Errorf("encode ping: %w", err)
	}
	return EncodeFrame(MsgPing, envelope.Mangle(body)), nil
}

// DecodePing reads an inbound ping body.
func DecodePing(body envelope.Envelope) (*Ping, error) {
	n, err := body.Len()
	if err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	if n != pingFields {
		return nil, fmt.Errorf("%w: ping has %d fields, want %d", ErrMalformedEnvelope, n, pingFields)
	}

	p := &Ping{}
	ints := []struct {
		idx int
		dst *uint16
	}{{0, &p.Version}, {1, &p.Port}, {2, &p.Share}}
	for _, f := range ints {
		v, err := body.UintAt(f.idx)
		if err != nil {
			return nil, fmt.Errorf("ping field %d: %w", f.idx, err)
		}
		if v > 0xffff {
			return nil, fmt.Errorf("%w: ping field %d overflows uint16", ErrMalformedEnvelope, f.idx)
		}
		*f.dst = uint16(v)
	}
	if p.Version != pingVersion {
		return nil, fmt.Errorf("%w: unsupported ping version %d", ErrProtocolViolation, p.Version)
	}

	if p.GenesisHash, err = body.DataAt(3); err != nil {
		return nil, fmt.Errorf("ping genesis hash: %w", err)
	}
	if p.Difficulty, err = body.UintAt(4); err != nil {
		return nil, fmt.Errorf("ping difficulty: %w", err)
	}
	if p.TopHash, err = body.DataAt(5); err != nil {
		return nil, fmt.Errorf("ping top hash: %w", err)
	}
	syncFlag, err := body.UintAt(6)
	if err != nil {
		return nil, fmt.Errorf("ping sync allowed: %w", err)
	}
	p.SyncAllowed = syncFlag != 0

	peers, err := body.At(7)
	if err != nil {
		return nil, fmt.Errorf("ping peers: %w", err)
	}
	it, err := peers.Iter()
	if err != nil {
		return nil, fmt.Errorf("ping peers: %w", err)
	}
	p.Peers = make([]hexutil.Bytes, 0)
	for it.Next() {
		p.Peers = append(p.Peers, it.Value().Raw())
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("ping peers: %w", err)
	}
	return p, nil
}

func handlePing(d *Dispatcher, body envelope.Envelope) (Message, error) {
	p, err := DecodePing(body)
	if err != nil {
		return nil, err
	}
	d.log.Debug("Received ping", "port", p.Port, "share", p.Share, "difficulty", p.Difficulty, "sync", p.SyncAllowed, "peers", len(p.Peers))
	return p, nil
}
