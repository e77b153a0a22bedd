// SPDX-License-Identifier: MIT
// Dev: KryperAI

package p2p

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/log"

	"aewire/envelope"
)

var (
	ErrMalformedEnvelope = envelope.ErrMalformed
	ErrProtocolViolation = errors.New("protocol violation")
)

type handlerFunc func(d *Dispatcher, body envelope.Envelope) (Message, error)

// handlers is built once and never written afterwards. Tags present with
// a nil handler are part of the protocol but carry no logic here.
var handlers = map[MsgType]handlerFunc{
	MsgFragment:          nil,
	MsgPing:              handlePing,
	MsgGetHeaderByHash:   nil,
	MsgHeader:            nil,
	MsgGetNSuccessors:    nil,
	MsgHeaderHashes:      nil,
	MsgGetBlockTxs:       nil,
	MsgGetGeneration:     nil,
	MsgTxs:               handleTxs,
	MsgKeyBlock:          handleKeyBlocks,
	MsgMicroBlock:        handleMicroBlock,
	MsgGeneration:        nil,
	MsgBlockTxs:          nil,
	MsgGetHeaderByHeight: nil,
	MsgTxPoolSyncInit:    handleTxPoolSyncInit,
	MsgTxPoolSyncUnfold:  nil,
	MsgTxPoolSyncGet:     nil,
	MsgTxPoolSyncFinish:  nil,
	MsgResponse:          handleResponse,
	MsgClose:             nil,
}

// Dispatcher routes decoded frames to their handlers. It holds no
// mutable state and may be shared between goroutines.
type Dispatcher struct {
	log log.Logger
}

// NewDispatcher returns a dispatcher logging to logger, or to the root
// logger when logger is nil.
func NewDispatcher(logger log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New("module", "p2p")
	}
	return &Dispatcher{log: logger}
}

// Dispatch decodes body according to tag. Unknown tags and tags without
// handler logic yield a nil message and a nil error whatever the body
// holds. Otherwise a non-empty body must be exactly one encoded value.
func (d *Dispatcher) Dispatch(tag MsgType, body envelope.Envelope) (Message, error) {
	h, known := handlers[tag]
	if !known {
		d.log.Debug("Ignoring unknown message type", "tag", uint16(tag), "size", body.Size())
		return nil, nil
	}
	if h == nil {
		d.log.Trace("No handler for message type", "type", tag, "size", body.Size())
		return nil, nil
	}
	if body.Size() > 0 {
		checked, err := envelope.Parse(body.Raw())
		if err != nil {
			return nil, fmt.Errorf("%s body: %w", tag, err)
		}
		body = checked
	}
	d.traceEnvelope("Inbound message", tag, body)
	return h(d, body)
}

// HandleFrame splits a raw frame and dispatches it.
func (d *Dispatcher) HandleFrame(frame []byte) (Message, error) {
	tag, body, err := SplitFrame(frame)
	if err != nil {
		return nil, err
	}
	return d.Dispatch(tag, body)
}

func (d *Dispatcher) traceEnvelope(msg string, tag MsgType, e envelope.Envelope) {
	if d.log.Enabled(context.Background(), log.LevelTrace) {
		d.log.Trace(msg, "type", tag, "size", e.Size(), "body", envelope.Describe(e))
	}
}
