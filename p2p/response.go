// SPDX-License-Identifier: MIT
// Dev: KryperAI

package p2p

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"aewire/envelope"
)

const responseFields = 5

// Response wraps the undecoded body of another message together with
// the outcome of the request it answers.
type Response struct {
	Version      uint8         `json:"version"`
	Success      bool          `json:"success"`
	ResponseType MsgType       `json:"responseType"`
	Reason       string        `json:"reason,omitempty"`
	Object       hexutil.Bytes `json:"object,omitempty"`

	// ReasonRaw holds the reason when it is not valid UTF-8; Reason is
	// then empty.
	ReasonRaw hexutil.Bytes `json:"reasonRaw,omitempty"`

	// Payload is Object parsed as an envelope; nil when Object is empty.
	Payload *envelope.Envelope `json:"-"`
}

func (*Response) Type() MsgType { return MsgResponse }

/*
   [version, result, type, reason, object]

   result   nonzero means ok
   reason   utf-8 text, only meaningful on failure
   object   body of a message of kind type, only meaningful on success
*/
func handleResponse(d *Dispatcher, body envelope.Envelope) (Message, error) {
	n, err := body.Len()
	if err != nil {
		return nil, fmt.Errorf("p2p_response: %w", err)
	}
	if n != responseFields {
		return nil, fmt.Errorf("%w: p2p_response has %d fields, want %d", ErrMalformedEnvelope, n, responseFields)
	}

	version, err := body.ByteAt(0)
	if err != nil {
		return nil, fmt.Errorf("p2p_response version: %w", err)
	}
	result, err := body.ByteAt(1)
	if err != nil {
		return nil, fmt.Errorf("p2p_response result: %w", err)
	}
	rtype, err := body.ByteAt(2)
	if err != nil {
		return nil, fmt.Errorf("p2p_response type: %w", err)
	}
	reason, err := body.DataAt(3)
	if err != nil {
		return nil, fmt.Errorf("p2p_response reason: %w", err)
	}
	object, err := body.DataAt(4)
	if err != nil {
		return nil, fmt.Errorf("p2p_response object: %w", err)
	}

	resp := &Response{
		Version:      version,
		Success:      result != 0,
		ResponseType: MsgType(rtype),
		Object:       object,
	}
	if text, err := envelope.BytesValue(reason).Text(); err == nil {
		resp.Reason = text
	} else {
		resp.ReasonRaw = reason
	}
	if len(object) > 0 {
		payload, err := envelope.Parse(object)
		if err != nil {
			return nil, fmt.Errorf("p2p_response object: %w", err)
		}
		resp.Payload = &payload
		d.traceEnvelope("Response payload", resp.ResponseType, payload)
	}

	d.log.Debug("Received p2p response", "version", version, "ok", resp.Success, "type", resp.ResponseType, "reason", resp.Reason, "object", len(object))
	return resp, nil
}
