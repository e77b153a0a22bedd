// SPDX-License-Identifier: MIT
// Dev: KryperAI

package txcodec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"aewire/envelope"
	"aewire/types"
)

var ErrFieldCount = fmt.Errorf("%w: field count mismatch", envelope.ErrMalformed)

// Field is one named, decoded transaction field.
type Field struct {
	Name  string
	Value any
}

// Tx is the structured rendering of one transaction body.
type Tx struct {
	Hash    string // "th_" hash of the signed transaction, set by the caller
	Tag     uint32
	Type    string
	Version uint64
	Fields  []Field
}

// Decode renders a transaction from its decoded items. values[0] is the
// object tag and values[1] the version; the remainder is matched against
// the schema for (tag, version). Unknown types are rendered generically.
func Decode(tag uint32, values []envelope.Value) (*Tx, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: transaction has %d items", envelope.ErrMalformed, len(values))
	}
	version, err := values[1].Uint64()
	if err != nil {
		return nil, fmt.Errorf("tx version: %w", err)
	}
	tx := &Tx{Tag: tag, Type: TypeName(tag), Version: version}
	body := values[2:]

	sc, ok := schemas[schemaKey{tag: tag, version: version}]
	if !ok {
		if tx.Type == "" {
			tx.Type = fmt.Sprintf("Unknown(%d)", tag)
		}
		for i, v := range body {
			tx.Fields = append(tx.Fields, Field{Name: fmt.Sprintf("field_%d", i), Value: generic(v)})
		}
		return tx, nil
	}

	if len(body) != len(sc.fields) {
		return nil, fmt.Errorf("%w: %s v%d wants %d fields, got %d", ErrFieldCount, sc.name, version, len(sc.fields), len(body))
	}
	tx.Type = sc.name
	for i, fs := range sc.fields {
		val, err := decodeField(fs.kind, body[i])
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", sc.name, fs.name, err)
		}
		tx.Fields = append(tx.Fields, Field{Name: fs.name, Value: val})
	}
	return tx, nil
}

func decodeField(kind fieldKind, v envelope.Value) (any, error) {
	switch kind {
	case kindInt:
		return v.BigInt()
	case kindId:
		b, err := v.Bytes()
		if err != nil {
			return nil, err
		}
		id, err := types.ParseId(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", envelope.ErrMalformed, err)
		}
		return id, nil
	case kindBinary:
		b, err := v.Bytes()
		if err != nil {
			return nil, err
		}
		return hexutil.Bytes(b), nil
	case kindString:
		return v.Text()
	case kindRaw:
		return generic(v), nil
	}
	return nil, errors.New("unknown field kind")
}

// generic renders any value as nested lists of hex strings.
func generic(v envelope.Value) any {
	if items, err := v.Items(); err == nil {
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, generic(item))
		}
		return out
	}
	b, _ := v.Bytes()
	return hexutil.Bytes(b)
}

// Get returns the value of the named field.
func (tx *Tx) Get(name string) (any, bool) {
	for _, fld := range tx.Fields {
		if fld.Name == name {
			return fld.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the fields in schema order after the envelope keys.
func (tx *Tx) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	write := func(key string, val any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if tx.Hash != "" {
		if err := write("hash", tx.Hash); err != nil {
			return nil, err
		}
	}
	if err := write("type", tx.Type); err != nil {
		return nil, err
	}
	if err := write("tag", tx.Tag); err != nil {
		return nil, err
	}
	if err := write("version", tx.Version); err != nil {
		return nil, err
	}
	for _, fld := range tx.Fields {
		if err := write(fld.Name, fld.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (tx *Tx) String() string {
	out, err := tx.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("Tx{%s: %v}", tx.Type, err)
	}
	return string(out)
}
