package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec serializes stored values
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// NewCodec returns the codec registered under name
func NewCodec(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
}

// JSONCodec stores values as JSON, readable with the sqlite3 shell
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MsgpackCodec stores values as MessagePack. Field names follow the json tags
// so both codecs produce the same shape.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string { return "msgpack" }

func (MsgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (MsgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}
