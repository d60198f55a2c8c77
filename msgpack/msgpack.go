// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/hypermedia"
)

// msgpackCodec implements hypermedia.WrappingCodec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() hypermedia.WrappingCodec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// MarshalWrapped encodes v as a single-entry map keyed by name.
func (c *msgpackCodec) MarshalWrapped(name string, v any) ([]byte, error) {
	return msgpack.Marshal(map[string]any{name: v})
}

// UnmarshalWrapped decodes the value under key name into v.
func (c *msgpackCodec) UnmarshalWrapped(name string, data []byte, v any) error {
	var root map[string]msgpack.RawMessage
	if err := msgpack.Unmarshal(data, &root); err != nil {
		return err
	}
	raw, ok := root[name]
	if !ok {
		return nil
	}
	return msgpack.Unmarshal(raw, v)
}
