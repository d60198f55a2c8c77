// Package json provides a JSON codec implementation.
package json

import (
	"encoding/json"

	"github.com/zoobzio/hypermedia"
)

// jsonCodec implements hypermedia.WrappingCodec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() hypermedia.WrappingCodec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MarshalWrapped encodes v as {"name": v}.
func (c *jsonCodec) MarshalWrapped(name string, v any) ([]byte, error) {
	return json.Marshal(map[string]any{name: v})
}

// UnmarshalWrapped decodes the value under key name into v.
func (c *jsonCodec) UnmarshalWrapped(name string, data []byte, v any) error {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return err
	}
	raw, ok := root[name]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, v)
}
