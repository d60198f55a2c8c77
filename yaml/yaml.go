// Package yaml provides a YAML codec implementation.
package yaml

import (
	"github.com/zoobzio/hypermedia"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements hypermedia.WrappingCodec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() hypermedia.WrappingCodec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// MarshalWrapped encodes v as the value of a single top-level key name.
func (c *yamlCodec) MarshalWrapped(name string, v any) ([]byte, error) {
	return yaml.Marshal(map[string]any{name: v})
}

// UnmarshalWrapped decodes the value under key name into v.
func (c *yamlCodec) UnmarshalWrapped(name string, data []byte, v any) error {
	var root map[string]yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}
	node, ok := root[name]
	if !ok {
		return nil
	}
	return node.Decode(v)
}
