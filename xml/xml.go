// Package xml provides an XML codec implementation.
package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/zoobzio/hypermedia"
)

// xmlCodec implements hypermedia.WrappingCodec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() hypermedia.WrappingCodec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// MarshalWrapped encodes v with a root element named name.
func (c *xmlCodec) MarshalWrapped(name string, v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: name}}); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalWrapped decodes a document whose root element is name into v.
func (c *xmlCodec) UnmarshalWrapped(name string, data []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != name {
			return fmt.Errorf("expected element <%s> but have <%s>", name, start.Name.Local)
		}
		return dec.DecodeElement(v, &start)
	}
}
