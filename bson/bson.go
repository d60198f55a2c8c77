// Package bson provides a BSON codec implementation.
package bson

import (
	"errors"

	"github.com/zoobzio/hypermedia"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// bsonCodec implements hypermedia.WrappingCodec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() hypermedia.WrappingCodec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}

// MarshalWrapped encodes v as the only element, name, of a BSON document.
func (c *bsonCodec) MarshalWrapped(name string, v any) ([]byte, error) {
	return bson.Marshal(bson.D{{Key: name, Value: v}})
}

// UnmarshalWrapped decodes the element name of the document into v.
func (c *bsonCodec) UnmarshalWrapped(name string, data []byte, v any) error {
	raw, err := bson.Raw(data).LookupErr(name)
	if errors.Is(err, bsoncore.ErrElementNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return raw.Unmarshal(v)
}
