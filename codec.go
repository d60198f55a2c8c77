package hypermedia

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// WrappingCodec is a Codec that can nest a document under a named root:
// a single top-level key for map-shaped formats, the root element for XML.
type WrappingCodec interface {
	Codec

	// MarshalWrapped encodes v as the value of root name.
	MarshalWrapped(name string, v any) ([]byte, error)

	// UnmarshalWrapped decodes the value of root name into v. A document
	// without the root leaves v untouched.
	UnmarshalWrapped(name string, data []byte, v any) error
}
