package hypermedia

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the traversal tag with sentinel
	sentinel.Tag(tagName)
}

// Representer renders resources of type T through a codec, computing their
// declared links immediately before marshaling, and parses documents back
// into T with links normalized into a LinkCollection.
//
// Links are declared per type (see Link, Define, Inherit) before the first
// representer reaching that type is built; building seals the definitions.
// Representers are safe for concurrent use. Concurrent serialization of the
// same instance is not, because links are stored on the instance.
type Representer[T any] struct {
	codec   Codec
	wrapper WrappingCodec
	wrap    string

	// Link plan for T and its nested resources (immutable after construction)
	plan       *linkPlan
	undeclared bool

	// Type metadata
	typeName string
}

// Option configures a Representer.
type Option func(*config)

type config struct {
	wrap string
}

// WithWrap nests documents under a root named name: a single top-level key
// for JSON, YAML, MessagePack and BSON, or the root element for XML. The
// codec must implement WrappingCodec.
func WithWrap(name string) Option {
	return func(c *config) {
		c.wrap = name
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// SerializeOption configures a single Serialize call.
type SerializeOption func(*serializeConfig)

type serializeConfig struct {
	links bool
}

// WithLinks controls whether links are computed and rendered for this call.
// Links render by default. Disabling them leaves the links stored on the
// instance untouched.
func WithLinks(enabled bool) SerializeOption {
	return func(c *serializeConfig) {
		c.links = enabled
	}
}

// NewRepresenter creates a Representer for struct type T.
//
// It fails with ErrNotStruct when T is not a struct, ErrMissingLinks when T
// or a nested resource type declares links without exposing a links
// attribute, and ErrUnsupportedWrap when WithWrap is used with a codec that
// cannot wrap.
func NewRepresenter[T any](codec Codec, opts ...Option) (*Representer[T], error) {
	cfg := newConfig(opts)
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, newConfigError(ErrNotStruct, typ.String(), "")
	}

	meta := sentinel.Scan[T]()
	if meta.ReflectType != typ {
		// Sentinel caches by type name, which unnamed structs share
		meta = scanType(typ)
	}

	plan, err := buildLinkPlan(meta)
	if err != nil {
		return nil, err
	}

	r := &Representer[T]{
		codec:      codec,
		wrap:       cfg.wrap,
		plan:       plan,
		undeclared: plan.undeclared(make(map[*linkPlan]bool)),
		typeName:   meta.TypeName,
	}

	if cfg.wrap != "" {
		w, ok := codec.(WrappingCodec)
		if !ok {
			return nil, newConfigError(ErrUnsupportedWrap, meta.TypeName, "")
		}
		r.wrapper = w
	}

	emitRepresenterCreated(context.Background(), codec.ContentType(), meta.TypeName)
	return r, nil
}

// ContentType returns the MIME type of the underlying codec.
func (r *Representer[T]) ContentType() string {
	return r.codec.ContentType()
}

// Serialize computes the declared links of obj and of every nested resource,
// stores them on those instances, and marshals obj.
//
// Types without declared links never render a links property. An error from
// an href computation aborts the call before any links are stored; the
// returned error wraps a *LinkError.
func (r *Representer[T]) Serialize(ctx context.Context, obj *T, opts ...SerializeOption) ([]byte, error) {
	cfg := serializeConfig{links: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	emitSerializeStart(ctx, r.codec.ContentType(), r.typeName)

	var retErr error
	var retData []byte
	var linkCount int
	defer func() {
		emitSerializeComplete(ctx, r.codec.ContentType(), r.typeName,
			len(retData), time.Since(start), linkCount, retErr)
	}()

	if obj == nil {
		retData, retErr = r.marshal(nil)
		return retData, retErr
	}

	if cfg.links {
		n, err := r.plan.evaluate(reflect.ValueOf(obj).Elem())
		if err != nil {
			retErr = fmt.Errorf("evaluate: %w", err)
			return nil, retErr
		}
		linkCount = n
	}

	// Render from a copy when some links must not appear in the output
	target := obj
	if !cfg.links || r.undeclared {
		clone := *obj
		r.plan.strip(reflect.ValueOf(&clone).Elem(), !cfg.links)
		target = &clone
	}

	retData, retErr = r.marshal(target)
	if retErr != nil {
		retData = nil
	}
	return retData, retErr
}

// Deserialize unmarshals data into a new T. Empty input is the empty
// document. Links in the input are validated and normalized; a link without
// rel or href rejects the document.
func (r *Representer[T]) Deserialize(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitDeserializeStart(ctx, r.codec.ContentType(), r.typeName)

	var retErr error
	defer func() {
		emitDeserializeComplete(ctx, r.codec.ContentType(), r.typeName,
			len(data), time.Since(start), retErr)
	}()

	var obj T
	if len(bytes.TrimSpace(data)) == 0 {
		return &obj, nil
	}

	if err := r.unmarshal(data, &obj); err != nil {
		retErr = err
		return nil, retErr
	}
	return &obj, nil
}

func (r *Representer[T]) marshal(v any) ([]byte, error) {
	var data []byte
	var err error
	if r.wrapper != nil {
		data, err = r.wrapper.MarshalWrapped(r.wrap, v)
	} else {
		data, err = r.codec.Marshal(v)
	}
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

func (r *Representer[T]) unmarshal(data []byte, v any) error {
	var err error
	if r.wrapper != nil {
		err = r.wrapper.UnmarshalWrapped(r.wrap, data, v)
	} else {
		err = r.codec.Unmarshal(data, v)
	}
	if err != nil {
		return newCodecError(ErrUnmarshal, err)
	}
	return nil
}
