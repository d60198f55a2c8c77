package hypermedia

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	definitions   = make(map[reflect.Type]evaluator)
	definitionsMu sync.RWMutex
)

// Define returns the links definition attached to T, creating it on first use.
func Define[T any]() *LinksDefinition[T] {
	typ := reflect.TypeFor[T]()

	definitionsMu.RLock()
	if def, ok := definitions[typ]; ok {
		definitionsMu.RUnlock()
		return def.(*LinksDefinition[T])
	}
	definitionsMu.RUnlock()

	definitionsMu.Lock()
	defer definitionsMu.Unlock()

	if def, ok := definitions[typ]; ok {
		return def.(*LinksDefinition[T])
	}

	def := NewLinksDefinition[T]()
	definitions[typ] = def
	return def
}

// Link declares a link on T. It is the declaration hook used while setting up
// resource types:
//
//	hypermedia.Link[Bookmarks]("self", hypermedia.Static[Bookmarks]("http://bookmarks"))
func Link[T any](rel string, href HrefFunc[T]) *LinksDefinition[T] {
	return Define[T]().Declare(rel, href)
}

// Inherit attaches to C a copy of P's declared links, evaluated through
// project. Declarations made afterwards on either type stay local to it.
// It panics if C already has a definition.
//
//	type Parent struct{ hypermedia.Resource; ID int }
//	type Child struct{ Parent; Extra string }
//
//	hypermedia.Inherit(func(c Child) Parent { return c.Parent }).
//	    Declare("extra", ...)
func Inherit[P, C any](project func(C) P) *LinksDefinition[C] {
	parent, _ := Lookup[P]()
	typ := reflect.TypeFor[C]()

	definitionsMu.Lock()
	defer definitionsMu.Unlock()

	if _, ok := definitions[typ]; ok {
		panic(fmt.Sprintf("hypermedia: %s already has links declared", typ))
	}

	child := inherit(parent, project)
	definitions[typ] = child
	return child
}

// Lookup returns the definition attached to T, if any link was declared or inherited.
func Lookup[T any]() (*LinksDefinition[T], bool) {
	definitionsMu.RLock()
	defer definitionsMu.RUnlock()
	def, ok := definitions[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return def.(*LinksDefinition[T]), true
}

// lookupType returns the type-erased definition for typ.
func lookupType(typ reflect.Type) (evaluator, bool) {
	definitionsMu.RLock()
	defer definitionsMu.RUnlock()
	def, ok := definitions[typ]
	return def, ok
}

// registryKey combines type, codec and wrap for representer lookup.
type registryKey struct {
	typ         reflect.Type
	contentType string
	wrap        string
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns a cached representer or builds a new one.
// The representer is cached by type, codec content type and wrap name.
func Use[T any](codec Codec, opts ...Option) (*Representer[T], error) {
	cfg := newConfig(opts)
	key := registryKey{typ: reflect.TypeFor[T](), contentType: codec.ContentType(), wrap: cfg.wrap}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Representer[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Representer[T]), nil
	}

	r, err := NewRepresenter[T](codec, opts...)
	if err != nil {
		return nil, err
	}

	registry[key] = r
	return r, nil
}

// Reset clears cached representers and every declared definition.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	registry = make(map[registryKey]any)
	registryMu.Unlock()

	definitionsMu.Lock()
	definitions = make(map[reflect.Type]evaluator)
	definitionsMu.Unlock()
}
