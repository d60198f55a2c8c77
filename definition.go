package hypermedia

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync/atomic"
)

// HrefFunc computes the target of a declared link for one resource instance.
// Returning a blank href omits the link; returning an error aborts
// serialization and is reported to the caller. A nil HrefFunc declares a
// link that is never rendered.
type HrefFunc[T any] func(resource T) (string, error)

// Static returns an HrefFunc that always yields href.
func Static[T any](href string) HrefFunc[T] {
	return func(T) (string, error) { return href, nil }
}

// Href adapts an infallible computation to an HrefFunc.
func Href[T any](fn func(resource T) string) HrefFunc[T] {
	return func(resource T) (string, error) { return fn(resource), nil }
}

// LinkEntry is one declared (rel, href computation) pair.
type LinkEntry[T any] struct {
	Rel  string
	Href HrefFunc[T]
}

// LinksDefinition is the ordered set of links declared for resource type T.
//
// Rels need not be unique here; duplicates are resolved by the collection
// built during evaluation, where the last evaluated entry wins.
//
// Definitions are populated while types are being set up and are sealed
// when a Representer reaching T is built. Declaring on a sealed definition
// panics.
type LinksDefinition[T any] struct {
	typeName string
	entries  []LinkEntry[T]
	sealed   atomic.Bool
}

// NewLinksDefinition returns an empty, unregistered definition. Most callers
// want Define, which attaches the definition to T.
func NewLinksDefinition[T any]() *LinksDefinition[T] {
	return &LinksDefinition[T]{typeName: reflect.TypeFor[T]().String()}
}

// Declare appends a link. Returns the definition for chaining. It panics
// when rel is blank, as no link with that rel could ever be stored.
func (d *LinksDefinition[T]) Declare(rel string, href HrefFunc[T]) *LinksDefinition[T] {
	if d.sealed.Load() {
		panic(fmt.Sprintf("hypermedia: link %q declared on %s after first use", rel, d.typeName))
	}
	if strings.TrimSpace(rel) == "" {
		panic(fmt.Sprintf("hypermedia: link with blank rel declared on %s", d.typeName))
	}
	d.entries = append(d.entries, LinkEntry[T]{Rel: rel, Href: href})
	return d
}

// Entries returns the declared links in declaration order, inherited entries first.
func (d *LinksDefinition[T]) Entries() []LinkEntry[T] {
	return slices.Clone(d.entries)
}

// HasAny reports whether any link is declared.
func (d *LinksDefinition[T]) HasAny() bool {
	return len(d.entries) > 0
}

// Evaluate computes every declared link against resource, in declaration
// order, skipping nil computations and blank hrefs.
func (d *LinksDefinition[T]) Evaluate(resource T) (LinkCollection, error) {
	var links LinkCollection
	for _, e := range d.entries {
		if e.Href == nil {
			continue
		}
		href, err := e.Href(resource)
		if err != nil {
			return LinkCollection{}, newLinkError(d.typeName, e.Rel, err)
		}
		if strings.TrimSpace(href) == "" {
			continue
		}
		links.UpdateLink(Hyperlink{Rel: e.Rel, Href: href})
	}
	return links, nil
}

// Sealed reports whether the definition has been frozen by first use.
func (d *LinksDefinition[T]) Sealed() bool {
	return d.sealed.Load()
}

// inherit copies the parent's entries into a new definition for C.
func inherit[P, C any](parent *LinksDefinition[P], project func(C) P) *LinksDefinition[C] {
	child := NewLinksDefinition[C]()
	if parent == nil {
		return child
	}
	for _, e := range parent.entries {
		href := e.Href
		if href == nil {
			child.entries = append(child.entries, LinkEntry[C]{Rel: e.Rel})
			continue
		}
		child.entries = append(child.entries, LinkEntry[C]{
			Rel: e.Rel,
			Href: func(resource C) (string, error) {
				return href(project(resource))
			},
		})
	}
	return child
}

// evaluator is the type-erased view of a definition used by link plans.
type evaluator interface {
	evaluateValue(rv reflect.Value) (LinkCollection, error)
	hasAny() bool
	seal()
}

func (d *LinksDefinition[T]) evaluateValue(rv reflect.Value) (LinkCollection, error) {
	return d.Evaluate(rv.Interface().(T))
}

func (d *LinksDefinition[T]) hasAny() bool {
	return d.HasAny()
}

func (d *LinksDefinition[T]) seal() {
	d.sealed.Store(true)
}
