package hypermedia

import "reflect"

// Linkable is implemented by resources that expose their links attribute.
//
// When *T implements Linkable the representer reads and writes links through
// these methods. Otherwise it looks for an exported LinkCollection field by
// reflection. Embedding Resource satisfies the interface.
type Linkable interface {
	// Hyperlinks returns the stored links. Never-assigned links read as empty.
	Hyperlinks() LinkCollection

	// SetHyperlinks replaces the stored links.
	SetHyperlinks(links LinkCollection)
}

// Resource carries the links attribute of a hypermedia resource. Embed it:
//
//	type Bookmarks struct {
//	    hypermedia.Resource `yaml:",inline" bson:",inline"`
//	    ID int `json:"id" xml:"id"`
//	}
//
// JSON, XML and MessagePack inline embedded structs without a tag.
type Resource struct {
	Links LinkCollection `json:"links,omitzero" xml:"link" yaml:"links,omitempty" msgpack:"links,omitempty" bson:"links,omitempty"`
}

// Hyperlinks returns the stored links.
func (r *Resource) Hyperlinks() LinkCollection {
	return r.Links
}

// SetHyperlinks replaces the stored links.
func (r *Resource) SetHyperlinks(links LinkCollection) {
	r.Links = links
}

// SetLinks replaces the stored links with raw input, normalized so that the
// last link for each rel wins. A link without rel or href fails with
// ErrMissingRel or ErrMissingHref and leaves the stored links unchanged.
func (r *Resource) SetLinks(links ...Hyperlink) error {
	c, err := NewLinkCollection(links...)
	if err != nil {
		return err
	}
	r.Links = c
	return nil
}

var (
	linkableType   = reflect.TypeFor[Linkable]()
	collectionType = reflect.TypeFor[LinkCollection]()
)

// LinksOf returns the links stored on resource, which may be a Linkable, a
// struct or a pointer to a struct with a LinkCollection field. Resources
// without a links attribute read as empty.
func LinksOf(resource any) LinkCollection {
	if l, ok := resource.(Linkable); ok {
		return l.Hyperlinks()
	}
	rv := reflect.ValueOf(resource)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return LinkCollection{}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return LinkCollection{}
	}
	index, ok := findLinksField(rv.Type())
	if !ok {
		return LinkCollection{}
	}
	return rv.FieldByIndex(index).Interface().(LinkCollection)
}
