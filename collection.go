package hypermedia

import (
	"encoding/json"
	"encoding/xml"
	"iter"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// LinkCollection is an ordered list of links in which no two entries share a
// relation name. The zero value is an empty collection ready for use.
//
// UpdateLink is the only mutation; construction and every decoder validate
// their input and upsert it one link at a time, so every stored link has a
// rel and an href and no two share a rel, however the collection was built.
type LinkCollection struct {
	links []Hyperlink
}

// NewLinkCollection builds a collection by upserting each link in order.
// A later link replaces an earlier one with the same rel. A link without rel
// or href fails with ErrMissingRel or ErrMissingHref.
func NewLinkCollection(links ...Hyperlink) (LinkCollection, error) {
	var c LinkCollection
	if err := c.reset(links); err != nil {
		return LinkCollection{}, err
	}
	return c, nil
}

// MustLinkCollection is like NewLinkCollection but panics on an invalid link.
func MustLinkCollection(links ...Hyperlink) LinkCollection {
	c, err := NewLinkCollection(links...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of links.
func (c LinkCollection) Len() int {
	return len(c.links)
}

// IsEmpty reports whether the collection holds no links.
func (c LinkCollection) IsEmpty() bool {
	return len(c.links) == 0
}

// IsZero reports whether the collection is empty. Codecs use it for
// omitzero / omitempty so an empty collection renders no links key.
func (c LinkCollection) IsZero() bool {
	return c.IsEmpty()
}

// At returns the link at index i in insertion order. It panics if i is out of range.
func (c LinkCollection) At(i int) Hyperlink {
	return c.links[i]
}

// First returns the first link, if any.
func (c LinkCollection) First() (Hyperlink, bool) {
	if len(c.links) == 0 {
		return Hyperlink{}, false
	}
	return c.links[0], true
}

// Links returns a copy of the links in insertion order.
func (c LinkCollection) Links() []Hyperlink {
	return slices.Clone(c.links)
}

// All iterates the links in insertion order.
func (c LinkCollection) All() iter.Seq[Hyperlink] {
	return func(yield func(Hyperlink) bool) {
		for _, l := range c.links {
			if !yield(l) {
				return
			}
		}
	}
}

// Lookup returns the href of the link whose rel matches. Rels are compared in
// normalized form (see NormalizeRel).
func (c LinkCollection) Lookup(rel string) (string, bool) {
	if i := c.index(rel); i >= 0 {
		return c.links[i].Href, true
	}
	return "", false
}

// UpdateLink inserts link, or replaces in place the entry with the same rel.
// A link with a blank rel or href is not stored; use NewHyperlink to learn why.
func (c *LinkCollection) UpdateLink(link Hyperlink) {
	if valid, err := link.validate(); err == nil {
		c.upsert(valid)
	}
}

// upsert stores a link already known to be valid.
func (c *LinkCollection) upsert(link Hyperlink) {
	if i := c.index(link.Rel); i >= 0 {
		// Replacing must not write through to a backing array shared with a copy.
		links := slices.Clone(c.links)
		links[i] = link
		c.links = links
		return
	}
	c.links = append(slices.Clip(c.links), link)
}

// Equal reports whether both collections hold the same (rel, href) pairs in the same order.
func (c LinkCollection) Equal(other LinkCollection) bool {
	return slices.Equal(c.links, other.links)
}

func (c LinkCollection) index(rel string) int {
	key := NormalizeRel(rel)
	return slices.IndexFunc(c.links, func(l Hyperlink) bool {
		return NormalizeRel(l.Rel) == key
	})
}

// reset replaces the contents with the validated, upserted links.
func (c *LinkCollection) reset(raw []Hyperlink) error {
	var fresh LinkCollection
	for _, l := range raw {
		link, err := l.validate()
		if err != nil {
			return err
		}
		fresh.upsert(link)
	}
	*c = fresh
	return nil
}

// list returns the links as a non-nil slice so empty collections encode as
// an empty array rather than null.
func (c LinkCollection) list() []Hyperlink {
	if c.links == nil {
		return []Hyperlink{}
	}
	return c.links
}

// MarshalJSON encodes the collection as an array of link objects.
func (c LinkCollection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.list())
}

// UnmarshalJSON decodes an array of link objects. null decodes as empty.
func (c *LinkCollection) UnmarshalJSON(data []byte) error {
	var raw []Hyperlink
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return c.reset(raw)
}

// MarshalXML encodes each link as a sibling element named after the field,
// with no enclosing element. An empty collection encodes nothing.
func (c LinkCollection) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	for _, l := range c.links {
		if err := e.EncodeElement(l, xml.StartElement{Name: start.Name}); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalXML decodes one link element. The XML decoder calls it once per
// repeated sibling, so each call upserts into the collection.
func (c *LinkCollection) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw Hyperlink
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	link, err := raw.validate()
	if err != nil {
		return err
	}
	c.upsert(link)
	return nil
}

// MarshalYAML encodes the collection as a sequence of link mappings.
func (c LinkCollection) MarshalYAML() (any, error) {
	return c.list(), nil
}

// UnmarshalYAML decodes a sequence of link mappings.
func (c *LinkCollection) UnmarshalYAML(value *yaml.Node) error {
	var raw []Hyperlink
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return c.reset(raw)
}

// EncodeMsgpack encodes the collection as an array of link maps.
func (c LinkCollection) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(c.list())
}

// DecodeMsgpack decodes an array of link maps. nil decodes as empty.
func (c *LinkCollection) DecodeMsgpack(dec *msgpack.Decoder) error {
	var raw []Hyperlink
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	return c.reset(raw)
}

// MarshalBSONValue encodes the collection as a BSON array of link documents.
func (c LinkCollection) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(c.list())
}

// UnmarshalBSONValue decodes a BSON array of link documents. null decodes as empty.
func (c *LinkCollection) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var raw []Hyperlink
	if t != bson.TypeNull && t != bson.TypeUndefined {
		if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&raw); err != nil {
			return err
		}
	}
	return c.reset(raw)
}
