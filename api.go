// Package hypermedia adds declared, computed links to resources rendered
// through pluggable codecs (the HATEOAS pattern).
//
// A resource type declares its links once, while types are being set up.
// Each link pairs a relation name with a function computing its href from
// the instance being rendered:
//
//	type Bookmarks struct {
//	    XMLName xml.Name `xml:"bookmarks" json:"-" yaml:"-" msgpack:"-" bson:"-"`
//	    hypermedia.Resource `yaml:",inline" msgpack:",inline" bson:",inline"`
//	    ID int `json:"id" xml:"id"`
//	}
//
//	func init() {
//	    hypermedia.Define[Bookmarks]().
//	        Declare("self", hypermedia.Href(func(b Bookmarks) string {
//	            return fmt.Sprintf("http://bookmarks/%d", b.ID)
//	        })).
//	        Declare("all", hypermedia.Static[Bookmarks]("http://bookmarks/all"))
//	}
//
// A Representer computes the links right before marshaling and stores them
// on the instance:
//
//	rep, _ := hypermedia.NewRepresenter[Bookmarks](json.New())
//	data, _ := rep.Serialize(ctx, &Bookmarks{ID: 1})
//	// {"links":[{"rel":"self","href":"http://bookmarks/1"},{"rel":"all","href":"http://bookmarks/all"}],"id":1}
//
// and parses documents back with links collected into a LinkCollection:
//
//	b, _ := rep.Deserialize(ctx, data)
//	href, ok := b.Links.Lookup("self")
//
// # Link Collections
//
// LinkCollection keeps at most one link per relation name. UpdateLink is an
// upsert: a link whose rel is already present replaces the existing entry in
// place. Relation names compare case-insensitively.
//
// # Wire Shapes
//
// JSON, YAML, MessagePack and BSON render links as a list of {rel, href}
// objects under "links". XML renders repeated sibling elements with no
// wrapper:
//
//	<bookmarks><link rel="self" href="http://bookmarks/1"></link><id>1</id></bookmarks>
//
// Types that declare no links render no links property at all, and
// Serialize(ctx, obj, WithLinks(false)) omits links for a single call.
//
// # Nesting
//
// Links are computed per instance. A resource nested in another, by value,
// pointer, slice, array or map value, renders its own links under its own key.
// Embedded structs are part of the embedding instance; link definitions are
// shared with an embedding type through Inherit.
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package hypermedia
