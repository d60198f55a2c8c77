// Package testing provides test fixtures for hypermedia.
package testing

import (
	"encoding/xml"
	"fmt"

	"github.com/zoobzio/hypermedia"
	"github.com/zoobzio/hypermedia/bson"
	"github.com/zoobzio/hypermedia/json"
	"github.com/zoobzio/hypermedia/msgpack"
	hxml "github.com/zoobzio/hypermedia/xml"
	"github.com/zoobzio/hypermedia/yaml"
)

// Base is the href prefix used by every fixture link.
const Base = "http://example.com"

func init() {
	hypermedia.Link[LinkedResource](hypermedia.RelSelf, hypermedia.Href(func(r LinkedResource) string {
		return fmt.Sprintf("%s/resources/%s", Base, r.ID)
	}))
	hypermedia.Link[LinkedResource]("all", hypermedia.Static[LinkedResource](Base+"/resources"))

	hypermedia.Link[Catalog](hypermedia.RelSelf, hypermedia.Href(func(c Catalog) string {
		return fmt.Sprintf("%s/catalogs/%d", Base, c.Page)
	}))
	hypermedia.Link[Catalog](hypermedia.RelNext, hypermedia.Href(func(c Catalog) string {
		if !c.More {
			return ""
		}
		return fmt.Sprintf("%s/catalogs/%d", Base, c.Page+1)
	}))
}

// Codecs returns every codec provider.
func Codecs() []hypermedia.WrappingCodec {
	return []hypermedia.WrappingCodec{
		json.New(),
		hxml.New(),
		yaml.New(),
		msgpack.New(),
		bson.New(),
	}
}

// SimpleResource is a test type that declares no links.
type SimpleResource struct {
	XMLName             xml.Name `xml:"simple" json:"-" yaml:"-" msgpack:"-" bson:"-"`
	hypermedia.Resource `yaml:",inline" msgpack:",inline" bson:",inline"`
	ID                  string `json:"id" xml:"id" yaml:"id" msgpack:"id" bson:"id"`
	Name                string `json:"name" xml:"name" yaml:"name" msgpack:"name" bson:"name"`
}

// LinkedResource is a test type declaring self and all links.
// It renders as item or featured elements inside a Catalog, so it has no XMLName.
type LinkedResource struct {
	hypermedia.Resource `yaml:",inline" msgpack:",inline" bson:",inline"`
	ID                  string `json:"id" xml:"id" yaml:"id" msgpack:"id" bson:"id"`
	Name                string `json:"name" xml:"name" yaml:"name" msgpack:"name" bson:"name"`
}

// Catalog is a paged test type nesting linked resources.
// Its next link is only present while More is set.
type Catalog struct {
	XMLName             xml.Name `xml:"catalog" json:"-" yaml:"-" msgpack:"-" bson:"-"`
	hypermedia.Resource `yaml:",inline" msgpack:",inline" bson:",inline"`
	Page                int              `json:"page" xml:"page" yaml:"page" msgpack:"page" bson:"page"`
	More                bool             `json:"more" xml:"more" yaml:"more" msgpack:"more" bson:"more"`
	Featured            *LinkedResource  `json:"featured,omitempty" xml:"featured,omitempty" yaml:"featured,omitempty" msgpack:"featured,omitempty" bson:"featured,omitempty"`
	Items               []LinkedResource `json:"items" xml:"item" yaml:"items" msgpack:"items" bson:"items"`
}

// NewCatalog returns a catalog page holding a resource named after each id.
func NewCatalog(page int, more bool, ids ...string) *Catalog {
	c := &Catalog{Page: page, More: more}
	for _, id := range ids {
		c.Items = append(c.Items, LinkedResource{ID: id, Name: "resource " + id})
	}
	return c
}

// ResourceHref returns the self href declared for the resource with id.
func ResourceHref(id string) string {
	return fmt.Sprintf("%s/resources/%s", Base, id)
}
