package hypermedia

import (
	"fmt"
	"strings"
)

// Hyperlink is a single link record: a relation name and its target.
//
// In JSON, YAML, MessagePack and BSON it is a flat object with "rel" and
// "href" keys. In XML it is one element carrying both as attributes:
//
//	<link rel="self" href="http://example.com/bookmarks"/>
type Hyperlink struct {
	Rel  string `json:"rel" xml:"rel,attr" yaml:"rel" msgpack:"rel" bson:"rel"`
	Href string `json:"href" xml:"href,attr" yaml:"href" msgpack:"href" bson:"href"`
}

// NewHyperlink returns a validated link. Both rel and href must be non-blank.
func NewHyperlink(rel, href string) (Hyperlink, error) {
	if strings.TrimSpace(rel) == "" {
		return Hyperlink{}, fmt.Errorf("%w (href %q)", ErrMissingRel, href)
	}
	if strings.TrimSpace(href) == "" {
		return Hyperlink{}, fmt.Errorf("%w (rel %q)", ErrMissingHref, rel)
	}
	return Hyperlink{Rel: rel, Href: href}, nil
}

// String renders the link in RFC 8288 header form.
func (h Hyperlink) String() string {
	return fmt.Sprintf("<%s>; rel=%q", h.Href, h.Rel)
}

// validate re-checks a link built as a literal or decoded from input.
func (h Hyperlink) validate() (Hyperlink, error) {
	return NewHyperlink(h.Rel, h.Href)
}
