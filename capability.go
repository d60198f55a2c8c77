package hypermedia

import (
	"strings"

	"golang.org/x/text/cases"
)

// Registered link relation types (RFC 8288, IANA link relations) commonly
// declared on resources. Any string is a valid rel; these are conveniences.
const (
	// RelSelf identifies the resource itself.
	RelSelf = "self"

	// RelCollection identifies the collection the resource belongs to.
	RelCollection = "collection"

	// RelItem identifies a member of a collection resource.
	RelItem = "item"

	// RelNext and RelPrev navigate a paged series.
	RelNext = "next"
	RelPrev = "prev"

	// RelFirst and RelLast identify the ends of a paged series.
	RelFirst = "first"
	RelLast  = "last"

	// RelEdit identifies where the resource can be modified.
	RelEdit = "edit"

	// RelRelated identifies a related resource.
	RelRelated = "related"

	// RelAlternate identifies an alternate representation.
	RelAlternate = "alternate"
)

// registeredRels contains the relation types declared above.
var registeredRels = map[string]bool{
	RelSelf:       true,
	RelCollection: true,
	RelItem:       true,
	RelNext:       true,
	RelPrev:       true,
	RelFirst:      true,
	RelLast:       true,
	RelEdit:       true,
	RelRelated:    true,
	RelAlternate:  true,
}

// IsRegisteredRel returns true if rel, after normalization, is one of the
// relation constants of this package.
func IsRegisteredRel(rel string) bool {
	return registeredRels[NormalizeRel(rel)]
}

// NormalizeRel returns the comparison form of a relation name: surrounding
// whitespace removed and Unicode case-folded. Relation types compare
// case-insensitively, so "Self", " self " and "self" name the same link.
func NormalizeRel(rel string) string {
	// A Caser holds state; one per call keeps this safe for concurrent use.
	return cases.Fold().String(strings.TrimSpace(rel))
}
