package hypermedia_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/zoobzio/hypermedia"
)

var propertyRels = []string{"self", "next", "prev", "all", "edit"}

// linksFor turns rel indices into links whose href records their input position.
func linksFor(indices []int) []hypermedia.Hyperlink {
	links := make([]hypermedia.Hyperlink, len(indices))
	for i, idx := range indices {
		links[i] = hypermedia.Hyperlink{
			Rel:  propertyRels[idx],
			Href: fmt.Sprintf("http://example.com/%d", i),
		}
	}
	return links
}

// TestLinkCollectionProperties tests upsert and lookup properties
func TestLinkCollectionProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: upserting the same link twice is the same as upserting it once
	properties.Property("idempotent upsert", prop.ForAll(
		func(idx int, href string) bool {
			link := hypermedia.Hyperlink{Rel: propertyRels[idx], Href: href}

			var once, twice hypermedia.LinkCollection
			once.UpdateLink(link)
			twice.UpdateLink(link)
			twice.UpdateLink(link)

			return twice.Len() == 1 && once.Equal(twice)
		},
		gen.IntRange(0, len(propertyRels)-1),
		gen.Identifier(),
	))

	// Property: a link with a blank rel or href is never stored
	properties.Property("blank links are not stored", prop.ForAll(
		func(idx int, pad int, blankRel bool) bool {
			blank := strings.Repeat(" ", pad)
			link := hypermedia.Hyperlink{Rel: propertyRels[idx], Href: blank}
			if blankRel {
				link = hypermedia.Hyperlink{Rel: blank, Href: "http://x"}
			}

			var c hypermedia.LinkCollection
			c.UpdateLink(link)
			_, err := hypermedia.NewLinkCollection(link)
			return c.IsEmpty() && err != nil
		},
		gen.IntRange(0, len(propertyRels)-1),
		gen.IntRange(0, 3),
		gen.Bool(),
	))

	// Property: one entry per distinct rel, holding the href of its last occurrence
	properties.Property("rel uniqueness with last wins", prop.ForAll(
		func(indices []int) bool {
			links := linksFor(indices)
			c := hypermedia.MustLinkCollection(links...)

			last := make(map[string]string)
			for _, l := range links {
				last[l.Rel] = l.Href
			}
			if c.Len() != len(last) {
				return false
			}
			for rel, href := range last {
				if got, ok := c.Lookup(rel); !ok || got != href {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, len(propertyRels)-1)),
	))

	// Property: first occurrence order is preserved
	properties.Property("insertion order of first occurrence", prop.ForAll(
		func(indices []int) bool {
			c := hypermedia.MustLinkCollection(linksFor(indices)...)

			var order []string
			seen := make(map[string]bool)
			for _, idx := range indices {
				if rel := propertyRels[idx]; !seen[rel] {
					seen[rel] = true
					order = append(order, rel)
				}
			}
			for i, rel := range order {
				if c.At(i).Rel != rel {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, len(propertyRels)-1)),
	))

	// Property: lookup ignores case and surrounding whitespace
	properties.Property("lookup normalization", prop.ForAll(
		func(idx int, upper bool, pad int) bool {
			rel := propertyRels[idx]
			c := hypermedia.MustLinkCollection(hypermedia.Hyperlink{Rel: rel, Href: "http://x"})

			key := rel
			if upper {
				key = strings.ToUpper(key)
			}
			key = strings.Repeat(" ", pad) + key + strings.Repeat("\t", pad)

			want, _ := c.Lookup(rel)
			got, ok := c.Lookup(key)
			return ok && got == want
		},
		gen.IntRange(0, len(propertyRels)-1),
		gen.Bool(),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}
