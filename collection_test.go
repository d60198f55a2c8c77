package hypermedia_test

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/zoobzio/hypermedia"
)

func TestLinkCollection_ZeroValue(t *testing.T) {
	var c hypermedia.LinkCollection

	if !c.IsEmpty() || c.Len() != 0 {
		t.Errorf("zero value Len() = %d, want 0", c.Len())
	}
	if _, ok := c.First(); ok {
		t.Error("First() on empty collection should report false")
	}
	if href, ok := c.Lookup("self"); ok || href != "" {
		t.Errorf("Lookup(self) = (%q, %v), want (\"\", false)", href, ok)
	}
	if !c.Equal(hypermedia.LinkCollection{}) {
		t.Error("two empty collections should be equal")
	}
	if !c.Equal(hypermedia.MustLinkCollection()) {
		t.Error("zero value should equal MustLinkCollection()")
	}
}

func TestLinkCollection_UpdateLink(t *testing.T) {
	var c hypermedia.LinkCollection
	c.UpdateLink(hypermedia.Hyperlink{Rel: "self", Href: "http://a"})
	c.UpdateLink(hypermedia.Hyperlink{Rel: "next", Href: "http://b"})
	c.UpdateLink(hypermedia.Hyperlink{Rel: "self", Href: "http://c"})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.At(0).Rel != "self" || c.At(0).Href != "http://c" {
		t.Errorf("At(0) = %+v, want self replaced in place", c.At(0))
	}
	if c.At(1).Rel != "next" {
		t.Errorf("At(1).Rel = %q, want %q", c.At(1).Rel, "next")
	}
}

func TestLinkCollection_UpdateLinkIdempotent(t *testing.T) {
	link := hypermedia.Hyperlink{Rel: "self", Href: "http://a"}

	var once, twice hypermedia.LinkCollection
	once.UpdateLink(link)
	twice.UpdateLink(link)
	twice.UpdateLink(link)

	if twice.Len() != 1 || !once.Equal(twice) {
		t.Errorf("repeated UpdateLink() = %v, want %v", twice.Links(), once.Links())
	}
}

func TestLinkCollection_UpdateLinkIgnoresInvalid(t *testing.T) {
	c := hypermedia.MustLinkCollection(hypermedia.Hyperlink{Rel: "self", Href: "http://a"})

	for _, link := range []hypermedia.Hyperlink{
		{Rel: "", Href: "http://b"},
		{Rel: "  ", Href: "http://b"},
		{Rel: "self", Href: ""},
		{Rel: "next", Href: "\t"},
	} {
		c.UpdateLink(link)
	}

	want := []hypermedia.Hyperlink{{Rel: "self", Href: "http://a"}}
	if !slices.Equal(c.Links(), want) {
		t.Errorf("Links() = %v, want %v", c.Links(), want)
	}
}

func TestNewLinkCollection_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		links []hypermedia.Hyperlink
		want  error
	}{
		{"blank rel", []hypermedia.Hyperlink{{Rel: "", Href: "http://a"}}, hypermedia.ErrMissingRel},
		{"whitespace rel", []hypermedia.Hyperlink{{Rel: " ", Href: "http://a"}}, hypermedia.ErrMissingRel},
		{"blank href", []hypermedia.Hyperlink{{Rel: "self", Href: ""}}, hypermedia.ErrMissingHref},
		{"invalid after valid", []hypermedia.Hyperlink{
			{Rel: "self", Href: "http://a"},
			{Rel: "next", Href: "  "},
		}, hypermedia.ErrMissingHref},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := hypermedia.NewLinkCollection(tt.links...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewLinkCollection() error = %v, want %v", err, tt.want)
			}
			if !c.IsEmpty() {
				t.Errorf("NewLinkCollection() = %v on error, want empty", c.Links())
			}
		})
	}
}

func TestMustLinkCollection_Panics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, hypermedia.ErrMissingRel) {
			t.Errorf("MustLinkCollection() panicked with %v, want ErrMissingRel", r)
		}
	}()
	hypermedia.MustLinkCollection(hypermedia.Hyperlink{Href: "http://a"})
}

func TestLinkCollection_Lookup(t *testing.T) {
	c := hypermedia.MustLinkCollection(hypermedia.Hyperlink{Rel: "self", Href: "http://me"})

	for _, rel := range []string{"self", "SELF", "Self", " self ", hypermedia.RelSelf} {
		href, ok := c.Lookup(rel)
		if !ok || href != "http://me" {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, true)", rel, href, ok, "http://me")
		}
	}

	if _, ok := c.Lookup("next"); ok {
		t.Error("Lookup(next) should report false")
	}
}

func TestLinkCollection_RelsCompareNormalized(t *testing.T) {
	c := hypermedia.MustLinkCollection(
		hypermedia.Hyperlink{Rel: "Self", Href: "http://a"},
		hypermedia.Hyperlink{Rel: "self", Href: "http://b"},
	)

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if c.At(0).Href != "http://b" {
		t.Errorf("At(0).Href = %q, want %q", c.At(0).Href, "http://b")
	}
}

func TestNewLinkCollection_LastWins(t *testing.T) {
	c := hypermedia.MustLinkCollection(
		hypermedia.Hyperlink{Rel: "self", Href: "http://1"},
		hypermedia.Hyperlink{Rel: "all", Href: "http://2"},
		hypermedia.Hyperlink{Rel: "self", Href: "http://3"},
		hypermedia.Hyperlink{Rel: "all", Href: "http://4"},
	)

	want := []hypermedia.Hyperlink{
		{Rel: "self", Href: "http://3"},
		{Rel: "all", Href: "http://4"},
	}
	if !slices.Equal(c.Links(), want) {
		t.Errorf("Links() = %v, want %v", c.Links(), want)
	}
}

func TestLinkCollection_CopiesAreIndependent(t *testing.T) {
	original := hypermedia.MustLinkCollection(
		hypermedia.Hyperlink{Rel: "self", Href: "http://a"},
	)

	replaced := original
	replaced.UpdateLink(hypermedia.Hyperlink{Rel: "self", Href: "http://b"})

	appended := original
	appended.UpdateLink(hypermedia.Hyperlink{Rel: "next", Href: "http://c"})

	if href, _ := original.Lookup("self"); href != "http://a" {
		t.Errorf("original Lookup(self) = %q, want %q", href, "http://a")
	}
	if original.Len() != 1 {
		t.Errorf("original Len() = %d, want 1", original.Len())
	}

	links := original.Links()
	links[0].Href = "http://mutated"
	if href, _ := original.Lookup("self"); href != "http://a" {
		t.Errorf("Links() should return a copy, original now %q", href)
	}
}

func TestLinkCollection_Equal(t *testing.T) {
	a := hypermedia.MustLinkCollection(
		hypermedia.Hyperlink{Rel: "self", Href: "http://a"},
		hypermedia.Hyperlink{Rel: "next", Href: "http://b"},
	)
	b := hypermedia.MustLinkCollection(
		hypermedia.Hyperlink{Rel: "next", Href: "http://b"},
		hypermedia.Hyperlink{Rel: "self", Href: "http://a"},
	)

	if a.Equal(b) {
		t.Error("collections with different order should not be equal")
	}
	if !a.Equal(hypermedia.MustLinkCollection(a.Links()...)) {
		t.Error("collection rebuilt from its links should be equal")
	}
}

func TestLinkCollection_All(t *testing.T) {
	c := hypermedia.MustLinkCollection(
		hypermedia.Hyperlink{Rel: "first", Href: "http://1"},
		hypermedia.Hyperlink{Rel: "prev", Href: "http://2"},
		hypermedia.Hyperlink{Rel: "next", Href: "http://3"},
	)

	var rels []string
	for l := range c.All() {
		rels = append(rels, l.Rel)
		if l.Rel == "prev" {
			break
		}
	}

	if !slices.Equal(rels, []string{"first", "prev"}) {
		t.Errorf("All() yielded %v, want [first prev]", rels)
	}
}

func TestLinkCollection_EmptyEncodesAsArray(t *testing.T) {
	data, err := json.Marshal(hypermedia.LinkCollection{})
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("json.Marshal(empty) = %s, want []", data)
	}
}
