package testing

import (
	"testing"

	"github.com/zoobzio/hypermedia"
)

func TestCodecs(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Codecs() {
		if c == nil {
			t.Fatal("Codecs() returned a nil codec")
		}
		if seen[c.ContentType()] {
			t.Errorf("duplicate codec for %s", c.ContentType())
		}
		seen[c.ContentType()] = true
	}
	if len(seen) != 5 {
		t.Errorf("Codecs() returned %d codecs, want 5", len(seen))
	}
}

func TestFixtureDefinitions(t *testing.T) {
	if _, ok := hypermedia.Lookup[SimpleResource](); ok {
		t.Error("SimpleResource should declare no links")
	}

	def, ok := hypermedia.Lookup[LinkedResource]()
	if !ok {
		t.Fatal("LinkedResource should declare links")
	}
	links, err := def.Evaluate(LinkedResource{ID: "7"})
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if href, _ := links.Lookup("self"); href != ResourceHref("7") {
		t.Errorf("Lookup(self) = %q, want %q", href, ResourceHref("7"))
	}
}

func TestNewCatalog(t *testing.T) {
	c := NewCatalog(2, true, "a", "b")

	if c.Page != 2 || !c.More {
		t.Errorf("NewCatalog() = %+v, want page 2 with more", c)
	}
	if len(c.Items) != 2 || c.Items[1].ID != "b" {
		t.Errorf("Items = %+v, want ids a, b", c.Items)
	}
}
