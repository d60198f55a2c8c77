package hypermedia_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/hypermedia"
)

func TestNewHyperlink(t *testing.T) {
	tests := []struct {
		name    string
		rel     string
		href    string
		wantErr error
	}{
		{"valid", "self", "http://me", nil},
		{"empty rel", "", "http://me", hypermedia.ErrMissingRel},
		{"blank rel", "   ", "http://me", hypermedia.ErrMissingRel},
		{"empty href", "self", "", hypermedia.ErrMissingHref},
		{"both empty", "", "", hypermedia.ErrMissingRel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := hypermedia.NewHyperlink(tt.rel, tt.href)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewHyperlink(%q, %q) error = %v, want %v", tt.rel, tt.href, err, tt.wantErr)
			}
			if tt.wantErr == nil && (link.Rel != tt.rel || link.Href != tt.href) {
				t.Errorf("NewHyperlink() = %+v, want rel %q href %q", link, tt.rel, tt.href)
			}
		})
	}
}

func TestHyperlink_String(t *testing.T) {
	link := hypermedia.Hyperlink{Rel: "next", Href: "http://page/2"}
	want := `<http://page/2>; rel="next"`
	if link.String() != want {
		t.Errorf("String() = %q, want %q", link.String(), want)
	}
}
