package cookiekit

import (
	"reflect"
	"testing"
)

func TestBareDomain(t *testing.T) {
	if got := BareDomain(".example.com"); got != "example.com" {
		t.Fatalf("expected example.com, got %q", got)
	}
	if got := BareDomain("example.com"); got != "example.com" {
		t.Fatalf("expected example.com, got %q", got)
	}
}

func TestDomainSetSkipsEmpty(t *testing.T) {
	s := NewDomainSet("a.com", "", "b.com")
	if len(s) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(s))
	}
	if s.Has("") {
		t.Fatalf("empty host must not be in the set")
	}
}

func TestDomainSetListSorted(t *testing.T) {
	s := NewDomainSet("b.com", "a.com", "c.com")
	want := []string{"a.com", "b.com", "c.com"}
	if got := s.List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestIsDomainRelevant(t *testing.T) {
	relevant := NewDomainSet("shop.example.com", "cdn.assets.net")
	tests := []struct {
		name   string
		domain string
		want   bool
	}{
		{"exact", "shop.example.com", true},
		{"leading dot stripped", ".shop.example.com", true},
		{"parent of relevant host", ".example.com", true},
		{"subdomain of relevant host", "img.cdn.assets.net", true},
		{"unrelated", "tracker.io", false},
		{"suffix but not label boundary", "notexample.com", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDomainRelevant(tc.domain, relevant); got != tc.want {
				t.Fatalf("IsDomainRelevant(%q) = %v, want %v", tc.domain, got, tc.want)
			}
		})
	}
}

func TestIsFirstParty(t *testing.T) {
	tests := []struct {
		name       string
		domain     string
		sourceHost string
		want       bool
	}{
		{"exact", "example.com", "example.com", true},
		{"ancestor domain", ".example.com", "www.example.com", true},
		{"cookie on deeper host than page", "api.example.com", "example.com", false},
		{"third party", "tracker.io", "example.com", false},
		{"empty source host fails closed", "example.com", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsFirstParty(tc.domain, tc.sourceHost); got != tc.want {
				t.Fatalf("IsFirstParty(%q, %q) = %v, want %v", tc.domain, tc.sourceHost, got, tc.want)
			}
		})
	}
}
