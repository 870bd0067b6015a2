package cookiekit

import (
	"context"
	"errors"
	"testing"
)

// fakeQuerier serves canned host records keyed by domain and by URL, and
// records the queries it saw.
type fakeQuerier struct {
	byDomain map[string][]RawCookie
	byURL    map[string][]RawCookie
	failURL  string
	queries  []string
}

func (f *fakeQuerier) CookiesByDomain(_ context.Context, domain string) ([]RawCookie, error) {
	f.queries = append(f.queries, "domain:"+domain)
	return f.byDomain[domain], nil
}

func (f *fakeQuerier) CookiesByURL(_ context.Context, url string) ([]RawCookie, error) {
	f.queries = append(f.queries, "url:"+url)
	if url == f.failURL {
		return nil, errors.New("target detached")
	}
	return f.byURL[url], nil
}

func TestCollectDedupFirstWins(t *testing.T) {
	rc := RawCookie{Name: "sid", Value: "abc", Domain: "example.com", Path: "/", Session: true}
	q := &fakeQuerier{
		byDomain: map[string][]RawCookie{"example.com": {rc}},
		byURL: map[string][]RawCookie{
			"https://example.com/": {rc},
			"http://example.com/":  {rc},
		},
	}
	c := NewCollector(q, nil)
	got := c.Collect(context.Background(), "", "example.com", NewDomainSet("example.com"))
	if len(got) != 1 {
		t.Fatalf("expected 1 cookie after dedup, got %d", len(got))
	}
	if !got[0].FirstParty {
		t.Fatalf("expected first-party cookie")
	}
}

func TestCollectQueryOrder(t *testing.T) {
	q := &fakeQuerier{}
	c := NewCollector(q, nil)
	c.Collect(context.Background(), "https://a.com/checkout", "a.com", NewDomainSet("b.com", "a.com"))

	want := []string{
		"domain:a.com",
		"url:https://a.com/",
		"url:http://a.com/",
		"domain:b.com",
		"url:https://b.com/",
		"url:http://b.com/",
		"url:https://a.com/checkout",
	}
	if len(q.queries) != len(want) {
		t.Fatalf("expected %d queries, got %d: %v", len(want), len(q.queries), q.queries)
	}
	for i, w := range want {
		if q.queries[i] != w {
			t.Fatalf("query %d: got %q, want %q", i, q.queries[i], w)
		}
	}
}

func TestCollectPartialOnFailure(t *testing.T) {
	q := &fakeQuerier{
		byDomain: map[string][]RawCookie{
			"a.com": {{Name: "keep", Domain: "a.com", Path: "/", Session: true}},
		},
		failURL: "https://a.com/",
		byURL: map[string][]RawCookie{
			"http://a.com/": {{Name: "also", Domain: "a.com", Path: "/", Session: true}},
		},
	}
	c := NewCollector(q, nil)
	got := c.Collect(context.Background(), "", "a.com", NewDomainSet("a.com"))
	if len(got) != 2 {
		t.Fatalf("a failing sub-query must not abort collection: got %d cookies", len(got))
	}
}

func TestCollectSourceURLPicksUpPathScoped(t *testing.T) {
	q := &fakeQuerier{
		byURL: map[string][]RawCookie{
			"https://a.com/admin/": {{Name: "admin_sid", Domain: "a.com", Path: "/admin", Session: true}},
		},
	}
	c := NewCollector(q, nil)
	got := c.Collect(context.Background(), "https://a.com/admin/", "a.com", NewDomainSet("a.com"))
	if len(got) != 1 || got[0].Name != "admin_sid" {
		t.Fatalf("expected the source-url query to surface path-scoped cookies: %v", got)
	}
}

func TestCollectThirdPartyClassification(t *testing.T) {
	q := &fakeQuerier{
		byDomain: map[string][]RawCookie{
			"cdn.tracker.io": {{Name: "IDE", Domain: ".tracker.io", Path: "/", Session: true}},
		},
	}
	c := NewCollector(q, nil)
	got := c.Collect(context.Background(), "https://a.com/", "a.com", NewDomainSet("a.com", "cdn.tracker.io"))
	if len(got) != 1 || got[0].FirstParty {
		t.Fatalf("cookie from an embedded domain must be third-party: %v", got)
	}
}
