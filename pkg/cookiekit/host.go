package cookiekit

import "context"

// Querier is the host cookie-read boundary. Implementations wrap whatever
// primitives the browser exposes; the collector only relies on the two query
// shapes below.
type Querier interface {
	// CookiesByDomain returns the cookies set directly on domain and its
	// sub-domains.
	CookiesByDomain(ctx context.Context, domain string) ([]RawCookie, error)

	// CookiesByURL returns the cookies that would be sent with a request
	// to url, including parent-domain cookies.
	CookiesByURL(ctx context.Context, url string) ([]RawCookie, error)
}

// Mutator is the host cookie-write boundary. The browser's write contract
// takes a URL rather than bare domain/path; callers derive it with
// CookieParam.EffectiveURL.
type Mutator interface {
	SetCookie(ctx context.Context, url string, p CookieParam, value string) error
	RemoveCookie(ctx context.Context, url, name, storeID string) error
}

// Scan is the session-bootstrap data captured once when inspection of a page
// begins: its address, the hostnames of its loaded sub-resources across all
// frames, and a visible-area screenshot.
type Scan struct {
	URL        string
	Title      string
	Domains    []string
	Screenshot []byte
}

// Inspector captures session-bootstrap data from a live page.
type Inspector interface {
	ScanTarget(ctx context.Context, targetID string) (*Scan, error)
}

// Watcher is the host cookie change-notification stream. Changes are
// delivered in the order the host emits them; the channel closes when the
// watcher shuts down.
type Watcher interface {
	Changes() <-chan ChangeInfo
	Close() error
}

// Host bundles every browser-side collaborator the daemon needs.
type Host interface {
	Querier
	Mutator
	Inspector
}
