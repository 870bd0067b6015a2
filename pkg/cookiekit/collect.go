package cookiekit

import (
	"context"
	"log"
)

// Collector assembles the complete cookie set for a monitored page by fanning
// out host queries over the page's relevant domains and merging the
// overlapping results by cookie identity.
type Collector struct {
	q   Querier
	log *log.Logger
}

// NewCollector creates a collector over the given host querier.
func NewCollector(q Querier, l *log.Logger) *Collector {
	return &Collector{q: q, log: l}
}

// Collect gathers the deduplicated cookie set for a page. For every relevant
// domain it queries by exact domain, then by https:// and http:// effective
// URLs — the URL queries also surface parent-domain cookies the domain query
// misses. When a source URL is known, one final query by that exact URL picks
// up path-scoped cookies.
//
// The first occurrence of an identity wins; later duplicates are identical
// host records and are silently dropped. A failing sub-query contributes zero
// results — partial data is preferred over a failed collection. The collector
// never retries; a session restart re-runs it wholesale.
func (c *Collector) Collect(ctx context.Context, sourceURL, sourceHost string, relevant DomainSet) []Cookie {
	seen := make(map[Identity]struct{})
	var out []Cookie

	add := func(rc RawCookie) {
		id := rc.Identity()
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, Normalize(rc, IsFirstParty(rc.Domain, sourceHost)))
	}

	for _, domain := range relevant.List() {
		if cookies, err := c.q.CookiesByDomain(ctx, domain); err == nil {
			for _, rc := range cookies {
				add(rc)
			}
		} else {
			c.warnf("domain query %q failed: %s", domain, err.Error())
		}
		for _, u := range []string{"https://" + domain + "/", "http://" + domain + "/"} {
			cookies, err := c.q.CookiesByURL(ctx, u)
			if err != nil {
				c.warnf("url query %q failed: %s", u, err.Error())
				continue
			}
			for _, rc := range cookies {
				add(rc)
			}
		}
	}

	if sourceURL != "" {
		if cookies, err := c.q.CookiesByURL(ctx, sourceURL); err == nil {
			for _, rc := range cookies {
				add(rc)
			}
		} else {
			c.warnf("source url query failed: %s", err.Error())
		}
	}

	return out
}

func (c *Collector) warnf(format string, args ...any) {
	if c.log != nil {
		c.log.Printf("warning: collector: "+format+"\n", args...)
	}
}
