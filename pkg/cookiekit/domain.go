package cookiekit

import (
	"sort"
	"strings"
)

// BareDomain strips the leading dot a browser uses to mark subdomain-inclusive
// cookies, yielding the plain hostname form.
func BareDomain(domain string) string {
	return strings.TrimPrefix(domain, ".")
}

// DomainSet is the set of hostnames considered to belong to a monitored page:
// the page's own host plus every hostname observed in its loaded
// sub-resources. Computed once per session and immutable afterwards.
type DomainSet map[string]struct{}

// NewDomainSet builds a set from the given hostnames, skipping empty entries.
func NewDomainSet(hosts ...string) DomainSet {
	s := make(DomainSet, len(hosts))
	for _, h := range hosts {
		if h != "" {
			s[h] = struct{}{}
		}
	}
	return s
}

// Has reports whether host is in the set.
func (s DomainSet) Has(host string) bool {
	_, ok := s[host]
	return ok
}

// List returns the hostnames in sorted order, so that callers iterating the
// set (e.g. the collector) behave deterministically.
func (s DomainSet) List() []string {
	hosts := make([]string, 0, len(s))
	for h := range s {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}

// IsDomainRelevant reports whether a cookie scoped to cookieDomain belongs to
// a page whose relevant domains are given. The bare cookie domain matches if
// it equals an entry, is a sub-domain of one, or is a parent domain of one:
// a cookie on .example.com is relevant to a page loading pixel.example.com,
// and a cookie on api.example.com is relevant when the page host is
// example.com.
func IsDomainRelevant(cookieDomain string, relevant DomainSet) bool {
	bare := BareDomain(cookieDomain)
	for d := range relevant {
		if d == bare || strings.HasSuffix(d, "."+bare) || strings.HasSuffix(bare, "."+d) {
			return true
		}
	}
	return false
}

// IsFirstParty reports whether a cookie scoped to cookieDomain is first-party
// relative to sourceHost: the bare domain must equal the host or be an
// ancestor of it. An empty source host fails closed — everything is
// third-party.
func IsFirstParty(cookieDomain, sourceHost string) bool {
	if sourceHost == "" {
		return false
	}
	bare := BareDomain(cookieDomain)
	return sourceHost == bare || strings.HasSuffix(sourceHost, "."+bare)
}
