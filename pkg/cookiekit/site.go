package cookiekit

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// SiteOf reduces a cookie domain to its registrable site (eTLD+1), so that
// api.shop.example.com and cdn.example.com group together. Domains that have
// no registrable form (IPs, single labels, public suffixes themselves) fall
// back to their bare form.
func SiteOf(domain string) string {
	bare := strings.ToLower(BareDomain(domain))
	site, err := publicsuffix.EffectiveTLDPlusOne(bare)
	if err != nil {
		return bare
	}
	return site
}

// SiteBreakdown counts cookies per registrable site.
func SiteBreakdown(cookies []Cookie) map[string]int {
	out := make(map[string]int)
	for _, c := range cookies {
		out[SiteOf(c.Domain)]++
	}
	return out
}
