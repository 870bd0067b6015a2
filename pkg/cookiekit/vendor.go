package cookiekit

import "strings"

// IdentifyVendor attributes a cookie to a known tracking/analytics vendor.
// Lookup is three-tiered and first-match-wins:
//
//  1. exact name match, case-sensitive first with a lowercase fallback;
//  2. ordered prefix match against the lowercased name — longer, more
//     specific prefixes are listed before shorter ones that would shadow
//     them;
//  3. domain match, exact or dot-suffix, against the vendor domain table.
//
// It returns the empty string when no tier matches. The function is pure:
// the tables are fixed at build time and never mutated.
func IdentifyVendor(name, domain string) string {
	if v, ok := vendorExact[name]; ok {
		return v
	}
	lower := strings.ToLower(name)
	if v, ok := vendorExact[lower]; ok {
		return v
	}
	for _, p := range vendorPrefixes {
		if strings.HasPrefix(lower, p.prefix) {
			return p.vendor
		}
	}
	if domain != "" {
		d := strings.ToLower(BareDomain(domain))
		for _, e := range vendorDomains {
			if d == e.domain || strings.HasSuffix(d, "."+e.domain) {
				return e.vendor
			}
		}
	}
	return ""
}

type prefixRule struct {
	prefix string
	vendor string
}

type domainRule struct {
	domain string
	vendor string
}
