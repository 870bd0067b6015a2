package cookiekit

import (
	"math"
	"sort"
	"strings"
)

// Filter selects a subset of the store. The set of filters is closed.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterFirstParty Filter = "firstParty"
	FilterThirdParty Filter = "thirdParty"
	FilterSecure     Filter = "secure"
	FilterHttpOnly   Filter = "httpOnly"
	FilterSession    Filter = "session"
	FilterPersistent Filter = "persistent"
	FilterLarge      Filter = "large"
)

// LargeCookieSize is the exclusive size threshold of the large-cookie filter.
const LargeCookieSize = 100

// SortKey selects the projection ordering. The set of keys is closed.
type SortKey string

const (
	// SortParty orders first-party before third-party, then domain, then
	// name.
	SortParty SortKey = "party"
	SortName  SortKey = "name"
	// SortDomain orders by domain, then name.
	SortDomain SortKey = "domain"
	// SortSize orders largest first.
	SortSize SortKey = "size"
	// SortExpiry orders by ascending expiration epoch; session cookies
	// (no expiry) sort last.
	SortExpiry SortKey = "expiry"
)

// Query is a filtered, sorted projection request. Search narrows the filtered
// set by a case-insensitive substring match against name, domain, value, or
// attributed vendor.
type Query struct {
	Filter Filter
	Search string
	Sort   SortKey
}

// Project returns the filtered, sorted view of the store. It is a pure
// function of the current contents and the query: the sort is stable over
// insertion order, so repeated calls with unchanged inputs produce identical
// ordering and incremental consumers see no spurious reorders.
func (s *Store) Project(q Query) []Cookie {
	cookies := s.Cookies()

	filtered := cookies[:0:0]
	for _, c := range cookies {
		if matchFilter(c, q.Filter) && matchSearch(c, q.Search) {
			filtered = append(filtered, c)
		}
	}

	sortCookies(filtered, q.Sort)
	return filtered
}

func matchFilter(c Cookie, f Filter) bool {
	switch f {
	case FilterFirstParty:
		return c.FirstParty
	case FilterThirdParty:
		return !c.FirstParty
	case FilterSecure:
		return c.Secure
	case FilterHttpOnly:
		return c.HttpOnly
	case FilterSession:
		return c.Session
	case FilterPersistent:
		return !c.Session
	case FilterLarge:
		return c.Size > LargeCookieSize
	default:
		return true
	}
}

func matchSearch(c Cookie, search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	if strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Domain), q) ||
		strings.Contains(strings.ToLower(c.Value), q) {
		return true
	}
	vendor := IdentifyVendor(c.Name, c.Domain)
	return vendor != "" && strings.Contains(strings.ToLower(vendor), q)
}

func sortCookies(cookies []Cookie, key SortKey) {
	switch key {
	case SortParty:
		sort.SliceStable(cookies, func(i, j int) bool {
			a, b := cookies[i], cookies[j]
			if a.FirstParty != b.FirstParty {
				return a.FirstParty
			}
			if a.Domain != b.Domain {
				return a.Domain < b.Domain
			}
			return a.Name < b.Name
		})
	case SortName:
		sort.SliceStable(cookies, func(i, j int) bool {
			return cookies[i].Name < cookies[j].Name
		})
	case SortDomain:
		sort.SliceStable(cookies, func(i, j int) bool {
			a, b := cookies[i], cookies[j]
			if a.Domain != b.Domain {
				return a.Domain < b.Domain
			}
			return a.Name < b.Name
		})
	case SortSize:
		sort.SliceStable(cookies, func(i, j int) bool {
			return cookies[i].Size > cookies[j].Size
		})
	case SortExpiry:
		sort.SliceStable(cookies, func(i, j int) bool {
			return expiryOf(cookies[i]) < expiryOf(cookies[j])
		})
	}
}

func expiryOf(c Cookie) float64 {
	if c.ExpirationDate == nil {
		return math.Inf(1)
	}
	return *c.ExpirationDate
}
