// Package cookiekit implements the cookie relevance and classification core:
// domain matching, first/third-party determination, vendor attribution, the
// page-scoped cookie collector, and the live classified store fed by browser
// change events.
package cookiekit

import "strings"

// SameSite is the cookie SameSite attribute as reported by the browser.
type SameSite string

const (
	SameSiteUnspecified SameSite = "unspecified"
	SameSiteNone        SameSite = "no_restriction"
	SameSiteLax         SameSite = "lax"
	SameSiteStrict      SameSite = "strict"
)

// Identity is the (domain, path, name) triple that uniquely identifies a
// cookie within a cookie jar. Two host records with the same triple are the
// same logical cookie regardless of which query returned them.
type Identity struct {
	Domain string
	Path   string
	Name   string
}

// Key returns the identity in its canonical string form.
func (id Identity) Key() string {
	return id.Domain + "|" + id.Path + "|" + id.Name
}

// Cookie is the canonical cookie representation used throughout the system.
// Instances are immutable once constructed; an edit produces a new instance
// via the relayed change event.
type Cookie struct {
	Name     string   `json:"name"`
	Value    string   `json:"value"`
	Domain   string   `json:"domain"`
	Path     string   `json:"path"`
	Secure   bool     `json:"secure"`
	HttpOnly bool     `json:"httpOnly"`
	SameSite SameSite `json:"sameSite"`

	// ExpirationDate is epoch seconds; nil exactly when Session is true.
	ExpirationDate *float64 `json:"expirationDate,omitempty"`
	Session        bool     `json:"session"`

	StoreId string `json:"storeId,omitempty"`

	// Size counts the characters of name+value, not encoded wire bytes.
	// Good enough for relative comparison (sorting, the large-cookie
	// filter); not a wire-size guarantee.
	Size int `json:"size"`

	// FirstParty is derived against the session's source host, never
	// reported by the browser itself.
	FirstParty bool `json:"firstParty"`
}

// Identity returns the cookie's identity triple.
func (c *Cookie) Identity() Identity {
	return Identity{Domain: c.Domain, Path: c.Path, Name: c.Name}
}

// Key returns the cookie's identity key.
func (c *Cookie) Key() string {
	return c.Identity().Key()
}

// Param converts the cookie into mutation target attributes, e.g. for
// deleting an observed cookie.
func (c *Cookie) Param() CookieParam {
	return CookieParam{
		Name:           c.Name,
		Domain:         c.Domain,
		Path:           c.Path,
		Secure:         c.Secure,
		HttpOnly:       c.HttpOnly,
		SameSite:       c.SameSite,
		Session:        c.Session,
		ExpirationDate: c.ExpirationDate,
		StoreId:        c.StoreId,
	}
}

// CookieParam carries the target attributes of a create/update/delete
// request. The browser's write contract wants a URL rather than a bare
// domain and path; EffectiveURL derives it.
type CookieParam struct {
	Name     string   `json:"name"`
	Domain   string   `json:"domain"`
	Path     string   `json:"path"`
	Secure   bool     `json:"secure"`
	HttpOnly bool     `json:"httpOnly"`
	SameSite SameSite `json:"sameSite"`

	Session        bool     `json:"session"`
	ExpirationDate *float64 `json:"expirationDate,omitempty"`

	StoreId string `json:"storeId,omitempty"`
}

// EffectiveURL derives the URL the browser's cookie write/delete APIs expect:
// the bare domain plus path, with scheme https exactly when the cookie is
// marked secure.
func (p *CookieParam) EffectiveURL() string {
	scheme := "http"
	if p.Secure {
		scheme = "https"
	}
	path := p.Path
	if path == "" {
		path = "/"
	}
	return scheme + "://" + BareDomain(p.Domain) + path
}

// Identity returns the identity triple targeted by the mutation.
func (p *CookieParam) Identity() Identity {
	return Identity{Domain: p.Domain, Path: p.Path, Name: p.Name}
}

// ParseSameSite maps arbitrary input to a known SameSite value, defaulting to
// unspecified.
func ParseSameSite(s string) SameSite {
	switch SameSite(strings.ToLower(s)) {
	case SameSiteNone:
		return SameSiteNone
	case SameSiteLax:
		return SameSiteLax
	case SameSiteStrict:
		return SameSiteStrict
	default:
		return SameSiteUnspecified
	}
}
