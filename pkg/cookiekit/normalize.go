package cookiekit

// RawCookie is a cookie record as reported by the browser host. It carries no
// notion of party; ExpirationDate is meaningless when Session is set.
// Cookie values are sensitive and must never be logged.
type RawCookie struct {
	Name     string   `json:"name"`
	Value    string   `json:"value"`
	Domain   string   `json:"domain"`
	Path     string   `json:"path"`
	Secure   bool     `json:"secure"`
	HttpOnly bool     `json:"httpOnly"`
	SameSite SameSite `json:"sameSite"`

	ExpirationDate float64 `json:"expirationDate,omitempty"`
	Session        bool    `json:"session"`

	StoreId string `json:"storeId,omitempty"`
}

// Identity returns the record's identity triple.
func (rc *RawCookie) Identity() Identity {
	return Identity{Domain: rc.Domain, Path: rc.Path, Name: rc.Name}
}

// Normalize converts a raw host record into the canonical representation.
// The expiration date is dropped for session cookies so that the
// session ⇔ no-expiry invariant holds, and the caller supplies the
// first-party verdict since the host record has no notion of party.
// Malformed input is a host contract violation and is not validated here.
func Normalize(rc RawCookie, firstParty bool) Cookie {
	c := Cookie{
		Name:       rc.Name,
		Value:      rc.Value,
		Domain:     rc.Domain,
		Path:       rc.Path,
		Secure:     rc.Secure,
		HttpOnly:   rc.HttpOnly,
		SameSite:   rc.SameSite,
		Session:    rc.Session,
		StoreId:    rc.StoreId,
		Size:       len(rc.Name) + len(rc.Value),
		FirstParty: firstParty,
	}
	if !rc.Session && rc.ExpirationDate != 0 {
		exp := rc.ExpirationDate
		c.ExpirationDate = &exp
	} else {
		c.Session = true
	}
	return c
}
