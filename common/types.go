package common

import "github.com/cookpit/cookpit/pkg/cookiekit"

// GetCookiesParams opens an inspection session for a monitored page.
// TargetId selects an existing scan captured by the daemon; Url is used both
// as fallback bootstrap data and to derive the session's source host.
type GetCookiesParams struct {
	Url      string `json:"url"`
	TargetId string `json:"target_id,omitempty"`
	Title    string `json:"title,omitempty"`
}

// CookiesResponse is the initial session payload: the collected, deduplicated
// cookie set and the page screenshot (PNG) when one was captured.
type CookiesResponse struct {
	Cookies    []cookiekit.Cookie `json:"cookies"`
	Screenshot []byte             `json:"screenshot,omitempty"`
}

// CookieChangedUpdate is pushed to a session whenever a relevant cookie is
// added, changed or removed in the browser.
type CookieChangedUpdate struct {
	Removed   bool                  `json:"removed"`
	Cookie    cookiekit.Cookie      `json:"cookie"`
	Cause     cookiekit.ChangeCause `json:"cause"`
	Timestamp int64                 `json:"timestamp"`
}

// SetCookieParams creates or updates a single cookie. Value travels separately
// from the target attributes, mirroring the editor surface that feeds it.
type SetCookieParams struct {
	Cookie cookiekit.CookieParam `json:"cookie"`
	Value  string                `json:"value"`
}

// SetCookieResult reports the outcome of a set-cookie request.
type SetCookieResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RemoveCookieParams deletes a single cookie identified by its target
// attributes.
type RemoveCookieParams struct {
	Cookie cookiekit.CookieParam `json:"cookie"`
}

// RemoveCookieResult reports the outcome of a remove-cookie request.
type RemoveCookieResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RemoveAllParams deletes every listed cookie. Each removal is attempted
// independently; a failure never aborts the rest of the batch.
type RemoveAllParams struct {
	Cookies []cookiekit.CookieParam `json:"cookies"`
}

// RemoveAllResult summarizes a bulk removal. Success is true only when every
// removal went through.
type RemoveAllResult struct {
	Success bool `json:"success"`
	Removed int  `json:"removed"`
	Failed  int  `json:"failed"`
}
