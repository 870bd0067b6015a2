package cookpitcli

import (
	"encoding/json"
	"time"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/pkg/cookiekit"
)

func invoke[T any](c *Client, method common.UpdateType, message any, timeout time.Duration) (*T, error) {
	resp, err := c.invoke(method, message, timeout)
	if err != nil {
		return nil, err
	}
	var d T
	return &d, json.Unmarshal(resp, &d)
}

// GetCookiesOpts refines the session opened by GetCookies.
type GetCookiesOpts struct {
	// TargetId selects a page scan captured by the daemon. When it names a
	// known scan, the session is scoped to every domain the page loaded.
	TargetId string `json:"target_id,omitempty"`
	Title    string `json:"title,omitempty"`
}

// GetCookies opens an inspection session for the given page URL and returns
// the collected cookie set. The daemon keeps pushing cookie changes for the
// session's scope on this connection until it closes; register a handler with
// OnCookieChanged first.
func (c *Client) GetCookies(url string, opts *GetCookiesOpts) (*common.CookiesResponse, error) {
	if opts == nil {
		opts = &GetCookiesOpts{}
	}
	return invoke[common.CookiesResponse](c, common.UPDATE_GET_COOKIES, &common.GetCookiesParams{
		Url:      url,
		TargetId: opts.TargetId,
		Title:    opts.Title,
	}, common.DefaultTimeout)
}

// SetCookie creates or overwrites one cookie. A refusal by the browser is
// reported in the result, not as an error.
func (c *Client) SetCookie(cookie cookiekit.CookieParam, value string) (*common.SetCookieResult, error) {
	return invoke[common.SetCookieResult](c, common.UPDATE_SET_COOKIE, &common.SetCookieParams{
		Cookie: cookie,
		Value:  value,
	}, common.SetCookieTimeout)
}

// RemoveCookie deletes one cookie.
func (c *Client) RemoveCookie(cookie cookiekit.CookieParam) (*common.RemoveCookieResult, error) {
	return invoke[common.RemoveCookieResult](c, common.UPDATE_REMOVE_COOKIE, &common.RemoveCookieParams{
		Cookie: cookie,
	}, common.RemoveCookieTimeout)
}

// RemoveAllCookies deletes every listed cookie. Removals are attempted
// independently; the result counts successes and failures separately.
func (c *Client) RemoveAllCookies(cookies []cookiekit.CookieParam) (*common.RemoveAllResult, error) {
	return invoke[common.RemoveAllResult](c, common.UPDATE_REMOVE_ALL, &common.RemoveAllParams{
		Cookies: cookies,
	}, common.RemoveAllTimeout)
}
