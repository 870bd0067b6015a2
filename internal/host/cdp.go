// Package host adapts a Chromium browser, driven over the DevTools protocol,
// to the cookie host interfaces: queries, mutations, page scans and the
// change stream.
package host

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/logger"
)

// Config configures the browser connection.
type Config struct {
	// ControlURL is the WebSocket URL of a running browser's DevTools
	// endpoint. Empty launches a local headless browser instead.
	ControlURL string

	Log logger.Logger
}

// CDPHost drives the browser cookie jar over the DevTools protocol.
type CDPHost struct {
	cfg Config
	log logger.Logger

	mu      sync.RWMutex
	browser *rod.Browser
	util    *rod.Page
	lnch    *launcher.Launcher
}

// New creates an unconnected host. Call Connect before use.
func New(cfg Config) *CDPHost {
	l := cfg.Log
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &CDPHost{cfg: cfg, log: l}
}

// Connect attaches to the browser: a remote DevTools endpoint when one is
// configured, a locally launched headless browser otherwise. A blank utility
// page is kept open for the protocol commands that require a page session.
func (h *CDPHost) Connect() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	wsURL := h.cfg.ControlURL
	if wsURL == "" {
		l := launcher.New().Headless(true)
		u, err := l.Launch()
		if err != nil {
			return fmt.Errorf("host: launch: %w", err)
		}
		h.lnch = l
		wsURL = u
		h.log.Info("host: launched local browser")
	} else {
		h.log.Info("host: connecting to %s", wsURL)
	}

	b := rod.New().ControlURL(wsURL)
	if err := b.Connect(); err != nil {
		return fmt.Errorf("host: connect: %w", err)
	}

	util, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = b.Close()
		return fmt.Errorf("host: utility page: %w", err)
	}

	h.browser = b
	h.util = util
	return nil
}

// Close disconnects from the browser and cleans up a locally launched one.
func (h *CDPHost) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.browser != nil {
		_ = h.browser.Close()
		h.browser = nil
		h.util = nil
	}
	if h.lnch != nil {
		h.lnch.Cleanup()
		h.lnch = nil
	}
	return nil
}

func (h *CDPHost) handles() (*rod.Browser, *rod.Page, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.browser == nil {
		return nil, nil, fmt.Errorf("host: not connected")
	}
	return h.browser, h.util, nil
}

// Snapshot returns every cookie in the browser's jar. The change watcher
// diffs consecutive snapshots.
func (h *CDPHost) Snapshot(ctx context.Context) ([]cookiekit.RawCookie, error) {
	b, _, err := h.handles()
	if err != nil {
		return nil, err
	}
	cookies, err := b.Context(ctx).GetCookies()
	if err != nil {
		return nil, fmt.Errorf("host: get cookies: %w", err)
	}
	out := make([]cookiekit.RawCookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, fromNetworkCookie(c))
	}
	return out, nil
}

// CookiesByDomain returns the cookies scoped to a domain or any of its
// subdomains, matching the browser extension API's domain query.
func (h *CDPHost) CookiesByDomain(ctx context.Context, domain string) ([]cookiekit.RawCookie, error) {
	all, err := h.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	d := strings.ToLower(cookiekit.BareDomain(domain))
	var out []cookiekit.RawCookie
	for _, c := range all {
		bare := strings.ToLower(cookiekit.BareDomain(c.Domain))
		if bare == d || strings.HasSuffix(bare, "."+d) {
			out = append(out, c)
		}
	}
	return out, nil
}

// CookiesByURL returns the cookies a request to the URL would carry:
// domain-matched (including parent-domain cookies), path-matched, and
// secure-gated by scheme.
func (h *CDPHost) CookiesByURL(ctx context.Context, rawURL string) ([]cookiekit.RawCookie, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("host: parse url: %w", err)
	}
	all, err := h.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var out []cookiekit.RawCookie
	for _, c := range all {
		if matchesURL(c, u) {
			out = append(out, c)
		}
	}
	return out, nil
}

// SetCookie writes one cookie through the browser.
func (h *CDPHost) SetCookie(ctx context.Context, rawURL string, p cookiekit.CookieParam, value string) error {
	b, _, err := h.handles()
	if err != nil {
		return err
	}
	param := &proto.NetworkCookieParam{
		Name:     p.Name,
		Value:    value,
		URL:      rawURL,
		Domain:   p.Domain,
		Path:     p.Path,
		Secure:   p.Secure,
		HTTPOnly: p.HttpOnly,
		SameSite: toNetworkSameSite(p.SameSite),
	}
	if !p.Session && p.ExpirationDate != nil {
		param.Expires = proto.TimeSinceEpoch(*p.ExpirationDate)
	}
	if err := b.Context(ctx).SetCookies([]*proto.NetworkCookieParam{param}); err != nil {
		return fmt.Errorf("host: set cookie: %w", err)
	}
	return nil
}

// RemoveCookie deletes one cookie. The store id is accepted for interface
// symmetry; DevTools scopes deletion by URL and name.
func (h *CDPHost) RemoveCookie(ctx context.Context, rawURL, name, storeID string) error {
	_, util, err := h.handles()
	if err != nil {
		return err
	}
	req := proto.NetworkDeleteCookies{
		Name: name,
		URL:  rawURL,
	}
	if err := req.Call(util.Context(ctx)); err != nil {
		return fmt.Errorf("host: delete cookie: %w", err)
	}
	return nil
}

// ScanTarget captures the scope of one open page: its URL and title, the
// hostnames of every loaded resource, and a screenshot.
func (h *CDPHost) ScanTarget(ctx context.Context, targetID string) (*cookiekit.Scan, error) {
	b, _, err := h.handles()
	if err != nil {
		return nil, err
	}
	page, err := b.PageFromTarget(proto.TargetTargetID(targetID))
	if err != nil {
		return nil, fmt.Errorf("host: target %s: %w", targetID, err)
	}
	page = page.Context(ctx)

	info, err := page.Info()
	if err != nil {
		return nil, fmt.Errorf("host: page info: %w", err)
	}

	hosts := make(map[string]struct{})
	addHost(hosts, info.URL)
	if tree, err := (proto.PageGetResourceTree{}).Call(page); err == nil {
		collectFrameHosts(hosts, tree.FrameTree)
	} else {
		h.log.Warning("host: resource tree of %s: %v", targetID, err)
	}

	scan := &cookiekit.Scan{
		URL:     info.URL,
		Title:   info.Title,
		Domains: sortedHosts(hosts),
	}

	if shot, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	}); err == nil {
		scan.Screenshot = shot
	} else {
		h.log.Warning("host: screenshot of %s: %v", targetID, err)
	}

	return scan, nil
}

func collectFrameHosts(hosts map[string]struct{}, tree *proto.PageFrameResourceTree) {
	if tree == nil {
		return
	}
	if tree.Frame != nil {
		addHost(hosts, tree.Frame.URL)
	}
	for _, res := range tree.Resources {
		addHost(hosts, res.URL)
	}
	for _, child := range tree.ChildFrames {
		collectFrameHosts(hosts, child)
	}
}

func addHost(hosts map[string]struct{}, rawURL string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return
	}
	if host := strings.ToLower(u.Hostname()); host != "" {
		hosts[host] = struct{}{}
	}
}

func sortedHosts(hosts map[string]struct{}) []string {
	out := make([]string, 0, len(hosts))
	for h := range hosts {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// matchesURL reports whether a request to u would carry the cookie: host
// match against the cookie domain (subdomain-inclusive for dot-prefixed
// domains), path prefix match on a path boundary, and https for secure
// cookies.
func matchesURL(c cookiekit.RawCookie, u *url.URL) bool {
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	bare := strings.ToLower(cookiekit.BareDomain(c.Domain))
	if strings.HasPrefix(c.Domain, ".") {
		if host != bare && !strings.HasSuffix(host, "."+bare) {
			return false
		}
	} else if host != bare {
		return false
	}

	if c.Secure && u.Scheme != "https" {
		return false
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	return pathMatches(c.Path, path)
}

// pathMatches implements the RFC 6265 path-match rules.
func pathMatches(cookiePath, reqPath string) bool {
	if cookiePath == "" || cookiePath == "/" {
		return true
	}
	if reqPath == cookiePath {
		return true
	}
	if !strings.HasPrefix(reqPath, cookiePath) {
		return false
	}
	return strings.HasSuffix(cookiePath, "/") || reqPath[len(cookiePath)] == '/'
}

func fromNetworkCookie(c *proto.NetworkCookie) cookiekit.RawCookie {
	rc := cookiekit.RawCookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Secure:   c.Secure,
		HttpOnly: c.HTTPOnly,
		SameSite: fromNetworkSameSite(c.SameSite),
		Session:  c.Session,
	}
	if !c.Session && float64(c.Expires) > 0 {
		rc.ExpirationDate = float64(c.Expires)
	}
	return rc
}

func fromNetworkSameSite(s proto.NetworkCookieSameSite) cookiekit.SameSite {
	switch s {
	case proto.NetworkCookieSameSiteStrict:
		return cookiekit.SameSiteStrict
	case proto.NetworkCookieSameSiteLax:
		return cookiekit.SameSiteLax
	case proto.NetworkCookieSameSiteNone:
		return cookiekit.SameSiteNone
	default:
		return cookiekit.SameSiteUnspecified
	}
}

func toNetworkSameSite(s cookiekit.SameSite) proto.NetworkCookieSameSite {
	switch s {
	case cookiekit.SameSiteStrict:
		return proto.NetworkCookieSameSiteStrict
	case cookiekit.SameSiteLax:
		return proto.NetworkCookieSameSiteLax
	case cookiekit.SameSiteNone:
		return proto.NetworkCookieSameSiteNone
	default:
		return ""
	}
}

var _ cookiekit.Host = (*CDPHost)(nil)
