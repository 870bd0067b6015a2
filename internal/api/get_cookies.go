package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/internal/server"
	"github.com/cookpit/cookpit/internal/session"
	"github.com/cookpit/cookpit/pkg/cookiekit"
)

// OpenSession starts an inspection session for the given sink: it resolves
// the page scope (captured scan or bare URL), attaches the sink to the
// registry, and collects the page's current cookie set.
//
// When the URL cannot be parsed the session still opens with an empty source
// host, so every cookie classifies third-party rather than failing the whole
// request.
func (s *Api) OpenSession(ctx context.Context, sink session.Sink, p *common.GetCookiesParams) (*common.CookiesResponse, error) {
	sourceURL := p.Url
	var domains []string
	var screenshot []byte

	if p.TargetId != "" {
		scan, ok := s.scans.Get(p.TargetId)
		if !ok && s.host != nil {
			fresh, err := s.host.ScanTarget(ctx, p.TargetId)
			if err != nil {
				s.log.Warning("scan of target %s failed: %v", p.TargetId, err)
			} else {
				s.scans.Put(p.TargetId, fresh)
				scan, ok = fresh, true
			}
		}
		if ok {
			sourceURL = scan.URL
			domains = scan.Domains
			screenshot = scan.Screenshot
		}
	}

	if sourceURL == "" {
		return nil, errors.New("url or target_id is required")
	}

	sourceHost := hostOf(sourceURL)
	relevant := cookiekit.NewDomainSet(append(domains, sourceHost)...)

	s.registry.Attach(sink, &session.Session{
		SourceHost: sourceHost,
		Domains:    relevant,
	})

	cookies := s.collector.Collect(ctx, sourceURL, sourceHost, relevant)
	s.log.Info("session opened for %s: %d cookies over %d domains", sourceURL, len(cookies), len(relevant))

	return &common.CookiesResponse{
		Cookies:    cookies,
		Screenshot: screenshot,
	}, nil
}

func (s *Api) getCookiesHandler(sconn *server.SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.GetCookiesParams
	if err := json.Unmarshal(body, &p); err != nil {
		return common.UPDATE_COOKIES, nil, err
	}
	resp, err := s.OpenSession(context.Background(), sconn, &p)
	if err != nil {
		return common.UPDATE_COOKIES, nil, err
	}
	return common.UPDATE_COOKIES, resp, nil
}

// hostOf extracts the lowercased hostname of a URL; malformed input yields
// the empty string.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
