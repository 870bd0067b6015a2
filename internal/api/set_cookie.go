package api

import (
	"context"
	"encoding/json"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/internal/server"
)

// SetCookie writes a cookie through the browser host. A host failure is a
// result, not a transport error: the session stays usable and the verdict
// travels in the payload.
func (s *Api) SetCookie(ctx context.Context, p *common.SetCookieParams) *common.SetCookieResult {
	if err := s.host.SetCookie(ctx, p.Cookie.EffectiveURL(), p.Cookie, p.Value); err != nil {
		s.log.Warning("set-cookie %s on %s failed: %v", p.Cookie.Name, p.Cookie.Domain, err)
		return &common.SetCookieResult{Error: err.Error()}
	}
	return &common.SetCookieResult{Success: true}
}

func (s *Api) setCookieHandler(sconn *server.SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.SetCookieParams
	if err := json.Unmarshal(body, &p); err != nil {
		return common.UPDATE_SET_COOKIE_RESULT, nil, err
	}
	return common.UPDATE_SET_COOKIE_RESULT, s.SetCookie(context.Background(), &p), nil
}
