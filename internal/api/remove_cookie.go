package api

import (
	"context"
	"encoding/json"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/internal/server"
)

// RemoveCookie deletes a single cookie through the browser host.
func (s *Api) RemoveCookie(ctx context.Context, p *common.RemoveCookieParams) *common.RemoveCookieResult {
	c := p.Cookie
	if err := s.host.RemoveCookie(ctx, c.EffectiveURL(), c.Name, c.StoreId); err != nil {
		s.log.Warning("remove-cookie %s on %s failed: %v", c.Name, c.Domain, err)
		return &common.RemoveCookieResult{Error: err.Error()}
	}
	return &common.RemoveCookieResult{Success: true}
}

func (s *Api) removeCookieHandler(sconn *server.SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.RemoveCookieParams
	if err := json.Unmarshal(body, &p); err != nil {
		return common.UPDATE_REMOVE_RESULT, nil, err
	}
	return common.UPDATE_REMOVE_RESULT, s.RemoveCookie(context.Background(), &p), nil
}
