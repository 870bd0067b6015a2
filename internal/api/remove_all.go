package api

import (
	"context"
	"encoding/json"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/internal/server"
)

// RemoveAll deletes the listed cookies one by one. Removals are independent:
// a failing cookie is counted and skipped, never aborting the rest of the
// batch. Success reports whether the batch was clean.
func (s *Api) RemoveAll(ctx context.Context, p *common.RemoveAllParams) *common.RemoveAllResult {
	res := &common.RemoveAllResult{}
	for _, c := range p.Cookies {
		if err := s.host.RemoveCookie(ctx, c.EffectiveURL(), c.Name, c.StoreId); err != nil {
			s.log.Warning("remove-all: %s on %s failed: %v", c.Name, c.Domain, err)
			res.Failed++
			continue
		}
		res.Removed++
	}
	res.Success = res.Failed == 0
	return res
}

func (s *Api) removeAllHandler(sconn *server.SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.RemoveAllParams
	if err := json.Unmarshal(body, &p); err != nil {
		return common.UPDATE_REMOVE_ALL_RESULT, nil, err
	}
	return common.UPDATE_REMOVE_ALL_RESULT, s.RemoveAll(context.Background(), &p), nil
}
