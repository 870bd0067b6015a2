// Package api implements the daemon's request handlers: opening inspection
// sessions, collecting cookies and applying mutations through the browser
// host.
package api

import (
	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/internal/server"
	"github.com/cookpit/cookpit/internal/session"
	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/logger"
)

type Api struct {
	log       logger.Logger
	host      cookiekit.Host
	registry  *session.Registry
	collector *cookiekit.Collector
	scans     *ScanStore
}

func NewApi(l logger.Logger, host cookiekit.Host, registry *session.Registry, collector *cookiekit.Collector) (*Api, error) {
	return &Api{
		log:       l,
		host:      host,
		registry:  registry,
		collector: collector,
		scans:     NewScanStore(),
	}, nil
}

func (s *Api) RegisterHandlers(server *server.Server) {
	server.RegisterHandler(common.UPDATE_GET_COOKIES, s.getCookiesHandler)
	server.RegisterHandler(common.UPDATE_SET_COOKIE, s.setCookieHandler)
	server.RegisterHandler(common.UPDATE_REMOVE_COOKIE, s.removeCookieHandler)
	server.RegisterHandler(common.UPDATE_REMOVE_ALL, s.removeAllHandler)
}

// Close discards the captured scans. Sessions are detached by their
// transports when connections drop.
func (s *Api) Close() error {
	s.scans.Clear()
	return nil
}

var _ server.RPCBackend = (*Api)(nil)
