package server

import (
	"context"
	"sync"

	"github.com/creachadair/jrpc2"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/internal/session"
	"github.com/cookpit/cookpit/pkg/logger"
)

// Notifier tracks the connected dashboard servers and hands out the push sink
// of each, so relayed cookie changes reach the right connection.
type Notifier struct {
	mu    sync.RWMutex
	sinks map[*jrpc2.Server]*wsSink
	log   logger.Logger
}

// NewNotifier creates an empty notifier.
func NewNotifier(l logger.Logger) *Notifier {
	return &Notifier{
		sinks: make(map[*jrpc2.Server]*wsSink),
		log:   l,
	}
}

// Register adds a connection's server and creates its sink.
func (n *Notifier) Register(srv *jrpc2.Server) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sinks[srv] = &wsSink{srv: srv}
}

// Unregister removes a connection's server.
func (n *Notifier) Unregister(srv *jrpc2.Server) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.sinks, srv)
}

// SinkFor returns the push sink of a connection, or nil if it is gone.
func (n *Notifier) SinkFor(srv *jrpc2.Server) session.Sink {
	n.mu.RLock()
	defer n.mu.RUnlock()
	sink, ok := n.sinks[srv]
	if !ok {
		return nil
	}
	return sink
}

// Count returns the number of connected dashboards.
func (n *Notifier) Count() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.sinks)
}

// wsSink delivers relayed cookie changes to one dashboard connection as
// JSON-RPC server pushes.
type wsSink struct {
	srv *jrpc2.Server
}

func (s *wsSink) PushChange(u *common.CookieChangedUpdate) error {
	return s.srv.Notify(context.Background(), string(common.UPDATE_COOKIE_CHANGED), u)
}

var _ session.Sink = (*wsSink)(nil)
