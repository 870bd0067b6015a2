// Package session tracks attached inspection sessions and relays browser
// cookie changes to them, scoped and classified per session.
package session

import (
	"context"
	"sync"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/logger"
)

// Sink receives the scoped change events of one attached session. A sink that
// returns an error is considered gone and is detached.
type Sink interface {
	PushChange(u *common.CookieChangedUpdate) error
}

// Session is the relevance scope of one attached client: the host of the page
// it inspects and the domains that page loaded. Both are fixed at attach time.
type Session struct {
	SourceHost string
	Domains    cookiekit.DomainSet
}

// Registry is the coordinator between the browser's change stream and the
// attached sessions. Every change event is evaluated once per session:
// relevance against the session's domain set, party against its source host.
type Registry struct {
	mu  sync.RWMutex
	m   map[Sink]*Session
	log logger.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(l logger.Logger) *Registry {
	return &Registry{
		m:   make(map[Sink]*Session),
		log: l,
	}
}

// Attach registers a sink with its session scope. Re-attaching an existing
// sink replaces its scope, which is how a client switches to another page.
func (r *Registry) Attach(sink Sink, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[sink] = s
}

// Detach removes a sink. Safe to call for sinks that were never attached.
func (r *Registry) Detach(sink Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, sink)
}

// Count returns the number of attached sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Relay fans one change event out to every session it is relevant for. Sinks
// that fail to receive (e.g. disconnected) are detached.
func (r *Registry) Relay(ci cookiekit.ChangeInfo) {
	r.mu.RLock()
	sinks := make([]Sink, 0, len(r.m))
	sessions := make([]*Session, 0, len(r.m))
	for sink, s := range r.m {
		sinks = append(sinks, sink)
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	var failed []Sink
	for i, sink := range sinks {
		s := sessions[i]
		if !cookiekit.IsDomainRelevant(ci.Cookie.Domain, s.Domains) {
			continue
		}
		u := &common.CookieChangedUpdate{
			Removed:   ci.Removed,
			Cookie:    cookiekit.Normalize(ci.Cookie, cookiekit.IsFirstParty(ci.Cookie.Domain, s.SourceHost)),
			Cause:     ci.Cause,
			Timestamp: ci.Time.UnixMilli(),
		}
		if err := sink.PushChange(u); err != nil {
			r.log.Warning("session push failed, detaching: %v", err)
			failed = append(failed, sink)
		}
	}

	if len(failed) > 0 {
		r.mu.Lock()
		for _, sink := range failed {
			delete(r.m, sink)
		}
		r.mu.Unlock()
	}
}

// Run consumes the watcher's change stream until the context is canceled or
// the stream closes.
func (r *Registry) Run(ctx context.Context, w cookiekit.Watcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case ci, ok := <-w.Changes():
			if !ok {
				return
			}
			r.Relay(ci)
		}
	}
}
