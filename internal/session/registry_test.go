package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/logger"
)

type recordSink struct {
	updates []*common.CookieChangedUpdate
	err     error
}

func (s *recordSink) PushChange(u *common.CookieChangedUpdate) error {
	if s.err != nil {
		return s.err
	}
	s.updates = append(s.updates, u)
	return nil
}

func change(domain string) cookiekit.ChangeInfo {
	return cookiekit.ChangeInfo{
		Cookie: cookiekit.RawCookie{Name: "sid", Domain: domain, Path: "/", Session: true},
		Cause:  cookiekit.CauseExplicit,
		Time:   time.Now(),
	}
}

func TestRegistryRelayScoping(t *testing.T) {
	r := NewRegistry(logger.NewNopLogger())
	shop := &recordSink{}
	news := &recordSink{}
	r.Attach(shop, &Session{SourceHost: "shop.example.com", Domains: cookiekit.NewDomainSet("shop.example.com")})
	r.Attach(news, &Session{SourceHost: "news.site.org", Domains: cookiekit.NewDomainSet("news.site.org")})

	r.Relay(change(".example.com"))

	if len(shop.updates) != 1 {
		t.Fatalf("expected shop session to receive the change, got %d", len(shop.updates))
	}
	if len(news.updates) != 0 {
		t.Fatalf("unrelated session must not receive the change, got %d", len(news.updates))
	}
}

func TestRegistryRelayPerSessionParty(t *testing.T) {
	r := NewRegistry(logger.NewNopLogger())
	owner := &recordSink{}
	embedder := &recordSink{}
	r.Attach(owner, &Session{SourceHost: "example.com", Domains: cookiekit.NewDomainSet("example.com")})
	r.Attach(embedder, &Session{SourceHost: "other.net", Domains: cookiekit.NewDomainSet("other.net", "example.com")})

	r.Relay(change(".example.com"))

	if len(owner.updates) != 1 || !owner.updates[0].Cookie.FirstParty {
		t.Fatalf("owner session must classify the cookie first-party")
	}
	if len(embedder.updates) != 1 || embedder.updates[0].Cookie.FirstParty {
		t.Fatalf("embedder session must classify the same cookie third-party")
	}
}

func TestRegistryDetachesFailedSink(t *testing.T) {
	r := NewRegistry(logger.NewNopLogger())
	dead := &recordSink{err: errors.New("broken pipe")}
	live := &recordSink{}
	r.Attach(dead, &Session{SourceHost: "a.com", Domains: cookiekit.NewDomainSet("a.com")})
	r.Attach(live, &Session{SourceHost: "a.com", Domains: cookiekit.NewDomainSet("a.com")})

	r.Relay(change("a.com"))

	if r.Count() != 1 {
		t.Fatalf("failed sink must be detached, registry has %d sessions", r.Count())
	}
	if len(live.updates) != 1 {
		t.Fatalf("healthy sink must still receive the change")
	}
}

func TestRegistryReattachReplacesScope(t *testing.T) {
	r := NewRegistry(logger.NewNopLogger())
	sink := &recordSink{}
	r.Attach(sink, &Session{SourceHost: "a.com", Domains: cookiekit.NewDomainSet("a.com")})
	r.Attach(sink, &Session{SourceHost: "b.com", Domains: cookiekit.NewDomainSet("b.com")})

	if r.Count() != 1 {
		t.Fatalf("re-attach must replace, not add; got %d", r.Count())
	}
	r.Relay(change("a.com"))
	if len(sink.updates) != 0 {
		t.Fatalf("old scope must be gone after re-attach")
	}
	r.Relay(change("b.com"))
	if len(sink.updates) != 1 {
		t.Fatalf("new scope must be active after re-attach")
	}
}

type stubWatcher struct {
	ch chan cookiekit.ChangeInfo
}

func (w *stubWatcher) Changes() <-chan cookiekit.ChangeInfo { return w.ch }
func (w *stubWatcher) Close() error                         { close(w.ch); return nil }

func TestRegistryRunConsumesStream(t *testing.T) {
	r := NewRegistry(logger.NewNopLogger())
	sink := &recordSink{}
	r.Attach(sink, &Session{SourceHost: "a.com", Domains: cookiekit.NewDomainSet("a.com")})

	w := &stubWatcher{ch: make(chan cookiekit.ChangeInfo, 2)}
	w.ch <- change("a.com")
	w.ch <- change("a.com")
	w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	r.Run(ctx, w)

	if len(sink.updates) != 2 {
		t.Fatalf("expected 2 relayed changes, got %d", len(sink.updates))
	}
}
