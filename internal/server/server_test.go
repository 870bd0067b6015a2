package server

import (
	"encoding/json"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/internal/session"
	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/logger"
)

func newTestServer() (*Server, *session.Registry) {
	registry := session.NewRegistry(logger.NewNopLogger())
	return NewServer(logger.NewNopLogger(), registry, nil, 0), registry
}

// clientConn drives the framed protocol from the client side of a net.Pipe.
type clientConn struct {
	conn net.Conn
	rmu  sync.Mutex
	wmu  sync.Mutex
}

func (c *clientConn) call(t *testing.T, id int64, method common.UpdateType, msg any) {
	t.Helper()
	body, _ := json.Marshal(msg)
	req, _ := json.Marshal(Request{Id: id, Method: method, Message: body})
	if err := write(&c.wmu, c.conn, req); err != nil {
		t.Fatalf("client write: %v", err)
	}
}

func (c *clientConn) recv(t *testing.T) *Response {
	t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	b, err := read(&c.rmu, c.conn)
	if err != nil {
		t.Fatalf("client read: %v", err)
	}
	var r Response
	if err := json.Unmarshal(b, &r); err != nil {
		t.Fatalf("client unmarshal: %v", err)
	}
	return &r
}

func TestServerDispatchesHandler(t *testing.T) {
	s, _ := newTestServer()
	s.RegisterHandler(common.UPDATE_SET_COOKIE, func(conn *SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
		var p common.SetCookieParams
		if err := json.Unmarshal(body, &p); err != nil {
			return "", nil, err
		}
		return common.UPDATE_SET_COOKIE_RESULT, &common.SetCookieResult{Success: true}, nil
	})

	client, srv := net.Pipe()
	defer client.Close()
	go s.handleConnection(srv)

	c := &clientConn{conn: client}
	c.call(t, 5, common.UPDATE_SET_COOKIE, &common.SetCookieParams{Value: "x"})

	resp := c.recv(t)
	if resp.Id != 5 || !resp.Ok {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Update == nil || resp.Update.Type != common.UPDATE_SET_COOKIE_RESULT {
		t.Fatalf("unexpected update: %+v", resp.Update)
	}
}

func TestServerUnknownMethod(t *testing.T) {
	s, _ := newTestServer()

	client, srv := net.Pipe()
	defer client.Close()
	go s.handleConnection(srv)

	c := &clientConn{conn: client}
	c.call(t, 9, "bogus", nil)

	resp := c.recv(t)
	if resp.Ok || resp.Id != 9 {
		t.Fatalf("expected an error response echoing the id, got %+v", resp)
	}
}

func TestServerHandlerErrorBecomesResponse(t *testing.T) {
	s, _ := newTestServer()
	s.RegisterHandler(common.UPDATE_GET_COOKIES, func(conn *SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
		return "", nil, errors.New("browser unreachable")
	})

	client, srv := net.Pipe()
	defer client.Close()
	go s.handleConnection(srv)

	c := &clientConn{conn: client}
	c.call(t, 2, common.UPDATE_GET_COOKIES, &common.GetCookiesParams{Url: "https://a.com/"})

	resp := c.recv(t)
	if resp.Ok || resp.Error != "browser unreachable" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestServerDetachesSessionOnDisconnect(t *testing.T) {
	s, registry := newTestServer()
	attached := make(chan *SyncConn, 1)
	s.RegisterHandler(common.UPDATE_GET_COOKIES, func(conn *SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
		registry.Attach(conn, &session.Session{
			SourceHost: "a.com",
			Domains:    cookiekit.NewDomainSet("a.com"),
		})
		attached <- conn
		return common.UPDATE_COOKIES, &common.CookiesResponse{}, nil
	})

	client, srv := net.Pipe()
	done := make(chan struct{})
	go func() {
		s.handleConnection(srv)
		close(done)
	}()

	c := &clientConn{conn: client}
	c.call(t, 1, common.UPDATE_GET_COOKIES, &common.GetCookiesParams{Url: "https://a.com/"})
	c.recv(t)
	<-attached

	if registry.Count() != 1 {
		t.Fatalf("expected 1 attached session, got %d", registry.Count())
	}

	client.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("connection handler did not exit")
	}
	if registry.Count() != 0 {
		t.Fatalf("session must be detached on disconnect, got %d", registry.Count())
	}
}

func TestSyncConnPushChange(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	defer srv.Close()

	sconn := NewSyncConn(srv)
	update := &common.CookieChangedUpdate{
		Cookie: cookiekit.Cookie{Name: "sid", Domain: "a.com", Path: "/", Session: true},
		Cause:  cookiekit.CauseExplicit,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- sconn.PushChange(update)
	}()

	c := &clientConn{conn: client}
	resp := c.recv(t)
	if resp.Id != 0 {
		t.Fatalf("push must carry id zero, got %d", resp.Id)
	}
	if resp.Update == nil || resp.Update.Type != common.UPDATE_COOKIE_CHANGED {
		t.Fatalf("unexpected push: %+v", resp.Update)
	}
	if err := <-errc; err != nil {
		t.Fatalf("push failed: %v", err)
	}
}
