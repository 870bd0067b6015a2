package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	cws "github.com/coder/websocket"
	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/handler"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/internal/session"
	"github.com/cookpit/cookpit/pkg/logger"
)

// RPCBackend is the operation surface the dashboard methods delegate to. The
// api package implements it.
type RPCBackend interface {
	OpenSession(ctx context.Context, sink session.Sink, p *common.GetCookiesParams) (*common.CookiesResponse, error)
	SetCookie(ctx context.Context, p *common.SetCookieParams) *common.SetCookieResult
	RemoveCookie(ctx context.Context, p *common.RemoveCookieParams) *common.RemoveCookieResult
	RemoveAll(ctx context.Context, p *common.RemoveAllParams) *common.RemoveAllResult
}

// WSConfig holds configuration for the WebSocket dashboard endpoint.
type WSConfig struct {
	Secret string // bearer token; empty disables the endpoint
	Port   int
}

// WebServer serves the browser dashboard: a WebSocket endpoint speaking
// JSON-RPC 2.0, with cookie changes delivered as server pushes. Each accepted
// connection gets its own jrpc2 server whose lifetime bounds the session.
type WebServer struct {
	log      logger.Logger
	backend  RPCBackend
	registry *session.Registry
	notifier *Notifier
	secret   string
	port     int
	server   *http.Server
	mu       sync.Mutex
}

// NewWebServer creates the dashboard server.
func NewWebServer(l logger.Logger, backend RPCBackend, registry *session.Registry, cfg *WSConfig) *WebServer {
	return &WebServer{
		log:      l,
		backend:  backend,
		registry: registry,
		notifier: NewNotifier(l),
		secret:   cfg.Secret,
		port:     cfg.Port,
	}
}

func (s *WebServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", requireToken(s.secret, http.HandlerFunc(s.handleWS)))
	return mux
}

func (s *WebServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := cws.Accept(w, r, nil)
	if err != nil {
		s.log.Warning("websocket accept: %v", err)
		return
	}

	ctx := r.Context()
	ch := &wsChannel{conn: conn, ctx: ctx}
	srv := jrpc2.NewServer(s.methods(), &jrpc2.ServerOptions{AllowPush: true})
	srv.Start(ch)
	s.notifier.Register(srv)

	_ = srv.Wait()
	s.registry.Detach(s.notifier.SinkFor(srv))
	s.notifier.Unregister(srv)
}

func (s *WebServer) methods() handler.Map {
	return handler.Map{
		string(common.UPDATE_GET_COOKIES): handler.New(s.getCookies),
		string(common.UPDATE_SET_COOKIE): handler.New(func(ctx context.Context, p *common.SetCookieParams) (*common.SetCookieResult, error) {
			return s.backend.SetCookie(ctx, p), nil
		}),
		string(common.UPDATE_REMOVE_COOKIE): handler.New(func(ctx context.Context, p *common.RemoveCookieParams) (*common.RemoveCookieResult, error) {
			return s.backend.RemoveCookie(ctx, p), nil
		}),
		string(common.UPDATE_REMOVE_ALL): handler.New(func(ctx context.Context, p *common.RemoveAllParams) (*common.RemoveAllResult, error) {
			return s.backend.RemoveAll(ctx, p), nil
		}),
	}
}

// getCookies opens the inspection session for the calling connection: the
// connection's push channel becomes the session sink.
func (s *WebServer) getCookies(ctx context.Context, p *common.GetCookiesParams) (*common.CookiesResponse, error) {
	srv := jrpc2.ServerFromContext(ctx)
	sink := s.notifier.SinkFor(srv)
	if sink == nil {
		return nil, fmt.Errorf("no push channel for connection")
	}
	return s.backend.OpenSession(ctx, sink, p)
}

func (s *WebServer) addr() string {
	return fmt.Sprintf("%s:%d", common.TCPHost, s.port)
}

// Start serves the endpoint and blocks until shutdown. With no secret
// configured the dashboard stays disabled.
func (s *WebServer) Start() error {
	if s.secret == "" {
		s.log.Info("dashboard endpoint disabled (no secret configured)")
		return nil
	}

	s.mu.Lock()
	s.server = &http.Server{
		Addr:    s.addr(),
		Handler: s.handler(),
	}
	s.mu.Unlock()

	s.log.Info("dashboard listening on ws://%s/ws", s.addr())
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the dashboard server.
func (s *WebServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// wsChannel adapts a coder/websocket.Conn to the jrpc2 Channel interface.
type wsChannel struct {
	conn *cws.Conn
	ctx  context.Context
}

// Send writes a JSON-RPC message to the WebSocket connection.
func (c *wsChannel) Send(data []byte) error {
	return c.conn.Write(c.ctx, cws.MessageText, data)
}

// Recv reads a JSON-RPC message from the WebSocket connection.
func (c *wsChannel) Recv() ([]byte, error) {
	_, data, err := c.conn.Read(c.ctx)
	return data, err
}

// Close shuts down the WebSocket connection with a normal closure status.
func (c *wsChannel) Close() error {
	return c.conn.Close(cws.StatusNormalClosure, "")
}

var _ channel.Channel = (*wsChannel)(nil)
