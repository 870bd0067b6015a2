// Package server hosts the daemon's client-facing transports: the framed
// unix-socket channel the CLI talks to and the WebSocket dashboard endpoint.
package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/internal/session"
	"github.com/cookpit/cookpit/pkg/logger"
)

// Server accepts client connections on a unix socket (named pipe on Windows,
// TCP as a fallback) and dispatches framed requests to registered handlers.
// Each connection is a potential inspection session; on disconnect it is
// detached from the registry so relayed pushes stop immediately.
type Server struct {
	log      logger.Logger
	registry *session.Registry
	ws       *WebServer
	handler  map[common.UpdateType]HandlerFunc
	port     int
	listener net.Listener
	mu       sync.Mutex
}

// NewServer creates a server over the given session registry. The WebSocket
// dashboard server is optional.
func NewServer(l logger.Logger, registry *session.Registry, ws *WebServer, port int) *Server {
	return &Server{
		log:      l,
		registry: registry,
		ws:       ws,
		handler:  make(map[common.UpdateType]HandlerFunc),
		port:     port,
	}
}

// RegisterHandler associates a handler with a request method. Registration
// happens before Start; the map is read-only afterwards.
func (s *Server) RegisterHandler(method common.UpdateType, handler HandlerFunc) {
	s.handler[method] = handler
}

// Start begins listening and blocks until the context is canceled. Each
// accepted connection is served by its own goroutine.
func (s *Server) Start(ctx context.Context) error {
	if s.ws != nil {
		go func() {
			if err := s.ws.Start(); err != nil {
				s.log.Error("web server: %v", err)
			}
		}()
	}

	l, err := s.createListener()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = s.Shutdown()
	}()

	for {
		conn, err := l.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			s.log.Error("accept: %v", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

// Shutdown closes the listener, the dashboard server and the socket file.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			s.log.Error("closing listener: %v", err)
		}
		s.listener = nil
	}

	if s.ws != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.ws.Shutdown(shutdownCtx); err != nil {
			s.log.Error("shutting down web server: %v", err)
		}
	}

	if err := cleanupSocket(); err != nil && !os.IsNotExist(err) {
		s.log.Error("removing socket file: %v", err)
	}
	return nil
}

func (s *Server) handleConnection(conn net.Conn) {
	sconn := NewSyncConn(conn)
	defer func() {
		s.registry.Detach(sconn)
		_ = conn.Close()
	}()
	for {
		buf, err := sconn.Read()
		if err != nil {
			if err != io.EOF {
				s.log.Error("reading frame: %v", err)
			}
			return
		}
		if err := s.handlerWrapper(sconn, buf); err != nil {
			s.log.Error("handling request: %v", err)
			return
		}
	}
}

func (s *Server) handlerWrapper(sconn *SyncConn, b []byte) error {
	req, err := ParseRequest(b)
	if err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}
	rHandler, ok := s.handler[req.Method]
	if !ok {
		if err := sconn.Write(CreateError(req.Id, "unknown method: "+string(req.Method))); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
		return nil
	}
	utype, msg, err := rHandler(sconn, req.Message)
	if err != nil {
		if err := sconn.Write(InitError(req.Id, err)); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
		return nil
	}
	if err := sconn.Write(MakeResult(req.Id, utype, msg)); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
