package server

import (
	"net"
	"sync"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/internal/session"
)

// SyncConn serializes frame reads and writes on a connection with separate
// per-direction locks, so a handler response and a relayed push never
// interleave on the wire.
type SyncConn struct {
	Conn     net.Conn
	rmu, wmu sync.Mutex
}

func NewSyncConn(conn net.Conn) *SyncConn {
	return &SyncConn{
		Conn: conn,
	}
}

func (s *SyncConn) Write(b []byte) error {
	return write(&s.wmu, s.Conn, b)
}

func (s *SyncConn) Read() ([]byte, error) {
	return read(&s.rmu, s.Conn)
}

// PushChange sends a relayed cookie change to the client as an unsolicited
// frame. It makes SyncConn a session sink.
func (s *SyncConn) PushChange(u *common.CookieChangedUpdate) error {
	return s.Write(MakePush(common.UPDATE_COOKIE_CHANGED, u))
}

var _ session.Sink = (*SyncConn)(nil)
