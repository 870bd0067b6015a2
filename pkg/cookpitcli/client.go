// Package cookpitcli is the client library for the cookpit daemon. It speaks
// the length-prefixed JSON protocol over the daemon socket, correlates
// concurrent calls by request id, and dispatches unsolicited pushes to
// registered handlers.
package cookpitcli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cookpit/cookpit/common"
)

// ErrTimeout is returned when the daemon does not answer a call within its
// deadline. The call is abandoned; the daemon is never asked to retry.
var ErrTimeout = errors.New("request timed out")

// Client is a connection to the cookpit daemon. It is safe for concurrent
// use: each call carries its own id and blocks only its own caller.
type Client struct {
	conn net.Conn
	d    *Dispatcher

	wmu sync.Mutex

	pmu     sync.Mutex
	pending map[int64]chan *Response
	nextID  atomic.Int64

	done    chan struct{}
	errOnce sync.Once
	err     error
}

// NewClient connects to the daemon and starts the read loop.
func NewClient() (*Client, error) {
	conn, err := dial()
	if err != nil {
		return nil, err
	}
	return newClient(conn), nil
}

func newClient(conn net.Conn) *Client {
	c := &Client{
		conn:    conn,
		d:       &Dispatcher{Handlers: make(map[common.UpdateType]Handler)},
		pending: make(map[int64]chan *Response),
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c
}

// OnCookieChanged registers the handler invoked for every cookie change the
// daemon pushes to this session. It must be called before the session is
// opened with GetCookies.
func (c *Client) OnCookieChanged(callback func(*common.CookieChangedUpdate) error) {
	c.d.Handlers[common.UPDATE_COOKIE_CHANGED] = NewCookieChangedHandler(callback)
}

// Wait blocks until the connection ends and returns the terminal error, if
// any. A clean Close returns nil.
func (c *Client) Wait() error {
	<-c.done
	if errors.Is(c.err, net.ErrClosed) {
		return nil
	}
	return c.err
}

// Close tears down the connection. Pending calls fail immediately.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) readLoop() {
	for {
		buf, err := read(c.conn)
		if err != nil {
			c.fail(err)
			return
		}
		var res Response
		if err := json.Unmarshal(buf, &res); err != nil {
			c.fail(fmt.Errorf("failed to parse (%s): '%s'", err.Error(), string(buf)))
			return
		}
		if res.Id != 0 {
			c.deliver(&res)
			continue
		}
		if err := c.d.process(&res); err != nil {
			if errors.Is(err, ErrDisconnect) {
				err = nil
			}
			c.fail(err)
			return
		}
	}
}

func (c *Client) fail(err error) {
	c.errOnce.Do(func() {
		c.err = err
		_ = c.conn.Close()

		c.pmu.Lock()
		for id, ch := range c.pending {
			delete(c.pending, id)
			close(ch)
		}
		c.pmu.Unlock()

		close(c.done)
	})
}

func (c *Client) deliver(res *Response) {
	c.pmu.Lock()
	ch, ok := c.pending[res.Id]
	if ok {
		delete(c.pending, res.Id)
	}
	c.pmu.Unlock()
	if ok {
		ch <- res
	}
}

// invoke sends one request and waits for its reply, at most for timeout.
func (c *Client) invoke(method common.UpdateType, message any, timeout time.Duration) (json.RawMessage, error) {
	id := c.nextID.Add(1)
	ch := make(chan *Response, 1)

	c.pmu.Lock()
	c.pending[id] = ch
	c.pmu.Unlock()

	if err := c.send(&Request{Id: id, Method: method, Message: message}); err != nil {
		c.forget(id)
		return nil, err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res, ok := <-ch:
		if !ok {
			if c.err != nil {
				return nil, c.err
			}
			return nil, net.ErrClosed
		}
		if !res.Ok {
			return nil, errors.New(res.Error)
		}
		if res.Update == nil {
			return nil, nil
		}
		return res.Update.Message, nil
	case <-timer.C:
		c.forget(id)
		return nil, fmt.Errorf("%s: %w after %s", method, ErrTimeout, timeout)
	}
}

func (c *Client) send(req *Request) error {
	b, err := json.Marshal(req)
	if err != nil {
		return err
	}
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return write(c.conn, b)
}

func (c *Client) forget(id int64) {
	c.pmu.Lock()
	delete(c.pending, id)
	c.pmu.Unlock()
}
