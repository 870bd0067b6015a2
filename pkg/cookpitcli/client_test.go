package cookpitcli

import (
	"encoding/json"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/pkg/cookiekit"
)

// testDaemon is the far end of a net.Pipe pretending to be the daemon.
type testDaemon struct {
	conn net.Conn
}

func newTestPair(t *testing.T) (*Client, *testDaemon) {
	t.Helper()
	client, server := net.Pipe()
	c := newClient(client)
	t.Cleanup(func() { _ = c.Close(); _ = server.Close() })
	return c, &testDaemon{conn: server}
}

func (d *testDaemon) readRequest(t *testing.T) *Request {
	t.Helper()
	buf, err := read(d.conn)
	if err != nil {
		t.Fatalf("daemon read: %v", err)
	}
	var req Request
	if err := json.Unmarshal(buf, &req); err != nil {
		t.Fatalf("daemon parse: %v", err)
	}
	return &req
}

func (d *testDaemon) send(t *testing.T, res *Response) {
	t.Helper()
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("daemon marshal: %v", err)
	}
	if err := write(d.conn, b); err != nil {
		t.Fatalf("daemon write: %v", err)
	}
}

func result(id int64, utype common.UpdateType, v any) *Response {
	b, _ := json.Marshal(v)
	return &Response{Id: id, Ok: true, Update: &Update{Type: utype, Message: b}}
}

func TestInvokeCorrelatesOutOfOrderResponses(t *testing.T) {
	c, d := newTestPair(t)

	go func() {
		first := d.readRequest(t)
		second := d.readRequest(t)
		// Answer in reverse arrival order.
		d.send(t, result(second.Id, common.UPDATE_SET_COOKIE_RESULT, &common.SetCookieResult{Success: true}))
		d.send(t, result(first.Id, common.UPDATE_SET_COOKIE_RESULT, &common.SetCookieResult{Success: false, Error: "first"}))
	}()

	type outcome struct {
		res *common.SetCookieResult
		err error
	}
	results := make([]outcome, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		res, err := c.SetCookie(cookiekit.CookieParam{Name: "a", Domain: "x.com"}, "1")
		results[0] = outcome{res, err}
	}()
	// The pipe is synchronous, so order the two sends.
	time.Sleep(20 * time.Millisecond)
	go func() {
		defer wg.Done()
		res, err := c.SetCookie(cookiekit.CookieParam{Name: "b", Domain: "x.com"}, "2")
		results[1] = outcome{res, err}
	}()
	wg.Wait()

	if results[0].err != nil || results[1].err != nil {
		t.Fatalf("unexpected errors: %v, %v", results[0].err, results[1].err)
	}
	if results[0].res.Success || results[0].res.Error != "first" {
		t.Fatalf("first call got the wrong response: %+v", results[0].res)
	}
	if !results[1].res.Success {
		t.Fatalf("second call got the wrong response: %+v", results[1].res)
	}
}

func TestInvokeTimeout(t *testing.T) {
	c, d := newTestPair(t)
	go d.readRequest(t) // swallow the request, never answer

	_, err := c.invoke(common.UPDATE_SET_COOKIE, nil, 50*time.Millisecond)
	if err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("expected a timeout error, got %v", err)
	}

	c.pmu.Lock()
	n := len(c.pending)
	c.pmu.Unlock()
	if n != 0 {
		t.Fatalf("timed-out call must be forgotten, %d still pending", n)
	}
}

func TestPushDeliveredDuringPendingInvoke(t *testing.T) {
	c, d := newTestPair(t)

	got := make(chan *common.CookieChangedUpdate, 1)
	c.OnCookieChanged(func(u *common.CookieChangedUpdate) error {
		got <- u
		return nil
	})

	go func() {
		req := d.readRequest(t)
		d.send(t, result(0, common.UPDATE_COOKIE_CHANGED, &common.CookieChangedUpdate{
			Removed: true,
			Cookie:  cookiekit.Cookie{Name: "sid"},
		}))
		d.send(t, result(req.Id, common.UPDATE_COOKIES, &common.CookiesResponse{}))
	}()

	if _, err := c.GetCookies("https://a.com/", nil); err != nil {
		t.Fatalf("GetCookies: %v", err)
	}

	select {
	case u := <-got:
		if !u.Removed || u.Cookie.Name != "sid" {
			t.Fatalf("unexpected push: %+v", u)
		}
	case <-time.After(time.Second):
		t.Fatal("push was not dispatched")
	}
}

func TestInvokeErrorResponse(t *testing.T) {
	c, d := newTestPair(t)

	go func() {
		req := d.readRequest(t)
		d.send(t, &Response{Id: req.Id, Ok: false, Error: "no such target"})
	}()

	_, err := c.GetCookies("", &GetCookiesOpts{TargetId: "tab-404"})
	if err == nil || err.Error() != "no such target" {
		t.Fatalf("expected the daemon error, got %v", err)
	}
}

func TestDisconnectFailsPendingCalls(t *testing.T) {
	c, d := newTestPair(t)

	go func() {
		d.readRequest(t)
		_ = d.conn.Close()
	}()

	if _, err := c.invoke(common.UPDATE_GET_COOKIES, nil, time.Second); err == nil {
		t.Fatal("expected an error after disconnect")
	}
}

func TestHandlerDisconnectEndsWaitCleanly(t *testing.T) {
	c, d := newTestPair(t)

	c.OnCookieChanged(func(*common.CookieChangedUpdate) error {
		return ErrDisconnect
	})

	go d.send(t, result(0, common.UPDATE_COOKIE_CHANGED, &common.CookieChangedUpdate{}))

	if err := c.Wait(); err != nil {
		t.Fatalf("ErrDisconnect must end the session cleanly, got %v", err)
	}
}
