package common

import "time"

// UpdateType identifies a message on the client-daemon channel. The set is
// closed: every frame that crosses the channel carries exactly one of these.
type UpdateType string

const (
	UPDATE_GET_COOKIES       UpdateType = "get-cookies"
	UPDATE_COOKIES           UpdateType = "cookies"
	UPDATE_COOKIE_CHANGED    UpdateType = "cookie-changed"
	UPDATE_SET_COOKIE        UpdateType = "set-cookie"
	UPDATE_SET_COOKIE_RESULT UpdateType = "set-cookie-result"
	UPDATE_REMOVE_COOKIE     UpdateType = "remove-cookie"
	UPDATE_REMOVE_RESULT     UpdateType = "remove-cookie-result"
	UPDATE_REMOVE_ALL        UpdateType = "remove-all-cookies"
	UPDATE_REMOVE_ALL_RESULT UpdateType = "remove-all-cookies-result"
)

// MaxMessageSize limits a single frame on any transport. Screenshots ride in
// the cookies response, so the cap is well above the usual payload size.
const MaxMessageSize = 16 << 20

// Transport defaults.
const (
	// TCPHost is the loopback host used when the daemon falls back to TCP.
	TCPHost = "127.0.0.1"

	// DefaultPort is the TCP fallback port of the daemon socket.
	DefaultPort = 3749

	// DefaultWSPort serves the WebSocket dashboard endpoint.
	DefaultWSPort = 3750
)

// Client-side deadlines for mutation calls. A call that has not produced a
// result within its window is reported as failed; the daemon is never asked
// to retry.
const (
	SetCookieTimeout    = 5 * time.Second
	RemoveCookieTimeout = 5 * time.Second
	RemoveAllTimeout    = 15 * time.Second

	// DefaultTimeout applies to non-mutation calls such as get-cookies,
	// which may fan out into many host queries.
	DefaultTimeout = 30 * time.Second

	// DefaultDialTimeout bounds the initial connection to the daemon.
	DefaultDialTimeout = 10 * time.Second
)
