package cookpitcli

import (
	"encoding/json"

	"github.com/cookpit/cookpit/common"
)

// Handler processes one pushed update. Implementations receive the raw JSON
// payload and are responsible for unmarshaling it.
type Handler interface {
	Handle(json.RawMessage) error
}

// NewCookieChangedHandler creates a handler for cookie change pushes. The
// callback is invoked once per change; returning ErrDisconnect ends the
// connection cleanly.
func NewCookieChangedHandler(callback func(*common.CookieChangedUpdate) error) *CookieChangedHandler {
	return &CookieChangedHandler{Callback: callback}
}

// CookieChangedHandler processes cookie change pushes from the daemon.
type CookieChangedHandler struct {
	Callback func(*common.CookieChangedUpdate) error
}

// Handle unmarshals a cookie change push and invokes the callback.
func (h *CookieChangedHandler) Handle(m json.RawMessage) error {
	var v common.CookieChangedUpdate
	err := json.Unmarshal(m, &v)
	if err != nil {
		return err
	}
	return h.Callback(&v)
}
