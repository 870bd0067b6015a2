package cookpitcli

import (
	"errors"

	"github.com/cookpit/cookpit/common"
)

// Dispatcher routes pushes from the daemon to their registered handlers.
type Dispatcher struct {
	Handlers map[common.UpdateType]Handler
}

// ErrDisconnect may be returned by a handler to end the connection cleanly.
var ErrDisconnect error = errors.New("disconnect")

func (d *Dispatcher) process(res *Response) error {
	if !res.Ok {
		return errors.New(res.Error)
	}
	if res.Update == nil {
		return nil
	}
	if h, ok := d.Handlers[res.Update.Type]; ok {
		return h.Handle(res.Update.Message)
	}
	debugLog("unhandled push %s: %s", res.Update.Type, string(res.Update.Message))
	return nil
}
