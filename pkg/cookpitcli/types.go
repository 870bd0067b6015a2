package cookpitcli

import (
	"encoding/json"

	"github.com/cookpit/cookpit/common"
)

// Request is one call to the daemon. The client picks the id; the daemon
// echoes it back on the matching response so calls can run concurrently.
type Request struct {
	Id      int64             `json:"id"`
	Method  common.UpdateType `json:"method"`
	Message any               `json:"message,omitempty"`
}

// Response is one frame from the daemon: either the reply to a request
// (Id != 0) or an unsolicited push (Id == 0).
type Response struct {
	Id     int64   `json:"id"`
	Ok     bool    `json:"ok"`
	Error  string  `json:"error,omitempty"`
	Update *Update `json:"update,omitempty"`
}

// Update carries the typed payload of a response or push.
type Update struct {
	Type    common.UpdateType `json:"type"`
	Message json.RawMessage   `json:"message"`
}
