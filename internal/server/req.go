package server

import (
	"encoding/json"

	"github.com/cookpit/cookpit/common"
)

// Request is one client call. The client picks the Id and the daemon echoes
// it on the response, so a client may keep several calls in flight; pushes
// from the daemon carry Id zero.
type Request struct {
	Id      int64             `json:"id"`
	Method  common.UpdateType `json:"method"`
	Message json.RawMessage   `json:"message,omitempty"`
}

func ParseRequest(b []byte) (*Request, error) {
	var r Request
	return &r, json.Unmarshal(b, &r)
}
