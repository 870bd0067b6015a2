package server

import (
	"encoding/json"

	"github.com/cookpit/cookpit/common"
)

// HandlerFunc is one request handler. It receives the synchronized connection
// (which doubles as the session sink for attach operations) and the raw JSON
// message body, and returns the update type of the response, the response
// payload, and any error.
type HandlerFunc func(
	conn *SyncConn,
	body json.RawMessage,
) (
	common.UpdateType,
	any,
	error,
)
