package server

import (
	"encoding/json"

	"github.com/cookpit/cookpit/common"
)

// Response is one daemon frame: either the reply to a request (Id echoed) or
// an unsolicited push (Id zero).
type Response struct {
	Id     int64   `json:"id,omitempty"`
	Ok     bool    `json:"ok"`
	Error  string  `json:"error,omitempty"`
	Update *Update `json:"update,omitempty"`
}

type Update struct {
	Type    common.UpdateType `json:"type"`
	Message any               `json:"message,omitempty"`
}

func MakeResult(id int64, utype common.UpdateType, res any) []byte {
	b, _ := json.Marshal(Response{
		Id: id,
		Ok: true,
		Update: &Update{
			Type:    utype,
			Message: res,
		},
	})
	return b
}

// MakePush builds an unsolicited daemon-to-client frame.
func MakePush(utype common.UpdateType, msg any) []byte {
	b, _ := json.Marshal(Response{
		Ok: true,
		Update: &Update{
			Type:    utype,
			Message: msg,
		},
	})
	return b
}

func InitError(id int64, err error) []byte {
	if err == nil {
		return CreateError(id, "Unknown")
	}
	return CreateError(id, err.Error())
}

func CreateError(id int64, err string) []byte {
	b, _ := json.Marshal(Response{
		Id:    id,
		Ok:    false,
		Error: err,
	})
	return b
}
