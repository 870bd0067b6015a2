package server

import "github.com/cookpit/cookpit/common"

func socketPath() string {
	return common.SocketPath()
}
