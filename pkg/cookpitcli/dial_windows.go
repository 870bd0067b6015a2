//go:build windows

package cookpitcli

import (
	"context"
	"fmt"
	"net"

	"github.com/Microsoft/go-winio"

	"github.com/cookpit/cookpit/common"
)

// dialPipeFunc points to the named pipe dialer; tests replace it.
var dialPipeFunc = dialPipeImpl

func dialPipeImpl(path string) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), common.DefaultDialTimeout)
	defer cancel()
	return winio.DialPipeContext(ctx, path)
}

// dial connects to the daemon, preferring the named pipe and falling back
// to loopback TCP.
func dial() (net.Conn, error) {
	path := common.PipePath()
	debugLog("connecting via named pipe at %s", path)
	conn, pipeErr := dialPipeFunc(path)
	if pipeErr != nil {
		debugLog("named pipe failed: %v, falling back to TCP", pipeErr)
		conn, err := dialFunc("tcp", tcpAddress())
		if err != nil {
			return nil, fmt.Errorf("failed to connect: named pipe error: %v; tcp error: %w", pipeErr, err)
		}
		return conn, nil
	}
	return conn, nil
}
