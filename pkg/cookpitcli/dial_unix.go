//go:build !windows

package cookpitcli

import (
	"fmt"
	"net"

	"github.com/cookpit/cookpit/common"
)

// dial connects to the daemon, preferring the Unix socket and falling back
// to loopback TCP.
func dial() (net.Conn, error) {
	path := common.SocketPath()
	debugLog("connecting via unix socket at %s", path)
	conn, unixErr := dialFunc("unix", path)
	if unixErr != nil {
		debugLog("unix socket failed: %v, falling back to TCP", unixErr)
		conn, err := dialFunc("tcp", tcpAddress())
		if err != nil {
			return nil, fmt.Errorf("failed to connect: unix socket error: %v; tcp error: %w", unixErr, err)
		}
		return conn, nil
	}
	return conn, nil
}
