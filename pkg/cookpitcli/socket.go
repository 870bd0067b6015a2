package cookpitcli

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"

	"github.com/cookpit/cookpit/common"
)

// dialFunc points to the network dialer; tests replace it to run the client
// over an in-memory pipe.
var dialFunc = func(network, address string) (net.Conn, error) {
	return net.DialTimeout(network, address, common.DefaultDialTimeout)
}

func tcpPort() int {
	if port := os.Getenv(common.PortEnv); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			if p >= 1 && p <= 65535 {
				return p
			}
			debugLog("invalid TCP port %d, using default %d", p, common.DefaultPort)
		}
	}
	return common.DefaultPort
}

func tcpAddress() string {
	return fmt.Sprintf("%s:%d", common.TCPHost, tcpPort())
}

func debugMode() bool {
	return os.Getenv(common.DebugEnv) == "1"
}

func debugLog(format string, args ...any) {
	if debugMode() {
		log.Printf(format, args...)
	}
}
