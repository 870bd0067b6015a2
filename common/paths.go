package common

import (
	"os"
	"path/filepath"
)

// PipePath returns the Windows named pipe path of the daemon.
func PipePath() string {
	return `\\.\pipe\cookpitd`
}

// SocketPath returns the Unix socket path of the daemon, honoring the
// COOKPIT_SOCKET_PATH override.
func SocketPath() string {
	if path := os.Getenv(SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "cookpitd.sock")
}
