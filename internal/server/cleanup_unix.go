//go:build !windows

package server

import "os"

// cleanupSocket removes the Unix socket file.
func cleanupSocket() error {
	if err := os.Remove(socketPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
