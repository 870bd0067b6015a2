// Package common provides the shared wire types and constants used across the
// cookpit client-daemon communication layer.
package common

// Environment variable names for configuration.
const (
	// SocketPathEnv overrides the default daemon socket path.
	SocketPathEnv = "COOKPIT_SOCKET_PATH"

	// CDPURLEnv points the daemon at a running browser's DevTools endpoint.
	CDPURLEnv = "COOKPIT_CDP_URL"

	// WSPortEnv overrides the WebSocket dashboard port.
	WSPortEnv = "COOKPIT_WS_PORT"

	// WSSecretEnv holds the bearer token required by the WebSocket
	// dashboard endpoint. The endpoint stays disabled while it is empty.
	WSSecretEnv = "COOKPIT_WS_SECRET"

	// PortEnv overrides the TCP fallback port.
	PortEnv = "COOKPIT_PORT"

	// DebugEnv enables debug logging when set to "1".
	DebugEnv = "COOKPIT_DEBUG"
)
