package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// MaxRequestBodyBytes caps incoming request bodies
const MaxRequestBodyBytes = 1 << 20 // 1MB
