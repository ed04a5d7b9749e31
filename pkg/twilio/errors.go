package twilio

const (
	ErrorCodeServerError    = "SERVER_ERROR"    // For 5xx HTTP status
	ErrorCodeTimeout        = "TIMEOUT"         // For context timeout
	ErrorCodeInvalidRequest = "INVALID_REQUEST" // For 400/validation errors
	ErrorCodeAuthFailed     = "AUTH_FAILED"     // For 401/403 from the API
	ErrorCodeNetworkError   = "NETWORK_ERROR"   // For connection failures
)
