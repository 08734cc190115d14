package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingSessionIDKey  = "session_id"
	LoggingPatientIDKey  = "patient_id"
	LoggingItemIDKey     = "item_id"
	LoggingScreenKey     = "screen"
	LoggingStageKey      = "stage"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
