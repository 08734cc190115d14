package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"uuid":     "must be a valid UUID",
	"datetime": "must be a valid date",
	"url":      "must be a valid URL",
	"answer":   "must be 'yes', 'no' or null",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request, please check your request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application, please contact developer"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientSessionExpired                = "your session has expired, please start again"
	ErrClientRegistryUnavailable           = "the care registry is temporarily unavailable, please try again"
	ErrClientPatientNotOnboarded           = "complete onboarding before continuing"
	ErrClientWizardIncomplete              = "complete the previous steps before continuing"
	ErrClientChecklistItemNotFound         = "checklist item not found"
	ErrClientScreenNotEditable             = "this action is not available on the current screen"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "VALIDATION_FAILED"
	ErrDevCannotParseJSON           = "CANNOT_PARSE_JSON"
	ErrDevCannotMarshalJSON         = "CANNOT_MARSHAL_JSON"
	ErrDevCreateHTTPRequest         = "CANNOT_CREATE_HTTP_REQUEST"
	ErrDevSendHTTPRequest           = "CANNOT_SEND_HTTP_REQUEST"
	ErrDevDecodeRegistryResponse    = "CANNOT_DECODE_REGISTRY_RESPONSE"
	ErrDevRegistryRequestFailed     = "REGISTRY_REQUEST_FAILED"
	ErrDevServerDeadlineExceeded    = "SERVER_DEADLINE_EXCEEDED"
	ErrDevAuthTokenMissing          = "AUTH_TOKEN_MISSING"
	ErrDevAuthTokenInvalid          = "AUTH_TOKEN_INVALID_OR_EXPIRED"
	ErrDevAuthGenerateToken         = "AUTH_CANNOT_GENERATE_TOKEN"
	ErrDevAuthSigningMethod         = "AUTH_UNEXPECTED_SIGNING_METHOD"
	ErrDevSessionNotFound           = "SESSION_NOT_FOUND"
	ErrDevRedisSet                  = "REDIS_CANNOT_SET_DATA"
	ErrDevRedisGet                  = "REDIS_CANNOT_GET_DATA"
	ErrDevRedisDelete               = "REDIS_CANNOT_DELETE_DATA"
	ErrDevPatientNotOnboarded       = "PATIENT_NOT_ONBOARDED"
	ErrDevWizardIncomplete          = "WIZARD_CACHE_INCOMPLETE"
	ErrDevInvalidTransition         = "INVALID_SCREEN_TRANSITION"
	ErrDevEditingPointerMissing     = "EDITING_POINTER_MISSING"
	ErrDevChecklistItemNotFound     = "CHECKLIST_ITEM_NOT_FOUND"
	ErrDevChecklistAbsent           = "CHECKLIST_ABSENT"
	ErrDevFinancialLoadInFlight     = "FINANCIAL_PROFILE_LOAD_IN_FLIGHT"
	ErrDevNavigationStateNotFound   = "NAVIGATION_STATE_NOT_FOUND"
	ErrDevNavigationStateCorrupted  = "NAVIGATION_STATE_CORRUPTED"
	ErrDevRegistryPatientCreate     = "REGISTRY_CANNOT_CREATE_PATIENT"
	ErrDevRegistryPatientDelete     = "REGISTRY_CANNOT_DELETE_PATIENT"
	ErrDevRegistryUnexpectedStatus  = "REGISTRY_UNEXPECTED_STATUS"
	ErrDevRegistryReadFailedNon404  = "REGISTRY_READ_FAILED_NON_404"
	ErrDevTooManyRequests           = "TOO_MANY_REQUESTS"
	ErrDevFinancialDraftEmpty       = "FINANCIAL_DRAFT_EMPTY"
	ErrDevQuestionnaireNotSubmitted = "QUESTIONNAIRE_NOT_SUBMITTED"
)
