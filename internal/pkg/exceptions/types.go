package exceptions

import (
	"fmt"
	"navigator-service/internal/pkg/constvars"
)

func ErrInputValidation(err error) error {
	return WrapWithError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
}

func ErrCannotParseJSON(err error) error {
	return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
}

func ErrCannotMarshalJSON(err error) error {
	return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
}

func ErrServerDeadlineExceeded(err error) error {
	return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
}

func ErrCreateHTTPRequest(err error) error {
	return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
}

func ErrSendHTTPRequest(err error) error {
	return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryUnavailable, constvars.ErrDevSendHTTPRequest)
}

func ErrDecodeRegistryResponse(err error, entity string) error {
	return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryUnavailable, fmt.Sprintf("%s_%s", constvars.ErrDevDecodeRegistryResponse, entity))
}

func ErrRegistryRequest(err error, entity string, statusCode int) error {
	return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryUnavailable, fmt.Sprintf("%s_%s_%d", constvars.ErrDevRegistryRequestFailed, entity, statusCode))
}

func ErrTokenMissing(err error) error {
	return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
}

func ErrTokenInvalid(err error) error {
	return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
}

func ErrGenerateToken(err error) error {
	return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
}

func ErrSessionNotFound(err error) error {
	return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientSessionExpired, constvars.ErrDevSessionNotFound)
}

func ErrRedisSet(err error) error {
	return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
}

func ErrRedisGet(err error, key string) error {
	return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s_%s", constvars.ErrDevRedisGet, key))
}

func ErrRedisDelete(err error) error {
	return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
}

func ErrPatientNotOnboarded(err error) error {
	return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientPatientNotOnboarded, constvars.ErrDevPatientNotOnboarded)
}

func ErrWizardIncomplete(err error) error {
	return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientWizardIncomplete, constvars.ErrDevWizardIncomplete)
}

func ErrInvalidTransition(fromScreen, event string) error {
	return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientScreenNotEditable, fmt.Sprintf("%s_%s_%s", constvars.ErrDevInvalidTransition, fromScreen, event))
}

func ErrEditingPointerMissing() error {
	return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientScreenNotEditable, constvars.ErrDevEditingPointerMissing)
}

func ErrChecklistItemNotFound(itemID string) error {
	return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientChecklistItemNotFound, fmt.Sprintf("%s_%s", constvars.ErrDevChecklistItemNotFound, itemID))
}

func ErrChecklistAbsent() error {
	return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientChecklistItemNotFound, constvars.ErrDevChecklistAbsent)
}

func ErrNavigationStateCorrupted(err error) error {
	return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevNavigationStateCorrupted)
}

func ErrTooManyRequests() error {
	return WrapWithoutError(constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
}
