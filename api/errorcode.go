package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geoshield-inc/geoshield-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "realtime channel is not available",

		1100: store.ErrMissingSignupFields.Error(),
		1101: store.ErrPhoneNotVerified.Error(),
		1102: store.ErrPhoneTaken.Error(),
		1103: store.ErrNameTaken.Error(),
		1104: store.ErrInvalidRole.Error(),
		1105: store.ErrMissingCredentials.Error(),
		1106: store.ErrInvalidCredentials.Error(),
		1107: store.ErrUserNotFound.Error(),

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrInvalidRequestType.Error(),
		1202: store.ErrInvalidUrgency.Error(),
		1203: store.ErrInvalidPeopleCount.Error(),
		1204: store.ErrInvalidStatusTransition.Error(),
		1205: store.ErrVolunteerRequired.Error(),
		1206: store.ErrVolunteerLocked.Error(),

		1300: store.ErrSafeZoneNotFound.Error(),

		1400: store.ErrMessageNotFound.Error(),
		1401: store.ErrEmptyMessage.Error(),
		1402: store.ErrNoRecipient.Error(),
		1403: store.ErrNoVolunteers.Error(),
		1404: store.ErrInvalidCheckIn.Error(),

		1500: store.ErrPhoneRequired.Error(),
		1501: store.ErrMissingCode.Error(),
		1502: store.ErrVerificationNotFound.Error(),
		1503: store.ErrVerificationExpired.Error(),
		1504: store.ErrVerificationMismatch.Error(),
	}

	errorInternalServer     = errorJSON(999)
	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorRealtimeNotReady   = errorJSON(1012)
)

// storeErrors maps store errors to the status and body returned to clients
var storeErrors = map[error]struct {
	status int
	code   int64
}{
	store.ErrMissingSignupFields: {http.StatusBadRequest, 1100},
	store.ErrPhoneNotVerified:    {http.StatusBadRequest, 1101},
	store.ErrPhoneTaken:          {http.StatusBadRequest, 1102},
	store.ErrNameTaken:           {http.StatusBadRequest, 1103},
	store.ErrInvalidRole:         {http.StatusBadRequest, 1104},
	store.ErrMissingCredentials:  {http.StatusBadRequest, 1105},
	store.ErrInvalidCredentials:  {http.StatusUnauthorized, 1106},
	store.ErrUserNotFound:        {http.StatusNotFound, 1107},

	store.ErrRequestNotFound:         {http.StatusNotFound, 1200},
	store.ErrInvalidRequestType:      {http.StatusBadRequest, 1201},
	store.ErrInvalidUrgency:          {http.StatusBadRequest, 1202},
	store.ErrInvalidPeopleCount:      {http.StatusBadRequest, 1203},
	store.ErrInvalidStatusTransition: {http.StatusBadRequest, 1204},
	store.ErrVolunteerRequired:       {http.StatusBadRequest, 1205},
	store.ErrVolunteerLocked:         {http.StatusBadRequest, 1206},

	store.ErrSafeZoneNotFound: {http.StatusNotFound, 1300},

	store.ErrMessageNotFound: {http.StatusNotFound, 1400},
	store.ErrEmptyMessage:    {http.StatusBadRequest, 1401},
	store.ErrNoRecipient:     {http.StatusBadRequest, 1402},
	store.ErrNoVolunteers:    {http.StatusBadRequest, 1403},
	store.ErrInvalidCheckIn:  {http.StatusBadRequest, 1404},

	store.ErrPhoneRequired:        {http.StatusBadRequest, 1500},
	store.ErrMissingCode:          {http.StatusBadRequest, 1501},
	store.ErrVerificationNotFound: {http.StatusBadRequest, 1502},
	store.ErrVerificationExpired:  {http.StatusBadRequest, 1503},
	store.ErrVerificationMismatch: {http.StatusBadRequest, 1504},
}

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// abortWithStoreError answers with the status of a known store error and
// with 500 for anything else
func abortWithStoreError(c *gin.Context, err error) {
	if e, ok := storeErrors[err]; ok {
		abortWithEncoding(c, e.status, errorJSON(e.code))
		return
	}
	shouldInterupt(err, c)
}
