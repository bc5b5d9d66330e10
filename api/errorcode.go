package api

import "github.com/doumi-inc/doumi-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid signature",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this account has been registered or has been taken",
		1101: "account not found",

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrDuplicateApplication.Error(),
		1202: store.ErrInvalidRequestState.Error(),
		1203: store.ErrAlreadyMatched.Error(),
		1204: store.ErrNotAParticipant.Error(),
		1205: store.ErrMeetingResolved.Error(),
		1206: store.ErrSelfApplication.Error(),
		1207: store.ErrRequestNotOwned.Error(),
		1208: store.ErrCallResolved.Error(),
		1209: store.ErrProposerCannotAccept.Error(),
		1210: store.ErrApplicationNotFound.Error(),
		1211: store.ErrApplicationMismatch.Error(),
		1212: store.ErrConversationNotFound.Error(),
		1213: store.ErrMeetingNotFound.Error(),
		1214: store.ErrCallNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidSignature           = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorRequestNotFound      = errorJSON(1200)
	errorDuplicateApplication = errorJSON(1201)
	errorInvalidRequestState  = errorJSON(1202)
	errorAlreadyMatched       = errorJSON(1203)
	errorNotAParticipant      = errorJSON(1204)
	errorMeetingResolved      = errorJSON(1205)
	errorSelfApplication      = errorJSON(1206)
	errorRequestNotOwned      = errorJSON(1207)
	errorCallResolved         = errorJSON(1208)
	errorProposerCannotAccept = errorJSON(1209)
	errorApplicationNotFound  = errorJSON(1210)
	errorApplicationMismatch  = errorJSON(1211)
	errorConversationNotFound = errorJSON(1212)
	errorMeetingNotFound      = errorJSON(1213)
	errorCallNotFound         = errorJSON(1214)
)

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
