package constants

const (
	ErrCodeInvalidRequestBody    = "INVALID_REQUEST_BODY"
	ErrCodeValidation            = "VALIDATION_ERROR"
	ErrCodeAppointmentNotFound   = "APPOINTMENT_NOT_FOUND"
	ErrCodeCustomerOptedOut      = "CUSTOMER_OPTED_OUT"
	ErrCodeForbidden             = "FORBIDDEN"
	ErrCodeProviderNotConfigured = "PROVIDER_NOT_CONFIGURED"
	ErrCodeProviderSendFailed    = "PROVIDER_SEND_FAILED"
	ErrCodeInternalError         = "INTERNAL_ERROR"
)

const (
	ErrMsgInvalidRequestBody    = "failed to parse request body"
	ErrMsgValidation            = "request validation failed"
	ErrMsgAppointmentNotFound   = "appointment not found"
	ErrMsgCustomerOptedOut      = "customer opted out"
	ErrMsgForbidden             = "invalid webhook signature"
	ErrMsgProviderNotConfigured = "sms provider credentials missing"
	ErrMsgProviderSendFailed    = "sms provider send failed"
	ErrMsgInternalError         = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeInvalidRequestBody:    ErrMsgInvalidRequestBody,
	ErrCodeValidation:            ErrMsgValidation,
	ErrCodeAppointmentNotFound:   ErrMsgAppointmentNotFound,
	ErrCodeCustomerOptedOut:      ErrMsgCustomerOptedOut,
	ErrCodeForbidden:             ErrMsgForbidden,
	ErrCodeProviderNotConfigured: ErrMsgProviderNotConfigured,
	ErrCodeProviderSendFailed:    ErrMsgProviderSendFailed,
	ErrCodeInternalError:         ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeCustomerOptedOut:
		return 400
	case ErrCodeForbidden:
		return 403
	case ErrCodeAppointmentNotFound:
		return 404
	case ErrCodeValidation:
		return 422
	case ErrCodeProviderNotConfigured, ErrCodeInternalError:
		return 500
	case ErrCodeProviderSendFailed:
		return 502
	default:
		return 500
	}
}
