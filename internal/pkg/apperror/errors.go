package apperror

import "errors"

// Kind classifies application errors so transport and retry behaviour can be
// decided in one place. TransientStore is the only retryable kind.
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindValidation     Kind = "validation"
	KindPolicyDenied   Kind = "policy_denied"
	KindConflict       Kind = "conflict"
	KindTransientStore Kind = "transient_store"
)

// Machine-readable reason codes carried alongside the customer-facing message.
const (
	CodeSessionNotFound           = "SESSION_NOT_FOUND"
	CodeItemNotFound              = "ITEM_NOT_FOUND"
	CodeLineNotFound              = "LINE_NOT_FOUND"
	CodeOrderNotFound             = "ORDER_NOT_FOUND"
	CodeBusinessNotFound          = "BUSINESS_NOT_FOUND"
	CodeItemInvalid               = "ITEM_INVALID"
	CodeUnknownMode               = "UNKNOWN_MODE"
	CodeUnknownAction             = "UNKNOWN_ACTION"
	CodeMissingField              = "MISSING_FIELD"
	CodeOutOfDeliveryRadius       = "OUT_OF_DELIVERY_RADIUS"
	CodeOutsideOpeningHours       = "OUTSIDE_OPENING_HOURS"
	CodeLeadTimeTooShort          = "LEAD_TIME_TOO_SHORT"
	CodeSchedulingRequired        = "SCHEDULING_REQUIRED"
	CodeCancellationWindowExpired = "CANCELLATION_WINDOW_EXPIRED"
	CodeNothingToConfirm          = "NOTHING_TO_CONFIRM"
	CodeSessionLocked             = "SESSION_LOCKED"
	CodeInvalidCredentials        = "INVALID_CREDENTIALS"
	CodeStoreUnavailable          = "STORE_UNAVAILABLE"
)

// Error is the application error carried from services up to the transport
// layer. Details hold structured data for the caller (e.g. required hours,
// computed distance) so the workflow can prompt for exactly what is missing.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]interface{}
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetails attaches structured data and returns the same error.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func PolicyDenied(code, message string) *Error {
	return &Error{Kind: KindPolicyDenied, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// TransientStore wraps a durable-store failure. The original error is kept
// for logs; the message shown to callers stays generic.
func TransientStore(cause error) *Error {
	return &Error{
		Kind:    KindTransientStore,
		Code:    CodeStoreUnavailable,
		Message: "temporary storage error, please retry",
		cause:   cause,
	}
}

// From extracts an *Error from err, or nil if err is not one.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	if appErr := From(err); appErr != nil {
		return appErr.Kind == kind
	}
	return false
}
