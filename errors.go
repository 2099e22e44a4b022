package solidgate

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors. Use errors.Is to classify failures.
var (
	// ErrValidation marks DTO construction failures.
	ErrValidation = errors.New("solidgate: validation failed")
	// ErrTransport marks failures while sending a request or reading its response.
	ErrTransport = errors.New("solidgate: transport failure")
	// ErrEncode marks payloads that could not be rendered as JSON.
	ErrEncode = errors.New("solidgate: encode payload")
)

// ValidationError reports a violated DTO invariant.
type ValidationError struct {
	// Field is the JSON path of the offending field, empty for cross-field rules.
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "solidgate: " + e.Message
	}
	return fmt.Sprintf("solidgate: %s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// TransportFault captures a failed call. It is returned next to an empty
// response body and never stored on the client.
type TransportFault struct {
	Method string
	URL    string
	Err    error
}

func (f *TransportFault) Error() string {
	return fmt.Sprintf("solidgate: %s %s: %v", f.Method, f.URL, f.Err)
}

// Unwrap exposes both ErrTransport and the underlying cause.
func (f *TransportFault) Unwrap() []error {
	return []error{ErrTransport, f.Err}
}

// ErrorType mirrors the error.type field of webhook error responses.
type ErrorType string

const (
	InvalidRequest  ErrorType = "invalid_request"  // Missing or malformed header or body.
	ProcessingError ErrorType = "processing_error" // Receiver failed to handle the event.
)

// ErrorCode is a machine-readable identifier for the specific failure.
type ErrorCode string

const (
	InvalidSignature  ErrorCode = "invalid_signature"  // Signature does not match the body.
	SignatureRequired ErrorCode = "signature_required" // Signature header missing.
	MissingMerchant   ErrorCode = "missing_merchant"   // Merchant header missing.
	InvalidMerchant   ErrorCode = "invalid_merchant"   // Merchant header names another key.
)

// Error is the JSON error payload written by [WebhookHandler]. Receivers may
// return it to control the response.
type Error struct {
	Type    ErrorType `json:"type"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`

	status int
}

// Error makes *Error satisfy the stdlib error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// StatusCode returns the HTTP status written for the error.
func (e *Error) StatusCode() int {
	if e == nil || e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

// NewInvalidRequestError builds a Bad Request error payload.
func NewInvalidRequestError(message string) *Error {
	return NewHTTPError(http.StatusBadRequest, InvalidRequest, ErrorCode(InvalidRequest), message)
}

// NewProcessingError builds an Internal Server Error payload.
func NewProcessingError(message string) *Error {
	return NewHTTPError(http.StatusInternalServerError, ProcessingError, ErrorCode(ProcessingError), message)
}

// NewHTTPError allows callers to control the status code explicitly.
func NewHTTPError(status int, typ ErrorType, code ErrorCode, message string) *Error {
	return &Error{
		Type:    typ,
		Code:    code,
		Message: message,
		status:  status,
	}
}
