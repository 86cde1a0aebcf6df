package dto

import "net/http"

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeMissingParty is used when an order references a company or
	// supplier that does not exist
	ErrCodeMissingParty = "ERR_MISSING_PARTY"
	// ErrCodeEmptyLineItems is used when an order carries no line items
	ErrCodeEmptyLineItems = "ERR_EMPTY_LINE_ITEMS"
	// ErrCodeInvalidKind is used when a party or item kind is unknown
	ErrCodeInvalidKind = "ERR_INVALID_KIND"
	// ErrCodeIdempotencyConflict is used when a replayed idempotency key
	// resolves to an unusable stored result
	ErrCodeIdempotencyConflict = "ERR_IDEMPOTENCY_CONFLICT"
)

// Document rendering error codes
const (
	// ErrCodeRenderFailed is used when PDF rendering fails
	ErrCodeRenderFailed = "ERR_RENDER_FAILED"
	// ErrCodeRenderTimeout is used when PDF rendering exceeds its deadline
	ErrCodeRenderTimeout = "ERR_RENDER_TIMEOUT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeIdempotencyConflict: http.StatusConflict,

	ErrCodeInvalidState:   http.StatusUnprocessableEntity,
	ErrCodeMissingParty:   http.StatusUnprocessableEntity,
	ErrCodeEmptyLineItems: http.StatusUnprocessableEntity,
	ErrCodeInvalidKind:    http.StatusBadRequest,

	ErrCodeRenderFailed:  http.StatusInternalServerError,
	ErrCodeRenderTimeout: http.StatusGatewayTimeout,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_STATE":        ErrCodeInvalidState,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,
	"MISSING_PARTY":        ErrCodeMissingParty,
	"EMPTY_LINE_ITEMS":     ErrCodeEmptyLineItems,
	"INVALID_KIND":         ErrCodeInvalidKind,
	"IDEMPOTENCY_CONFLICT": ErrCodeIdempotencyConflict,
	"RENDER_FAILED":        ErrCodeRenderFailed,
	"RENDER_TIMEOUT":       ErrCodeRenderTimeout,
	"INVALID_HTML":         ErrCodeRenderFailed,
	"TEMPLATE_FAILED":      ErrCodeRenderFailed,
	"STORAGE_FAILED":       ErrCodeInternal,
	"BAD_REQUEST":          ErrCodeBadRequest,
	"INTERNAL_ERROR":       ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the API format.
// If the code is already in the API format or unknown, returns it as-is.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
