package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeBadRequest  = "BAD_REQUEST"
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeConflict    = "CONFLICT"
	ErrCodeRateLimited = "RATE_LIMITED"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:           http.StatusBadRequest,
	ErrCodeValidation:           http.StatusBadRequest,
	"INSUFFICIENT_STOCK":        http.StatusBadRequest,
	"INVALID_STATUS_TRANSITION": http.StatusBadRequest,
	"UNSUPPORTED_CURRENCY":      http.StatusBadRequest,

	ErrCodeNotFound: http.StatusNotFound,

	ErrCodeConflict:        http.StatusConflict,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// INVALID_* codes all map to 400; anything else unknown is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
