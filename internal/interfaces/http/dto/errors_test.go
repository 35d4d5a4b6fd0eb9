package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	cases := []struct {
		code   string
		status int
	}{
		{"VALIDATION_ERROR", http.StatusBadRequest},
		{"INSUFFICIENT_STOCK", http.StatusBadRequest},
		{"INVALID_STATUS_TRANSITION", http.StatusBadRequest},
		{"UNSUPPORTED_CURRENCY", http.StatusBadRequest},
		{"INVALID_EMAIL", http.StatusBadRequest},
		{"INVALID_CATEGORY", http.StatusBadRequest},
		{"NOT_FOUND", http.StatusNotFound},
		{"CONFLICT", http.StatusConflict},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"INTERNAL_ERROR", http.StatusInternalServerError},
		{"RATE_LIMITED", http.StatusTooManyRequests},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, GetHTTPStatus(tc.code), tc.code)
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a"}, 41, 2, 20)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrCodeNotFound, "Order not found")

	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "Order not found", resp.Error.Message)
	assert.Nil(t, resp.Data)
}
