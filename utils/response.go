package utils

import (
	"errors"
	"net/http"
)

// APIError carries the HTTP status a failure should map to. Handlers never
// pick statuses themselves; they translate whatever the service returned.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func BadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: message}
}

func Internal(message string, err error) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// StatusOf maps an error to its HTTP status, defaulting to 500 for anything
// that is not an APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

func SuccessResponse(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"status": "success",
		"data":   data,
	}
}

func FailedResponse(err error) map[string]interface{} {
	body := map[string]interface{}{
		"message": err.Error(),
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Err != nil {
		body["error"] = apiErr.Err.Error()
	}
	return body
}
