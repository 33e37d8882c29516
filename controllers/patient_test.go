package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// postJSON drives a single handler without the recovery middleware so a
// panicking handler fails the test instead of turning into a 500.
func postJSON(handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST(path, handler)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddPatientNullBody(t *testing.T) {
	w := postJSON(AddPatient, "/addPatient", "null")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fullName is required")
}

func TestAddPatientMalformedBody(t *testing.T) {
	w := postJSON(AddPatient, "/addPatient", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
