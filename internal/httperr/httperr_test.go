package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	Respond(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespond_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", NewValidation("type", "unknown activity type"), http.StatusBadRequest, "validation_failed"},
		{"wrapped validation", fmt.Errorf("record: %w", NewValidation("", "bad")), http.StatusBadRequest, "validation_failed"},
		{"not found", NewNotFound("notification", "n1"), http.StatusNotFound, "notification_not_found"},
		{"access denied", NewAccessDenied("role user"), http.StatusForbidden, "access_denied"},
		{"persistence", &PersistenceError{Op: "insert activity", Err: errors.New("conn reset")}, http.StatusInternalServerError, "internal_error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := respond(t, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, body.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestRespond_InternalHidesDetail(t *testing.T) {
	_, body := respond(t, &PersistenceError{Op: "insert", Err: errors.New("password=secret")})
	assert.NotContains(t, body.Message, "secret")
}

func TestPersistenceError_Unwrap(t *testing.T) {
	base := errors.New("deadlock")
	err := fmt.Errorf("outer: %w", &PersistenceError{Op: "update", Err: base})

	assert.True(t, IsPersistence(err))
	assert.ErrorIs(t, err, base)
	assert.False(t, IsValidation(err))
}
