//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"rental-marketplace/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and, for 2xx, decodes the body into target
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error envelope's message
// contains expectedMsg. An empty expectedMsg only checks the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String())

	var resp httperr.Response
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "decode error body: %s", w.Body.String()) {
		return resp
	}
	assert.NotEmpty(t, resp.Error.Message, "error envelope has no message")
	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
	return resp
}
