//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest executes an HTTP request against the router with an
// optional bearer token.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return PerformRequestWithHeaders(t, router, method, path, body, authToken, nil)
}

// DecodeResponseBody unmarshals a recorded JSON body into target.
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()
	return json.Unmarshal(body.Bytes(), target)
}

// PerformRequestWithHeaders additionally sets arbitrary headers, e.g. the
// Idempotency-Key a confirm call requires.
func PerformRequestWithHeaders(t *testing.T, router *gin.Engine, method, path string, body any, authToken string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
