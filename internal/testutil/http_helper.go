// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// HeaderSessionToken mirrors the session header read by the API
const HeaderSessionToken = "X-Session-Token"

// MakeJSONRequest sends body as JSON (nil sends no body) and decodes the
// JSON response. An empty sessionToken sends no session header.
func MakeJSONRequest(body any, sessionToken string, r *gin.Engine, endpoint string, method string) (*httptest.ResponseRecorder, map[string]any) {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, endpoint, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		req.Header.Set(HeaderSessionToken, sessionToken)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := map[string]any{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// Data returns the "data" object of an API envelope
func Data(resp map[string]any) map[string]any {
	data, _ := resp["data"].(map[string]any)
	return data
}
