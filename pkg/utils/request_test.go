package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type scanRequest struct {
	Payload string `json:"payload" validate:"required"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectOK     bool
		expectedCode int
	}{
		{name: "Valid body", body: `{"payload":"cb_abc"}`, expectOK: true, expectedCode: http.StatusOK},
		{name: "Broken JSON", body: `{"payload":`, expectedCode: http.StatusBadRequest},
		{name: "Missing field", body: `{}`, expectedCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst scanRequest
			ok := Decode(rec, req, &dst)

			assert.Equal(t, tt.expectOK, ok)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
