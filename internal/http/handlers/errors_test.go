package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondAPIError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"plain", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error", "boom"},
		{"store", domain.APIError{Message: "upstream down", Status: http.StatusBadGateway, Code: "store_unavailable"}, http.StatusBadGateway, "store_unavailable", "upstream down"},
		{"validation", domain.ValidationError{Field: "limit", Msg: "must be positive"}, http.StatusBadRequest, "validation_error", "limit: must be positive"},
		{"empty", errors.New(""), http.StatusInternalServerError, "Internal Server Error", domain.UnknownErrorMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondAPIError(c, tc.err)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, body["code"])
			assert.Equal(t, tc.message, body["message"])
		})
	}
}
