package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/lodgings-api/internal/handler"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	h := newHTTPHandler(deps{})

	rec := do(t, h, http.MethodGet, "/healthz", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}

func TestUnknownRoute_returns404Envelope(t *testing.T) {
	h := newHTTPHandler(deps{})

	for _, target := range []string{"/nope", "/lodgings/x/y", "/users/me"} {
		rec := do(t, h, http.MethodGet, target, nil, "")

		require.Equal(t, http.StatusNotFound, rec.Code, target)
		body := decodeError(t, rec)
		assert.Equal(t, "not_found", body.Error.Code)
		assert.Equal(t, handler.NotFoundMessage, body.Error.Message)
	}
}

func TestWrongMethod_returns405(t *testing.T) {
	h := newHTTPHandler(deps{})

	rec := do(t, h, http.MethodPatch, "/healthz", nil, "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method_not_allowed", decodeError(t, rec).Error.Code)
}
