package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/progressly/pkg/httputil"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	rr.Header().Set("X-Request-ID", "req-1")
	httputil.WriteErrorResponse(rr, http.StatusNotFound, "challenge doesn't exist", errors.New("no rows"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var got httputil.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, httputil.ErrorResponse{
		Code:      http.StatusNotFound,
		Message:   "challenge doesn't exist",
		Details:   "no rows",
		RequestID: "req-1",
	}, got)
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Name string `json:"name"`
	}
	t.Run("ok", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"January"}`))
		require.NoError(t, httputil.DecodeJSON(httptest.NewRecorder(), r, &body))
		assert.Equal(t, "January", body.Name)
	})
	t.Run("empty", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		assert.Error(t, httputil.DecodeJSON(httptest.NewRecorder(), r, &body))
	})
	t.Run("too large", func(t *testing.T) {
		big := `{"name":"` + strings.Repeat("a", httputil.MaxBodyBytes) + `"}`
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
		assert.Error(t, httputil.DecodeJSON(httptest.NewRecorder(), r, &body))
	})
}
