package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("explicit level wins", func(t *testing.T) {
		l := newWithWriter(&bytes.Buffer{}, "production", "warn")
		assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
	})

	t.Run("development defaults to debug", func(t *testing.T) {
		l := newWithWriter(&bytes.Buffer{}, "development", "")
		assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		l := newWithWriter(&bytes.Buffer{}, "production", "loud")
		assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
	})
}

func TestMiddleware(t *testing.T) {
	buffer := &bytes.Buffer{}
	l := zerolog.New(buffer)

	var fromContext *zerolog.Logger
	handler := Middleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext = zerolog.Ctx(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("DELETE", "/funds/1", nil))

	require.NotNil(t, fromContext)
	assert.NotEqual(t, zerolog.Disabled, fromContext.GetLevel())

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &line))
	assert.Equal(t, "DELETE", line["method"])
	assert.Equal(t, "/funds/1", line["path"])
	assert.Equal(t, float64(http.StatusNoContent), line["status"])
}
