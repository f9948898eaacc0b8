package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func traceIDRouter(capture *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		*capture = c.GetString("trace_id")
		c.Status(http.StatusOK)
	})
	return r
}

func TestTraceIDMiddlewareMintsWhenAbsent(t *testing.T) {
	var seen string
	r := traceIDRouter(&seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	require.Equal(t, seen, w.Header().Get(TraceIDHeader))
}

func TestTraceIDMiddlewarePropagatesCallerID(t *testing.T) {
	var seen string
	r := traceIDRouter(&seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceIDHeader, "gateway-7f3a")
	r.ServeHTTP(w, req)

	require.Equal(t, "gateway-7f3a", seen)
	require.Equal(t, "gateway-7f3a", w.Header().Get(TraceIDHeader))
}
