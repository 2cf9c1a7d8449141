package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/go-eventbooking/internal/config"
	"github.com/deppfellow/go-eventbooking/internal/errs"
	"github.com/deppfellow/go-eventbooking/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{Config: config.DefaultConfig(), Logger: &logger}
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("reuses the incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})
}

func TestEnhanceContext_StoresLoggerInRequestContext(t *testing.T) {
	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(newTestServer()).EnhanceContext())
	e.GET("/", func(c echo.Context) error {
		fromEcho := GetLogger(c)
		fromCtx := zerolog.Ctx(c.Request().Context())
		assert.Same(t, fromEcho, fromCtx)
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer())

	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.GET("/http", func(c echo.Context) error {
		code := "USER_NOT_FOUND"
		return errs.NewNotFoundError("User not found", true, &code)
	})
	e.GET("/pg", func(c echo.Context) error {
		return &pgconn.PgError{Code: "23503", TableName: "bookings", ConstraintName: "bookings_event_id_fkey"}
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("connection refused")
	})

	tests := []struct {
		method string
		path   string
		status int
		code   string
	}{
		{http.MethodGet, "/http", http.StatusNotFound, "USER_NOT_FOUND"},
		{http.MethodGet, "/pg", http.StatusBadRequest, "EVENT_NOT_FOUND"},
		{http.MethodGet, "/boom", http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{http.MethodGet, "/missing", http.StatusNotFound, "NOT_FOUND"},
		{http.MethodPost, "/http", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)

			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.status, body.Status)
		})
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer()
	s.Config.Server.RateLimit = 1
	s.Config.Server.RateBurst = 1
	global := NewGlobalMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/users", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/status", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	do := func(path string) int {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("/users"))
	assert.Equal(t, http.StatusTooManyRequests, do("/users"))
	assert.Equal(t, http.StatusOK, do("/status"))
	assert.Equal(t, http.StatusOK, do("/status"))
}
