package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/go-eventbooking/internal/config"
	"github.com/deppfellow/go-eventbooking/internal/errs"
	"github.com/deppfellow/go-eventbooking/internal/handler"
	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/deppfellow/go-eventbooking/internal/repository"
	"github.com/deppfellow/go-eventbooking/internal/server"
	"github.com/deppfellow/go-eventbooking/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	t *testing.T
	e *echo.Echo
}

func newTestAPI(t *testing.T, seed bool) *testAPI {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Server.RateLimit = 0
	logger := zerolog.Nop()
	s := &server.Server{Config: cfg, Logger: &logger}

	services := service.NewServices(s, repository.NewMemoryRepositories(seed))
	return &testAPI{t: t, e: NewRouter(s, handler.NewHandlers(s, services))}
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestUsersEndToEnd(t *testing.T) {
	api := newTestAPI(t, false)

	rec := api.do(http.MethodPost, "/users", map[string]any{"name": "Dana", "isActive": true})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/users/1", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, int64(1), decode[model.User](t, rec).ID)

	rec = api.do(http.MethodPost, "/users", map[string]any{"name": "Eli", "isActive": false})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(2), decode[model.User](t, rec).ID)

	rec = api.do(http.MethodGet, "/users/active/true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	active := decode[[]model.User](t, rec)
	require.Len(t, active, 1)
	assert.Equal(t, "Dana", active[0].Name)

	rec = api.do(http.MethodGet, "/users/search?name=DAN", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	found := decode[[]model.User](t, rec)
	require.Len(t, found, 1)
	assert.Equal(t, int64(1), found[0].ID)

	rec = api.do(http.MethodPut, "/users/2", map[string]any{"isActive": true})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/users/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.User{ID: 2, Name: "Eli", IsActive: true}, decode[model.User](t, rec))

	rec = api.do(http.MethodDelete, "/users/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/users/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)

	rec = api.do(http.MethodDelete, "/users/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPut, "/users/1", map[string]any{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsers_EmptyStoreListsEmptyArray(t *testing.T) {
	api := newTestAPI(t, false)

	rec := api.do(http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUsers_SeededStore(t *testing.T) {
	api := newTestAPI(t, true)

	rec := api.do(http.MethodGet, "/users/search?name=", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.User](t, rec), 3)

	rec = api.do(http.MethodGet, "/users/active/false", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inactive := decode[[]model.User](t, rec)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Alice", inactive[0].Name)
}

func TestUsers_BadInput(t *testing.T) {
	api := newTestAPI(t, false)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"non numeric id", http.MethodGet, "/users/abc", ""},
		{"zero id", http.MethodGet, "/users/0", ""},
		{"non boolean status", http.MethodGet, "/users/active/maybe", ""},
		{"malformed body", http.MethodPost, "/users", "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			api.e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestEventsAndBookings(t *testing.T) {
	api := newTestAPI(t, false)

	rec := api.do(http.MethodPost, "/events", map[string]any{"location": "Jakarta"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decode[errs.HTTPError](t, rec).Errors)

	rec = api.do(http.MethodPost, "/events", map[string]any{
		"title":    "Go Meetup",
		"location": "Jakarta",
		"date":     "2025-03-14T18:00:00Z",
		"capacity": 50,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/events/1", rec.Header().Get(echo.HeaderLocation))
	event := decode[model.Event](t, rec)
	assert.Equal(t, int64(1), event.ID)

	rec = api.do(http.MethodPost, "/bookings", map[string]any{"eventId": event.ID})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/bookings", map[string]any{"userName": "Dana", "eventId": 99})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EVENT_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)

	rec = api.do(http.MethodPost, "/bookings", map[string]any{"userName": "Dana", "eventId": event.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decode[model.Booking](t, rec).ID)

	rec = api.do(http.MethodGet, "/bookings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	bookings := decode[[]model.Booking](t, rec)
	require.Len(t, bookings, 1)
	require.NotNil(t, bookings[0].Event)
	assert.Equal(t, "Go Meetup", bookings[0].Event.Title)

	rec = api.do(http.MethodGet, "/events/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	withBookings := decode[model.Event](t, rec)
	require.Len(t, withBookings.Bookings, 1)
	assert.Equal(t, "Dana", withBookings.Bookings[0].UserName)

	rec = api.do(http.MethodGet, "/events/2", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "EVENT_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)
}

func TestSystemRoutes(t *testing.T) {
	api := newTestAPI(t, false)

	rec := api.do(http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode[map[string]any](t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	api.do(http.MethodGet, "/users", nil)
	rec = api.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `eventbooking_http_requests_total{method="GET",route="/users",status="200"}`)

	rec = api.do(http.MethodGet, "/emails/booking_confirmation/preview", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Go Meetup")

	rec = api.do(http.MethodGet, "/emails/nope/preview", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
