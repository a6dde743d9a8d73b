package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/middleware"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/logger"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/metrics"
)

type namedHandler struct {
	name string
}

func (h namedHandler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Handler", h.name)
	if code, ok := mux.Vars(r)["confirmationCode"]; ok {
		w.Header().Set("X-Code", code)
	}
	w.WriteHeader(http.StatusOK)
}

func testHandlers() Handlers {
	return Handlers{
		GetLocations:      namedHandler{"locations"},
		GetAvailableSlots: namedHandler{"availability"},
		CreateBooking:     namedHandler{"book"},
		GetBooking:        namedHandler{"booking"},
		ComputeQuote:      namedHandler{"quote"},
		GetProducts:       namedHandler{"products"},
	}
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_Routes(t *testing.T) {
	r := NewRouter(testHandlers(), Options{Logger: logger.NewNop()})

	tests := []struct {
		method  string
		target  string
		handler string
	}{
		{http.MethodGet, "/", "locations"},
		{http.MethodGet, "/locations", "locations"},
		{http.MethodGet, "/availability?location=casa&date=2024-01-15", "availability"},
		{http.MethodPost, "/book", "book"},
		{http.MethodGet, "/bookings/AAW12AB34", "booking"},
		{http.MethodPost, "/quote", "quote"},
		{http.MethodGet, "/products?category=wraps", "products"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := serve(r, tt.method, tt.target)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.handler, rec.Header().Get("X-Handler"))
		})
	}
}

func TestRouter_BookingPathVar(t *testing.T) {
	r := NewRouter(testHandlers(), Options{})

	rec := serve(r, http.MethodGet, "/bookings/AAW12AB34")
	assert.Equal(t, "AAW12AB34", rec.Header().Get("X-Code"))
}

func TestRouter_OptionalRoutesDisabled(t *testing.T) {
	h := testHandlers()
	h.GetBooking = nil
	h.GetProducts = nil
	r := NewRouter(h, Options{})

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/bookings/AAW12AB34").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/products").Code)
}

func TestRouter_NotFound(t *testing.T) {
	r := NewRouter(testHandlers(), Options{})

	rec := serve(r, http.MethodGet, "/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := NewRouter(testHandlers(), Options{})

	rec := serve(r, http.MethodGet, "/quote")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestRouter_Options(t *testing.T) {
	r := NewRouter(testHandlers(), Options{})

	for _, target := range []string{"/book", "/quote", "/anything/else"} {
		rec := serve(r, http.MethodOptions, target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Empty(t, rec.Body.String(), target)
	}
}

func TestRouter_Preflight(t *testing.T) {
	r := NewRouter(testHandlers(), Options{})

	req := httptest.NewRequest(http.MethodOptions, "/quote", nil)
	req.Header.Set("Origin", "http://configurator.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("X-Handler"))
}

func TestRouter_PreflightWithRequestHeaders(t *testing.T) {
	r := NewRouter(testHandlers(), Options{})

	req := httptest.NewRequest(http.MethodOptions, "/book", nil)
	req.Header.Set("Origin", "http://configurator.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "content-type")
	assert.Empty(t, rec.Header().Get("X-Handler"))
	assert.Empty(t, rec.Body.String())
}

func TestRouter_CORSHeadersOnEveryResponse(t *testing.T) {
	r := NewRouter(testHandlers(), Options{})

	for _, target := range []string{"/locations", "/unknown"} {
		rec := serve(r, http.MethodGet, target)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), target)
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	m := metrics.NewWithRegistry("configurator-test", prometheus.NewRegistry())

	r := NewRouter(testHandlers(), Options{Metrics: m, MetricsPath: "/metrics"})

	rec := serve(r, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(r, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)

	withoutMetrics := NewRouter(testHandlers(), Options{})
	assert.Equal(t, http.StatusNotFound, serve(withoutMetrics, http.MethodGet, "/metrics").Code)
}

func TestRouter_RateLimitOnlyOnWrites(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 1, time.Minute, logger.NewNop())
	r := NewRouter(testHandlers(), Options{RateLimiter: limiter})

	require.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/quote").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/book").Code)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/locations").Code)
	}
}
