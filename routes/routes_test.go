package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ziaclinic/handlers"

	"github.com/gin-gonic/gin"
)

func named(name string) gin.HandlerFunc {
	return func(c *gin.Context) { c.String(http.StatusOK, name) }
}

func testBundle() *handlers.HandlerBundle {
	return &handlers.HandlerBundle{
		ListAppointmentsHandler:       named("listAppointments"),
		ListAppointmentsByDateHandler: named("listByDate"),
		GetAppointmentHandler:         named("getAppointment"),
		CreateAppointmentHandler:      named("createAppointment"),
		UpdateAppointmentHandler:      named("updateAppointment"),
		DeleteAppointmentHandler:      named("deleteAppointment"),
		ListPaymentsHandler:           named("listPayments"),
		GetPaymentHandler:             named("getPayment"),
		CreatePaymentHandler:          named("createPayment"),
		UpdatePaymentHandler:          named("updatePayment"),
		DeletePaymentHandler:          named("deletePayment"),
		RootHandler:                   named("root"),
		HealthCheckHandler:            named("health"),
		FaviconHandler:                named("favicon"),
	}
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, testBundle(), []string{"http://localhost:5173", "https://ziahomeopethic.online"})
	return r
}

func TestRouteTable(t *testing.T) {
	r := newEngine()
	cases := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/api/appointments", "listAppointments"},
		{http.MethodGet, "/api/appointments/date/2025-03-10", "listByDate"},
		{http.MethodGet, "/api/appointments/abc", "getAppointment"},
		{http.MethodPost, "/api/appointments", "createAppointment"},
		{http.MethodPatch, "/api/appointments/abc", "updateAppointment"},
		{http.MethodDelete, "/api/appointments/abc", "deleteAppointment"},
		{http.MethodGet, "/api/payments", "listPayments"},
		{http.MethodGet, "/api/payments/abc", "getPayment"},
		{http.MethodPost, "/api/payments", "createPayment"},
		{http.MethodPatch, "/api/payments/abc", "updatePayment"},
		{http.MethodDelete, "/api/payments/abc", "deletePayment"},
		{http.MethodGet, "/", "root"},
		{http.MethodGet, "/health", "health"},
		{http.MethodGet, "/favicon.ico", "favicon"},
		{http.MethodGet, "/favicon.png", "favicon"},
		{http.MethodGet, "/favicon", "favicon"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != http.StatusOK || w.Body.String() != tc.want {
			t.Errorf("%s %s: expected %q, got %d %q", tc.method, tc.path, tc.want, w.Code, w.Body.String())
		}
	}
}

func TestCORSAllowedOrigin(t *testing.T) {
	r := newEngine()

	req := httptest.NewRequest(http.MethodOptions, "/api/appointments", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight: expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected allow-origin %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("expected credentials to be allowed")
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	r := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("no allow-origin header expected")
	}
}

func TestNoOriginPassesThrough(t *testing.T) {
	r := newEngine()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("server-to-server calls without Origin should pass, got %d", w.Code)
	}
}

func TestResponsesAreCompressedOnRequest(t *testing.T) {
	r := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Errorf("expected gzip encoding, got %q", got)
	}

	plain := httptest.NewRecorder()
	r.ServeHTTP(plain, httptest.NewRequest(http.MethodGet, "/api/appointments", nil))
	if plain.Header().Get("Content-Encoding") != "" || plain.Body.String() != "listAppointments" {
		t.Errorf("uncompressed response expected without Accept-Encoding, got %q", plain.Body.String())
	}
}
