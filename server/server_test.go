package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/saludarte/saludarte-api/config"
	"github.com/saludarte/saludarte-api/logging"
)

// stubHandler records which endpoint handlers were invoked
type stubHandler struct {
	called map[string]int
}

func newStubHandler() *stubHandler {
	return &stubHandler{called: make(map[string]int)}
}

func (s *stubHandler) record(name string, w http.ResponseWriter) {
	s.called[name]++
	w.WriteHeader(http.StatusOK)
}

func (s *stubHandler) ServeHTTP(w http.ResponseWriter, r *http.Request)  { s.record("root", w) }
func (s *stubHandler) Recommend(w http.ResponseWriter, r *http.Request)  { s.record("recommend", w) }
func (s *stubHandler) ServeCatalog(w http.ResponseWriter, r *http.Request) {
	s.record("catalog", w)
}
func (s *stubHandler) ServePagedCatalog(w http.ResponseWriter, r *http.Request) {
	s.record("pagedCatalog", w)
}
func (s *stubHandler) FindProduct(w http.ResponseWriter, r *http.Request) {
	s.record("findProduct", w)
}
func (s *stubHandler) ServeSymptoms(w http.ResponseWriter, r *http.Request) {
	s.record("symptoms", w)
}
func (s *stubHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	s.record("health", w)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:           "8080",
		Address:        "localhost",
		Env:            config.EnvTest,
		LogLevel:       "error",
		MaxRequestBody: 1048576,
		MaxHeaderSize:  1048576,
	}
}

func TestNewServer(t *testing.T) {
	logging.InitLogger("")

	cfg := testConfig()
	handler := newStubHandler()
	server := NewServer(cfg, handler)

	if server == nil {
		t.Fatal("Server should not be nil")
	}

	if server.server.Addr != "localhost:8080" {
		t.Errorf("Expected server address localhost:8080, got %s", server.server.Addr)
	}

	if server.config != cfg {
		t.Error("Config should be set correctly")
	}

	if server.router == nil {
		t.Error("Router should not be nil")
	}

	if server.handler == nil {
		t.Error("HTTP handler should not be nil")
	}
}

func TestSetupMiddleware(t *testing.T) {
	logging.InitLogger("")

	server := NewServer(testConfig(), newStubHandler())

	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "127.0.0.1:1234" // Localhost passes BlockDirectAccessMiddleware
	rr := httptest.NewRecorder()

	server.router.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		if middleware.GetReqID(r.Context()) == "" {
			t.Error("RequestID should be available in request context")
		}
		w.WriteHeader(http.StatusOK)
	})

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}

func TestSetupRoutes(t *testing.T) {
	logging.InitLogger("")

	handler := newStubHandler()
	server := NewServer(testConfig(), handler)

	apiRoutes := []struct {
		method  string
		path    string
		handler string
	}{
		{"POST", "/recomendar", "recommend"},
		{"GET", "/catalogo", "catalog"},
		{"GET", "/catalogo/1", "pagedCatalog"},
		{"GET", "/producto/valeriana", "findProduct"},
		{"GET", "/sintomas", "symptoms"},
		{"GET", "/health", "health"},
	}

	for _, route := range apiRoutes {
		req := httptest.NewRequest(route.method, route.path, nil)
		req.RemoteAddr = "127.0.0.1:1234"
		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("Route %s %s returned status %d", route.method, route.path, rr.Code)
		}
		if handler.called[route.handler] != 1 {
			t.Errorf("Route %s %s did not reach its handler", route.method, route.path)
		}
	}

	// Metrics endpoint is served by the Prometheus handler, not the API handler
	req := httptest.NewRequest("GET", "/metrics", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("Metrics route returned status %d", rr.Code)
	}

	// Documentation routes serve the embedded assets
	docRoutes := []struct {
		path        string
		contentType string
		marker      string
	}{
		{"/", "text/html; charset=utf-8", "SaludArte API"},
		{"/favicon.ico", "image/x-icon", ""},
	}
	for _, route := range docRoutes {
		req := httptest.NewRequest("GET", route.path, nil)
		req.RemoteAddr = "127.0.0.1:1234"
		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("Documentation route %s returned status %d", route.path, rr.Code)
		}
		if got := rr.Header().Get("Content-Type"); got != route.contentType {
			t.Errorf("Documentation route %s returned Content-Type %q, want %q", route.path, got, route.contentType)
		}
		if rr.Body.Len() == 0 {
			t.Errorf("Documentation route %s returned an empty body", route.path)
		}
		if route.marker != "" && !strings.Contains(rr.Body.String(), route.marker) {
			t.Errorf("Documentation route %s should mention %q", route.path, route.marker)
		}
	}
}

func TestServerLifecycle(t *testing.T) {
	logging.InitLogger("")

	cfg := testConfig()
	cfg.Port = "0" // Let the OS pick a free port
	server := NewServer(cfg, newStubHandler())

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.server.ListenAndServe()
	}()

	// Give the listener time to bind
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		t.Errorf("Server shutdown should not error: %v", err)
	}

	select {
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("Expected ErrServerClosed after shutdown, got %v", err)
		}
	case <-time.After(1 * time.Second):
		t.Error("Server should have stopped after shutdown")
	}
}

func TestServerConfiguration(t *testing.T) {
	logging.InitLogger("")

	server := NewServer(testConfig(), newStubHandler())

	if server.server.ReadTimeout != 15*time.Second {
		t.Errorf("Read timeout should be 15 seconds, got %v", server.server.ReadTimeout)
	}

	if server.server.WriteTimeout != 15*time.Second {
		t.Errorf("Write timeout should be 15 seconds, got %v", server.server.WriteTimeout)
	}

	if server.server.IdleTimeout != 60*time.Second {
		t.Errorf("Idle timeout should be 60 seconds, got %v", server.server.IdleTimeout)
	}
}

func BenchmarkNewServer(b *testing.B) {
	logging.InitLogger("")

	cfg := testConfig()
	handler := newStubHandler()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NewServer(cfg, handler)
	}
}
