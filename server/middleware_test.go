package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetTokenCost(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		expectedCost int64
	}{
		// Free documentation routes
		{"Index page", "/", 0},
		{"Favicon", "/favicon.ico", 0},

		// Exact matches
		{"Full catalog", "/catalogo", 200},
		{"Symptom list", "/sintomas", 5},
		{"Health endpoint", "/health", 5},
		{"Metrics endpoint", "/metrics", 5},

		// Path patterns
		{"Paged catalog", "/catalogo/1", 20},
		{"Paged catalog high page", "/catalogo/42", 20},
		{"Recommendation", "/recomendar", 50},
		{"Product search", "/producto/valeriana", 100},
		{"Product search multi word", "/producto/te%20relajante", 100},

		// Default case
		{"Unknown endpoint", "/desconocido", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			cost := getTokenCost(req)

			if cost != tt.expectedCost {
				t.Errorf("Expected cost %d for path %s, got %d", tt.expectedCost, tt.path, cost)
			}
		})
	}
}

func TestRateLimitHandler_AllowsNormalTraffic(t *testing.T) {
	handler := RateLimitHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "198.51.100.10:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status OK, got %d", rr.Code)
	}

	if rr.Header().Get("X-RateLimit-Limit") != "1000" {
		t.Errorf("Expected X-RateLimit-Limit header 1000, got %q", rr.Header().Get("X-RateLimit-Limit"))
	}
	if rr.Header().Get("X-RateLimit-Remaining") == "" {
		t.Error("Expected X-RateLimit-Remaining header to be set")
	}
}

func TestRateLimitHandler_BlocksWhenExhausted(t *testing.T) {
	handler := RateLimitHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// The full catalog costs 200 tokens, so a 1000 token bucket allows
	// five requests before running dry.
	clientAddr := "198.51.100.20:1234"
	var lastCode int
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest("GET", "/catalogo", nil)
		req.RemoteAddr = clientAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		lastCode = rr.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Errorf("Expected status 429 after exhausting tokens, got %d", lastCode)
	}
}

func TestRateLimitHandler_FreeRoutesNeverBlocked(t *testing.T) {
	handler := RateLimitHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	clientAddr := "198.51.100.30:1234"
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = clientAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Free route blocked on request %d with status %d", i+1, rr.Code)
		}
	}
}

func TestRateLimiter_SeparateClientBuckets(t *testing.T) {
	rl := NewRateLimiter()

	first := rl.getBucket("203.0.113.1")
	second := rl.getBucket("203.0.113.2")

	if first == second {
		t.Error("Different clients should get separate buckets")
	}

	if again := rl.getBucket("203.0.113.1"); again != first {
		t.Error("Same client should reuse its bucket")
	}
}

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	respondWithJSON(rr, http.StatusTeapot, map[string]string{"mensaje": "ok"})

	if rr.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json content type, got %q", ct)
	}
	if rr.Body.Len() == 0 {
		t.Error("Expected a JSON body")
	}
}
