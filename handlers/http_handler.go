// Package handlers provides HTTP request handlers for the recommendation API
// endpoints. This file implements the HTTPHandler interface with dependency
// injection.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/saludarte/saludarte-api/catalog/entities"
	"github.com/saludarte/saludarte-api/interfaces"
	"github.com/saludarte/saludarte-api/logging"
	"github.com/saludarte/saludarte-api/recommender"
)

// Compile-time check to ensure HTTPHandlerImpl implements HTTPHandler
var _ interfaces.HTTPHandler = (*HTTPHandlerImpl)(nil)

// HTTPHandlerImpl implements the interfaces.HTTPHandler interface
type HTTPHandlerImpl struct {
	dataStore     interfaces.DataStore
	validator     interfaces.DataValidator
	recommender   interfaces.Recommender
	healthChecker interfaces.HealthChecker
	lexicon       *recommender.Lexicon
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(dataStore interfaces.DataStore, validator interfaces.DataValidator,
	rec interfaces.Recommender, healthChecker interfaces.HealthChecker,
	lexicon *recommender.Lexicon) *HTTPHandlerImpl {
	return &HTTPHandlerImpl{
		dataStore:     dataStore,
		validator:     validator,
		recommender:   rec,
		healthChecker: healthChecker,
		lexicon:       lexicon,
	}
}

// ServeHTTP implements the http.Handler interface
func (h *HTTPHandlerImpl) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// This is a placeholder - the actual routing is handled by chi
	http.Error(w, "Not implemented", http.StatusNotImplemented)
}

// RespondWithJSON writes a JSON response
func (h *HTTPHandlerImpl) RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error response
func (h *HTTPHandlerImpl) RespondWithError(w http.ResponseWriter, code int, message string) {
	errorResponse := map[string]interface{}{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	h.RespondWithJSON(w, code, errorResponse)
}

// RecommendRequest is the POST body for the recommendation endpoint
type RecommendRequest struct {
	Text    string                `json:"texto"`
	Profile *entities.UserProfile `json:"perfil,omitempty"`
}

// RecommendResponse wraps the recommendation list with request echo data
type RecommendResponse struct {
	Query           string                    `json:"consulta"`
	Recommendations []entities.Recommendation `json:"recomendaciones"`
}

// Recommend handles POST requests with free-form symptom text and an
// optional user profile, returning product recommendations.
func (h *HTTPHandlerImpl) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			h.RespondWithError(w, http.StatusBadRequest, "Missing request body")
			return
		}
		logging.Warn("Malformed recommendation request", "error", err)
		h.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// Empty text is a valid degraded query: the pipeline answers with a
	// guidance message rather than an error. Only unsafe content is rejected.
	if strings.TrimSpace(req.Text) != "" {
		if err := h.validator.ValidateSymptomText(req.Text); err != nil {
			h.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	products := h.dataStore.GetProducts()

	// The recommender service records the outcome and symptom metrics; the
	// handler only shapes the response.
	recommendations := h.recommender.Recommend(products, req.Text, req.Profile)

	h.RespondWithJSON(w, http.StatusOK, RecommendResponse{
		Query:           req.Text,
		Recommendations: recommendations,
	})
}

// ServeCatalog returns the full product catalog
func (h *HTTPHandlerImpl) ServeCatalog(w http.ResponseWriter, r *http.Request) {
	products := h.dataStore.GetProducts()
	h.RespondWithJSON(w, http.StatusOK, products)
}

// ServePagedCatalog returns paginated catalog products
func (h *HTTPHandlerImpl) ServePagedCatalog(w http.ResponseWriter, r *http.Request) {
	pageNumber := chi.URLParam(r, "pageNumber")
	page, err := strconv.Atoi(pageNumber)
	if err != nil || page < 1 {
		logging.Warn("Unusual user input", "pageNumber", pageNumber)
		h.RespondWithError(w, http.StatusBadRequest, "Invalid page number")
		return
	}

	products := h.dataStore.GetProducts()
	pageSize := 10
	start := (page - 1) * pageSize
	end := start + pageSize

	if start >= len(products) {
		h.RespondWithError(w, http.StatusNotFound, "Page not found")
		return
	}

	if end > len(products) {
		end = len(products)
	}

	pagedProducts := products[start:end]
	totalItems := len(products)
	maxPage := (totalItems + pageSize - 1) / pageSize

	response := map[string]interface{}{
		"data":       pagedProducts,
		"page":       page,
		"pageSize":   pageSize,
		"totalItems": totalItems,
		"maxPage":    maxPage,
	}

	h.RespondWithJSON(w, http.StatusOK, response)
}

// FindProduct searches for catalog products by name
func (h *HTTPHandlerImpl) FindProduct(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "nombre")
	if name == "" {
		h.RespondWithError(w, http.StatusBadRequest, "Missing search term")
		return
	}

	// Validate input using the validator
	if err := h.validator.ValidateInput(name); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Accent-insensitive substring search over the pre-normalized names
	search := recommender.Normalize(name)

	products := h.dataStore.GetProducts()
	var results []entities.Product

	for _, p := range products {
		if strings.Contains(p.NameNorm, search) {
			results = append(results, p)
		}
	}

	if results == nil {
		results = []entities.Product{}
	}

	// Always return 200 with results array (empty if no matches)
	h.RespondWithJSON(w, http.StatusOK, results)
}

// ServeSymptoms returns every canonical symptom key the detector knows
func (h *HTTPHandlerImpl) ServeSymptoms(w http.ResponseWriter, r *http.Request) {
	keys := h.lexicon.AllSymptomKeys()
	response := map[string]interface{}{
		"sintomas": keys,
		"total":    len(keys),
	}
	h.RespondWithJSON(w, http.StatusOK, response)
}

// HealthResponseImpl defines the structure for consistent JSON ordering
type HealthResponseImpl struct {
	Status        string                 `json:"status"`
	LastUpdate    string                 `json:"last_update"`
	DataAgeHours  float64                `json:"data_age_hours"`
	UptimeSeconds float64                `json:"uptime_seconds"`
	Data          map[string]interface{} `json:"data"`
	System        map[string]interface{} `json:"system"`
}

// HealthCheck returns server health information
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	// Get memory statistics
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.dataStore.GetServerStartTime())
	lastUpdate := h.dataStore.GetLastUpdated()
	dataAge := time.Since(lastUpdate)

	status, data, httpStatus := h.healthChecker.HealthCheck()
	data["next_update"] = h.healthChecker.CalculateNextUpdate().Format(time.RFC3339)

	response := HealthResponseImpl{
		Status:        status,
		LastUpdate:    lastUpdate.Format(time.RFC3339),
		DataAgeHours:  dataAge.Hours(),
		UptimeSeconds: uptime.Seconds(),
		Data:          data,
		System: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc_mb":       int(m.Alloc / 1024 / 1024),
				"total_alloc_mb": int(m.TotalAlloc / 1024 / 1024),
				"sys_mb":         int(m.Sys / 1024 / 1024),
				"num_gc":         m.NumGC,
			},
		},
	}

	h.RespondWithJSON(w, httpStatus, response)
}
