// Package health provides health checking functionality for the recommendation API.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/saludarte/saludarte-api/interfaces"
)

// Compile-time check to ensure HealthCheckerImpl implements HealthChecker
var _ interfaces.HealthChecker = (*HealthCheckerImpl)(nil)

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	dataStore interfaces.DataStore
}

// NewHealthChecker creates a new health checker with injected dependencies
func NewHealthChecker(dataStore interfaces.DataStore) *HealthCheckerImpl {
	return &HealthCheckerImpl{
		dataStore: dataStore,
	}
}

// HealthCheck returns HTTP-specific health data.
// The catalog changes rarely, so staleness thresholds are generous: a day-old
// catalog is normal, a week-old one means the reload job is broken.
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	products := h.dataStore.GetProducts()
	report := h.dataStore.GetQualityReport()
	lastUpdate := h.dataStore.GetLastUpdated()
	isUpdating := h.dataStore.IsUpdating()

	dataAge := time.Since(lastUpdate)

	switch {
	case len(products) == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 7*24*time.Hour:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 48*time.Hour:
		status = "degraded"
		httpStatus = http.StatusOK

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"api_version":               "1.0",
		"last_update":               lastUpdate.Format(time.RFC3339),
		"data_age_hours":            math.Round(dataAge.Hours()*10) / 10,
		"products":                  len(products),
		"products_without_symptoms": report.ProductsWithoutSymptoms,
		"is_updating":               isUpdating,
	}

	return status, data, httpStatus
}

// CalculateNextUpdate returns the next scheduled catalog reload time
func (h *HealthCheckerImpl) CalculateNextUpdate() time.Time {
	now := time.Now()

	// Catalog reloads run daily at 06:00
	sixAM := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, now.Location())

	if now.Before(sixAM) {
		return sixAM
	}

	return sixAM.AddDate(0, 0, 1)
}
