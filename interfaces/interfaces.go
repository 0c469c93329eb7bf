// Package interfaces defines core abstractions for the recommendation API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"net/http"
	"time"

	"github.com/saludarte/saludarte-api/catalog/entities"
)

// CatalogQualityReport provides a summary of catalog data quality issues
type CatalogQualityReport struct {
	DuplicateNames               []string
	ProductsWithoutSymptoms      int // Count of products with an empty symptoms field
	ProductsWithoutBenefits      int // Count of products with an empty benefits field
	ProductsWithoutDosage        int
	GenderRestrictedProducts     int
	ProductsWithoutSymptomsNames []string
	ProductsWithoutBenefitsNames []string
}

// DataStore defines the contract for catalog storage operations.
// It provides thread-safe access to the product catalog with atomic
// operations for zero-downtime reloads.
type DataStore interface {
	// Data retrieval methods
	GetProducts() []entities.Product
	GetProductsMap() map[string]entities.Product
	GetQualityReport() *CatalogQualityReport
	GetLastUpdated() time.Time
	IsUpdating() bool
	GetServerStartTime() time.Time

	// Data update methods
	UpdateData(products []entities.Product, productsMap map[string]entities.Product,
		report *CatalogQualityReport)
	BeginUpdate() bool
	EndUpdate()
}

// Parser defines the contract for loading the product catalog from its
// external source file and transforming rows into structured entities.
type Parser interface {
	// ParseCatalog reads and parses the whole product catalog
	ParseCatalog() ([]entities.Product, map[string]entities.Product, error)
}

// Recommender defines the contract for the symptom-to-product pipeline.
type Recommender interface {
	Recommend(catalog []entities.Product, userText string, profile *entities.UserProfile) []entities.Recommendation
}

// Scheduler defines the contract for job scheduling and health monitoring.
// It manages automated catalog reloads and system health checks.
type Scheduler interface {
	// Lifecycle management
	Start() error
	Stop()
}

// HTTPHandler defines the contract for HTTP request handlers.
// It provides a consistent interface for all API endpoints.
type HTTPHandler interface {
	// ServeHTTP implements the http.Handler interface
	ServeHTTP(w http.ResponseWriter, r *http.Request)

	// Specific endpoint handlers
	Recommend(w http.ResponseWriter, r *http.Request)
	ServeCatalog(w http.ResponseWriter, r *http.Request)
	ServePagedCatalog(w http.ResponseWriter, r *http.Request)
	FindProduct(w http.ResponseWriter, r *http.Request)
	ServeSymptoms(w http.ResponseWriter, r *http.Request)
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// HealthChecker defines the contract for health check functionality.
// It provides system health monitoring and reporting.
type HealthChecker interface {
	// HealthCheck returns current system health status
	HealthCheck() (status string, details map[string]any, httpStatus int)

	// CalculateNextUpdate returns the next scheduled catalog reload time
	CalculateNextUpdate() time.Time
}

// DataValidator defines the contract for data validation operations.
// It ensures catalog integrity and user input safety.
type DataValidator interface {
	// ValidateProduct checks if a product entity is valid
	ValidateProduct(p *entities.Product) error

	// ValidateCatalogIntegrity performs comprehensive catalog validation
	ValidateCatalogIntegrity(products []entities.Product) error

	// ReportCatalogQuality generates a quality report with all issues found
	ReportCatalogQuality(products []entities.Product) *CatalogQualityReport

	// ValidateInput validates user input strings
	ValidateInput(input string) error

	// ValidateSymptomText validates free-form symptom descriptions
	ValidateSymptomText(input string) error
}
