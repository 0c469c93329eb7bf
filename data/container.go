// Package data provides thread-safe storage and management for the product
// catalog. It includes the DataContainer struct with atomic operations for
// zero-downtime catalog reloads and thread-safe access methods.
package data

import (
	"sync/atomic"
	"time"

	"github.com/saludarte/saludarte-api/catalog/entities"
	"github.com/saludarte/saludarte-api/interfaces"
	"github.com/saludarte/saludarte-api/logging"
)

// Compile-time check to ensure DataContainer implements DataStore
var _ interfaces.DataStore = (*DataContainer)(nil)

// DataContainer holds the catalog with atomic pointers for zero-downtime reloads
type DataContainer struct {
	products        atomic.Value // []entities.Product
	productsMap     atomic.Value // map[string]entities.Product, keyed by normalized name
	qualityReport   atomic.Value // *interfaces.CatalogQualityReport
	lastUpdated     atomic.Value // time.Time
	updating        atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewDataContainer creates a new DataContainer with empty data
func NewDataContainer() *DataContainer {
	dc := &DataContainer{}
	dc.products.Store(make([]entities.Product, 0))
	dc.productsMap.Store(make(map[string]entities.Product))
	dc.qualityReport.Store(&interfaces.CatalogQualityReport{})
	dc.lastUpdated.Store(time.Time{})
	dc.serverStartTime.Store(time.Time{})
	return dc
}

// Thread-safe getters with type check

// GetProducts returns the product catalog
func (dc *DataContainer) GetProducts() []entities.Product {
	if v := dc.products.Load(); v != nil {
		if products, ok := v.([]entities.Product); ok {
			return products
		}
	}

	logging.Warn("Product list is empty or invalid")
	return []entities.Product{}
}

// GetProductsMap returns the normalized-name product map for O(1) lookups
func (dc *DataContainer) GetProductsMap() map[string]entities.Product {
	if v := dc.productsMap.Load(); v != nil {
		if productsMap, ok := v.(map[string]entities.Product); ok {
			return productsMap
		}
	}

	logging.Warn("ProductsMap is empty or invalid")
	return make(map[string]entities.Product)
}

// GetQualityReport returns the quality report of the last catalog load
func (dc *DataContainer) GetQualityReport() *interfaces.CatalogQualityReport {
	if v := dc.qualityReport.Load(); v != nil {
		if report, ok := v.(*interfaces.CatalogQualityReport); ok {
			return report
		}
	}

	logging.Warn("Could not get the catalog quality report")
	return &interfaces.CatalogQualityReport{}
}

// GetLastUpdated returns the timestamp of the last catalog reload
func (dc *DataContainer) GetLastUpdated() time.Time {
	if v := dc.lastUpdated.Load(); v != nil {
		if lastUpdated, ok := v.(time.Time); ok {
			return lastUpdated
		}
	}

	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// IsUpdating returns true if a catalog reload is currently in progress
func (dc *DataContainer) IsUpdating() bool {
	return dc.updating.Load()
}

// SetServerStartTime sets the server start time
func (dc *DataContainer) SetServerStartTime(startTime time.Time) {
	dc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time
func (dc *DataContainer) GetServerStartTime() time.Time {
	if v := dc.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// UpdateData atomically replaces the catalog in the container
func (dc *DataContainer) UpdateData(products []entities.Product, productsMap map[string]entities.Product,
	report *interfaces.CatalogQualityReport) {

	// Atomic swap (zero downtime replacement)
	dc.products.Store(products)
	dc.productsMap.Store(productsMap)
	if report != nil {
		dc.qualityReport.Store(report)
	}
	dc.lastUpdated.Store(time.Now())
}

// BeginUpdate marks the start of a catalog reload operation
// Returns true if the reload can proceed, false if another is in progress
func (dc *DataContainer) BeginUpdate() bool {
	return dc.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the end of a catalog reload operation
func (dc *DataContainer) EndUpdate() {
	dc.updating.Store(false)
}
