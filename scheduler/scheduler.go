// Package scheduler provides automated catalog reload scheduling and health
// monitoring for the recommendation API. It handles cron-based reloads and
// coordinates refresh operations with the data container using dependency
// injection.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/saludarte/saludarte-api/interfaces"
	"github.com/saludarte/saludarte-api/logging"
	"github.com/saludarte/saludarte-api/metrics"
	"github.com/saludarte/saludarte-api/validation"
)

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler handles catalog reloads and health monitoring using dependency injection
type Scheduler struct {
	dataStore interfaces.DataStore
	parser    interfaces.Parser
	scheduler *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(dataStore interfaces.DataStore, parser interfaces.Parser) *Scheduler {
	return &Scheduler{
		dataStore: dataStore,
		parser:    parser,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start initializes the scheduler with catalog reloads and health monitoring
func (s *Scheduler) Start() error {
	// Initial load
	if err := s.updateData(); err != nil {
		logging.Error("Failed to perform initial catalog load", "error", err)
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	// Schedule reloads at 06:00 daily
	_, err := s.scheduler.Every(1).Days().At("06:00").Do(func() {
		if err := s.updateData(); err != nil {
			logging.Error("Failed to reload catalog", "error", err)
		}
	})

	if err != nil {
		logging.Error("Failed to schedule catalog reloads", "error", err)
		return fmt.Errorf("failed to schedule catalog reloads: %w", err)
	}

	s.scheduler.StartAsync()

	// Start health monitoring
	s.startHealthMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// updateData performs a complete catalog reload using injected dependencies
func (s *Scheduler) updateData() error {
	// Prevent concurrent updates
	if !s.dataStore.BeginUpdate() {
		logging.Info("Catalog reload already in progress, skipping...")
		return nil
	}
	defer s.dataStore.EndUpdate()

	logging.Info(fmt.Sprintf("Starting catalog reload at: %s", time.Now().Format(time.RFC3339)))
	start := time.Now()

	newProducts, newProductsMap, err := s.parser.ParseCatalog()
	if err != nil {
		logging.Error("Failed to parse catalog", "error", err)
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	validator := validation.NewDataValidator()
	report := validator.ReportCatalogQuality(newProducts)

	if len(report.DuplicateNames) > 0 {
		logging.Warn("Duplicate product names detected",
			"total", len(report.DuplicateNames),
			"names", report.DuplicateNames,
		)
	}

	if report.ProductsWithoutSymptoms > 0 {
		logging.Warn("Products without symptoms text",
			"count", report.ProductsWithoutSymptoms,
			"names", report.ProductsWithoutSymptomsNames,
		)
	}

	if report.ProductsWithoutBenefits > 0 {
		logging.Warn("Products without benefits text",
			"count", report.ProductsWithoutBenefits,
			"names", report.ProductsWithoutBenefitsNames,
		)
	}

	// Atomic update using injected data store (including report)
	s.dataStore.UpdateData(newProducts, newProductsMap, report)
	metrics.CatalogProducts.Set(float64(len(newProducts)))

	elapsed := time.Since(start)
	logging.Info("Catalog reload completed", "duration", elapsed.String(), "product_count", len(newProducts))

	return nil
}

// startHealthMonitoring monitors the freshness of catalog reloads
func (s *Scheduler) startHealthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			lastUpdate := s.dataStore.GetLastUpdated()
			if time.Since(lastUpdate) > 25*time.Hour {
				logging.Warn("Catalog hasn't been reloaded in over 25 hours")
			}
		}
	}()
}
