// Package validation provides data validation functionality for the
// recommendation API: catalog integrity checks and user input safety.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/saludarte/saludarte-api/catalog/entities"
	"github.com/saludarte/saludarte-api/interfaces"
	"github.com/saludarte/saludarte-api/logging"
)

// Pre-compiled regex patterns for performance optimization
// Compiled once at package initialization and reused for all validations
var (
	// Input validation: alphanumeric + Spanish accents + safe punctuation
	inputRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\+'¿?¡!,áéíóúüñÁÉÍÓÚÜÑ]+$`)

	// Dangerous patterns as strings (faster than regex for simple substring matching)
	// strings.Contains is 5-10x faster than regex for these patterns
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"onclick=", "onmouseover=", "onfocus=", "onblur=", "onchange=", "onsubmit=",
		"eval(", "expression(", "url(", "import ", "@import", "binding(", "behavior(",
		// SQL injection patterns
		"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
		"update set", "--", "/*", "*/", "xp_", "sp_", "exec(", "execute(",
		// Command injection patterns
		"| ", "& ", "`", "$(", "${",
		// Path traversal patterns
		"../", "..\\", "%2e%2e", "file://",
		// LDAP injection patterns
		"*)(", "*|(", "*)%",
		// NoSQL injection patterns
		"{$ne:", "{$gt:", "{$where:", "{$or:", "{$regex:", "{$expr:",
	}
)

// DataValidatorImpl implements the interfaces.DataValidator interface
type DataValidatorImpl struct{}

// NewDataValidator creates a new data validator
func NewDataValidator() interfaces.DataValidator {
	return &DataValidatorImpl{}
}

// ValidateProduct checks if a product entity is valid
func (v *DataValidatorImpl) ValidateProduct(p *entities.Product) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}

	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("empty product name")
	}

	if len(p.Name) > 200 {
		return fmt.Errorf("product name too long: %d characters", len(p.Name))
	}

	if len(p.Symptoms) > 2000 {
		return fmt.Errorf("symptoms field too long for %s: %d characters", p.Name, len(p.Symptoms))
	}

	if len(p.Benefits) > 2000 {
		return fmt.Errorf("benefits field too long for %s: %d characters", p.Name, len(p.Benefits))
	}

	if len(p.Ingredients) > 2000 {
		return fmt.Errorf("ingredients field too long for %s: %d characters", p.Name, len(p.Ingredients))
	}

	switch p.Gender {
	case entities.GenderUnisex, entities.GenderFemale, entities.GenderMale:
	default:
		return fmt.Errorf("invalid gender restriction for %s: %q", p.Name, p.Gender)
	}

	if p.NameNorm == "" {
		return fmt.Errorf("missing normalized name for %s", p.Name)
	}

	return nil
}

// ValidateCatalogIntegrity performs comprehensive catalog validation
func (v *DataValidatorImpl) ValidateCatalogIntegrity(products []entities.Product) error {
	if len(products) == 0 {
		return fmt.Errorf("no products found")
	}

	nameMap := make(map[string]bool)
	for _, p := range products {
		if nameMap[p.NameNorm] {
			return fmt.Errorf("duplicate product name found: %s", p.Name)
		}
		nameMap[p.NameNorm] = true

		if err := v.ValidateProduct(&p); err != nil {
			return fmt.Errorf("invalid product %s: %w", p.Name, err)
		}
	}

	return nil
}

// ReportCatalogQuality generates a quality report with all issues found.
// A product without symptoms or benefits text can only ever match through
// ingredient or name keywords, so these are surfaced for catalog upkeep.
func (v *DataValidatorImpl) ReportCatalogQuality(products []entities.Product) *interfaces.CatalogQualityReport {
	report := &interfaces.CatalogQualityReport{
		DuplicateNames:               []string{},
		ProductsWithoutSymptomsNames: []string{},
		ProductsWithoutBenefitsNames: []string{},
	}

	nameMap := make(map[string]bool)
	for _, p := range products {
		if nameMap[p.NameNorm] {
			report.DuplicateNames = append(report.DuplicateNames, p.Name)
		}
		nameMap[p.NameNorm] = true

		if strings.TrimSpace(p.Symptoms) == "" {
			report.ProductsWithoutSymptoms++
			if len(report.ProductsWithoutSymptomsNames) < 10 {
				report.ProductsWithoutSymptomsNames = append(report.ProductsWithoutSymptomsNames, p.Name)
			}
		}

		if strings.TrimSpace(p.Benefits) == "" {
			report.ProductsWithoutBenefits++
			if len(report.ProductsWithoutBenefitsNames) < 10 {
				report.ProductsWithoutBenefitsNames = append(report.ProductsWithoutBenefitsNames, p.Name)
			}
		}

		if strings.TrimSpace(p.Dosage) == "" {
			report.ProductsWithoutDosage++
		}

		if p.Gender != entities.GenderUnisex {
			report.GenderRestrictedProducts++
		}
	}

	if len(report.DuplicateNames) > 0 {
		logging.Error("Duplicate product names detected",
			"count", len(report.DuplicateNames),
			"duplicates", report.DuplicateNames,
		)
	}

	return report
}

// ValidateInput validates short user input strings (product name lookups)
func (v *DataValidatorImpl) ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(input) < 3 {
		return fmt.Errorf("input too short: minimum 3 characters")
	}

	if len(input) > 100 {
		return fmt.Errorf("input too long: maximum 100 characters")
	}

	// Word count validation to prevent DoS attacks with many short words
	words := strings.Fields(input)
	if len(words) > 8 {
		return fmt.Errorf("search query too complex: maximum 8 words allowed")
	}

	if err := v.checkDangerousContent(input); err != nil {
		return err
	}

	// Allow only alphanumeric characters, spaces, and safe punctuation
	if !inputRegex.MatchString(input) {
		return fmt.Errorf("input contains invalid characters. Only letters, numbers, spaces, basic punctuation, and Spanish accented characters are allowed")
	}

	if v.hasExcessiveRepetition(input) {
		return fmt.Errorf("input contains excessive character repetition")
	}

	return nil
}

// ValidateSymptomText validates free-form symptom descriptions. Looser than
// ValidateInput: full sentences with punctuation are expected, but size and
// content safety still apply.
func (v *DataValidatorImpl) ValidateSymptomText(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("symptom text cannot be empty")
	}

	if len(input) > 500 {
		return fmt.Errorf("symptom text too long: maximum 500 characters")
	}

	if err := v.checkDangerousContent(input); err != nil {
		return err
	}

	if v.hasExcessiveRepetition(input) {
		return fmt.Errorf("symptom text contains excessive character repetition")
	}

	return nil
}

// checkDangerousContent scans for injection patterns using string matching
func (v *DataValidatorImpl) checkDangerousContent(input string) error {
	lowerInput := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerInput, pattern) {
			return fmt.Errorf("input contains potentially dangerous content")
		}
	}
	return nil
}

// hasExcessiveRepetition checks for potential DoS patterns with excessive character repetition
func (v *DataValidatorImpl) hasExcessiveRepetition(input string) bool {
	// Check for the same character repeated more than 10 times consecutively
	for i := 0; i < len(input)-10; i++ {
		allSame := true
		for j := 1; j <= 10; j++ {
			if input[i] != input[i+j] {
				allSame = false
				break
			}
		}
		if allSame {
			return true
		}
	}
	return false
}
