// Package catalog loads the product catalog from its TSV source file and
// transforms rows into structured product entities ready for matching.
package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/saludarte/saludarte-api/catalog/entities"
	"github.com/saludarte/saludarte-api/interfaces"
	"github.com/saludarte/saludarte-api/logging"
	"github.com/saludarte/saludarte-api/recommender"
)

// Compile-time check to ensure TSVParser implements Parser
var _ interfaces.Parser = (*TSVParser)(nil)

// Column layout of the catalog TSV file.
const (
	colName = iota
	colSymptoms
	colBenefits
	colIngredients
	colDosage
	colUsageMode
	colPresentation
	colContraindications
	colGender
	colSpecialConditions

	columnCount = 10
)

// TSVParser reads the catalog from a tab-separated file. Exported files from
// the catalog spreadsheet are sometimes ISO-8859-1, so the parser decodes
// from Latin-1 whenever the raw bytes are not valid UTF-8.
type TSVParser struct {
	path string
}

// NewTSVParser creates a parser for the catalog file at path
func NewTSVParser(path string) *TSVParser {
	return &TSVParser{path: path}
}

// ParseCatalog reads and parses the whole product catalog. It returns the
// product list plus a normalized-name lookup map. Rows with missing columns
// or an empty name are skipped and counted, not fatal.
func (p *TSVParser) ParseCatalog() ([]entities.Product, map[string]entities.Product, error) {
	cleanPath := filepath.Clean(p.path)
	raw, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog file %s: %w", cleanPath, err)
	}

	var reader io.Reader
	if utf8.Valid(raw) {
		// Already UTF-8, use as-is
		reader = bytes.NewReader(raw)
	} else {
		// Not UTF-8, decode from ISO-8859-1
		reader = charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(raw))
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var products []entities.Product
	productsMap := make(map[string]entities.Product)
	lineCount := 0
	skippedEmptyLines := 0
	skippedMissingColumns := 0
	skippedEmptyNames := 0
	skippedDuplicates := 0

	for scanner.Scan() {
		lineCount++
		line := scanner.Text()

		// Skip empty lines silently
		if len(strings.TrimSpace(line)) == 0 {
			skippedEmptyLines++
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < columnCount {
			skippedMissingColumns++
			continue
		}

		name := strings.TrimSpace(fields[colName])
		if name == "" {
			skippedEmptyNames++
			continue
		}

		// Header row detection: the first line repeating the column names
		if lineCount == 1 && strings.EqualFold(name, "nombre") {
			continue
		}

		product := buildProduct(fields, name)

		if _, exists := productsMap[product.NameNorm]; exists {
			skippedDuplicates++
			continue
		}

		products = append(products, product)
		productsMap[product.NameNorm] = product
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to scan catalog file: %w", err)
	}

	if skippedEmptyLines > 0 || skippedMissingColumns > 0 || skippedEmptyNames > 0 || skippedDuplicates > 0 {
		logging.Warn("Catalog rows skipped during parse",
			"empty_lines", skippedEmptyLines,
			"missing_columns", skippedMissingColumns,
			"empty_names", skippedEmptyNames,
			"duplicate_names", skippedDuplicates,
			"total_lines", lineCount,
		)
	}

	if len(products) == 0 {
		return nil, nil, fmt.Errorf("catalog file %s produced no products", cleanPath)
	}

	logging.Info("Catalog parsed", "products", len(products), "lines", lineCount)
	return products, productsMap, nil
}

// buildProduct maps one TSV row to a Product, pre-computing the normalized
// fields the matching pipeline works with.
func buildProduct(fields []string, name string) entities.Product {
	product := entities.Product{
		Name:              name,
		Symptoms:          strings.TrimSpace(fields[colSymptoms]),
		Benefits:          strings.TrimSpace(fields[colBenefits]),
		Ingredients:       strings.TrimSpace(fields[colIngredients]),
		Dosage:            strings.TrimSpace(fields[colDosage]),
		UsageMode:         strings.TrimSpace(fields[colUsageMode]),
		Presentation:      strings.TrimSpace(fields[colPresentation]),
		Contraindications: strings.TrimSpace(fields[colContraindications]),
		Gender:            parseGenderColumn(fields[colGender]),
		SpecialConditions: strings.TrimSpace(fields[colSpecialConditions]),
	}

	product.NameNorm = recommender.Normalize(product.Name)
	product.SymptomsNorm = recommender.Normalize(product.Symptoms)
	product.BenefitsNorm = recommender.Normalize(product.Benefits)
	product.IngredientsNorm = recommender.Normalize(product.Ingredients)
	product.ContraindicationsNorm = recommender.Normalize(product.Contraindications)

	return product
}

// parseGenderColumn maps the free-text gender column to a restriction value.
// Unknown values are treated as unisex.
func parseGenderColumn(raw string) entities.GenderRestriction {
	switch recommender.Normalize(raw) {
	case "mujer", "femenino", "f", "solo mujeres":
		return entities.GenderFemale
	case "hombre", "masculino", "m", "solo hombres":
		return entities.GenderMale
	}
	return entities.GenderUnisex
}
