package validation

import (
	"strings"
	"testing"

	"github.com/saludarte/saludarte-api/catalog/entities"
)

func validProduct() entities.Product {
	return entities.Product{
		Name:     "VALERIANA CAPSULAS",
		Symptoms: "insomnio, nerviosismo",
		Benefits: "ayuda a dormir",
		Gender:   entities.GenderUnisex,
		NameNorm: "valeriana capsulas",
	}
}

func TestNewDataValidator(t *testing.T) {
	validator := NewDataValidator()

	if validator == nil {
		t.Fatal("NewDataValidator returned nil")
	}

	// Type assertion to verify it's the correct type
	if _, ok := validator.(*DataValidatorImpl); !ok {
		t.Error("NewDataValidator did not return a *DataValidatorImpl")
	}
}

func TestValidateProduct(t *testing.T) {
	v := NewDataValidator()

	t.Run("Valid product", func(t *testing.T) {
		p := validProduct()
		if err := v.ValidateProduct(&p); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("Nil product", func(t *testing.T) {
		if err := v.ValidateProduct(nil); err == nil {
			t.Error("Expected error for nil product")
		}
	})

	t.Run("Empty name", func(t *testing.T) {
		p := validProduct()
		p.Name = "   "
		if err := v.ValidateProduct(&p); err == nil {
			t.Error("Expected error for empty name")
		}
	})

	t.Run("Name too long", func(t *testing.T) {
		p := validProduct()
		p.Name = strings.Repeat("ab", 101)
		if err := v.ValidateProduct(&p); err == nil {
			t.Error("Expected error for long name")
		}
	})

	t.Run("Symptoms field too long", func(t *testing.T) {
		p := validProduct()
		p.Symptoms = strings.Repeat("ab", 1001)
		if err := v.ValidateProduct(&p); err == nil {
			t.Error("Expected error for long symptoms field")
		}
	})

	t.Run("Invalid gender restriction", func(t *testing.T) {
		p := validProduct()
		p.Gender = "ninos"
		if err := v.ValidateProduct(&p); err == nil {
			t.Error("Expected error for invalid gender restriction")
		}
	})

	t.Run("Missing normalized name", func(t *testing.T) {
		p := validProduct()
		p.NameNorm = ""
		if err := v.ValidateProduct(&p); err == nil {
			t.Error("Expected error for missing normalized name")
		}
	})
}

func TestValidateCatalogIntegrity(t *testing.T) {
	v := NewDataValidator()

	t.Run("Valid catalog", func(t *testing.T) {
		products := []entities.Product{validProduct()}
		if err := v.ValidateCatalogIntegrity(products); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("Empty catalog", func(t *testing.T) {
		if err := v.ValidateCatalogIntegrity(nil); err == nil {
			t.Error("Expected error for empty catalog")
		}
	})

	t.Run("Duplicate names", func(t *testing.T) {
		products := []entities.Product{validProduct(), validProduct()}
		if err := v.ValidateCatalogIntegrity(products); err == nil {
			t.Error("Expected error for duplicate product names")
		}
	})
}

func TestReportCatalogQuality(t *testing.T) {
	v := NewDataValidator()

	products := []entities.Product{
		validProduct(),
		{Name: "SIN SINTOMAS", NameNorm: "sin sintomas", Benefits: "bienestar", Dosage: "1 al dia", Gender: entities.GenderUnisex},
		{Name: "SIN BENEFICIOS", NameNorm: "sin beneficios", Symptoms: "gripa", Dosage: "2 al dia", Gender: entities.GenderUnisex},
		{Name: "SOLO MUJERES", NameNorm: "solo mujeres", Symptoms: "menopausia", Benefits: "equilibrio", Dosage: "1 al dia", Gender: entities.GenderFemale},
		{Name: "VALERIANA CAPSULAS", NameNorm: "valeriana capsulas", Symptoms: "insomnio", Benefits: "sueno", Dosage: "1 en la noche", Gender: entities.GenderUnisex},
	}

	report := v.ReportCatalogQuality(products)

	if len(report.DuplicateNames) != 1 {
		t.Errorf("Expected 1 duplicate name, got %d", len(report.DuplicateNames))
	}
	if report.ProductsWithoutSymptoms != 1 {
		t.Errorf("Expected 1 product without symptoms, got %d", report.ProductsWithoutSymptoms)
	}
	if report.ProductsWithoutBenefits != 1 {
		t.Errorf("Expected 1 product without benefits, got %d", report.ProductsWithoutBenefits)
	}
	if report.GenderRestrictedProducts != 1 {
		t.Errorf("Expected 1 gender restricted product, got %d", report.GenderRestrictedProducts)
	}
	if len(report.ProductsWithoutSymptomsNames) != 1 || report.ProductsWithoutSymptomsNames[0] != "SIN SINTOMAS" {
		t.Errorf("Expected SIN SINTOMAS in names list, got %v", report.ProductsWithoutSymptomsNames)
	}
}

func TestValidateInput(t *testing.T) {
	v := NewDataValidator()

	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid product name", "valeriana", false},
		{"Valid multi word", "te de tila y azahar", false},
		{"Valid with question marks", "¿moringa?", false},
		{"Empty input", "", true},
		{"Too short", "te", true},
		{"Too long", strings.Repeat("ab", 50) + "c", true},
		{"Too many words", "uno dos tres cuatro cinco seis siete ocho nueve", true},
		{"Script injection", "<script>alert(1)</script>", true},
		{"SQL injection", "' or 1=1", true},
		{"Invalid characters", "producto;rm -rf", true},
		{"Excessive repetition", "aaaaaaaaaaaaaaa", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateInput(tc.input)
			if tc.wantErr && err == nil {
				t.Errorf("Expected error for input %q", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected error for input %q: %v", tc.input, err)
			}
		})
	}
}

func TestValidateSymptomText(t *testing.T) {
	v := NewDataValidator()

	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Full sentence", "No puedo dormir y me siento muy cansado todo el dia.", false},
		{"Sentence with accents", "Tengo dolor de cabeza y estrés, ¿qué me recomiendas?", false},
		{"Empty text", "", true},
		{"Only whitespace", "   ", true},
		{"Too long", strings.Repeat("ab", 250) + "c", true},
		{"At max length", strings.Repeat("ab", 250), false},
		{"Script injection", "me duele <script>alert(1)</script>", true},
		{"Excessive repetition", "ayudaaaaaaaaaaaaaaa", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateSymptomText(tc.input)
			if tc.wantErr && err == nil {
				t.Errorf("Expected error for input %q", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected error for input %q: %v", tc.input, err)
			}
		})
	}
}
