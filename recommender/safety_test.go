package recommender

import (
	"testing"

	"github.com/saludarte/saludarte-api/catalog/entities"
)

func TestEligibleNilProfile(t *testing.T) {
	p := newTestProduct("CUALQUIERA", "", "", "", "no recomendado para diabeticos")

	if !Eligible(p, nil) {
		t.Error("Nil profile must apply no restrictions")
	}
}

func TestEligibleGenderRules(t *testing.T) {
	women := newTestProduct("PM MUJER", "", "", "", "")
	women.Gender = entities.GenderFemale
	men := newTestProduct("PROSTATA PLUS", "", "", "", "")
	men.Gender = entities.GenderMale
	unisex := newTestProduct("VITAMINA C", "", "", "", "")

	testCases := []struct {
		name     string
		product  entities.Product
		gender   string
		eligible bool
	}{
		{"Female product, male profile", women, "masculino", false},
		{"Female product, female profile", women, "mujer", true},
		{"Male product, female profile", men, "femenino", false},
		{"Male product, male profile", men, "hombre", true},
		{"Unisex product, any profile", unisex, "masculino", true},
		{"Unknown gender value fails open", women, "otro", true},
		{"Accented gender value", men, "MASCULINO", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &entities.UserProfile{Gender: tc.gender}
			if got := Eligible(tc.product, profile); got != tc.eligible {
				t.Errorf("Eligible(%s, gender=%s) = %v, want %v",
					tc.product.Name, tc.gender, got, tc.eligible)
			}
		})
	}
}

func TestEligibleAgeRules(t *testing.T) {
	adult := newTestProduct("ENERGY VIGOR MAX", "", "", "", "")
	kids := newTestProduct("MI PEKE VITAMINAS", "", "", "", "")
	neutral := newTestProduct("VITAMINA C", "", "", "", "")

	testCases := []struct {
		name     string
		product  entities.Product
		age      int
		eligible bool
	}{
		{"Minor blocked from adult product", adult, 15, false},
		{"Adult allowed adult product", adult, 30, true},
		{"Adult blocked from kids product", kids, 30, false},
		{"Minor allowed kids product", kids, 10, true},
		{"Neutral product any age", neutral, 15, true},
		{"Zero age applies no age rule", adult, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &entities.UserProfile{Age: tc.age}
			if got := Eligible(tc.product, profile); got != tc.eligible {
				t.Errorf("Eligible(%s, age=%d) = %v, want %v",
					tc.product.Name, tc.age, got, tc.eligible)
			}
		})
	}
}

func TestEligibleContraindications(t *testing.T) {
	diabetic := newTestProduct("JARABE DULCE", "", "", "", "no recomendado para diabéticos")
	hypertensive := newTestProduct("GINSENG FUERTE", "", "", "", "evitar en caso de hipertensión")
	pregnancy := newTestProduct("HIERBAS FUERTES", "", "", "", "no usar durante el embarazo")
	clean := newTestProduct("MANZANILLA", "", "", "", "")

	testCases := []struct {
		name     string
		product  entities.Product
		profile  entities.UserProfile
		eligible bool
	}{
		{"Diabetes warning blocks diabetic", diabetic, entities.UserProfile{HasDiabetes: true}, false},
		{"Diabetes warning ignores non-diabetic", diabetic, entities.UserProfile{}, true},
		{"Hypertension warning blocks hypertensive", hypertensive, entities.UserProfile{HasHypertension: true}, false},
		{"Pregnancy warning blocks pregnant", pregnancy, entities.UserProfile{IsPregnant: true}, false},
		{"No warnings, all conditions", clean, entities.UserProfile{HasDiabetes: true, HasHypertension: true, IsPregnant: true}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := tc.profile
			if got := Eligible(tc.product, &profile); got != tc.eligible {
				t.Errorf("Eligible(%s) = %v, want %v", tc.product.Name, got, tc.eligible)
			}
		})
	}
}
