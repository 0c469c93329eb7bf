package recommender

import (
	"github.com/saludarte/saludarte-api/catalog/entities"
	"github.com/saludarte/saludarte-api/metrics"
)

// adultOnlyKeywords flag products a minor should not receive.
var adultOnlyKeywords = []string{
	"resveratrol", "energy", "vigor", "libido", "testosterona", "testosterone",
	"afrodisiaco", "damiana", "potencia sexual",
}

// childOnlyKeywords flag pediatric lines that an adult profile filters out.
var childOnlyKeywords = []string{
	"mi peke", "peke", "ninos", "infantil", "pediatrico", "kids",
}

// Contraindication keyword sets checked against a product's contraindication
// text for the matching profile condition.
var (
	diabetesWarnings     = []string{"diabetes", "diabetico", "diabeticos", "glucosa", "azucar"}
	hypertensionWarnings = []string{"hipertension", "presion alta", "hipertensos", "presion arterial"}
	pregnancyWarnings    = []string{"embarazo", "embarazadas", "gestacion", "lactancia"}
)

// Eligible reports whether a product may be recommended to the given profile.
// A nil profile applies no restrictions. Unrecognized profile values fail
// open: a rule that cannot be evaluated confidently never excludes a product.
func Eligible(p entities.Product, profile *entities.UserProfile) bool {
	return violatedRule(p, profile) == ""
}

// violatedRule names the safety rule that blocks p for the profile, or ""
// when the product is allowed.
func violatedRule(p entities.Product, profile *entities.UserProfile) string {
	if profile == nil {
		return ""
	}

	if gender := parseGender(profile.Gender); gender != "" {
		if p.Gender == entities.GenderFemale && gender != entities.GenderFemale {
			return "gender"
		}
		if p.Gender == entities.GenderMale && gender != entities.GenderMale {
			return "gender"
		}
	}

	if profile.Age > 0 {
		if profile.Age < 18 && nameContainsAny(p.NameNorm, adultOnlyKeywords) {
			return "age"
		}
		if profile.Age >= 18 && nameContainsAny(p.NameNorm, childOnlyKeywords) {
			return "age"
		}
	}

	if profile.HasDiabetes && containsAny(p.ContraindicationsNorm, diabetesWarnings) {
		return "diabetes"
	}
	if profile.HasHypertension && containsAny(p.ContraindicationsNorm, hypertensionWarnings) {
		return "hypertension"
	}
	if profile.IsPregnant && containsAny(p.ContraindicationsNorm, pregnancyWarnings) {
		return "pregnancy"
	}

	return ""
}

// parseGender maps the free-text profile gender to a catalog restriction
// value, returning "" for anything it does not recognize.
func parseGender(raw string) entities.GenderRestriction {
	switch Normalize(raw) {
	case "mujer", "femenino", "f", "female":
		return entities.GenderFemale
	case "hombre", "masculino", "m", "male":
		return entities.GenderMale
	}
	return ""
}

func filterEligible(candidates []entities.ScoredProduct, profile *entities.UserProfile) []entities.ScoredProduct {
	if profile == nil {
		return candidates
	}
	out := candidates[:0:0]
	for _, c := range candidates {
		if rule := violatedRule(c.Product, profile); rule != "" {
			metrics.SafetyExclusionsTotal.WithLabelValues(rule).Inc()
			continue
		}
		out = append(out, c)
	}
	return out
}
