package recommender

import (
	"fmt"
	"strings"

	"github.com/saludarte/saludarte-api/catalog/entities"
	"github.com/saludarte/saludarte-api/metrics"
)

const (
	msgNeedDetail = "No pude identificar un sintoma en tu mensaje. Describe con mas detalle como te sientes para poder recomendarte productos."
	msgNoCatalog  = "El catalogo de productos no esta disponible en este momento. Intenta de nuevo mas tarde."
	msgWellness   = "No detectamos un sintoma especifico, pero estos productos de bienestar general pueden apoyarte."
)

// Service is the request-facing recommendation pipeline. It owns no catalog:
// the caller passes the current product slice on every call, so catalog
// reloads never race against in-flight requests. The rotation counter is the
// only mutable state and is shared deliberately.
type Service struct {
	lex      *Lexicon
	detector *Detector
	matcher  *Matcher
	rotation *RotationCounter

	minPerSymptom int
	maxPerSymptom int
}

// NewService wires the pipeline. minPer/maxPer bound the products returned
// per detected symptom; zero or negative values fall back to 2/2.
func NewService(lex *Lexicon, rotation *RotationCounter, maxSymptoms, minPer, maxPer int) *Service {
	if minPer <= 0 {
		minPer = 2
	}
	if maxPer < minPer {
		maxPer = minPer
	}
	return &Service{
		lex:           lex,
		detector:      NewDetector(lex, maxSymptoms),
		matcher:       NewMatcher(lex),
		rotation:      rotation,
		minPerSymptom: minPer,
		maxPerSymptom: maxPer,
	}
}

// Recommend maps free-form Spanish text to product recommendations. It never
// fails for a well-formed query: unrecognized text degrades to wellness
// suggestions and an empty catalog yields a single explanatory entry.
func (s *Service) Recommend(catalog []entities.Product, userText string, profile *entities.UserProfile) []entities.Recommendation {
	text := Normalize(userText)
	if text == "" {
		metrics.RecommendationsTotal.WithLabelValues("guidance").Inc()
		return []entities.Recommendation{{Symptom: "", Products: []entities.Product{}, Message: msgNeedDetail}}
	}
	if len(catalog) == 0 {
		metrics.RecommendationsTotal.WithLabelValues("no_catalog").Inc()
		return []entities.Recommendation{{Symptom: "", Products: []entities.Product{}, Message: msgNoCatalog}}
	}

	det := s.detector.Detect(text)

	// Expert cases carry their own curated product list and rationale; they
	// replace the scored search entirely.
	if len(det.ExpertCases) > 0 {
		metrics.RecommendationsTotal.WithLabelValues("expert_case").Inc()
		recs := make([]entities.Recommendation, 0, len(det.ExpertCases))
		for _, ec := range det.ExpertCases {
			metrics.ExpertCaseHitsTotal.WithLabelValues(ec.ID).Inc()
			recs = append(recs, entities.Recommendation{
				Symptom:  ec.ID,
				Products: s.resolveExpertProducts(catalog, ec, profile),
				Message:  ec.Rationale,
			})
		}
		return recs
	}

	if len(det.Symptoms) == 0 {
		metrics.RecommendationsTotal.WithLabelValues("wellness").Inc()
		return []entities.Recommendation{{
			Symptom:  "bienestar general",
			Products: s.wellnessProducts(catalog, profile, s.maxPerSymptom, nil),
			Message:  msgWellness,
		}}
	}

	metrics.RecommendationsTotal.WithLabelValues("symptoms").Inc()
	recs := make([]entities.Recommendation, 0, len(det.Symptoms))
	for _, key := range det.Symptoms {
		metrics.SymptomsDetectedTotal.WithLabelValues(key).Inc()
		products := s.productsFor(catalog, key, profile)
		recs = append(recs, entities.Recommendation{
			Symptom:  key,
			Products: products,
			Message:  fmt.Sprintf("Estos productos pueden apoyarte con %s.", key),
		})
	}
	return recs
}

// productsFor runs match, safety filter and rotation for one symptom, then
// applies the fallback cascade when the primary key comes up short: similar
// symptom keys first, generic wellness products last.
func (s *Service) productsFor(catalog []entities.Product, key string, profile *entities.UserProfile) []entities.Product {
	candidates := filterEligible(s.matcher.Match(catalog, key), profile)
	selected := s.rotation.Select(candidates, s.minPerSymptom, s.maxPerSymptom)
	if len(selected) >= s.minPerSymptom {
		return selected
	}

	if alts := s.lex.SimilarSymptoms(key); len(alts) > 0 {
		metrics.FallbackUsesTotal.WithLabelValues("similar_symptoms").Inc()
		for _, alt := range alts {
			if len(selected) >= s.minPerSymptom {
				break
			}
			more := filterEligible(s.matcher.Match(catalog, alt), profile)
			more = excludeNames(more, selected)
			selected = append(selected, s.rotation.Select(more, 0, s.maxPerSymptom-len(selected))...)
		}
	}

	if len(selected) < s.minPerSymptom {
		metrics.FallbackUsesTotal.WithLabelValues("wellness").Inc()
		selected = append(selected, s.wellnessProducts(catalog, profile, s.maxPerSymptom-len(selected), selected)...)
	}
	return selected
}

// wellnessProducts returns up to limit generic wellness products, excluding
// any already-selected names, still subject to safety and rotation.
func (s *Service) wellnessProducts(catalog []entities.Product, profile *entities.UserProfile, limit int, exclude []entities.Product) []entities.Product {
	if limit <= 0 {
		return nil
	}
	var candidates []entities.ScoredProduct
	for _, p := range catalog {
		if wellnessMatch(p, s.lex.WellnessKeywords()) {
			candidates = append(candidates, entities.ScoredProduct{Product: p, Score: scoreIngredient})
		}
	}
	candidates = excludeNames(filterEligible(candidates, profile), exclude)
	return s.rotation.Select(candidates, 0, limit)
}

// resolveExpertProducts maps an expert case's fixed product names to catalog
// entries, preserving the declared order. Names missing from the catalog are
// skipped rather than failing the whole case.
func (s *Service) resolveExpertProducts(catalog []entities.Product, ec ExpertCase, profile *entities.UserProfile) []entities.Product {
	byName := make(map[string]entities.Product, len(catalog))
	for _, p := range catalog {
		byName[p.NameNorm] = p
	}

	out := make([]entities.Product, 0, len(ec.Products))
	for _, name := range ec.Products {
		p, ok := byName[Normalize(name)]
		if !ok {
			continue
		}
		if rule := violatedRule(p, profile); rule != "" {
			metrics.SafetyExclusionsTotal.WithLabelValues(rule).Inc()
			continue
		}
		out = append(out, p)
	}
	return out
}

func wellnessMatch(p entities.Product, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(p.NameNorm, k) || strings.Contains(p.BenefitsNorm, k) {
			return true
		}
	}
	return false
}

func excludeNames(candidates []entities.ScoredProduct, already []entities.Product) []entities.ScoredProduct {
	if len(already) == 0 {
		return candidates
	}
	taken := make(map[string]bool, len(already))
	for _, p := range already {
		taken[p.Name] = true
	}
	out := candidates[:0:0]
	for _, c := range candidates {
		if !taken[c.Product.Name] {
			out = append(out, c)
		}
	}
	return out
}
