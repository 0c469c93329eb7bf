package recommender

import (
	"sort"
	"strings"

	"github.com/saludarte/saludarte-api/catalog/entities"
)

// Tier scores. Overrides always outrank field matches so curated rules win.
const (
	scoreOverride   = 20
	scoreSymptom    = 3
	scoreBenefit    = 2
	scoreIngredient = 1

	insomniaBoostDelta = 3
)

// Matcher searches the catalog for one symptom key across the override table
// and the three text tiers. It holds no catalog reference: the caller passes
// the current product slice so hot catalog reloads need no coordination here.
type Matcher struct {
	lex *Lexicon
}

func NewMatcher(lex *Lexicon) *Matcher {
	return &Matcher{lex: lex}
}

// Match returns every product matching symptomKey, each tagged with the
// highest tier it reached, ordered by score descending with catalog order as
// the tie-break. An empty result means no match; fallback is the caller's job.
func (m *Matcher) Match(catalog []entities.Product, symptomKey string) []entities.ScoredProduct {
	overrideKeywords := m.lex.overridesFor(symptomKey)
	genericPain := symptomKey == "dolor"
	insomnia := strings.Contains(symptomKey, "insomnio")

	var out []entities.ScoredProduct
	for _, p := range catalog {
		score := 0
		switch {
		case nameContainsAny(p.NameNorm, overrideKeywords):
			score = scoreOverride
		case strings.Contains(p.SymptomsNorm, symptomKey):
			score = scoreSymptom
		case strings.Contains(p.BenefitsNorm, symptomKey):
			score = scoreBenefit
		case strings.Contains(p.IngredientsNorm, symptomKey):
			score = scoreIngredient
		}
		if score == 0 {
			continue
		}

		// A diabetes or hypertension product must not surface for an
		// unrelated generic pain query unless it mentions pain itself.
		if genericPain && mentionsChronicCondition(p) && !mentionsPain(p) {
			continue
		}

		if insomnia {
			score = rerankForInsomnia(p, score)
			if score == 0 {
				continue
			}
		}

		out = append(out, entities.ScoredProduct{Product: p, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// rerankForInsomnia adjusts a base score for sleep queries: products named
// after high-specificity sleep ingredients rise, incidental matches drop to
// the lowest tier, and clearly unrelated products are removed outright.
func rerankForInsomnia(p entities.Product, score int) int {
	if nameContainsAny(p.NameNorm, insomniaExclude) {
		return 0
	}
	if nameContainsAny(p.NameNorm, insomniaBoost) {
		return score + insomniaBoostDelta
	}
	if nameContainsAny(p.NameNorm, insomniaPenalty) {
		return scoreIngredient
	}
	return score
}

func mentionsChronicCondition(p entities.Product) bool {
	for _, term := range chronicConditionTerms {
		if strings.Contains(p.SymptomsNorm, term) ||
			strings.Contains(p.BenefitsNorm, term) ||
			strings.Contains(p.IngredientsNorm, term) {
			return true
		}
	}
	return false
}

func mentionsPain(p entities.Product) bool {
	return strings.Contains(p.SymptomsNorm, "dolor") ||
		strings.Contains(p.BenefitsNorm, "dolor") ||
		strings.Contains(p.NameNorm, "dolor")
}

func nameContainsAny(nameNorm string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(nameNorm, k) {
			return true
		}
	}
	return false
}
