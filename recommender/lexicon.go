package recommender

import "strings"

// SymptomEntry maps a canonical symptom key to the colloquial phrases,
// regional idioms and medical synonyms that trigger it. Entries are kept in
// a slice so detection order is deterministic (declaration order wins ties).
type SymptomEntry struct {
	Key     string
	Phrases []string
}

// ExpertCase is a curated condition-level mapping: when one of its trigger
// phrases appears in the input, its fixed, ordered product list is used
// directly instead of the scored catalog search.
type ExpertCase struct {
	ID        string
	Triggers  []string
	Products  []string
	Rationale string
}

// PainContext is a specialized phrase set that disambiguates a concrete pain
// type from the bare word "dolor". A matching context suppresses the generic
// pain key for the request.
type PainContext struct {
	Key     string
	Phrases []string
}

// OverrideRule forces high-confidence products for a symptom by product-name
// keyword, replacing the original hand-written per-symptom branches with one
// table the matcher iterates.
type OverrideRule struct {
	Keys     []string // symptom key substrings this rule applies to
	Keywords []string // product-name fragments, normalized
}

// Lexicon is the read-only symptom knowledge base. Construct it once at
// startup with DefaultLexicon; it is never mutated afterwards, so concurrent
// readers need no locking.
type Lexicon struct {
	entries       []SymptomEntry
	expertCases   []ExpertCase
	painContexts  []PainContext
	overrideRules []OverrideRule
	similar       map[string][]string
	wellness      []string

	keyIndex map[string]int
}

// NewLexicon builds a lexicon from already-normalized data tables. All phrase
// and keyword tables must be lowercase and accent-free; DefaultLexicon data
// satisfies this invariant.
func NewLexicon(entries []SymptomEntry, expertCases []ExpertCase, painContexts []PainContext,
	overrideRules []OverrideRule, similar map[string][]string, wellness []string) *Lexicon {

	l := &Lexicon{
		entries:       entries,
		expertCases:   expertCases,
		painContexts:  painContexts,
		overrideRules: overrideRules,
		similar:       similar,
		wellness:      wellness,
		keyIndex:      make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if _, dup := l.keyIndex[e.Key]; !dup {
			l.keyIndex[e.Key] = i
		}
	}
	return l
}

// DefaultLexicon returns the built-in Spanish/Mexican-Spanish lexicon.
func DefaultLexicon() *Lexicon {
	return NewLexicon(symptomEntries, expertCases, painContexts, overrideRules, similarSymptoms, wellnessKeywords)
}

// PhrasesFor returns the trigger phrases for a canonical symptom key, or nil
// if the key is unknown.
func (l *Lexicon) PhrasesFor(symptomKey string) []string {
	if i, ok := l.keyIndex[symptomKey]; ok {
		return l.entries[i].Phrases
	}
	return nil
}

// AllSymptomKeys returns every canonical symptom key in declaration order.
func (l *Lexicon) AllSymptomKeys() []string {
	keys := make([]string, len(l.entries))
	for i, e := range l.entries {
		keys[i] = e.Key
	}
	return keys
}

// ExpertCases returns the curated condition-level cases.
func (l *Lexicon) ExpertCases() []ExpertCase {
	return l.expertCases
}

// SimilarSymptoms returns fallback keys to try when a symptom yields too few
// products, in preference order.
func (l *Lexicon) SimilarSymptoms(symptomKey string) []string {
	return l.similar[symptomKey]
}

// WellnessKeywords returns the generic wellness terms used for the catch-all
// fallback.
func (l *Lexicon) WellnessKeywords() []string {
	return l.wellness
}

// overridesFor returns the product-name keywords forced for a symptom key,
// or nil when no override rule applies.
func (l *Lexicon) overridesFor(symptomKey string) []string {
	for _, rule := range l.overrideRules {
		for _, k := range rule.Keys {
			if strings.Contains(symptomKey, k) {
				return rule.Keywords
			}
		}
	}
	return nil
}
