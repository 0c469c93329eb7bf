package recommender

import "strings"

// Detection is the outcome of scanning one normalized input. Expert cases are
// kept apart from plain symptom keys because they carry their own fixed
// product list and bypass catalog matching entirely.
type Detection struct {
	ExpertCases []ExpertCase
	Symptoms    []string
}

// Detector resolves normalized user text to symptom keys through a priority
// cascade: expert cases first, then pain-context disambiguation, then the
// general lexicon sweep, capped at maxSymptoms keys.
type Detector struct {
	lex         *Lexicon
	maxSymptoms int
}

func NewDetector(lex *Lexicon, maxSymptoms int) *Detector {
	if maxSymptoms <= 0 {
		maxSymptoms = 3
	}
	return &Detector{lex: lex, maxSymptoms: maxSymptoms}
}

// Detect expects text already passed through Normalize. Each stage may append
// keys but never removes what an earlier stage found; duplicates are filtered
// by key so insertion order reflects detection priority.
func (d *Detector) Detect(text string) Detection {
	var det Detection
	if text == "" {
		return det
	}

	for _, ec := range d.lex.ExpertCases() {
		if containsAny(text, ec.Triggers) {
			det.ExpertCases = append(det.ExpertCases, ec)
		}
	}

	seen := make(map[string]bool)
	add := func(key string) {
		if !seen[key] {
			seen[key] = true
			det.Symptoms = append(det.Symptoms, key)
		}
	}

	// Specific pain contexts beat the bare pain words: when any context
	// matches, the generic "dolor" key is suppressed for this request.
	painMatched := false
	for _, pc := range d.lex.painContexts {
		if containsAny(text, pc.Phrases) {
			painMatched = true
			add(pc.Key)
		}
	}
	if !painMatched && containsAny(text, genericPainWords) {
		add("dolor")
	}

	for _, e := range d.lex.entries {
		if seen[e.Key] {
			continue
		}
		if containsAny(text, e.Phrases) {
			add(e.Key)
		}
	}

	if len(det.Symptoms) > d.maxSymptoms {
		det.Symptoms = det.Symptoms[:d.maxSymptoms]
	}
	return det
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
