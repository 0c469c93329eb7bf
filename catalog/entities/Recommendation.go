package entities

// UserProfile is caller-supplied context used only for safety filtering.
// All fields are optional; the zero value applies no restrictions.
type UserProfile struct {
	Age             int      `json:"edad,omitempty"`
	Gender          string   `json:"sexo,omitempty"`
	HasDiabetes     bool     `json:"diabetes,omitempty"`
	HasHypertension bool     `json:"hipertension,omitempty"`
	IsPregnant      bool     `json:"embarazo,omitempty"`
	Medications     []string `json:"medicamentos,omitempty"`
}

// Recommendation is one group of products for one detected symptom.
type Recommendation struct {
	Symptom  string    `json:"sintoma"`
	Products []Product `json:"productos"`
	Message  string    `json:"mensaje"`
}

// ScoredProduct tags a catalog product with the confidence tier at which
// it matched a symptom. Higher scores win during selection.
type ScoredProduct struct {
	Product Product
	Score   int
}
