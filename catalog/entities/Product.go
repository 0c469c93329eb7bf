package entities

// GenderRestriction marks a product as usable only by one gender.
// The catalog column is free text; unknown values are treated as unisex.
type GenderRestriction string

const (
	GenderUnisex GenderRestriction = "unisex"
	GenderFemale GenderRestriction = "mujer"
	GenderMale   GenderRestriction = "hombre"
)

// Product is a single catalog entry. Products are immutable once loaded;
// the normalized fields are pre-computed at parse time so the matching
// pipeline never re-folds accents on the hot path.
type Product struct {
	Name              string            `json:"nombre"`
	Symptoms          string            `json:"sintomas"`
	Benefits          string            `json:"beneficios"`
	Ingredients       string            `json:"ingredientes"`
	Dosage            string            `json:"dosis"`
	UsageMode         string            `json:"modo_de_uso"`
	Presentation      string            `json:"presentacion"`
	Contraindications string            `json:"contraindicaciones"`
	Gender            GenderRestriction `json:"sexo"`
	SpecialConditions string            `json:"condiciones_especiales"`

	// Pre-computed lowercase, accent-folded copies used for matching.
	NameNorm              string `json:"-"`
	SymptomsNorm          string `json:"-"`
	BenefitsNorm          string `json:"-"`
	IngredientsNorm       string `json:"-"`
	ContraindicationsNorm string `json:"-"`
}
