package recommender

import "github.com/saludarte/saludarte-api/catalog/entities"

// newTestProduct builds a catalog entry with the normalized fields
// pre-computed, the way the catalog parser does at load time.
func newTestProduct(name, symptoms, benefits, ingredients, contraindications string) entities.Product {
	return entities.Product{
		Name:                  name,
		Symptoms:              symptoms,
		Benefits:              benefits,
		Ingredients:           ingredients,
		Contraindications:     contraindications,
		Gender:                entities.GenderUnisex,
		NameNorm:              Normalize(name),
		SymptomsNorm:          Normalize(symptoms),
		BenefitsNorm:          Normalize(benefits),
		IngredientsNorm:       Normalize(ingredients),
		ContraindicationsNorm: Normalize(contraindications),
	}
}

func productNames(products []entities.Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}
