package extract

import "fmt"

// German article sets by declension group. The extractor treats these as
// configuration data: a variant selects which groups participate in
// article+noun pairing.
var (
	// DefiniteArticles are the declined forms of der/die/das.
	DefiniteArticles = []string{"der", "die", "das", "den", "dem", "des"}

	// IndefiniteArticles are the declined forms of ein.
	IndefiniteArticles = []string{"ein", "eine", "einen", "einem", "einer", "eines"}

	// NegationArticles are the declined forms of kein.
	NegationArticles = []string{"kein", "keine", "keinen", "keinem", "keiner", "keines"}
)

// Variant names accepted by ArticlesForVariant.
const (
	VariantDefinite   = "definite"
	VariantIndefinite = "indefinite"
	VariantAll        = "all"
)

// ArticlesForVariant returns the article set for a named variant:
//
//	definite   - definite articles only (6 tokens)
//	indefinite - definite + indefinite articles (12 tokens)
//	all        - definite + indefinite + negation articles (18 tokens)
func ArticlesForVariant(variant string) ([]string, error) {
	switch variant {
	case VariantDefinite:
		return DefiniteArticles, nil
	case VariantIndefinite:
		return concat(DefiniteArticles, IndefiniteArticles), nil
	case VariantAll:
		return concat(DefiniteArticles, IndefiniteArticles, NegationArticles), nil
	default:
		return nil, fmt.Errorf("unknown article variant %q (valid: definite, indefinite, all)", variant)
	}
}

func concat(sets ...[]string) []string {
	var result []string
	for _, set := range sets {
		result = append(result, set...)
	}
	return result
}
