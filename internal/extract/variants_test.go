package extract

import "testing"

func TestArticlesForVariant(t *testing.T) {
	tests := []struct {
		variant string
		size    int
	}{
		{VariantDefinite, 6},
		{VariantIndefinite, 12},
		{VariantAll, 18},
	}

	for _, tt := range tests {
		articles, err := ArticlesForVariant(tt.variant)
		if err != nil {
			t.Errorf("ArticlesForVariant(%q) failed: %v", tt.variant, err)
			continue
		}
		if len(articles) != tt.size {
			t.Errorf("Variant %q: expected %d articles, got %d", tt.variant, tt.size, len(articles))
		}
	}
}

func TestArticlesForVariant_Unknown(t *testing.T) {
	if _, err := ArticlesForVariant("bavarian"); err == nil {
		t.Error("Expected error for unknown variant")
	}
}
