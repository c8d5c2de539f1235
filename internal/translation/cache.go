package translation

// Cache stores noun translations in memory for the duration of a run.
// A failed lookup is stored as an empty string so that a dead service
// is not asked about the same noun twice in one run.
type Cache struct {
	translations map[string]string
}

// NewCache creates a new translation cache
func NewCache() *Cache {
	return &Cache{
		translations: make(map[string]string),
	}
}

// Add adds a translation to the cache
func (c *Cache) Add(noun, english string) {
	c.translations[noun] = english
}

// Get retrieves a translation from the cache
func (c *Cache) Get(noun string) (string, bool) {
	english, ok := c.translations[noun]
	return english, ok
}

// GetAll returns all cached translations
func (c *Cache) GetAll() map[string]string {
	// Return a copy to prevent external modification
	result := make(map[string]string)
	for k, v := range c.translations {
		result[k] = v
	}
	return result
}
