package translation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"codeberg.org/snonux/derdiedas/internal/extract"
)

// TranslatorOptions configures retry and pacing behavior
type TranslatorOptions struct {
	MaxRetries        int           // Attempts per noun before giving up
	Backoff           time.Duration // Base delay; attempt n waits (n-1) * Backoff
	RequestsPerSecond float64       // Pacing of requests to the remote service
	Store             *Store        // Optional persistent cache, may be nil
}

// DefaultTranslatorOptions returns sensible defaults
func DefaultTranslatorOptions() *TranslatorOptions {
	return &TranslatorOptions{
		MaxRetries:        3,
		Backoff:           time.Second,
		RequestsPerSecond: 2,
	}
}

// Translator looks up English translations for extracted entries. All
// requests go through a single rate limiter and circuit breaker, one at
// a time, so the remote service is never flooded.
type Translator struct {
	provider Provider
	cache    *Cache
	store    *Store
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker
	retries  int
	backoff  time.Duration
}

// NewTranslator creates a new translator around the given provider
func NewTranslator(provider Provider, opts *TranslatorOptions) *Translator {
	if opts == nil {
		opts = DefaultTranslatorOptions()
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    provider.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Translator{
		provider: provider,
		cache:    NewCache(),
		store:    opts.Store,
		limiter:  rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		breaker:  breaker,
		retries:  opts.MaxRetries,
		backoff:  opts.Backoff,
	}
}

// Cache exposes the in-memory cache, e.g. for seeding from a word list
func (t *Translator) Cache() *Cache {
	return t.cache
}

// Translate returns a copy of entries with the English field filled in.
// The input slice is never modified. A noun that cannot be translated
// keeps an empty English field; a warning goes to stderr and processing
// continues with the next entry.
func (t *Translator) Translate(ctx context.Context, entries []extract.Entry) []extract.Entry {
	result := make([]extract.Entry, len(entries))
	copy(result, entries)

	for i := range result {
		english, err := t.translateNoun(ctx, result[i].Noun)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not translate '%s': %v\n", result[i].Noun, err)
			continue
		}
		result[i].English = english
	}

	return result
}

// Summary reports how many nouns resolved and failed this run, based
// on the run's cache contents
func (t *Translator) Summary() string {
	translated, failed := 0, 0
	for _, english := range t.cache.GetAll() {
		if english == "" {
			failed++
		} else {
			translated++
		}
	}
	if failed == 0 {
		return fmt.Sprintf("Translated: %d", translated)
	}
	return fmt.Sprintf("Translated: %d, failed: %d", translated, failed)
}

// translateNoun resolves one noun through the caches and, on a miss,
// the provider with bounded retries and linear backoff.
func (t *Translator) translateNoun(ctx context.Context, noun string) (string, error) {
	if english, ok := t.cache.Get(noun); ok {
		return english, nil
	}
	if t.store != nil {
		english, ok, err := t.store.Get(noun)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else if ok {
			t.cache.Add(noun, english)
			return english, nil
		}
	}

	var english string
	var lastErr error
	for attempt := 1; attempt <= t.retries; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(time.Duration(attempt-1) * t.backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		if err := t.limiter.Wait(ctx); err != nil {
			return "", err
		}

		res, err := t.breaker.Execute(func() (interface{}, error) {
			return t.provider.Translate(ctx, noun)
		})
		if err == nil {
			english = res.(string)
			lastErr = nil
			break
		}
		lastErr = err

		// An open breaker fails every call until its timeout elapses,
		// so further attempts for this noun are pointless.
		if errors.Is(err, gobreaker.ErrOpenState) {
			break
		}
	}

	if lastErr != nil {
		// Remember the failure for this run only; the persistent store
		// is left untouched so a later run retries the noun.
		t.cache.Add(noun, "")
		return "", lastErr
	}

	t.cache.Add(noun, english)
	if t.store != nil && english != "" {
		if err := t.store.Put(noun, english); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return english, nil
}
