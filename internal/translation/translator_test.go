package translation

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/snonux/derdiedas/internal/extract"
)

// stubProvider answers from a fixed map and can fail its first calls
type stubProvider struct {
	answers  map[string]string
	failures int
	calls    int
}

func (p *stubProvider) Translate(ctx context.Context, noun string) (string, error) {
	p.calls++
	if p.calls <= p.failures {
		return "", fmt.Errorf("service unavailable")
	}
	if english, ok := p.answers[noun]; ok {
		return english, nil
	}
	return "", fmt.Errorf("unknown noun")
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) IsAvailable() error { return nil }

func fastOptions() *TranslatorOptions {
	return &TranslatorOptions{
		MaxRetries:        3,
		Backoff:           time.Millisecond,
		RequestsPerSecond: 1000,
	}
}

func TestTranslate_PureTransform(t *testing.T) {
	provider := &stubProvider{answers: map[string]string{"hund": "dog", "katze": "cat"}}
	translator := NewTranslator(provider, fastOptions())

	input := []extract.Entry{
		{Article: "der", Noun: "hund"},
		{Noun: "katze"},
	}
	got := translator.Translate(context.Background(), input)

	if got[0].English != "dog" || got[1].English != "cat" {
		t.Errorf("Expected translations filled in, got %v", got)
	}

	// The input slice must stay untouched
	for _, e := range input {
		if e.English != "" {
			t.Errorf("Input entry mutated: %v", e)
		}
	}
}

func TestTranslate_CacheAvoidsDuplicateRequests(t *testing.T) {
	provider := &stubProvider{answers: map[string]string{"hund": "dog"}}
	translator := NewTranslator(provider, fastOptions())

	// Same noun under two keys: bare and paired
	input := []extract.Entry{
		{Noun: "hund"},
		{Article: "der", Noun: "hund"},
	}
	got := translator.Translate(context.Background(), input)

	if got[0].English != "dog" || got[1].English != "dog" {
		t.Errorf("Expected both entries translated, got %v", got)
	}
	if provider.calls != 1 {
		t.Errorf("Expected 1 provider call, got %d", provider.calls)
	}
}

func TestTranslate_FailureNonFatal(t *testing.T) {
	provider := &stubProvider{answers: map[string]string{"katze": "cat"}}
	translator := NewTranslator(provider, fastOptions())

	input := []extract.Entry{
		{Noun: "xyzzy"},
		{Noun: "katze"},
	}
	got := translator.Translate(context.Background(), input)

	if got[0].English != "" {
		t.Errorf("Expected empty translation for failing noun, got '%s'", got[0].English)
	}
	if got[1].English != "cat" {
		t.Errorf("Expected processing to continue after failure, got %v", got)
	}
}

func TestTranslate_FailureCachedForRun(t *testing.T) {
	provider := &stubProvider{answers: map[string]string{}}
	translator := NewTranslator(provider, fastOptions())

	input := []extract.Entry{{Noun: "xyzzy"}}
	translator.Translate(context.Background(), input)
	callsAfterFirst := provider.calls

	// The failure is remembered, the service is not asked again
	translator.Translate(context.Background(), input)
	if provider.calls != callsAfterFirst {
		t.Errorf("Expected no further calls for a failed noun, got %d extra",
			provider.calls-callsAfterFirst)
	}
}

func TestTranslate_RetryAfterTransientFailure(t *testing.T) {
	provider := &stubProvider{
		answers:  map[string]string{"hund": "dog"},
		failures: 2,
	}
	translator := NewTranslator(provider, fastOptions())

	got := translator.Translate(context.Background(), []extract.Entry{{Noun: "hund"}})

	if got[0].English != "dog" {
		t.Errorf("Expected retry to recover, got %v", got)
	}
	if provider.calls != 3 {
		t.Errorf("Expected 3 calls (2 failures + 1 success), got %d", provider.calls)
	}
}

func TestTranslate_PersistentStore(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "translations.db")
	store, err := OpenStore(storePath)
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	defer store.Close()

	opts := fastOptions()
	opts.Store = store

	provider := &stubProvider{answers: map[string]string{"hund": "dog"}}
	translator := NewTranslator(provider, opts)
	translator.Translate(context.Background(), []extract.Entry{{Noun: "hund"}, {Noun: "xyzzy"}})

	// A fresh translator with a dead provider must still answer from the store
	dead := &stubProvider{answers: map[string]string{}}
	translator = NewTranslator(dead, opts)
	got := translator.Translate(context.Background(), []extract.Entry{{Noun: "hund"}})
	if got[0].English != "dog" {
		t.Errorf("Expected translation from persistent store, got %v", got)
	}

	// Failed lookups must not be persisted
	if _, ok, err := store.Get("xyzzy"); err != nil || ok {
		t.Errorf("Expected failed noun absent from store, found=%v err=%v", ok, err)
	}
}

func TestTranslate_SeededCache(t *testing.T) {
	provider := &stubProvider{answers: map[string]string{}}
	translator := NewTranslator(provider, fastOptions())
	translator.Cache().Add("hund", "dog")

	got := translator.Translate(context.Background(), []extract.Entry{{Article: "der", Noun: "hund"}})
	if got[0].English != "dog" {
		t.Errorf("Expected seeded translation, got %v", got)
	}
	if provider.calls != 0 {
		t.Errorf("Expected no provider calls for seeded noun, got %d", provider.calls)
	}
}

func TestSummary(t *testing.T) {
	provider := &stubProvider{answers: map[string]string{"hund": "dog", "katze": "cat"}}
	translator := NewTranslator(provider, fastOptions())

	translator.Translate(context.Background(), []extract.Entry{
		{Noun: "hund"},
		{Noun: "katze"},
		{Noun: "xyzzy"},
	})

	if got := translator.Summary(); got != "Translated: 2, failed: 1" {
		t.Errorf("Unexpected summary: %q", got)
	}
}

func TestSummary_NoFailures(t *testing.T) {
	provider := &stubProvider{answers: map[string]string{"hund": "dog"}}
	translator := NewTranslator(provider, fastOptions())

	translator.Translate(context.Background(), []extract.Entry{{Noun: "hund"}})

	if got := translator.Summary(); got != "Translated: 1" {
		t.Errorf("Unexpected summary: %q", got)
	}
}

func TestTranslate_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &stubProvider{answers: map[string]string{"hund": "dog"}}
	translator := NewTranslator(provider, fastOptions())

	got := translator.Translate(ctx, []extract.Entry{{Noun: "hund"}})
	if got[0].English != "" {
		t.Errorf("Expected no translation with canceled context, got %v", got)
	}
}
