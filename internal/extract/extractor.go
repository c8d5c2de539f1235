package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultWordPattern matches a single word: a letter followed by any run
// of letters, combining marks, hyphens, or apostrophes. Everything else
// (whitespace, punctuation, digits) separates words.
const DefaultWordPattern = `\pL[\pL\pM'’-]*`

// Entry is a single extracted vocabulary item: either a bare noun or an
// article+noun pair. English stays empty until a translator fills it in.
type Entry struct {
	Article string // article token, lowercased; empty for bare entries
	Noun    string // the noun, lowercased, never empty
	English string // English translation, empty until translated
}

// Display returns the human-readable rendering: "article noun" for
// pairs, just "noun" otherwise.
func (e Entry) Display() string {
	if e.Article == "" {
		return e.Noun
	}
	return e.Article + " " + e.Noun
}

// Key returns the deduplication key. The space separator keeps a bare
// "die" distinct from "die" used as an article in front of a noun.
func (e Entry) Key() string {
	return e.Article + " " + e.Noun
}

// Options configures an Extractor. Both fields are configuration data,
// not behavior: swapping the article set or word pattern yields a
// different language variant of the same extractor.
type Options struct {
	Articles    []string // article tokens, lowercased
	WordPattern string   // regular expression matching a single word
}

// DefaultOptions returns the definite-article variant with the standard
// word pattern.
func DefaultOptions() *Options {
	return &Options{
		Articles:    DefiniteArticles,
		WordPattern: DefaultWordPattern,
	}
}

// Extractor extracts article+noun pairs from text. It is safe for
// concurrent use once created.
type Extractor struct {
	articles map[string]bool
	word     *regexp.Regexp
}

// New creates an Extractor from the given options
func New(opts *Options) (*Extractor, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	pattern := opts.WordPattern
	if pattern == "" {
		pattern = DefaultWordPattern
	}
	word, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid word pattern: %w", err)
	}

	articles := make(map[string]bool, len(opts.Articles))
	for _, a := range opts.Articles {
		articles[strings.ToLower(a)] = true
	}

	return &Extractor{articles: articles, word: word}, nil
}

// Extract tokenizes text, pairs articles with the word that follows
// them, and returns the deduplicated entries in first-seen order.
// Empty input yields an empty result.
func (x *Extractor) Extract(text string) []Entry {
	tokens := x.tokenize(text)

	var entries []Entry
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if x.articles[tok] && i+1 < len(tokens) {
			// Article followed by a word: pair them and skip past
			// both so the noun is never reconsidered on its own.
			entries = append(entries, Entry{Article: tok, Noun: tokens[i+1]})
			i += 2
			continue
		}
		// Bare word, or an article as the very last token.
		entries = append(entries, Entry{Noun: tok})
		i++
	}

	return dedupe(entries)
}

// tokenize splits text into lowercased words in scan order. Casing is
// not preserved: pairing, dedup, and lookup are all case-insensitive.
func (x *Extractor) tokenize(text string) []string {
	words := x.word.FindAllString(text, -1)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// dedupe drops every entry whose key was already seen. The first
// occurrence wins and fixes the position.
func dedupe(entries []Entry) []Entry {
	seen := make(map[string]bool, len(entries))
	var result []Entry
	for _, e := range entries {
		if seen[e.Key()] {
			continue
		}
		seen[e.Key()] = true
		result = append(result, e)
	}
	return result
}
