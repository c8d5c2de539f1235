package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/derdiedas/internal/cli"
	"codeberg.org/snonux/derdiedas/internal/export"
	"codeberg.org/snonux/derdiedas/internal/extract"
	"codeberg.org/snonux/derdiedas/internal/translation"
	"codeberg.org/snonux/derdiedas/internal/wordlist"
)

// Processor handles the main extraction pipeline
type Processor struct {
	flags *cli.Flags

	// providerConfig overrides the flag-derived provider configuration,
	// used by tests to point at a fake endpoint
	providerConfig *translation.Config

	stdin io.Reader
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags: flags,
		stdin: os.Stdin,
	}
}

// Run executes the pipeline: read input, extract, translate, export
func (p *Processor) Run(ctx context.Context, args []string) error {
	text, err := p.readInput(args)
	if err != nil {
		return err
	}

	articles, err := extract.ArticlesForVariant(p.flags.Articles)
	if err != nil {
		return err
	}
	extractor, err := extract.New(&extract.Options{Articles: articles})
	if err != nil {
		return err
	}

	entries := extractor.Extract(text)
	fmt.Fprintf(os.Stderr, "Extracted %d unique entries\n", len(entries))

	seeds, err := p.readSeeds()
	if err != nil {
		return err
	}

	if p.flags.Translate {
		entries, err = p.translateEntries(ctx, entries, seeds)
		if err != nil {
			return err
		}
	} else if len(seeds) > 0 {
		entries = applySeeds(entries, seeds)
	}

	return p.export(entries)
}

// readInput concatenates the given files, or reads stdin when no files
// are given
func (p *Processor) readInput(args []string) (string, error) {
	if len(args) == 0 {
		content, err := io.ReadAll(p.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), nil
	}

	var sb strings.Builder
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		sb.Write(content)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// readSeeds loads the word list file into a noun -> English map
func (p *Processor) readSeeds() (map[string]string, error) {
	if p.flags.WordList == "" {
		return nil, nil
	}
	list, err := wordlist.ReadFile(p.flags.WordList)
	if err != nil {
		return nil, err
	}
	seeds := make(map[string]string, len(list))
	for _, e := range list {
		seeds[e.Noun] = e.English
	}
	return seeds, nil
}

// applySeeds fills English fields from the seed map without contacting
// any translation service
func applySeeds(entries []extract.Entry, seeds map[string]string) []extract.Entry {
	result := make([]extract.Entry, len(entries))
	copy(result, entries)
	for i := range result {
		if english, ok := seeds[result[i].Noun]; ok {
			result[i].English = english
		}
	}
	return result
}

func (p *Processor) translateEntries(ctx context.Context, entries []extract.Entry, seeds map[string]string) ([]extract.Entry, error) {
	config := p.providerConfig
	if config == nil {
		config = translation.DefaultProviderConfig()
		config.Provider = p.flags.Provider
		config.OpenAIKey = cli.GetOpenAIKey()
		config.OpenAIModel = p.flags.OpenAIModel
		config.GeminiKey = cli.GetGeminiKey()
		config.GeminiModel = p.flags.GeminiModel
	}

	provider, err := translation.NewProvider(ctx, config)
	if err != nil {
		return nil, err
	}

	opts := translation.DefaultTranslatorOptions()
	if !p.flags.NoCache {
		path := p.flags.CachePath
		if path == "" {
			path = translation.DefaultStorePath()
		}
		store, err := translation.OpenStore(path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		opts.Store = store
	}

	translator := translation.NewTranslator(provider, opts)
	for noun, english := range seeds {
		translator.Cache().Add(noun, english)
	}

	translated := translator.Translate(ctx, entries)
	fmt.Fprintln(os.Stderr, translator.Summary())
	if opts.Store != nil {
		if n, err := opts.Store.Count(); err == nil {
			fmt.Fprintf(os.Stderr, "Translation cache holds %d nouns\n", n)
		}
	}
	return translated, nil
}

// export writes the entries to the clipboard, a file, or stdout. With
// --clipboard and no --output the clipboard is the only destination;
// nothing goes to stdout.
func (p *Processor) export(entries []extract.Entry) error {
	if p.flags.Format != "csv" && p.flags.Format != "tsv" {
		return fmt.Errorf("unknown export format %q (valid: csv, tsv)", p.flags.Format)
	}

	if p.flags.Clipboard {
		if err := export.CopyToClipboard(entries); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Copied %d entries to the clipboard\n", len(entries))
		if p.flags.OutputFile == "" {
			return nil
		}
	}

	switch p.flags.Format {
	case "csv":
		if p.flags.OutputFile != "" {
			return export.GenerateCSVFile(p.flags.OutputFile, entries)
		}
		return export.WriteCSV(os.Stdout, entries)
	case "tsv":
		if p.flags.OutputFile != "" {
			return export.GenerateTSVFile(p.flags.OutputFile, entries)
		}
		return export.WriteTSV(os.Stdout, entries)
	}
	return nil
}
