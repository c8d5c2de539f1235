package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider translates nouns using the Google Gemini API
type GeminiProvider struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini translation provider
func NewGeminiProvider(ctx context.Context, config *Config) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	model := config.GeminiModel
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiProvider{
		apiKey: config.GeminiKey,
		model:  model,
		client: client,
	}, nil
}

// Translate translates a German noun to English
func (p *GeminiProvider) Translate(ctx context.Context, noun string) (string, error) {
	temp := float32(0.3)
	config := &genai.GenerateContentConfig{Temperature: &temp}

	prompt := fmt.Sprintf("Translate the German noun '%s' to English. Respond with only the English translation, nothing else.", noun)

	result, err := p.client.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if result == nil {
		return "", fmt.Errorf("no translation returned")
	}

	translation := strings.TrimSpace(result.Text())
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}

	return translation, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is properly configured
func (p *GeminiProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	return nil
}
