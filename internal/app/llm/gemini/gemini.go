package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	apperrors "meeting-insights/internal/app/errors"
	"meeting-insights/internal/app/llm"
)

const DefaultModel = "gemini-2.5-flash"

func init() {
	llm.Register("gemini", func(cfg llm.ProviderConfig) (llm.Generator, error) {
		return New(context.Background(), cfg)
	})
}

// Generator calls the Gemini API and asks for JSON matching the request schema.
type Generator struct {
	client      *genai.Client
	model       string
	temperature *float32
}

// New creates a Gemini generator. The API key is required.
func New(ctx context.Context, cfg llm.ProviderConfig) (*Generator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, apperrors.Wrap(apperrors.ErrMissingAPIKey, apperrors.KindConfiguration, "gemini: GEMINI_API_KEY is not set")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	g := &Generator{client: client, model: cfg.Model}
	if g.model == "" {
		g.model = DefaultModel
	}
	if cfg.Temperature > 0 {
		t := cfg.Temperature
		g.temperature = &t
	}
	return g, nil
}

// Generate implements llm.Generator
func (g *Generator) Generate(ctx context.Context, req *llm.Request) ([]byte, error) {
	parts := []*genai.Part{{Text: req.Prompt}}
	if !req.Media.Empty() {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: req.Media.Data, MIMEType: req.Media.MediaType},
		})
	}
	contents := []*genai.Content{{Role: "user", Parts: parts}}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      g.temperature,
	}
	if req.Schema != nil {
		config.ResponseSchema = toGenaiSchema(req.Schema)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, nil
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return []byte(strings.TrimSpace(text.String())), nil
}

func toGenaiSchema(s *llm.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
	}
	switch s.Type {
	case llm.TypeObject:
		out.Type = genai.TypeObject
	case llm.TypeArray:
		out.Type = genai.TypeArray
	default:
		out.Type = genai.TypeString
	}
	if s.Items != nil {
		out.Items = toGenaiSchema(s.Items)
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}
