package llm

import (
	"context"

	"meeting-insights/internal/app/model"
)

// Generator is the boundary to a hosted generative model. Implementations send the
// prompt (and optional audio) and return the raw JSON document conforming to Schema.
type Generator interface {
	Generate(ctx context.Context, req *Request) ([]byte, error)
}

// Request is a single structured generation call
type Request struct {
	// Name identifies the calling flow in logs, metrics and provider schema names.
	Name   string
	Prompt string
	Media  *model.AudioPayload
	Schema *Schema
}

// ProviderConfig holds the settings a provider needs to build a client
type ProviderConfig struct {
	Provider           string  `yaml:"provider"`
	Model              string  `yaml:"model"`
	TranscriptionModel string  `yaml:"transcription_model"`
	BaseURL            string  `yaml:"base_url"`
	Temperature        float32 `yaml:"temperature"`
	APIKey             string  `yaml:"-"`
}

// GeneratorFunc adapts a function to the Generator interface
type GeneratorFunc func(ctx context.Context, req *Request) ([]byte, error)

func (f GeneratorFunc) Generate(ctx context.Context, req *Request) ([]byte, error) {
	return f(ctx, req)
}
