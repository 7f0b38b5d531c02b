package openai

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	apperrors "meeting-insights/internal/app/errors"
	"meeting-insights/internal/app/llm"
	"meeting-insights/internal/app/model"
)

const DefaultModel = openai.GPT4oMini

func init() {
	llm.Register("openai", func(cfg llm.ProviderConfig) (llm.Generator, error) {
		return New(cfg)
	})
}

// Generator calls the Chat Completions API with a strict JSON schema response format.
// Audio is transcribed with Whisper first and handed to the chat model as text.
type Generator struct {
	client             *openai.Client
	model              string
	transcriptionModel string
	temperature        float32
}

// New creates an OpenAI generator. The API key is required.
func New(cfg llm.ProviderConfig) (*Generator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, apperrors.Wrap(apperrors.ErrMissingAPIKey, apperrors.KindConfiguration, "openai: OPENAI_API_KEY is not set")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	g := &Generator{
		client:             openai.NewClientWithConfig(clientConfig),
		model:              cfg.Model,
		transcriptionModel: cfg.TranscriptionModel,
		temperature:        cfg.Temperature,
	}
	if g.model == "" {
		g.model = DefaultModel
	}
	if g.transcriptionModel == "" {
		g.transcriptionModel = openai.Whisper1
	}
	return g, nil
}

// Generate implements llm.Generator
func (g *Generator) Generate(ctx context.Context, req *llm.Request) ([]byte, error) {
	prompt := req.Prompt
	if !req.Media.Empty() {
		text, err := g.transcribe(ctx, req.Media)
		if err != nil {
			return nil, err
		}
		prompt = fmt.Sprintf("%s\n\nAudio (%s) as recognised by speech-to-text:\n%s", prompt, req.Media.MediaType, text)
	}

	request := openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}
	if req.Schema != nil {
		definition := toDefinition(req.Schema)
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schemaName(req.Name),
				Schema: &definition,
				Strict: true,
			},
		}
	} else {
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}
	return []byte(strings.TrimSpace(resp.Choices[0].Message.Content)), nil
}

func (g *Generator) transcribe(ctx context.Context, audio *model.AudioPayload) (string, error) {
	resp, err := g.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    g.transcriptionModel,
		FilePath: audioFileName(audio.MediaType),
		Reader:   bytes.NewReader(audio.Data),
	})
	if err != nil {
		return "", fmt.Errorf("openai: transcription: %w", err)
	}
	return resp.Text, nil
}

// whisperExts maps audio media types to extensions the transcription endpoint accepts.
var whisperExts = map[string]string{
	"audio/flac":     ".flac",
	"audio/x-flac":   ".flac",
	"audio/mp4":      ".m4a",
	"audio/m4a":      ".m4a",
	"audio/x-m4a":    ".m4a",
	"audio/mpeg":     ".mp3",
	"audio/mp3":      ".mp3",
	"audio/mpga":     ".mpga",
	"audio/ogg":      ".ogg",
	"audio/opus":     ".ogg",
	"audio/wav":      ".wav",
	"audio/wave":     ".wav",
	"audio/x-wav":    ".wav",
	"audio/vnd.wave": ".wav",
	"audio/webm":     ".webm",
	"video/mp4":      ".mp4",
	"video/webm":     ".webm",
}

// audioFileName gives Whisper a file name whose extension matches the media type.
func audioFileName(mediaType string) string {
	base, _, _ := strings.Cut(mediaType, ";")
	base = strings.ToLower(strings.TrimSpace(base))
	if ext, ok := whisperExts[base]; ok {
		return "audio" + ext
	}
	if _, sub, ok := strings.Cut(base, "/"); ok && sub != "" {
		return "audio." + sub
	}
	return "audio"
}

func schemaName(name string) string {
	if name == "" {
		return "output"
	}
	return name
}

func toDefinition(s *llm.Schema) jsonschema.Definition {
	d := jsonschema.Definition{
		Description: s.Description,
		Required:    s.Required,
	}
	switch s.Type {
	case llm.TypeObject:
		d.Type = jsonschema.Object
		d.AdditionalProperties = false
	case llm.TypeArray:
		d.Type = jsonschema.Array
	default:
		d.Type = jsonschema.String
	}
	if s.Items != nil {
		items := toDefinition(s.Items)
		d.Items = &items
	}
	if len(s.Properties) > 0 {
		d.Properties = make(map[string]jsonschema.Definition, len(s.Properties))
		for name, prop := range s.Properties {
			d.Properties[name] = toDefinition(prop)
		}
	}
	return d
}
