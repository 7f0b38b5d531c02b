package flows

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"text/template"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "meeting-insights/internal/app/errors"
	"meeting-insights/internal/app/llm"
	"meeting-insights/internal/app/metrics"
	"meeting-insights/internal/app/model"
)

// DefaultTimeout bounds a single model call when Options.Timeout is zero.
const DefaultTimeout = 60 * time.Second

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// MediaInput is implemented by flow inputs that carry audio for the model.
type MediaInput interface {
	Audio() (*model.AudioPayload, error)
}

// Options tune every flow in a Set
type Options struct {
	Timeout  time.Duration
	Recorder metrics.Recorder
	Logger   *zap.Logger
}

// Flow pairs a typed input, a prompt template and a declared output schema with a
// generator call. It is safe for concurrent use.
type Flow[In, Out any] struct {
	name     string
	prompt   *template.Template
	output   *llm.Schema
	gen      llm.Generator
	timeout  time.Duration
	recorder metrics.Recorder
	logger   *zap.Logger
}

// Define builds a flow. It panics if the prompt template does not parse.
func Define[In, Out any](name, prompt string, output *llm.Schema, gen llm.Generator, opts Options) *Flow[In, Out] {
	f := &Flow[In, Out]{
		name:     name,
		prompt:   template.Must(template.New(name).Option("missingkey=error").Parse(prompt)),
		output:   output,
		gen:      gen,
		timeout:  opts.Timeout,
		recorder: opts.Recorder,
		logger:   opts.Logger,
	}
	if f.timeout <= 0 {
		f.timeout = DefaultTimeout
	}
	if f.recorder == nil {
		f.recorder = metrics.Nop{}
	}
	if f.logger == nil {
		f.logger = zap.NewNop()
	}
	return f
}

// Name returns the flow name
func (f *Flow[In, Out]) Name() string {
	return f.name
}

// Run validates the input, renders the prompt, calls the model once and decodes the
// structured output. There is no retry and no partial result.
func (f *Flow[In, Out]) Run(ctx context.Context, in In) (*Out, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	req, err := f.request(in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()
	raw, err := f.gen.Generate(ctx, req)
	elapsed := time.Since(start)

	if err == nil {
		var out *Out
		out, err = f.decode(raw)
		if err == nil {
			f.recorder.ObserveFlow(f.name, elapsed, nil)
			f.logger.Debug("flow completed", zap.String("flow", f.name), zap.Duration("elapsed", elapsed))
			return out, nil
		}
	} else {
		err = apperrors.Extraction(f.name, err)
	}

	f.recorder.ObserveFlow(f.name, elapsed, err)
	f.logger.Warn("flow failed", zap.String("flow", f.name), zap.Duration("elapsed", elapsed), zap.Error(err))
	return nil, err
}

func (f *Flow[In, Out]) request(in In) (*llm.Request, error) {
	var prompt bytes.Buffer
	if err := f.prompt.Execute(&prompt, in); err != nil {
		return nil, fmt.Errorf("%s: render prompt: %w", f.name, err)
	}

	req := &llm.Request{
		Name:   f.name,
		Prompt: prompt.String(),
		Schema: f.output,
	}

	if media, ok := any(in).(MediaInput); ok {
		audio, err := media.Audio()
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.KindInvalidInput, "%s: invalid audio", f.name)
		}
		req.Media = audio
	}
	return req, nil
}

func (f *Flow[In, Out]) decode(raw []byte) (*Out, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, apperrors.Extraction(f.name, apperrors.ErrNoStructuredOutput)
	}

	out := new(Out)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, apperrors.Extraction(f.name, fmt.Errorf("decode structured output: %w", err))
	}
	return out, nil
}

func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		fieldError := validationErrs[0]
		if fieldError.Tag() == "required" {
			return apperrors.RequiredField(fieldError.Field())
		}
		return apperrors.InvalidField(fieldError.Field(), fieldError.Tag())
	}
	return apperrors.Wrap(err, apperrors.KindInvalidInput, "invalid flow input")
}
