package insights

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apperrors "meeting-insights/internal/app/errors"
	"meeting-insights/internal/app/flows"
	"meeting-insights/internal/app/model"
)

// Request carries either pasted transcript text or an uploaded recording.
// Non-blank text wins when both are present.
type Request struct {
	Transcript string
	Audio      *model.AudioPayload
}

// Observer is notified once per processed request
type Observer interface {
	ObserveExtraction(err error)
}

type nopObserver struct{}

func (nopObserver) ObserveExtraction(error) {}

// Extractor turns a request into an ExtractionResult. It holds no per-request state.
type Extractor struct {
	flows    *flows.Set
	logger   *zap.Logger
	observer Observer
}

// NewExtractor creates an Extractor over the given flows
func NewExtractor(set *flows.Set, logger *zap.Logger, observer Observer) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &Extractor{flows: set, logger: logger, observer: observer}
}

// Process normalises the request to a transcript and runs summary, objection and
// action item extraction concurrently. The first failing flow cancels the others and
// its error is returned; a partial result is never returned.
func (e *Extractor) Process(ctx context.Context, req *Request) (*model.ExtractionResult, error) {
	start := time.Now()
	result, err := e.process(ctx, req)
	e.observer.ObserveExtraction(err)

	if err != nil {
		e.logger.Error("extraction failed",
			zap.String("kind", string(apperrors.KindOf(err))),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	e.logger.Info("extraction completed",
		zap.Int("transcript_bytes", len(result.Transcript)),
		zap.Int("objections", len(result.Objections)),
		zap.Int("action_items", len(result.ActionItems)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

func (e *Extractor) process(ctx context.Context, req *Request) (*model.ExtractionResult, error) {
	if req == nil {
		req = &Request{}
	}

	transcript, err := e.transcript(ctx, req)
	if err != nil {
		return nil, err
	}
	if transcript.IsBlank() {
		return nil, apperrors.ErrEmptyTranscript
	}

	return e.extract(ctx, transcript)
}

// transcript resolves the text to analyse, transcribing audio when no text was given.
func (e *Extractor) transcript(ctx context.Context, req *Request) (model.Transcript, error) {
	text := model.Transcript(req.Transcript)
	if !text.IsBlank() || req.Audio.Empty() {
		return text, nil
	}

	if !req.Audio.IsAudio() {
		return "", apperrors.ErrInvalidMediaType
	}

	e.logger.Debug("transcribing audio",
		zap.String("media_type", req.Audio.MediaType),
		zap.Int("bytes", len(req.Audio.Data)),
	)
	out, err := e.flows.Transcribe.Run(ctx, flows.TranscribeInput{AudioDataURI: req.Audio.DataURI()})
	if err != nil {
		return "", err
	}
	return model.Transcript(out.Transcription), nil
}

func (e *Extractor) extract(ctx context.Context, transcript model.Transcript) (*model.ExtractionResult, error) {
	in := flows.TranscriptInput{Transcript: transcript.String()}

	var (
		summary     *flows.SummarizeOutput
		objections  *flows.ObjectionsOutput
		actionItems *flows.ActionItemsOutput
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary, err = e.flows.Summarize.Run(gctx, in)
		return err
	})
	g.Go(func() (err error) {
		objections, err = e.flows.Objections.Run(gctx, in)
		return err
	})
	g.Go(func() (err error) {
		actionItems, err = e.flows.ActionItems.Run(gctx, in)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return model.NewExtractionResult(transcript, summary.Summary, objections.Objections, actionItems.ActionItems), nil
}
