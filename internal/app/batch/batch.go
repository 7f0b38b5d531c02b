package batch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"meeting-insights/internal/app/export"
	"meeting-insights/internal/app/insights"
	"meeting-insights/internal/app/model"
)

// DefaultParallel bounds concurrent extractions when Options.Parallel is zero
const DefaultParallel = 2

var audioTypes = map[string]string{
	".aac":  "audio/aac",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".mp3":  "audio/mpeg",
	".oga":  "audio/ogg",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".wav":  "audio/wav",
	".weba": "audio/webm",
}

// Processor is satisfied by *insights.Extractor
type Processor interface {
	Process(ctx context.Context, req *insights.Request) (*model.ExtractionResult, error)
}

// Sender is satisfied by *notify.Mailer
type Sender interface {
	Send(ctx context.Context, result *model.ExtractionResult) error
}

// Options control a batch run
type Options struct {
	Format     export.Format
	OutputDir  string
	// Stdout receives exports instead of files when set
	Stdout     io.Writer
	ForceAudio bool
	Parallel   int
	Progress   ProgressConfig
}

// Outcome is the result of one input file
type Outcome struct {
	Input  string
	Output string
	Err    error
}

// Runner extracts insights from files
type Runner struct {
	processor Processor
	sender    Sender
	opts      Options
	logger    *zap.Logger
	stdoutMu  sync.Mutex
}

// NewRunner creates a runner. sender may be nil to skip email.
func NewRunner(processor Processor, sender Sender, opts Options, logger *zap.Logger) *Runner {
	if opts.Parallel <= 0 {
		opts.Parallel = DefaultParallel
	}
	if opts.Format == "" {
		opts.Format = export.FormatJSON
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{processor: processor, sender: sender, opts: opts, logger: logger}
}

// Run processes every path. A failing file does not stop the others; its error is
// reported in the Outcome. Run returns an error only when ctx ends first.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Outcome, error) {
	outcomes := make([]Outcome, len(paths))

	progress := NewProgressManager(r.opts.Progress)
	bar := progress.CreateBar(len(paths), "Extracting insights")
	defer progress.Wait()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Parallel)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			defer bar.Increment()
			output, err := r.runOne(gctx, path)
			outcomes[i] = Outcome{Input: path, Output: output, Err: err}
			if err != nil {
				r.logger.Error("failed to process file", zap.String("file", path), zap.Error(err))
			} else {
				r.logger.Info("processed file", zap.String("file", path), zap.String("output", output))
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		bar.Abort()
		return outcomes, err
	}
	return outcomes, nil
}

func (r *Runner) runOne(ctx context.Context, path string) (string, error) {
	req, err := LoadRequest(path, r.opts.ForceAudio)
	if err != nil {
		return "", err
	}

	result, err := r.processor.Process(ctx, req)
	if err != nil {
		return "", err
	}

	output, err := r.write(path, result)
	if err != nil {
		return "", err
	}

	if r.sender != nil {
		if err := r.sender.Send(ctx, result); err != nil {
			return output, err
		}
	}
	return output, nil
}

func (r *Runner) write(input string, result *model.ExtractionResult) (string, error) {
	if r.opts.Stdout != nil {
		r.stdoutMu.Lock()
		defer r.stdoutMu.Unlock()
		return "-", export.Write(r.opts.Stdout, r.opts.Format, result)
	}

	name := r.opts.Format.Filename(strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)))
	output := filepath.Join(r.opts.OutputDir, name)

	if r.opts.OutputDir != "" {
		if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(output)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", output, err)
	}

	if err := export.Write(file, r.opts.Format, result); err != nil {
		file.Close()
		os.Remove(output)
		return "", fmt.Errorf("write %s: %w", output, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(output)
		return "", fmt.Errorf("close %s: %w", output, err)
	}
	return output, nil
}

// LoadRequest reads a file as audio when its extension is a known audio type (or
// forceAudio is set) and as transcript text otherwise.
func LoadRequest(path string, forceAudio bool) (*insights.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	mediaType, isAudio := audioTypes[strings.ToLower(filepath.Ext(path))]
	if !isAudio && !forceAudio {
		return &insights.Request{Transcript: string(data)}, nil
	}
	if mediaType == "" {
		mediaType = http.DetectContentType(data)
	}
	return &insights.Request{Audio: &model.AudioPayload{Data: data, MediaType: mediaType}}, nil
}
