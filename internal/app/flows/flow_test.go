package flows

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "meeting-insights/internal/app/errors"
	"meeting-insights/internal/app/llm"
	"meeting-insights/internal/app/metrics"
	"meeting-insights/internal/app/testutil"
)

func TestSummarizeFlow(t *testing.T) {
	gen := testutil.NewMockGenerator(t)
	gen.OnFlow(SummarizeName).Return([]byte(`{"summary":"Pricing was discussed."}`), nil).Once()

	set := NewSet(gen, Options{})
	out, err := set.Summarize.Run(context.Background(), TranscriptInput{Transcript: testutil.SampleTranscript})
	require.NoError(t, err)
	assert.Equal(t, "Pricing was discussed.", out.Summary)

	req := gen.Calls[0].Arguments.Get(1).(*llm.Request)
	assert.Contains(t, req.Prompt, "Transcript: "+testutil.SampleTranscript)
	assert.Nil(t, req.Media)
	assert.Equal(t, []string{"summary"}, req.Schema.Required)
	gen.AssertExpectations(t)
}

func TestListFlows(t *testing.T) {
	gen := testutil.NewMockGenerator(t)
	gen.OnFlow(ObjectionsName).Return([]byte(`{"objections":["Too expensive","Needs SSO"]}`), nil)
	gen.OnFlow(ActionItemsName).Return([]byte(`{"actionItems":["Send quote"]}`), nil)

	set := NewSet(gen, Options{})
	in := TranscriptInput{Transcript: "some meeting"}

	objections, err := set.Objections.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Too expensive", "Needs SSO"}, objections.Objections)

	items, err := set.ActionItems.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Send quote"}, items.ActionItems)
}

func TestTranscribeFlowAttachesAudio(t *testing.T) {
	gen := testutil.NewMockGenerator(t)
	gen.OnFlow(TranscribeName).Return([]byte(`{"transcription":"hello"}`), nil)

	audio := testutil.SampleAudio()
	set := NewSet(gen, Options{})
	out, err := set.Transcribe.Run(context.Background(), TranscribeInput{AudioDataURI: audio.DataURI()})
	require.NoError(t, err)
	assert.Equal(t, "hello", out.Transcription)

	req := gen.Calls[0].Arguments.Get(1).(*llm.Request)
	require.NotNil(t, req.Media)
	assert.Equal(t, audio.Data, req.Media.Data)
	assert.Equal(t, "audio/wav", req.Media.MediaType)
}

func TestFlowValidation(t *testing.T) {
	gen := testutil.NewMockGenerator(t)
	set := NewSet(gen, Options{})

	_, err := set.Summarize.Run(context.Background(), TranscriptInput{})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
	assert.EqualError(t, err, "transcript is required")

	_, err = set.Transcribe.Run(context.Background(), TranscribeInput{})
	assert.EqualError(t, err, "audioDataUri is required")

	_, err = set.Transcribe.Run(context.Background(), TranscribeInput{AudioDataURI: "not-a-data-uri"})
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))

	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestFlowFailures(t *testing.T) {
	providerErr := errors.New("503 service unavailable")

	tests := []struct {
		name      string
		output    []byte
		err       error
		wantCause error
	}{
		{name: "provider error propagates", err: providerErr, wantCause: providerErr},
		{name: "empty output", output: []byte("  "), wantCause: apperrors.ErrNoStructuredOutput},
		{name: "null output", output: []byte("null"), wantCause: apperrors.ErrNoStructuredOutput},
		{name: "malformed output", output: []byte(`{"summary":`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := testutil.NewMockGenerator(t)
			gen.OnFlow(SummarizeName).Return(tt.output, tt.err).Once()

			set := NewSet(gen, Options{})
			out, err := set.Summarize.Run(context.Background(), TranscriptInput{Transcript: "x"})
			require.Error(t, err)
			assert.Nil(t, out)
			assert.Equal(t, apperrors.KindExtraction, apperrors.KindOf(err))
			if tt.wantCause != nil {
				assert.ErrorIs(t, err, tt.wantCause)
			}
			gen.AssertNumberOfCalls(t, "Generate", 1)
		})
	}
}

func TestFlowTimeout(t *testing.T) {
	gen := testutil.NewMockGenerator(t)
	gen.OnFlow(SummarizeName).Run(testutil.WaitForCancel).Return(nil, context.DeadlineExceeded)

	set := NewSet(gen, Options{Timeout: 20 * time.Millisecond})

	start := time.Now()
	_, err := set.Summarize.Run(context.Background(), TranscriptInput{Transcript: "x"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestFlowRecordsMetrics(t *testing.T) {
	gen := testutil.NewMockGenerator(t)
	gen.OnFlow(ActionItemsName).Return([]byte(`{"actionItems":[]}`), nil)

	reg := prometheus.NewRegistry()
	set := NewSet(gen, Options{Recorder: metrics.New(reg)})

	_, err := set.ActionItems.Run(context.Background(), TranscriptInput{Transcript: "x"})
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "meeting_insights_flow_calls_total")
	assert.Contains(t, names, "meeting_insights_flow_duration_seconds")
}

func TestDefinePanicsOnBadTemplate(t *testing.T) {
	assert.Panics(t, func() {
		Define[TranscriptInput, SummarizeOutput]("bad", "{{.Transcript", summarizeSchema, nil, Options{})
	})
}
