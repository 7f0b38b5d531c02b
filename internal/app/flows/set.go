package flows

import "meeting-insights/internal/app/llm"

const (
	TranscribeName  = "transcribeAudio"
	SummarizeName   = "summarizeMeeting"
	ObjectionsName  = "extractObjections"
	ActionItemsName = "extractActionItems"
)

var (
	transcribeSchema = llm.Object(map[string]*llm.Schema{
		"transcription": llm.String("The full transcription of the audio."),
	})
	summarizeSchema = llm.Object(map[string]*llm.Schema{
		"summary": llm.String("A concise summary of the key discussion points from the meeting."),
	})
	objectionsSchema = llm.Object(map[string]*llm.Schema{
		"objections": llm.ArrayOf(
			llm.String("One pain point, objection or resolution as a short sentence."),
			"A list of client pain points, objections, and resolutions discussed during the meeting.",
		),
	})
	actionItemsSchema = llm.Object(map[string]*llm.Schema{
		"actionItems": llm.ArrayOf(
			llm.String("A specific task or follow-up."),
			"A list of action items extracted from the meeting transcript.",
		),
	})
)

// Set is the four flows of the pipeline, all bound to one generator
type Set struct {
	Transcribe  *Flow[TranscribeInput, TranscribeOutput]
	Summarize   *Flow[TranscriptInput, SummarizeOutput]
	Objections  *Flow[TranscriptInput, ObjectionsOutput]
	ActionItems *Flow[TranscriptInput, ActionItemsOutput]
}

// NewSet defines every flow against gen
func NewSet(gen llm.Generator, opts Options) *Set {
	return &Set{
		Transcribe:  Define[TranscribeInput, TranscribeOutput](TranscribeName, transcribePrompt, transcribeSchema, gen, opts),
		Summarize:   Define[TranscriptInput, SummarizeOutput](SummarizeName, summarizePrompt, summarizeSchema, gen, opts),
		Objections:  Define[TranscriptInput, ObjectionsOutput](ObjectionsName, objectionsPrompt, objectionsSchema, gen, opts),
		ActionItems: Define[TranscriptInput, ActionItemsOutput](ActionItemsName, actionItemsPrompt, actionItemsSchema, gen, opts),
	}
}
