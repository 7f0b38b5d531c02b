package model

// ExtractionResult is the aggregate returned for one request. It is built once and
// never mutated afterwards.
type ExtractionResult struct {
	Summary     string   `json:"summary"`
	Objections  []string `json:"objections"`
	ActionItems []string `json:"actionItems"`
	Transcript  string   `json:"transcript"`
}

// NewExtractionResult assembles a result, normalising nil lists to empty ones so that
// serialized output always carries arrays.
func NewExtractionResult(transcript Transcript, summary string, objections, actionItems []string) *ExtractionResult {
	if objections == nil {
		objections = []string{}
	}
	if actionItems == nil {
		actionItems = []string{}
	}
	return &ExtractionResult{
		Summary:     summary,
		Objections:  objections,
		ActionItems: actionItems,
		Transcript:  string(transcript),
	}
}
