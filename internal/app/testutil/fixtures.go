package testutil

import "meeting-insights/internal/app/model"

// SampleTranscript is a short sales call used across tests
const SampleTranscript = `Alice: Thanks for joining. Our main concern is the onboarding cost.
Bob: Understood, we can waive the setup fee for annual plans.
Alice: Great. Can you send the revised quote by Friday?
Bob: Yes, I'll send it, and Carol will schedule the technical demo.`

// SampleResult returns the extraction result matching SampleTranscript
func SampleResult() *model.ExtractionResult {
	return model.NewExtractionResult(
		SampleTranscript,
		"The client raised onboarding cost; the vendor offered to waive the setup fee for annual plans.",
		[]string{"Onboarding cost is too high, resolved by waiving the setup fee, for annual plans"},
		[]string{"Bob to send the revised quote by Friday", `Carol to schedule the "technical" demo`},
	)
}

// SampleAudio returns a tiny audio payload
func SampleAudio() *model.AudioPayload {
	return &model.AudioPayload{Data: []byte("RIFF0000WAVEfmt "), MediaType: "audio/wav"}
}
