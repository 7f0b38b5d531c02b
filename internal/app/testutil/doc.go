// Package testutil provides shared testing helpers for the meeting-insights application.
//
// It contains:
//
//  1. MockGenerator (mock_generator.go): a testify mock of llm.Generator with matchers
//     that select calls by flow name, so one mock can answer all four flows.
//  2. Fixtures (fixtures.go): a sample transcript, its extraction result and an audio
//     payload.
//
// # Usage Examples
//
//	gen := testutil.NewMockGenerator(t)
//	gen.OnFlow("summarizeMeeting").Return([]byte(`{"summary":"ok"}`), nil)
//	set := flows.NewSet(gen, flows.Options{})
package testutil
