package main

import (
	"meeting-insights/cmd/insights/cmd"

	// Import providers to register them
	_ "meeting-insights/internal/app/llm/gemini"
	_ "meeting-insights/internal/app/llm/openai"
)

func main() {
	cmd.Execute()
}
