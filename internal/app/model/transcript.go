package model

import "strings"

// Transcript is the plain-text record of a meeting, shared by every extraction flow.
type Transcript string

// IsBlank reports whether the transcript is empty after trimming whitespace.
func (t Transcript) IsBlank() bool {
	return strings.TrimSpace(string(t)) == ""
}

func (t Transcript) String() string {
	return string(t)
}
