package model

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const audioClassPrefix = "audio/"

// AudioPayload is an uploaded recording. It is consumed once by transcription.
type AudioPayload struct {
	Data      []byte
	MediaType string
}

// IsAudio reports whether the declared media type belongs to the audio class.
func (a *AudioPayload) IsAudio() bool {
	if a == nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(a.MediaType)), audioClassPrefix)
}

// Empty reports whether the payload carries no bytes.
func (a *AudioPayload) Empty() bool {
	return a == nil || len(a.Data) == 0
}

// DataURI encodes the payload as data:<media-type>;base64,<data>.
func (a *AudioPayload) DataURI() string {
	return "data:" + a.MediaType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// ParseDataURI decodes a base64 data URI produced by DataURI.
func ParseDataURI(uri string) (*AudioPayload, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, fmt.Errorf("data uri: missing data: prefix")
	}
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("data uri: missing payload separator")
	}
	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, fmt.Errorf("data uri: only base64 encoding is supported")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("data uri: %w", err)
	}
	return &AudioPayload{Data: data, MediaType: mediaType}, nil
}
