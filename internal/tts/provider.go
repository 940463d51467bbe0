// Package tts converts reply text to speech audio. Synthesis is always
// best-effort: the caller treats absent audio as "no audio available",
// never as a failure.
package tts

import (
	"context"
	"log/slog"
)

// Provider is the interface for text-to-speech backends.
type Provider interface {
	Synthesize(ctx context.Context, text, speakerID string) ([]byte, error)
	Name() string
}

// BestEffort runs synthesis and swallows every failure. A nil provider
// (no credential configured) or any provider error yields nil audio.
func BestEffort(ctx context.Context, p Provider, text, speakerID string) []byte {
	if p == nil || text == "" {
		return nil
	}

	audio, err := p.Synthesize(ctx, text, speakerID)
	if err != nil {
		slog.Warn("speech synthesis failed", "provider", p.Name(), "error", err)
		return nil
	}
	return audio
}
