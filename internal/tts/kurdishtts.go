package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rawezhy/peywendi/internal/config"
)

// KurdishTTS synthesizes Sorani speech through the kurdishtts.com proxy.
type KurdishTTS struct {
	cfg        config.TTSConfig
	httpClient *http.Client
}

// NewKurdishTTS returns nil when no API key is configured, which callers
// treat as "audio disabled".
func NewKurdishTTS(cfg config.TTSConfig) *KurdishTTS {
	if cfg.APIKey == "" {
		return nil
	}
	return &KurdishTTS{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (k *KurdishTTS) Name() string { return "kurdishtts" }

// Synthesize converts text to audio and returns the raw WAV bytes.
func (k *KurdishTTS) Synthesize(ctx context.Context, text, speakerID string) ([]byte, error) {
	body := map[string]string{
		"text":       text,
		"speaker_id": speakerID,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, k.cfg.BaseURL, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", k.cfg.APIKey)

	resp, err := k.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tts failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return audio, nil
}
