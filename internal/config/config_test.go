package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 3005 {
		t.Errorf("port = %d, want 3005", cfg.Server.Port)
	}
	if cfg.LLM.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "claude-3-5-haiku-20241022" {
		t.Errorf("model = %q", cfg.LLM.Model)
	}
	if cfg.TTS.BaseURL != "https://www.kurdishtts.com/api/tts-proxy" {
		t.Errorf("tts url = %q", cfg.TTS.BaseURL)
	}
	if cfg.Session.Secret != "dev-secret" {
		t.Errorf("session secret = %q", cfg.Session.Secret)
	}
	if cfg.Session.Backend != "memory" {
		t.Errorf("session backend = %q", cfg.Session.Backend)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Errorf("session ttl = %v", cfg.Session.TTL)
	}
	if cfg.Addr() != "0.0.0.0:3005" {
		t.Errorf("addr = %q", cfg.Addr())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8090")
	t.Setenv("CLAUDE_API_KEY", "sk-test")
	t.Setenv("CLAUDE_MODEL", "claude-test")
	t.Setenv("KURDISH_TTS_API_KEY", "tts-test")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.LLM.AnthropicKey != "sk-test" || cfg.LLM.Model != "claude-test" {
		t.Errorf("llm config: %+v", cfg.LLM)
	}
	if cfg.TTS.APIKey != "tts-test" {
		t.Errorf("tts key = %q", cfg.TTS.APIKey)
	}
	if cfg.Session.Backend != "redis" {
		t.Errorf("backend = %q", cfg.Session.Backend)
	}
	if cfg.CORS.Origin != "https://app.example.com" {
		t.Errorf("cors origin = %q", cfg.CORS.Origin)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an invalid PORT")
	}
}
