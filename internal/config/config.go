package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	TTS     TTSConfig
	Session SessionConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LLMConfig struct {
	Provider     string // "anthropic" or "openai"
	AnthropicKey string
	AnthropicURL string // empty means SDK default
	OpenAIKey    string
	OpenAIURL    string // empty means SDK default
	Model        string
}

type TTSConfig struct {
	APIKey  string
	BaseURL string
}

type SessionConfig struct {
	Secret  string
	Backend string // "memory" or "redis"
	TTL     time.Duration
	Redis   RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CORSConfig struct {
	Origin string
}

func Load() (*Config, error) {
	port, err := getEnvInt("PORT", 3005)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	ttlHours, err := getEnvInt("SESSION_TTL_HOURS", 24)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: port,
		},
		LLM: LLMConfig{
			Provider:     getEnv("LLM_PROVIDER", "anthropic"),
			AnthropicKey: getEnv("CLAUDE_API_KEY", ""),
			AnthropicURL: getEnv("CLAUDE_API_URL", ""),
			OpenAIKey:    getEnv("OPENAI_API_KEY", ""),
			OpenAIURL:    getEnv("OPENAI_API_URL", ""),
			Model:        getEnv("CLAUDE_MODEL", "claude-3-5-haiku-20241022"),
		},
		TTS: TTSConfig{
			APIKey:  getEnv("KURDISH_TTS_API_KEY", ""),
			BaseURL: getEnv("KURDISH_TTS_API_URL", "https://www.kurdishtts.com/api/tts-proxy"),
		},
		Session: SessionConfig{
			Secret:  getEnv("SESSION_SECRET", "dev-secret"),
			Backend: getEnv("SESSION_BACKEND", "memory"),
			TTL:     time.Duration(ttlHours) * time.Hour,
			Redis: RedisConfig{
				Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       redisDB,
			},
		},
		CORS: CORSConfig{
			Origin: getEnv("CORS_ORIGIN", ""),
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
