package llm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rawezhy/peywendi/internal/characters"
	"github.com/rawezhy/peywendi/internal/config"
)

const (
	replyMaxTokens    = 1024
	greetingMaxTokens = 100

	// Synthetic user turn for the greeting call, representing the phone
	// connecting.
	greetingUserTurn = "[پەیوەندی تەلەفۆن دەگرێت]"
)

// greetingInstruction augments a persona prompt so the model answers the
// incoming call with a single short, varied line.
const greetingInstruction = "زۆر گرنگ: ئێستا کەسێک پەیوەندیت پێوە دەگرێت. تۆ دەبێت سەرەتا قسە بکەیت " +
	"وەک کاتێک کەسێک تەلەفۆنت بۆ دێت. هەر جارێک بە شێوەیەکی جیاواز سڵاو بکە یان بپرسە کێیە. " +
	"بۆ نموونە:\n- ئەلۆ؟\n- ئەلۆ کێیە؟\n- بەڵێ فەرموو؟\n- ئەلۆ تۆ کێیت؟\n- هەڵۆ؟\n- ئەلۆ فەرموو؟\n- بەڵێ؟\n\n" +
	"تەنها یەک ڕستەی کورت بڵێ بە شێوەی سروشتی وەک کاتێک کەسێک تەلەفۆنت بۆ دێت."

// Gateway turns conversation state into completion calls against the
// configured provider.
type Gateway struct {
	provider Provider
	model    string
}

// NewGateway selects the provider from config. When the matching credential
// is absent the gateway is constructed without a provider and reply
// generation fails with ErrMissingCredential.
func NewGateway(cfg config.LLMConfig) *Gateway {
	g := &Gateway{model: cfg.Model}

	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIKey != "" {
			g.provider = NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIURL)
		}
	default:
		if cfg.AnthropicKey != "" {
			g.provider = NewAnthropicProvider(cfg.AnthropicKey, cfg.AnthropicURL)
		}
	}

	return g
}

// NewGatewayWithProvider wires an explicit provider; used by tests.
func NewGatewayWithProvider(p Provider, model string) *Gateway {
	return &Gateway{provider: p, model: model}
}

// GenerateReply produces the character's next turn. history is the full
// conversation including the just-appended user message; that trailing entry
// is dropped and userMessage is sent as the new turn instead.
func (g *Gateway) GenerateReply(ctx context.Context, ch characters.Character, userMessage string, history []Message) (string, error) {
	if g.provider == nil {
		return "", ErrMissingCredential
	}

	msgs := make([]Message, 0, len(history)+1)
	if len(history) > 0 {
		msgs = append(msgs, history[:len(history)-1]...)
	}
	msgs = append(msgs, Message{Role: "user", Content: userMessage})

	resp, err := g.provider.ChatCompletion(ctx, ChatRequest{
		Model:     g.model,
		System:    ch.SystemPrompt,
		Messages:  msgs,
		MaxTokens: replyMaxTokens,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

// GenerateGreeting asks the character to answer the incoming call. It is
// best-effort: every failure, including a missing credential, degrades to an
// empty string.
func (g *Gateway) GenerateGreeting(ctx context.Context, ch characters.Character) string {
	if g.provider == nil {
		return ""
	}

	resp, err := g.provider.ChatCompletion(ctx, ChatRequest{
		Model:  g.model,
		System: ch.SystemPrompt + "\n\n" + greetingInstruction,
		Messages: []Message{
			{Role: "user", Content: greetingUserTurn},
		},
		MaxTokens: greetingMaxTokens,
	})
	if err != nil {
		slog.Warn("greeting generation failed", "character", ch.ID, "error", err)
		return ""
	}

	return strings.TrimSpace(resp.Content)
}
