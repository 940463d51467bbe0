package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rawezhy/peywendi/internal/characters"
	"github.com/rawezhy/peywendi/internal/llm"
	"github.com/rawezhy/peywendi/internal/session"
	"github.com/rawezhy/peywendi/internal/tts"
)

// ReplyGenerator is the slice of the LLM gateway the call handlers use.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, ch characters.Character, userMessage string, history []llm.Message) (string, error)
	GenerateGreeting(ctx context.Context, ch characters.Character) string
}

// CallHandler orchestrates one conversation turn: session state, reply
// generation, end-call detection, and best-effort speech synthesis.
type CallHandler struct {
	sessions *session.Manager
	llm      ReplyGenerator
	tts      tts.Provider
}

func NewCallHandler(sessions *session.Manager, gen ReplyGenerator, ttsProvider tts.Provider) *CallHandler {
	return &CallHandler{
		sessions: sessions,
		llm:      gen,
		tts:      ttsProvider,
	}
}

type selectCharacterRequest struct {
	Character string `json:"character"`
}

type selectCharacterResponse struct {
	Success        bool               `json:"success"`
	Character      characters.Profile `json:"character"`
	InitialMessage *string            `json:"initial_message"`
	InitialAudio   *string            `json:"initial_audio"`
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

type sendMessageResponse struct {
	Success  bool    `json:"success"`
	Response string  `json:"response"`
	Audio    *string `json:"audio"`
	EndCall  bool    `json:"end_call"`
}

// Characters returns the sanitized contact list for the selection screen.
func (h *CallHandler) Characters(w http.ResponseWriter, r *http.Request) {
	all := characters.All()
	profiles := make([]characters.Profile, 0, len(all))
	for _, c := range all {
		profiles = append(profiles, c.Sanitized())
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"characters": profiles})
}

// SelectCharacter starts a call: validates the character, resets the
// conversation, and best-effort fetches a spoken greeting.
func (h *CallHandler) SelectCharacter(w http.ResponseWriter, r *http.Request) {
	var req selectCharacterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ch, ok := characters.Lookup(req.Character)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid character")
		return
	}

	sess, err := h.sessions.Load(w, r)
	if err != nil {
		slog.Error("session load failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	sess.SelectCharacter(ch.ID)

	var initialMessage *string
	if greeting := h.llm.GenerateGreeting(r.Context(), ch); greeting != "" {
		sess.Append(session.RoleAssistant, greeting)
		initialMessage = &greeting
	}

	if err := h.sessions.Save(r.Context(), sess); err != nil {
		slog.Error("session save failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	var initialAudio *string
	if initialMessage != nil {
		initialAudio = h.synthesize(r.Context(), *initialMessage, ch.SpeakerID)
	}

	writeJSON(w, http.StatusOK, selectCharacterResponse{
		Success:        true,
		Character:      ch.Sanitized(),
		InitialMessage: initialMessage,
		InitialAudio:   initialAudio,
	})
}

// SendMessage runs one turn: append the user message, generate the reply,
// strip the end-call marker, append the reply, synthesize audio.
func (h *CallHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userMessage := strings.TrimSpace(req.Message)

	sess, err := h.sessions.Load(w, r)
	if err != nil {
		slog.Error("session load failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	ch, ok := characters.Lookup(sess.CharacterID)
	if !ok || userMessage == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	// The user turn stays in history even if reply generation fails below.
	sess.Append(session.RoleUser, userMessage)
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		slog.Error("session save failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	reply, err := h.llm.GenerateReply(r.Context(), ch, userMessage, toLLMHistory(sess.History))
	if err != nil {
		slog.Error("reply generation failed", "character", ch.ID, "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	reply, endCall := llm.StripEndCall(reply)

	sess.Append(session.RoleAssistant, reply)
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		slog.Error("session save failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	audio := h.synthesize(r.Context(), reply, ch.SpeakerID)

	writeJSON(w, http.StatusOK, sendMessageResponse{
		Success:  true,
		Response: reply,
		Audio:    audio,
		EndCall:  endCall,
	})
}

// ResetConversation clears history unconditionally and keeps the selected
// character.
func (h *CallHandler) ResetConversation(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Load(w, r)
	if err != nil {
		slog.Error("session load failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	sess.ResetHistory()
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		slog.Error("session save failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// synthesize returns base64-encoded audio, or nil when synthesis is
// unavailable or fails.
func (h *CallHandler) synthesize(ctx context.Context, text, speakerID string) *string {
	audio := tts.BestEffort(ctx, h.tts, text, speakerID)
	if audio == nil {
		return nil
	}
	encoded := base64.StdEncoding.EncodeToString(audio)
	return &encoded
}

func toLLMHistory(history []session.Message) []llm.Message {
	out := make([]llm.Message, len(history))
	for i, m := range history {
		out[i] = llm.Message{Role: m.Role, Content: m.Content}
	}
	return out
}
