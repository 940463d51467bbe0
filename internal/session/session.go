// Package session stores per-client conversation state keyed by an opaque
// cookie-backed token.
package session

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn half.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Data is all state owned by one client session.
type Data struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CharacterID string    `json:"character_id"`
	History     []Message `json:"history"`
}

// SelectCharacter records the active character and clears any prior
// conversation.
func (d *Data) SelectCharacter(id string) {
	d.CharacterID = id
	d.History = nil
}

// Append adds one message to the end of the history.
func (d *Data) Append(role, content string) {
	d.History = append(d.History, Message{Role: role, Content: content})
}

// ResetHistory drops the conversation but keeps the selected character.
func (d *Data) ResetHistory() {
	d.History = nil
}
