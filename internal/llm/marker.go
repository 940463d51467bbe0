package llm

import "strings"

// EndCallMarker is the in-band sentinel the persona prompt instructs the
// model to emit when the conversation should end.
const EndCallMarker = "[END_CALL]"

// StripEndCall removes every occurrence of the end-call marker and reports
// whether any was present. The result is whitespace-trimmed.
func StripEndCall(text string) (string, bool) {
	if !strings.Contains(text, EndCallMarker) {
		return text, false
	}
	return strings.TrimSpace(strings.ReplaceAll(text, EndCallMarker, "")), true
}
