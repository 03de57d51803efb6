// Package hook parses Claude Code hook payloads delivered on stdin.
//
// Claude Code invokes the hook binary once per lifecycle event and writes a
// single JSON object to its stdin. Payloads from newer Claude Code versions
// may carry fields we do not know about; extra fields are ignored and missing
// fields decode to zero values, which downstream routing treats as "do
// nothing".
package hook

import "encoding/json"

// Event names delivered by Claude Code.
const (
	SessionStart      = "SessionStart"
	UserPromptSubmit  = "UserPromptSubmit"
	Stop              = "Stop"
	Notification      = "Notification"
	PermissionRequest = "PermissionRequest"
)

// Notification subtypes carried by Notification events.
const (
	PermissionPrompt = "permission_prompt"
	IdlePrompt       = "idle_prompt"
)

// Event is one lifecycle signal from the host application.
type Event struct {
	Name             string `json:"hook_event_name"`
	NotificationType string `json:"notification_type"`
	CWD              string `json:"cwd"`
	SessionID        string `json:"session_id"`
	PermissionMode   string `json:"permission_mode"`
}

// Parse decodes a hook payload. A malformed payload returns a zero Event
// along with the decode error; callers treat both identically (exit quietly
// with no side effects).
func Parse(raw []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(raw, &e); err != nil {
		return Event{}, err
	}
	return e, nil
}
