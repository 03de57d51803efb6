// Package state persists the small advisory document peon-ping keeps
// between hook invocations: which sessions are agent sessions, which pack a
// session is pinned to, recent prompt timestamps, and the last sound played
// per category.
//
// The document is a cache, not a source of truth. Concurrent hook
// invocations race on it with last-writer-wins semantics; a lost or
// corrupted write only resets session memory and must never prevent a later
// invocation from producing a decision. Deleting the file at any time is
// safe.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// StateFileName is the name of the state file inside the peon directory.
// The leading dot keeps it out of the way of the user-facing config.
const StateFileName = ".state.json"

// Document is the on-disk shape of the persisted state. All maps are
// written back wholesale; there is no partial merge.
type Document struct {
	// AgentSessions lists session ids flagged as delegated/agent work.
	// Serialized as a list, treated as a set; grows monotonically.
	AgentSessions []string `json:"agent_sessions,omitempty"`

	// SessionPacks pins a rotation pack per session id.
	SessionPacks map[string]string `json:"session_packs,omitempty"`

	// PromptTimestamps holds recent prompt-submit times (epoch seconds)
	// per session id, pruned to the annoyed window on each prompt.
	PromptTimestamps map[string][]float64 `json:"prompt_timestamps,omitempty"`

	// LastPlayed records the most recent sound filename per category,
	// globally across sessions.
	LastPlayed map[string]string `json:"last_played,omitempty"`
}

// Store is one invocation's view of the state document. Mutations set a
// dirty flag; Save writes the whole document back only when asked.
type Store struct {
	path  string
	doc   Document
	agent map[string]struct{}
	dirty bool
}

// Open loads the state document from peonDir. A missing, unreadable, or
// malformed file yields an empty document — equivalent to resetting all
// session memory. Open never fails.
func Open(peonDir string) *Store {
	s := &Store{path: filepath.Join(peonDir, StateFileName)}

	if data, err := os.ReadFile(s.path); err == nil {
		// Corrupt JSON leaves a zero Document behind.
		_ = json.Unmarshal(data, &s.doc)
	}

	// Deduplicate the list-backed session set on load.
	s.agent = make(map[string]struct{}, len(s.doc.AgentSessions))
	deduped := s.doc.AgentSessions[:0]
	for _, id := range s.doc.AgentSessions {
		if _, seen := s.agent[id]; seen {
			continue
		}
		s.agent[id] = struct{}{}
		deduped = append(deduped, id)
	}
	s.doc.AgentSessions = deduped

	return s
}

// IsAgentSession reports whether the session id has been flagged as an
// agent session.
func (s *Store) IsAgentSession(sessionID string) bool {
	_, ok := s.agent[sessionID]
	return ok
}

// MarkAgentSession flags a session id as an agent session. The flag is
// permanent for the lifetime of the id in state.
func (s *Store) MarkAgentSession(sessionID string) {
	if sessionID == "" {
		return
	}
	if _, ok := s.agent[sessionID]; ok {
		return
	}
	s.agent[sessionID] = struct{}{}
	s.doc.AgentSessions = append(s.doc.AgentSessions, sessionID)
	s.dirty = true
}

// PinnedPack returns the pack pinned to a session, or "" if none.
func (s *Store) PinnedPack(sessionID string) string {
	return s.doc.SessionPacks[sessionID]
}

// PinPack pins a pack to a session id.
func (s *Store) PinPack(sessionID, packName string) {
	if s.doc.SessionPacks == nil {
		s.doc.SessionPacks = make(map[string]string)
	}
	s.doc.SessionPacks[sessionID] = packName
	s.dirty = true
}

// PromptTimestamps returns the recorded prompt times for a session.
func (s *Store) PromptTimestamps(sessionID string) []float64 {
	return s.doc.PromptTimestamps[sessionID]
}

// SetPromptTimestamps replaces the recorded prompt times for a session.
func (s *Store) SetPromptTimestamps(sessionID string, timestamps []float64) {
	if s.doc.PromptTimestamps == nil {
		s.doc.PromptTimestamps = make(map[string][]float64)
	}
	s.doc.PromptTimestamps[sessionID] = timestamps
	s.dirty = true
}

// LastPlayed returns the last sound filename selected for a category.
func (s *Store) LastPlayed(category string) string {
	return s.doc.LastPlayed[category]
}

// SetLastPlayed records the sound filename selected for a category.
func (s *Store) SetLastPlayed(category, file string) {
	if s.doc.LastPlayed == nil {
		s.doc.LastPlayed = make(map[string]string)
	}
	s.doc.LastPlayed[category] = file
	s.dirty = true
}

// Dirty reports whether any mutation has been recorded since Open.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Save writes the document back using a temp-file-and-rename so a crash
// mid-write cannot leave a truncated file. There is no lock: overlapping
// invocations race and the last writer wins, which the design accepts.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.Marshal(s.doc)
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return err
	}

	s.dirty = false
	return nil
}
