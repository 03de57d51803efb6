// Package engine decides what peon-ping does for one hook event.
//
// Each hook invocation builds one Engine, feeds it one event, and gets back
// at most one Decision. The engine owns all stateful behavior: agent session
// suppression, per-session pack pinning, the annoyed detector, and
// anti-repeat sound selection. State is read once at construction and
// written back at most once per event.
package engine

import (
	"time"

	"github.com/tonyyont/peon-ping/internal/annoy"
	"github.com/tonyyont/peon-ping/internal/config"
	"github.com/tonyyont/peon-ping/internal/hook"
	"github.com/tonyyont/peon-ping/internal/pack"
	"github.com/tonyyont/peon-ping/internal/state"
)

// agentModes are permission modes that flag a session as delegated agent
// work. Agent sessions are muted permanently.
var agentModes = map[string]struct{}{
	"delegate": {},
}

// Decision is the engine's single output for one event. A nil Decision
// means "do nothing".
type Decision struct {
	// Category is the sound category to play from, empty for no sound.
	Category string

	// Project is the sanitized project name derived from the event's
	// working directory.
	Project string

	// Status is the tab title status text ("working", "done", ...).
	Status string

	// Marker prefixes the tab title for events that want attention.
	Marker string

	// Notify requests a desktop notification.
	Notify bool

	// NotifyColor tints the notification popup where the platform
	// supports it ("red", "blue", "yellow").
	NotifyColor string

	// Message is the notification body, already including the project.
	Message string

	// SoundFile is the full path of the selected sound, empty for none.
	SoundFile string
}

// Engine maps events to decisions for a single invocation.
type Engine struct {
	cfg    config.Config
	store  *state.Store
	packs  *pack.Library
	paused bool

	now func() time.Time
}

// New builds an engine over one invocation's config, state, and pack
// library. paused mirrors the pause marker's presence at invocation start.
func New(cfg config.Config, store *state.Store, packs *pack.Library, paused bool) *Engine {
	return &Engine{
		cfg:    cfg,
		store:  store,
		packs:  packs,
		paused: paused,
		now:    time.Now,
	}
}

// Decide runs the full decision pipeline for one event and persists state
// if anything mutated it. It never fails: every internal error degrades to
// a smaller decision or to nil.
func (e *Engine) Decide(ev hook.Event) *Decision {
	if !e.cfg.Enabled {
		return nil
	}

	// Delegate mode is always silent, even when the payload carries no
	// session id to remember it by.
	if _, agent := agentModes[ev.PermissionMode]; agent {
		if ev.SessionID != "" {
			e.store.MarkAgentSession(ev.SessionID)
			_ = e.store.Save()
		}
		return nil
	}
	if e.store.IsAgentSession(ev.SessionID) {
		return nil
	}

	activePack := e.resolvePack(ev.SessionID)

	// Unknown events exit with no side effects, so a pack pin taken just
	// above is deliberately not persisted on this path.
	r, ok := routeFor(ev.Name, ev.NotificationType)
	if !ok {
		return nil
	}

	d := &Decision{
		Category:    r.category,
		Project:     ProjectName(ev.CWD),
		Status:      r.status,
		Marker:      r.marker,
		Notify:      r.notify,
		NotifyColor: r.notifyColor,
	}
	if r.message != "" {
		d.Message = d.Project + " — " + r.message
	}

	// The annoyed override swaps only the category; status stays
	// "working". The detector is consulted (and its window recorded)
	// only when the annoyed category is enabled.
	if ev.Name == hook.UserPromptSubmit && e.cfg.CategoryEnabled(config.CategoryAnnoyed) {
		det := annoy.Detector{
			Threshold: e.cfg.AnnoyedThreshold,
			Window:    time.Duration(e.cfg.AnnoyedWindowSeconds * float64(time.Second)),
		}
		timestamps, triggered := det.Record(e.store.PromptTimestamps(ev.SessionID), e.now())
		e.store.SetPromptTimestamps(ev.SessionID, timestamps)
		if triggered {
			d.Category = config.CategoryAnnoyed
		}
	}

	// Disabling a category silences its sound but leaves title and
	// notification behavior untouched.
	if d.Category != "" && !e.cfg.CategoryEnabled(d.Category) {
		d.Category = ""
	}

	if d.Category != "" && !e.paused {
		path, file := e.packs.Select(activePack, d.Category, e.store.LastPlayed(d.Category))
		if file != "" {
			e.store.SetLastPlayed(d.Category, file)
			d.SoundFile = path
		}
	}

	e.persist()
	return d
}

// resolvePack returns the pack to draw sounds from. With a rotation
// configured, each session is pinned to a random rotation member; the pin
// is re-validated against the rotation on every event so a shrunken
// rotation triggers a silent re-pick.
func (e *Engine) resolvePack(sessionID string) string {
	if len(e.cfg.PackRotation) == 0 {
		return e.cfg.ActivePack
	}

	packName, repinned := pack.PickRotation(e.cfg.PackRotation, e.store.PinnedPack(sessionID))
	if repinned {
		e.store.PinPack(sessionID, packName)
	}
	return packName
}

// persist writes state back once, best-effort. A failed write is
// swallowed: the next invocation re-derives from whatever is on disk.
func (e *Engine) persist() {
	if !e.store.Dirty() {
		return
	}
	_ = e.store.Save()
}
