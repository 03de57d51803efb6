package engine

import (
	"github.com/tonyyont/peon-ping/internal/config"
	"github.com/tonyyont/peon-ping/internal/hook"
)

// attentionMarker prefixes tab titles for events that want the user back.
const attentionMarker = "● "

// route is one row of the event table: what an event contributes to a
// Decision before gating, annoyed override, and sound selection.
type route struct {
	category    string
	status      string
	marker      string
	notify      bool
	notifyColor string
	message     string
}

// routeFor maps an event name and notification subtype to its route.
// Unknown names and unrecognized Notification subtypes report ok=false,
// which callers turn into a null decision.
func routeFor(name, subtype string) (route, bool) {
	switch name {
	case hook.SessionStart:
		return route{
			category: config.CategoryGreeting,
			status:   "ready",
		}, true

	case hook.UserPromptSubmit:
		// Category stays empty; the annoyed detector may fill it in.
		return route{
			status: "working",
		}, true

	case hook.Stop:
		return route{
			category:    config.CategoryComplete,
			status:      "done",
			marker:      attentionMarker,
			notify:      true,
			notifyColor: "blue",
			message:     "Task complete",
		}, true

	case hook.Notification:
		switch subtype {
		case hook.PermissionPrompt:
			return route{
				category:    config.CategoryPermission,
				status:      "needs approval",
				marker:      attentionMarker,
				notify:      true,
				notifyColor: "red",
				message:     "Permission needed",
			}, true
		case hook.IdlePrompt:
			return route{
				status:      "done",
				marker:      attentionMarker,
				notify:      true,
				notifyColor: "yellow",
				message:     "Waiting for input",
			}, true
		}
		return route{}, false

	case hook.PermissionRequest:
		return route{
			category:    config.CategoryPermission,
			status:      "needs approval",
			marker:      attentionMarker,
			notify:      true,
			notifyColor: "red",
			message:     "Permission needed",
		}, true
	}

	return route{}, false
}
