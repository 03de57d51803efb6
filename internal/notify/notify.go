// Package notify renders desktop notifications for hook decisions.
//
// Each platform gets a Sender built on native OS tools (osascript on macOS,
// notify-send on Linux, PowerShell popups on Windows and WSL), so the
// binary stays CGO-free with no extra runtime dependencies. Delivery is
// dispatched on a goroutine and awaited with a bounded timeout so a slow or
// wedged notifier can never hold the hook past the host's deadline.
package notify

import (
	"context"
	"time"
)

// DefaultTimeout bounds how long a hook invocation waits for a
// notification to render before giving up and exiting. Claude Code applies
// its own deadline to hook processes; staying under it matters more than
// the popup.
const DefaultTimeout = 10 * time.Second

// Notification is one desktop popup request.
type Notification struct {
	// Title is the popup title, typically the tab title text.
	Title string

	// Message is the popup body, e.g. "myproj — Task complete".
	Message string

	// Color tints the popup on platforms that support it: "red",
	// "blue", or "yellow". Unknown values fall back to red.
	Color string
}

// Handler delivers notifications through a platform Sender with a bounded
// wait.
type Handler struct {
	sender  Sender
	timeout time.Duration
}

// NewHandler returns a Handler using the current platform's sender.
// A non-positive timeout falls back to DefaultTimeout.
func NewHandler(timeout time.Duration) *Handler {
	return NewHandlerWithSender(NewSender(), timeout)
}

// NewHandlerWithSender returns a Handler with a custom sender, for tests.
func NewHandlerWithSender(sender Sender, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Handler{sender: sender, timeout: timeout}
}

// Deliver sends the notification and waits for it to render, up to the
// handler's timeout. Failures and timeouts are swallowed: a notification
// is best-effort and never the hook's problem.
func (h *Handler) Deliver(n Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = h.sender.Send(n)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
