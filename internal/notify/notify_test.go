// Package notify tests bounded delivery and popup color mapping.
// Related: internal/notify/notify.go
package notify

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSender captures delivered notifications.
type recordingSender struct {
	mu    sync.Mutex
	sent  []Notification
	err   error
	delay time.Duration
}

func (s *recordingSender) Send(n Notification) error {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, n)
	return s.err
}

func (s *recordingSender) Available() bool { return true }

func (s *recordingSender) delivered() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notification(nil), s.sent...)
}

func TestDeliver_PassesNotificationThrough(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	h := NewHandlerWithSender(sender, time.Second)

	n := Notification{Title: "● myproj: done", Message: "myproj — Task complete", Color: "blue"}
	h.Deliver(n)

	sent := sender.delivered()
	require.Len(t, sent, 1)
	assert.Equal(t, n, sent[0])
}

func TestDeliver_SwallowsSenderError(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{err: errors.New("notifier exploded")}
	h := NewHandlerWithSender(sender, time.Second)

	// Must not panic or surface the error.
	h.Deliver(Notification{Title: "t", Message: "m"})
	assert.Len(t, sender.delivered(), 1)
}

func TestDeliver_ReturnsOnTimeout(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{delay: 2 * time.Second}
	h := NewHandlerWithSender(sender, 50*time.Millisecond)

	start := time.Now()
	h.Deliver(Notification{Title: "t", Message: "m"})
	assert.Less(t, time.Since(start), time.Second, "a wedged sender must not hold the hook")
}

func TestNewHandlerWithSender_TimeoutFallback(t *testing.T) {
	t.Parallel()

	h := NewHandlerWithSender(&noopSender{}, 0)
	assert.Equal(t, DefaultTimeout, h.timeout)

	h = NewHandlerWithSender(&noopSender{}, -time.Second)
	assert.Equal(t, DefaultTimeout, h.timeout)
}

func TestNoopSender(t *testing.T) {
	t.Parallel()

	s := &noopSender{}
	assert.NoError(t, s.Send(Notification{Title: "t"}))
	assert.False(t, s.Available())
}

func TestPopupRGB(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		color   string
		r, g, b int
	}{
		"blue":           {"blue", 30, 80, 180},
		"yellow":         {"yellow", 200, 160, 0},
		"red":            {"red", 180, 0, 0},
		"unknown is red": {"chartreuse", 180, 0, 0},
		"empty is red":   {"", 180, 0, 0},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r, g, b := popupRGB(tc.color)
			assert.Equal(t, []int{tc.r, tc.g, tc.b}, []int{r, g, b})
		})
	}
}
