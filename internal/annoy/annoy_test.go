// Package annoy tests the sliding-window prompt-spam detector.
// Related: internal/annoy/annoy.go
package annoy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecord_TriggersAtThreshold(t *testing.T) {
	t.Parallel()

	det := Detector{Threshold: 3, Window: 10 * time.Second}
	base := time.Unix(1_700_000_000, 0)

	ts, triggered := det.Record(nil, base)
	assert.Len(t, ts, 1)
	assert.False(t, triggered)

	ts, triggered = det.Record(ts, base.Add(2*time.Second))
	assert.Len(t, ts, 2)
	assert.False(t, triggered)

	ts, triggered = det.Record(ts, base.Add(4*time.Second))
	assert.Len(t, ts, 3)
	assert.True(t, triggered, "third prompt within the window triggers")
}

func TestRecord_PrunesOutsideWindow(t *testing.T) {
	t.Parallel()

	det := Detector{Threshold: 3, Window: 10 * time.Second}
	base := time.Unix(1_700_000_000, 0)

	var ts []float64
	var triggered bool
	for _, offset := range []time.Duration{0, 11 * time.Second, 22 * time.Second} {
		ts, triggered = det.Record(ts, base.Add(offset))
		assert.False(t, triggered, "prompts spaced beyond the window never trigger")
	}
	assert.Len(t, ts, 1, "each prompt finds the previous one expired")
}

func TestRecord_KeepsTriggeringWhileWindowFull(t *testing.T) {
	t.Parallel()

	det := Detector{Threshold: 2, Window: 10 * time.Second}
	base := time.Unix(1_700_000_000, 0)

	ts, _ := det.Record(nil, base)
	ts, triggered := det.Record(ts, base.Add(time.Second))
	assert.True(t, triggered)

	// No reset on trigger: the next prompt still sees a full window.
	_, triggered = det.Record(ts, base.Add(2*time.Second))
	assert.True(t, triggered)
}

func TestRecord_BoundaryIsExclusive(t *testing.T) {
	t.Parallel()

	det := Detector{Threshold: 2, Window: 10 * time.Second}
	base := time.Unix(1_700_000_000, 0)

	ts, _ := det.Record(nil, base)

	// A prompt exactly window seconds later finds the first one expired.
	ts, triggered := det.Record(ts, base.Add(10*time.Second))
	assert.False(t, triggered)
	assert.Len(t, ts, 1)
}
