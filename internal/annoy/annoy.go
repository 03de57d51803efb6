// Package annoy implements the prompt-spam detector: a sliding time-window
// counter over a session's prompt timestamps.
package annoy

import "time"

// Detector describes the window a session has to fill before the peon gets
// annoyed. A Detector is stateless; callers own the timestamp list and
// persist the pruned result.
type Detector struct {
	// Threshold is the number of prompts within the window that counts
	// as spamming.
	Threshold int

	// Window is how far back prompts still count.
	Window time.Duration
}

// Record prunes timestamps that fell out of the window relative to now,
// appends now, and reports whether the windowed count has reached the
// threshold. The returned slice replaces the caller's timestamp list.
//
// Record never resets the list on trigger: the window keeps sliding, so
// back-to-back prompts can all report triggered while the window stays
// full.
func (d Detector) Record(timestamps []float64, now time.Time) ([]float64, bool) {
	nowSec := float64(now.UnixMicro()) / 1e6
	windowSec := d.Window.Seconds()

	kept := make([]float64, 0, len(timestamps)+1)
	for _, t := range timestamps {
		if nowSec-t < windowSec {
			kept = append(kept, t)
		}
	}
	kept = append(kept, nowSec)

	return kept, len(kept) >= d.Threshold
}
