//go:build !darwin

package terminal

// Focused always reports false away from macOS: probing window focus on
// Windows and Linux adds more latency than the redundant notification
// costs.
func Focused() bool {
	return false
}
