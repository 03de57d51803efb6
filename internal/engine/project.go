package engine

import (
	"regexp"
	"strings"
)

// projectSanitizer strips anything outside letters, digits, space, dot,
// underscore, and dash — the project name ends up in tab titles and
// notification text.
var projectSanitizer = regexp.MustCompile(`[^a-zA-Z0-9 ._-]`)

// ProjectName derives a display name from the event's working directory:
// the last path segment, tolerating both separator styles, sanitized, and
// defaulting to "claude" when nothing usable remains.
func ProjectName(cwd string) string {
	normalized := strings.ReplaceAll(cwd, `\`, "/")

	segment := normalized
	if idx := strings.LastIndex(normalized, "/"); idx >= 0 {
		segment = normalized[idx+1:]
	}

	project := strings.TrimSpace(projectSanitizer.ReplaceAllString(segment, ""))
	if project == "" {
		return "claude"
	}
	return project
}
