package config

import (
	"os"
	"path/filepath"
)

// Dir returns the peon-ping installation directory. The CLAUDE_PEON_DIR
// environment variable overrides the default of ~/.claude/hooks/peon-ping.
func Dir() string {
	if dir := os.Getenv("CLAUDE_PEON_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".claude", "hooks", "peon-ping")
	}
	return filepath.Join(home, ".claude", "hooks", "peon-ping")
}
