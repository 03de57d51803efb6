package config

// Known sound categories. Packs may define any category names they like;
// these are the ones the engine routes events to.
const (
	CategoryGreeting      = "greeting"
	CategoryAcknowledge   = "acknowledge"
	CategoryComplete      = "complete"
	CategoryError         = "error"
	CategoryPermission    = "permission"
	CategoryResourceLimit = "resource_limit"
	CategoryAnnoyed       = "annoyed"
)

// defaults returns the default configuration values keyed for koanf.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"enabled":                true,
		"volume":                 0.5,
		"active_pack":            "peon",
		"pack_rotation":          []string{},
		"annoyed_threshold":      3,
		"annoyed_window_seconds": 10.0,
		"categories": map[string]bool{
			CategoryGreeting:      true,
			CategoryAcknowledge:   true,
			CategoryComplete:      true,
			CategoryError:         true,
			CategoryPermission:    true,
			CategoryResourceLimit: true,
			CategoryAnnoyed:       true,
		},
	}
}

// Default returns the configuration used when config.json is missing,
// unreadable, or fails validation.
func Default() Config {
	return Config{
		Enabled:              true,
		Volume:               0.5,
		ActivePack:           "peon",
		PackRotation:         nil,
		AnnoyedThreshold:     3,
		AnnoyedWindowSeconds: 10,
		Categories: map[string]bool{
			CategoryGreeting:      true,
			CategoryAcknowledge:   true,
			CategoryComplete:      true,
			CategoryError:         true,
			CategoryPermission:    true,
			CategoryResourceLimit: true,
			CategoryAnnoyed:       true,
		},
	}
}
