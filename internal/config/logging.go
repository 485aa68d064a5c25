package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`                     // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`                   // json, console
	File       string          `yaml:"file,omitempty" json:"file,omitempty"`             // default: tempconv.log beside the config
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"`           // Master toggle - false = no logging
	Categories map[string]bool `yaml:"categories,omitempty" json:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled is the category filter handed to logging.Initialize.
// Nothing logs outside debug mode; categories missing from the map log.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	enabled, listed := c.Categories[category]
	return enabled || !listed
}
