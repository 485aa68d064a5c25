package config

// Theme preference values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is auto, light or dark. Auto inspects the terminal.
	Theme string `yaml:"theme" json:"theme"`

	// Locale picks the label table, e.g. "en" or "id".
	Locale string `yaml:"locale" json:"locale"`

	// LabelsFile is an optional YAML overlay of label texts, relative to
	// the config file unless absolute.
	LabelsFile string `yaml:"labels_file,omitempty" json:"labels_file,omitempty"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:  ThemeAuto,
		Locale: "en",
	}
}
