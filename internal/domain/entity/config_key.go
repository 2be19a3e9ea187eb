package entity

// ConfigKeyInfo describes one configuration key for `dumbtip config status`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "tooltip.hide_delay_ms".
	Key string `json:"key"`

	// Type is the Go type name: "string", "int" or "float64".
	Type string `json:"type"`

	Default     string `json:"default"`
	Description string `json:"description"`

	// Values lists the accepted values of enum-like keys.
	Values []string `json:"values,omitempty"`

	// Range describes numeric bounds, e.g. "1-12" or ">=0".
	Range string `json:"range,omitempty"`

	Section string `json:"section"`
}
