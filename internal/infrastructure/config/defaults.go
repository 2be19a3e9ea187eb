package config

const (
	defaultHosts      = 6
	defaultScrollStep = 3

	// MinHosts and MaxHosts bound playground.hosts.
	MinHosts = 1
	MaxHosts = 12
)

// DefaultConfig returns the default configuration. Delays and offset are
// zero so the preset decides them.
func DefaultConfig() *Config {
	return &Config{
		Tooltip: TooltipConfig{
			Preset:    PresetClassic,
			Placement: "bottom",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Playground: PlaygroundConfig{
			Hosts:      defaultHosts,
			ScrollStep: defaultScrollStep,
			Palette: PaletteConfig{
				Accent:    "#7aa2f7",
				Text:      "#c0caf5",
				Muted:     "#565f89",
				Host:      "#3b4261",
				HostHover: "#bb9af7",
			},
		},
	}
}
