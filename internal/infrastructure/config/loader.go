package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	// set by Save so the resulting fsnotify event does not reload
	skipNextReload bool
}

// NewManager creates a manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(dir)
}

// NewManagerAt creates a manager reading config.toml from dir.
func NewManagerAt(dir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("DUMBTIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// the logger reads these names before any config exists
	if err := v.BindEnv("logging.level", "DUMBTIP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTIP_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUMBTIP_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTIP_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper: v,
		dir:   dir,
	}, nil
}

// Load reads the config file and environment. A missing file is not an
// error: defaults apply and `dumbtip config init` can create one.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()
	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile(), err)
}

// reload unmarshals, normalizes and validates the current viper state.
// Must be called with m.mu held for write.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.readConfigFile(); err != nil {
			return err
		}
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches", m.configFile(), err)
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = cfg
	return nil
}

// Get returns a copy of the current configuration, or the defaults
// before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	cfg := *m.config
	return &cfg
}

// Save validates cfg, writes it to config.toml and makes it current.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	saved := *cfg
	normalizeConfig(&saved)
	if err := validateConfig(&saved); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ensureDir(m.dir); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", m.dir, err)
	}
	if err := WriteConfigOrdered(&saved, m.configFile()); err != nil {
		return err
	}
	m.skipNextReload = m.watching
	m.config = &saved
	return nil
}

// Reload rereads the file and notifies subscribers. On error the
// previous configuration stays current.
func (m *Manager) Reload() error {
	m.mu.Lock()
	if err := m.reload(true); err != nil {
		m.mu.Unlock()
		return err
	}
	m.notifyCallbacksLocked()
	return nil
}

// Value returns the resolved value of a dotted key.
func (m *Manager) Value(key string) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.Get(key)
}

// ConfigFileUsed returns the file Load read, or "" when none existed.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// GetConfigFile returns the path config.toml is read from and saved to.
func (m *Manager) GetConfigFile() string {
	return m.configFile()
}

func (m *Manager) configFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configFileName)
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("tooltip.preset", string(d.Tooltip.Preset))
	m.viper.SetDefault("tooltip.placement", d.Tooltip.Placement)
	m.viper.SetDefault("tooltip.show_delay_ms", d.Tooltip.ShowDelayMs)
	m.viper.SetDefault("tooltip.hide_delay_ms", d.Tooltip.HideDelayMs)
	m.viper.SetDefault("tooltip.offset", d.Tooltip.Offset)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)

	m.viper.SetDefault("playground.hosts", d.Playground.Hosts)
	m.viper.SetDefault("playground.scroll_step", d.Playground.ScrollStep)
	m.viper.SetDefault("playground.palette.accent", d.Playground.Palette.Accent)
	m.viper.SetDefault("playground.palette.text", d.Playground.Palette.Text)
	m.viper.SetDefault("playground.palette.muted", d.Playground.Palette.Muted)
	m.viper.SetDefault("playground.palette.host", d.Playground.Palette.Host)
	m.viper.SetDefault("playground.palette.host_hover", d.Playground.Palette.HostHover)
}
