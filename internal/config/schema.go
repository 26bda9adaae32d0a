package config

import "time"

// Config is the root configuration for ospfwatch.
type Config struct {
	Version int `yaml:"version"`

	// Database holds the snapshot store settings
	Database DatabaseConfig `yaml:"database"`

	// Reports holds report output settings
	Reports ReportConfig `yaml:"reports"`

	// SSH holds connection defaults applied to every device
	SSH SSHConfig `yaml:"ssh"`

	// Scan holds the pre-run reachability check settings
	Scan ScanConfig `yaml:"scan"`

	// Devices lists the target devices in verification order
	Devices []DeviceConfig `yaml:"devices"`
}

// DatabaseConfig holds SQLite settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ReportConfig holds report output settings
type ReportConfig struct {
	Dir string `yaml:"dir"`
}

// SSHConfig holds SSH connection defaults
type SSHConfig struct {
	Username          string   `yaml:"username"`
	Password          string   `yaml:"password"`
	Port              int      `yaml:"port"`
	ConnectionTimeout Duration `yaml:"connection_timeout"`
	CommandTimeout    Duration `yaml:"command_timeout"`
	MaxConcurrent     int      `yaml:"max_concurrent"`
}

// ScanConfig controls the nmap reachability pre-check
type ScanConfig struct {
	Enabled bool     `yaml:"enabled"`
	Timeout Duration `yaml:"timeout"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// DeviceConfig identifies one target device. Empty credential fields
// fall back to the SSH defaults.
type DeviceConfig struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}
