package config

import (
	"os"
	"path/filepath"
)

// FindConfigPath searches the standard locations and returns the first
// config file that exists, or "" if none found
func FindConfigPath() string {
	for _, path := range searchPaths() {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// searchPaths returns candidate config locations in priority order
func searchPaths() []string {
	paths := []string{
		os.Getenv("OSPFWATCH_CONFIG"),
		"ospfwatch.yaml",
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "ospfwatch", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ospfwatch", "config.yaml"))
	}

	return append(paths, "/etc/ospfwatch/config.yaml")
}
