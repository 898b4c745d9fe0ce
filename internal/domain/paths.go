package domain

import "path/filepath"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// TrustyDir returns the path to the .trusty directory for a project root.
func TrustyDir(root string) string {
	return filepath.Join(root, ".trusty")
}

// TasksDir returns the path to the task storage directory.
func TasksDir(root string) string {
	return filepath.Join(TrustyDir(root), "tasks")
}

// LogPath returns the path to the log file inside a .trusty directory.
func LogPath(trustyDir string) string {
	return filepath.Join(trustyDir, "logs", "trusty.log")
}

// GlobalConfigDir returns the global configuration directory under the
// given config home (e.g. ~/.config).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "trusty")
}
