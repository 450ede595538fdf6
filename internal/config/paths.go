// ABOUTME: Standard filesystem paths for tui-overlay configuration
// ABOUTME: Resolves ~/.tui-overlay/ for global and .tui-overlay/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".tui-overlay"
	projectDirName = ".tui-overlay"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.tui-overlay/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// Files returns the config files in load order: global first, project last.
func Files(projectRoot string) []string {
	return []string{GlobalConfigFile(), ProjectConfigFile(projectRoot)}
}

// LogFile returns the default log destination used while the TUI owns the terminal.
func LogFile() string {
	return filepath.Join(GlobalDir(), "overlay.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
