package platform

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	timesFileName    = "countdown_app_config.json"
	settingsFileName = "settings.yaml"
	historyFileName  = "history.db"
	logFileName      = "countdown.log"
	lockFileName     = "countdown.lock"
)

// Paths holds the files the application reads and writes.
type Paths struct {
	TimesFile    string
	SettingsFile string
	HistoryFile  string
	LogFile      string
	LockFile     string
}

// ResolvePaths locates the application's files under the XDG base
// directories, creating parent directories as needed.
func ResolvePaths(appDir string) (Paths, error) {
	timesFile, err := xdg.ConfigFile(filepath.Join(appDir, timesFileName))
	if err != nil {
		return Paths{}, fmt.Errorf("resolve times file: %w", err)
	}
	settingsFile, err := xdg.ConfigFile(filepath.Join(appDir, settingsFileName))
	if err != nil {
		return Paths{}, fmt.Errorf("resolve settings file: %w", err)
	}
	historyFile, err := xdg.DataFile(filepath.Join(appDir, historyFileName))
	if err != nil {
		return Paths{}, fmt.Errorf("resolve history file: %w", err)
	}
	logFile, err := xdg.StateFile(filepath.Join(appDir, logFileName))
	if err != nil {
		return Paths{}, fmt.Errorf("resolve log file: %w", err)
	}
	lockFile, err := xdg.StateFile(filepath.Join(appDir, lockFileName))
	if err != nil {
		return Paths{}, fmt.Errorf("resolve lock file: %w", err)
	}

	return Paths{
		TimesFile:    timesFile,
		SettingsFile: settingsFile,
		HistoryFile:  historyFile,
		LogFile:      logFile,
		LockFile:     lockFile,
	}, nil
}

// LocalPaths places every file in the working directory. It is used when the
// XDG directories cannot be created.
func LocalPaths() Paths {
	return Paths{
		TimesFile:    timesFileName,
		SettingsFile: settingsFileName,
		HistoryFile:  historyFileName,
		LogFile:      logFileName,
		LockFile:     lockFileName,
	}
}
