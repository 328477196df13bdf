package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"countdown/internal/core/model"
	"countdown/internal/core/timelist"
	apperrors "countdown/internal/errors"
	"countdown/internal/logging"
)

type jsonTimes struct {
	PresetTimes []int `json:"preset_times"`
	CustomTimes []int `json:"custom_times"`
}

// TimesStore persists preset and custom durations to a JSON file. It does
// not lock or replace atomically: the last writer wins.
type TimesStore struct {
	path string
}

// NewTimesStore creates a store backed by path.
func NewTimesStore(path string) *TimesStore {
	return &TimesStore{path: path}
}

// Path returns the backing file.
func (store *TimesStore) Path() string {
	return store.path
}

// Load reads the configuration. A missing file yields the defaults. A file
// that cannot be read or parsed yields the defaults together with an
// ErrConfigLoad error for the caller to report.
func (store *TimesStore) Load() (model.Configuration, error) {
	config := model.DefaultConfiguration()
	logger := logging.GetLogger("storage")

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug().Str("path", store.path).Msg("times file missing, using defaults")
			return config, nil
		}
		return config, apperrors.Wrap(err, apperrors.ErrConfigLoad, "read times file").WithDetail("path", store.path)
	}

	var fileData jsonTimes
	if err := json.Unmarshal(rawData, &fileData); err != nil {
		return config, apperrors.Wrap(err, apperrors.ErrConfigLoad, "parse times file").WithDetail("path", store.path)
	}

	if fileData.PresetTimes != nil {
		config.PresetTimes = positive(fileData.PresetTimes)
	}
	if fileData.CustomTimes != nil {
		config.CustomTimes = timelist.Normalize(fileData.CustomTimes)
	}
	logger.Debug().
		Str("path", store.path).
		Ints("presets", config.PresetTimes).
		Ints("custom", config.CustomTimes).
		Msg("times loaded")
	return config, nil
}

// Save writes the configuration, creating the parent directory if needed.
func (store *TimesStore) Save(config model.Configuration) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return apperrors.Wrap(err, apperrors.ErrConfigSave, "create config directory").WithDetail("path", store.path)
	}

	fileData := jsonTimes{
		PresetTimes: config.PresetTimes,
		CustomTimes: config.CustomTimes,
	}
	if fileData.PresetTimes == nil {
		fileData.PresetTimes = []int{}
	}
	if fileData.CustomTimes == nil {
		fileData.CustomTimes = []int{}
	}

	serialized, err := json.Marshal(fileData)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrConfigSave, "encode times file")
	}
	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrConfigSave, "write times file").WithDetail("path", store.path)
	}
	return nil
}

func positive(values []int) []int {
	result := make([]int, 0, len(values))
	for _, value := range values {
		if value > 0 {
			result = append(result, value)
		}
	}
	return result
}
