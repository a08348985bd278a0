package config

import (
	"errors"
	"io/fs"

	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LoadSettings reads the settings file at path over the defaults.
// A missing file yields the defaults.
func LoadSettings(fsys FileSystem, path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	return settings, nil
}
