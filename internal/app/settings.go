package app

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// SettingsSection is the section of a settings file holding the options.
const SettingsSection = "vpy"

// Settings are option defaults read from an INI settings file, e.g.
//
//	[vpy]
//	kit = tkinter
//	format = yaml
//	log_level = debug
//
// Empty fields mean "not set".
type Settings struct {
	Kit       string `ini:"kit"`
	Format    string `ini:"format"`
	Emit      bool   `ini:"emit"`
	LogFormat string `ini:"log_format"`
	LogLevel  string `ini:"log_level"`
}

// LoadSettings reads the [vpy] section of the settings file at path. A file
// without that section yields zero Settings.
func LoadSettings(path string) (*Settings, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := &Settings{}
	if err := f.Section(SettingsSection).MapTo(s); err != nil {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, err)
	}
	return s, nil
}
