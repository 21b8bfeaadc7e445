package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up next to the module being loaded.
const FileName = "inet.yaml"

// DefaultMaxSteps bounds reductions unless the user asks otherwise, so rules
// that never reach a normal form still terminate.
const DefaultMaxSteps = 1_000_000

// Settings configure how modules are loaded.
type Settings struct {
	// MaxSteps bounds every reduction, 0 meaning unlimited
	MaxSteps int `yaml:"maxSteps" validate:"gte=0"`

	LogLevel string `yaml:"logLevel" validate:"oneof=debug info warn error"`

	// LogSections are the sections that log below warn level
	LogSections []string `yaml:"logSections" validate:"dive,oneof=compose compose.net check reduce module parser watch"`
}

func Default() Settings {
	return Settings{MaxSteps: DefaultMaxSteps, LogLevel: "error"}
}

var validate = validator.New()

// Parse reads settings from YAML. Fields the document leaves out keep their Default value.
func Parse(data []byte) (Settings, error) {
	settings := Default()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("could not parse settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks s, which may have been changed since it was parsed.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// Load reads the settings file at path. A missing file yields Default settings
// unless required is set.
func Load(path string, required bool) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, err
	}
	settings, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

func (s Settings) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s.LogLevel))); err != nil {
		return slog.LevelError
	}
	return level
}
