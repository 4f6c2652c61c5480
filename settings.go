package reforge

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance.
var validate = validator.New()

// Settings is file-loadable tuning for a Reloader, applied with
// Reloader.Apply. Zero-valued fields keep the reloader's defaults.
//
// Example:
//
//	debounce: 300ms
//	signals: [SIGUSR1, SIGUSR2]
//	history: 8
type Settings struct {
	// Debounce is the minimum interval between automatic rebuilds.
	Debounce Duration `yaml:"debounce" validate:"min=0"`

	// Signals names the reload-request OS signals, e.g. "SIGUSR1".
	Signals []string `yaml:"signals" validate:"dive,required"`

	// History is the number of recent build failures to retain.
	History int `yaml:"history" validate:"min=0"`
}

// Duration is a time.Duration that unmarshals from YAML strings like
// "300ms" or "2s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// LoadSettings reads and validates reloader settings from a YAML file.
// Signal names are resolved eagerly so that a typo fails at load time
// rather than silently disabling the signal trigger.
func LoadSettings(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if err := validate.Struct(s); err != nil {
		return s, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	if _, err := signalsFromNames(s.Signals); err != nil {
		return s, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	return s, nil
}

// signalsFromNames resolves signal names to os.Signal values.
func signalsFromNames(names []string) ([]os.Signal, error) {
	if len(names) == 0 {
		return nil, nil
	}
	signals := make([]os.Signal, 0, len(names))
	for _, name := range names {
		sig, ok := lookupSignal(name)
		if !ok {
			return nil, fmt.Errorf("unknown signal %q", name)
		}
		signals = append(signals, sig)
	}
	return signals, nil
}
