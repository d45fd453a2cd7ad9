package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePositive returns an INVALID_OPTION error unless v is a finite
// number greater than zero.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidOption, "%s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateAngleRange checks that range(start, end, step) yields at least one
// angle. The end bound is exclusive.
func ValidateAngleRange(start, end, step float64) error {
	if err := ValidatePositive("angle step", step); err != nil {
		return err
	}
	if end <= start {
		return New(ErrCodeInvalidOption, "angle range is empty: start %v must be less than end %v", start, end)
	}
	return nil
}

// ValidateText rejects input that cannot produce any word.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidInput, "input text is empty")
	}
	return nil
}

// configExtensions lists the config file formats wordcloud understands.
var configExtensions = map[string]bool{".toml": true, ".yaml": true, ".yml": true, ".json": true}

// ValidateConfigPath validates a config file path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be .toml, .yaml, .yml or .json
func ValidateConfigPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidConfig, "config path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "config path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !configExtensions[ext] {
		return New(ErrCodeInvalidConfig, "unsupported config format %q (must be .toml, .yaml, .yml or .json)", ext)
	}
	return nil
}
