package settings

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// SavePreset writes the snapshot to a TOML preset file so a configuration can
// be shared across projects.
//
// Parameters:
//   - path: the destination file path
//
// Returns:
//   - error: error if marshaling or writing fails
func (s *Settings) SavePreset(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preset %s: %w", path, err)
	}
	return nil
}

// LoadPreset reads a TOML preset file into a fresh snapshot. The loaded values
// go through the same normalization and UV-map validation as FromMap: a UV map
// that no longer exists on the target falls back to the UVMapNone sentinel.
//
// Parameters:
//   - path: the preset file path
//   - uvNames: the target object's current UV map names
//
// Returns:
//   - *Settings: the loaded snapshot
//   - error: error if reading or decoding fails
func LoadPreset(path string, uvNames []string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset %s: %w", path, err)
	}
	s := &Settings{
		Directory: DefaultDirectory,
		Width:     DefaultImageSize,
		Height:    DefaultImageSize,
		UVMap:     UVMapNone,
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to decode preset %s: %w", path, err)
	}
	if !validUVMap(s.UVMap, uvNames) {
		s.UVMap = UVMapNone
	}
	s.Normalize()
	return s, nil
}
