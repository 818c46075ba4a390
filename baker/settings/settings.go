// Package settings holds the user-chosen bake configuration as a pure data
// snapshot. The snapshot round-trips to a flat key-value map persisted as custom
// metadata on the target object, and to TOML preset files. It carries no host
// handle: callers supply the current UV map names when validation needs them.
package settings

import (
	"github.com/Carmen-Shannon/oxy-baker/baker/pass"
	"github.com/Carmen-Shannon/oxy-baker/common"
	"github.com/Carmen-Shannon/oxy-baker/host"
)

const (
	// DefaultImageSize is the edge length of generated images when the user has
	// not chosen one.
	DefaultImageSize = 1024

	// MaxImageSize bounds image dimensions to a sane maximum.
	MaxImageSize = 8192

	// UVMapNone is the sentinel value meaning "no UV map chosen".
	UVMapNone = "NONE"

	// DefaultDirectory is the host-relative default output directory.
	DefaultDirectory = "//"
)

// Persisted map keys. The schema is forward/backward tolerant: unknown keys are
// ignored and missing keys keep their current values.
const (
	keyImageName  = "image_name"
	keySaveToFile = "save_to_file"
	keyDirectory  = "image_path"
	keyWidth      = "image_width"
	keyHeight     = "image_height"
	keySeamMargin = "uv_seam_margin"
	keyUVMap      = "uv_map"
	keyDiffuse    = "pass_diffuse"
	keyAlpha      = "pass_alpha"
	keyRoughness  = "pass_roughness"
	keyMetallic   = "pass_metallic"
	keyNormal     = "pass_normal"
	keyEmit       = "pass_emit"
)

// Settings is one snapshot of the user-chosen bake parameters.
type Settings struct {
	// BaseName is the base name of the generated images; the pass suffix
	// (e.g. "diffuse") is appended per pass.
	BaseName string `toml:"image_name"`

	// SaveToFile selects external image files over embedding in the project.
	SaveToFile bool `toml:"save_to_file"`

	// Directory is the output directory for external image files.
	Directory string `toml:"image_path"`

	// Width is the generated image width in pixels.
	Width int `toml:"image_width"`

	// Height is the generated image height in pixels.
	Height int `toml:"image_height"`

	// SeamMargin extends baked pixels beyond UV island borders, in pixels.
	SeamMargin int `toml:"uv_seam_margin"`

	// UVMap names the UV map used for baking, or UVMapNone.
	UVMap string `toml:"uv_map"`

	// BakeDiffuse toggles the diffuse pass.
	BakeDiffuse bool `toml:"pass_diffuse"`

	// WithAlpha switches the diffuse pass to its with-alpha variant.
	WithAlpha bool `toml:"pass_alpha"`

	// BakeRoughness toggles the roughness pass.
	BakeRoughness bool `toml:"pass_roughness"`

	// BakeMetallic toggles the metallic pass.
	BakeMetallic bool `toml:"pass_metallic"`

	// BakeNormal toggles the normal pass.
	BakeNormal bool `toml:"pass_normal"`

	// BakeEmit toggles the emit pass.
	BakeEmit bool `toml:"pass_emit"`
}

// Default builds the settings used on first invocation for a target object:
// base name from the object name, 1024x1024, seam margin from the host's global
// bake margin, no UV map chosen, diffuse+roughness+normal pre-selected.
//
// Parameters:
//   - h: the host facade (for the global bake margin)
//   - target: the target object (may be nil)
//
// Returns:
//   - *Settings: the default snapshot
func Default(h host.Host, target host.Object) *Settings {
	name := ""
	if target != nil {
		name = target.Name()
	}
	return &Settings{
		BaseName:      common.Coalesce(name, "bake"),
		SaveToFile:    false,
		Directory:     DefaultDirectory,
		Width:         DefaultImageSize,
		Height:        DefaultImageSize,
		SeamMargin:    h.Render().BakeMargin(),
		UVMap:         UVMapNone,
		BakeDiffuse:   true,
		BakeRoughness: true,
		BakeNormal:    true,
	}
}

// SelectedPasses returns the passes to bake in catalog declaration order.
// Diffuse and DiffuseWithAlpha are mutually exclusive: the alpha toggle picks
// one of the two variants.
//
// Returns:
//   - []pass.Pass: the selected passes, catalog-ordered
func (s *Settings) SelectedPasses() []pass.Pass {
	selected := []struct {
		on bool
		p  pass.Pass
	}{
		{s.BakeDiffuse && !s.WithAlpha, pass.Diffuse},
		{s.BakeDiffuse && s.WithAlpha, pass.DiffuseWithAlpha},
		{s.BakeRoughness, pass.Roughness},
		{s.BakeMetallic, pass.Metallic},
		{s.BakeNormal, pass.Normal},
		{s.BakeEmit, pass.Emit},
	}
	var passes []pass.Pass
	for _, e := range selected {
		if e.on {
			passes = append(passes, e.p)
		}
	}
	return passes
}

// ImageName composes the destination image name for a pass.
//
// Parameters:
//   - p: the pass
//
// Returns:
//   - string: base name + "-" + lowercase engine type
func (s *Settings) ImageName(p pass.Pass) string {
	return s.BaseName + "-" + p.ImageSuffix()
}

// ToMap serializes the snapshot into a flat key-value map suitable for storage
// as custom metadata on the target object.
//
// Returns:
//   - map[string]any: the serialized snapshot
func (s *Settings) ToMap() map[string]any {
	return map[string]any{
		keyImageName:  s.BaseName,
		keySaveToFile: s.SaveToFile,
		keyDirectory:  s.Directory,
		keyWidth:      s.Width,
		keyHeight:     s.Height,
		keySeamMargin: s.SeamMargin,
		keyUVMap:      s.UVMap,
		keyDiffuse:    s.BakeDiffuse,
		keyAlpha:      s.WithAlpha,
		keyRoughness:  s.BakeRoughness,
		keyMetallic:   s.BakeMetallic,
		keyNormal:     s.BakeNormal,
		keyEmit:       s.BakeEmit,
	}
}

// FromMap overwrites the snapshot's fields from a persisted map. Only keys
// present in the map are applied; unknown keys are ignored. The UV map value is
// validated against uvNames (plus the UVMapNone sentinel) and kept unchanged
// when the stored value no longer names an existing map. Dimensions and margin
// are re-normalized after loading.
//
// Parameters:
//   - m: the persisted key-value map
//   - uvNames: the target object's current UV map names
//
// Returns:
//   - *Settings: the snapshot, for chaining
func (s *Settings) FromMap(m map[string]any, uvNames []string) *Settings {
	applyString(m, keyImageName, &s.BaseName)
	applyBool(m, keySaveToFile, &s.SaveToFile)
	applyString(m, keyDirectory, &s.Directory)
	applyInt(m, keyWidth, &s.Width)
	applyInt(m, keyHeight, &s.Height)
	applyInt(m, keySeamMargin, &s.SeamMargin)
	if v, ok := stringValue(m, keyUVMap); ok && validUVMap(v, uvNames) {
		s.UVMap = v
	}
	applyBool(m, keyDiffuse, &s.BakeDiffuse)
	applyBool(m, keyAlpha, &s.WithAlpha)
	applyBool(m, keyRoughness, &s.BakeRoughness)
	applyBool(m, keyMetallic, &s.BakeMetallic)
	applyBool(m, keyNormal, &s.BakeNormal)
	applyBool(m, keyEmit, &s.BakeEmit)
	s.Normalize()
	return s
}

// Normalize clamps dimensions to [1, MaxImageSize] and the seam margin to a
// non-negative value.
func (s *Settings) Normalize() {
	s.Width = common.Clamp(s.Width, 1, MaxImageSize)
	s.Height = common.Clamp(s.Height, 1, MaxImageSize)
	if s.SeamMargin < 0 {
		s.SeamMargin = 0
	}
}

func validUVMap(v string, uvNames []string) bool {
	if v == UVMapNone {
		return true
	}
	for _, n := range uvNames {
		if n == v {
			return true
		}
	}
	return false
}

// stringValue reads a string-typed value from the map.
func stringValue(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func applyString(m map[string]any, key string, dst *string) {
	if v, ok := stringValue(m, key); ok {
		*dst = v
	}
}

func applyBool(m map[string]any, key string, dst *bool) {
	switch v := m[key].(type) {
	case bool:
		*dst = v
	case int:
		// Metadata stores may round-trip booleans as 0/1 integers.
		*dst = v != 0
	case int64:
		*dst = v != 0
	}
}

func applyInt(m map[string]any, key string, dst *int) {
	switch v := m[key].(type) {
	case int:
		*dst = v
	case int64:
		*dst = int(v)
	case float64:
		*dst = int(v)
	}
}
