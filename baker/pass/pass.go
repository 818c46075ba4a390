// Package pass declares the catalog of bake passes: a fixed enumeration with an
// immutable side table of per-pass engine parameters.
package pass

import "strings"

// Pass identifies one logical bake pass.
type Pass int

const (
	// Diffuse bakes the base color without alpha.
	Diffuse Pass = iota

	// DiffuseWithAlpha bakes the base color with a straight alpha channel. It
	// shares its output image with Diffuse; alpha is a property of the same
	// logical output.
	DiffuseWithAlpha

	// Roughness bakes the roughness factor as linear data.
	Roughness

	// Metallic bakes the metallic factor as linear data. The engine has no
	// metallic bake mode, so this pass is always executed as a ROUGHNESS-type
	// bake against swapped Metallic/Roughness inputs.
	Metallic

	// Normal bakes the tangent-space normal map.
	Normal

	// Emit bakes the emission color.
	Emit
)

// Config is the immutable per-pass parameter record.
type Config struct {
	// EngineType is the logical engine pass-type name.
	EngineType string

	// UseAlpha is true when the output image needs an alpha channel.
	UseAlpha bool

	// IsColor is true when the output is perceptual color rather than linear data.
	IsColor bool

	// SuppressMetallic is true when the principal node's metallic input must be
	// zeroed for the duration of the bake so metal values do not bias the result.
	SuppressMetallic bool
}

// catalog is the side table keyed by Pass, in declaration order.
var catalog = [...]Config{
	Diffuse:          {EngineType: "DIFFUSE", UseAlpha: false, IsColor: true, SuppressMetallic: true},
	DiffuseWithAlpha: {EngineType: "DIFFUSE", UseAlpha: true, IsColor: true, SuppressMetallic: true},
	Roughness:        {EngineType: "ROUGHNESS", UseAlpha: false, IsColor: false},
	Metallic:         {EngineType: "METALLIC", UseAlpha: false, IsColor: false},
	Normal:           {EngineType: "NORMAL", UseAlpha: false, IsColor: false},
	Emit:             {EngineType: "EMIT", UseAlpha: false, IsColor: true},
}

// All returns every pass in catalog declaration order.
//
// Returns:
//   - []Pass: the full catalog
func All() []Pass {
	return []Pass{Diffuse, DiffuseWithAlpha, Roughness, Metallic, Normal, Emit}
}

// Configuration retrieves the immutable parameter record for a pass.
//
// Parameters:
//   - p: the pass to look up
//
// Returns:
//   - Config: the pass parameters
func (p Pass) Configuration() Config {
	return catalog[p]
}

// EngineBakeType returns the pass-type string actually sent to the engine.
// Metallic is never sent as "METALLIC": it always runs as a "ROUGHNESS" bake
// against swapped inputs.
//
// Returns:
//   - string: the engine pass-type string
func (p Pass) EngineBakeType() string {
	if p == Metallic {
		return catalog[Roughness].EngineType
	}
	return catalog[p].EngineType
}

// ImageSuffix returns the lowercase engine-type token appended to the base image
// name (Diffuse and DiffuseWithAlpha share "diffuse").
//
// Returns:
//   - string: the image name suffix
func (p Pass) ImageSuffix() string {
	return strings.ToLower(catalog[p].EngineType)
}

// String returns a readable pass name.
//
// Returns:
//   - string: the pass name
func (p Pass) String() string {
	switch p {
	case Diffuse:
		return "Diffuse"
	case DiffuseWithAlpha:
		return "DiffuseWithAlpha"
	case Roughness:
		return "Roughness"
	case Metallic:
		return "Metallic"
	case Normal:
		return "Normal"
	case Emit:
		return "Emit"
	default:
		return "Unknown"
	}
}
