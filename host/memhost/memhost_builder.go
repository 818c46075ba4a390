package memhost

import "time"

// MemHostBuilderOption is a functional option for configuring a MemHost via New.
type MemHostBuilderOption func(*MemHost)

// WithProjectDir is an option builder that sets the directory host-relative
// ("//") paths resolve against.
//
// Parameters:
//   - dir: the project directory
//
// Returns:
//   - MemHostBuilderOption: a function that applies the project directory option
func WithProjectDir(dir string) MemHostBuilderOption {
	return func(h *MemHost) {
		h.projectDir = dir
	}
}

// WithRenderEngine is an option builder that sets the initially active render
// engine name.
//
// Parameters:
//   - name: the render engine name
//
// Returns:
//   - MemHostBuilderOption: a function that applies the render engine option
func WithRenderEngine(name string) MemHostBuilderOption {
	return func(h *MemHost) {
		h.renderEngine = name
	}
}

// WithBakeMargin is an option builder that sets the global default seam margin.
//
// Parameters:
//   - margin: the default bake margin in pixels
//
// Returns:
//   - MemHostBuilderOption: a function that applies the bake margin option
func WithBakeMargin(margin int) MemHostBuilderOption {
	return func(h *MemHost) {
		h.bakeMargin = margin
	}
}

// WithBakeDelay is an option builder that makes each bake job sleep before
// completing, simulating a slow engine.
//
// Parameters:
//   - delay: the simulated bake duration
//
// Returns:
//   - MemHostBuilderOption: a function that applies the bake delay option
func WithBakeDelay(delay time.Duration) MemHostBuilderOption {
	return func(h *MemHost) {
		h.bakeDelay = delay
	}
}
