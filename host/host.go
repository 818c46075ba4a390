// Package host defines the facade through which the bake orchestrator talks to the
// hosting 3D application. Every handle exposed here (objects, materials, node trees,
// images) has reference semantics and is owned by the host's asset tables; the
// orchestrator mutates them in place and never copies or retains them past a bake.
package host

import "time"

// JobDomain identifies a class of asynchronous host jobs.
type JobDomain string

// JobDomainObjectBake is the host job domain for object texture baking.
const JobDomainObjectBake JobDomain = "OBJECT_BAKE"

// BakeRequest carries the parameters of one asynchronous bake invocation.
// The request is fire-and-forget: completion is only observable through
// Host.IsJobRunning, never via a callback or return value.
type BakeRequest struct {
	// PassType is the engine pass-type name (e.g. "DIFFUSE", "ROUGHNESS", "NORMAL").
	PassType string

	// PassFilter restricts the contributions included in the bake (e.g. "COLOR"
	// to exclude lighting).
	PassFilter []string

	// Target selects the bake destination kind (e.g. "IMAGE_TEXTURES").
	Target string

	// UseClear clears the destination image before writing baked data.
	UseClear bool

	// UVLayer names the UV map used to place baked texels, or "" for the active map.
	UVLayer string

	// Margin is the seam margin in pixels extrapolated beyond UV island borders.
	Margin int

	// MarginType selects the margin fill strategy (e.g. "ADJACENT_FACES").
	MarginType string
}

// Timer is a handle to a recurring host timer registration.
type Timer interface {
	// Cancel unregisters the timer. Safe to call more than once.
	Cancel()
}

// ObjectStore provides access to the host's scene objects by name.
type ObjectStore interface {
	// Get retrieves the object with the given name.
	//
	// Parameters:
	//   - name: the object name
	//
	// Returns:
	//   - Object: the object, or nil if no object has that name
	Get(name string) Object
}

// ImageStore provides access to the host's image asset table.
type ImageStore interface {
	// Get retrieves the image with the given name.
	//
	// Parameters:
	//   - name: the image name
	//
	// Returns:
	//   - Image: the image, or nil if no image has that name
	Get(name string) Image

	// New creates a new image asset with generated pixel data.
	//
	// Parameters:
	//   - name: the image name
	//   - width: the image width in pixels
	//   - height: the image height in pixels
	//   - alpha: true to allocate an alpha channel
	//
	// Returns:
	//   - Image: the newly created image
	New(name string, width, height int, alpha bool) Image
}

// RenderSettings exposes the host's global render configuration.
type RenderSettings interface {
	// Engine retrieves the name of the currently active render engine.
	//
	// Returns:
	//   - string: the active render engine name
	Engine() string

	// SetEngine switches the active render engine.
	//
	// Parameters:
	//   - name: the render engine name to activate
	SetEngine(name string)

	// BakeMargin retrieves the global default seam margin in pixels.
	//
	// Returns:
	//   - int: the default bake margin
	BakeMargin() int
}

// StatusBar publishes progress text to the host's status area.
type StatusBar interface {
	// SetText publishes a status line, replacing any previous one.
	//
	// Parameters:
	//   - text: the status text to display
	SetText(text string)

	// Clear removes the published status line.
	Clear()
}

// Reporter surfaces user-visible diagnostics through the host's report mechanism.
type Reporter interface {
	// Warningf reports a formatted warning to the user.
	//
	// Parameters:
	//   - format: printf-style format string
	//   - args: format arguments
	Warningf(format string, args ...any)
}

// Host is the composed facade over the hosting 3D application. The orchestrator
// holds exactly one Host for its lifetime and reaches all shared scene state
// through it.
type Host interface {
	// Objects retrieves the scene object table.
	//
	// Returns:
	//   - ObjectStore: the object table
	Objects() ObjectStore

	// Images retrieves the image asset table.
	//
	// Returns:
	//   - ImageStore: the image table
	Images() ImageStore

	// Render retrieves the global render settings.
	//
	// Returns:
	//   - RenderSettings: the render settings
	Render() RenderSettings

	// IsJobRunning reports whether an asynchronous host job is active in the
	// given domain. This is the only way bake completion is observed.
	//
	// Parameters:
	//   - domain: the job domain to query
	//
	// Returns:
	//   - bool: true while a job in the domain is executing
	IsJobRunning(domain JobDomain) bool

	// Bake starts an asynchronous bake job against the active object. The call
	// returns as soon as the job is submitted.
	//
	// Parameters:
	//   - req: the bake parameters
	//
	// Returns:
	//   - error: error if the job could not be submitted (e.g. one is already running)
	Bake(req BakeRequest) error

	// AddTimer registers a recurring timer that invokes fn on the host's event
	// loop every interval until the returned handle is canceled.
	//
	// Parameters:
	//   - interval: the tick interval
	//   - fn: the callback invoked on each tick
	//
	// Returns:
	//   - Timer: the timer registration handle
	AddTimer(interval time.Duration, fn func()) Timer

	// Status retrieves the host's status bar.
	//
	// Returns:
	//   - StatusBar: the status bar
	Status() StatusBar

	// Reporter retrieves the host's report mechanism.
	//
	// Returns:
	//   - Reporter: the reporter
	Reporter() Reporter

	// AbsPath resolves a possibly host-relative path ("//" prefix meaning
	// relative to the project file) into an absolute filesystem path.
	//
	// Parameters:
	//   - path: the path to resolve
	//
	// Returns:
	//   - string: the absolute path
	AbsPath(path string) string
}
