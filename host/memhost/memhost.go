// Package memhost is a deterministic in-memory implementation of the host
// facade: object and image tables, shader node graphs, an asynchronous bake
// engine backed by a worker pool, manually pumped timers, and a recording
// reporter. It stands in for the real 3D application in tests and demos.
package memhost

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-baker/host"
)

// MemHost implements host.Host entirely in memory. The extra methods beyond the
// interface (AddObject, SetActiveObject, FireTimers, Warnings, ...) exist so
// tests and demos can assemble scenes and drive the event loop by hand.
type MemHost struct {
	// mu guards the job flags, which are toggled from bake worker goroutines.
	mu sync.Mutex

	objects map[string]*Object
	images  []*Image
	active  *Object

	renderEngine string
	bakeMargin   int
	projectDir   string

	statusText string
	statusSet  bool

	warnings []string

	timers     []*memTimer
	jobs       map[host.JobDomain]bool
	pool       worker.DynamicWorkerPool
	bakeDelay  time.Duration
	nextTaskID int
}

var _ host.Host = &MemHost{}

// New creates an in-memory host with the provided options applied.
//
// Parameters:
//   - options: functional options for host configuration
//
// Returns:
//   - *MemHost: the newly created host
func New(options ...MemHostBuilderOption) *MemHost {
	h := &MemHost{
		objects:      make(map[string]*Object),
		jobs:         make(map[host.JobDomain]bool),
		renderEngine: "WORKBENCH",
		bakeMargin:   4,
		projectDir:   ".",
	}
	for _, opt := range options {
		opt(h)
	}
	// Two workers with a small queue: the host runs one bake job at a time.
	h.pool = worker.NewDynamicWorkerPool(2, 16, 1*time.Second)
	return h
}

// AddObject registers a scene object with the host.
//
// Parameters:
//   - o: the object to register
func (h *MemHost) AddObject(o *Object) {
	h.objects[o.name] = o
}

// SetActiveObject marks the object bake jobs are applied to.
//
// Parameters:
//   - o: the object to activate
func (h *MemHost) SetActiveObject(o *Object) {
	h.active = o
}

// ActiveObject retrieves the object bake jobs are applied to.
//
// Returns:
//   - *Object: the active object, or nil
func (h *MemHost) ActiveObject() *Object {
	return h.active
}

func (h *MemHost) Objects() host.ObjectStore {
	return (*objectStore)(h)
}

func (h *MemHost) Images() host.ImageStore {
	return (*imageStore)(h)
}

func (h *MemHost) Render() host.RenderSettings {
	return (*renderSettings)(h)
}

func (h *MemHost) Status() host.StatusBar {
	return (*statusBar)(h)
}

func (h *MemHost) Reporter() host.Reporter {
	return (*recorder)(h)
}

func (h *MemHost) AbsPath(path string) string {
	if rel, ok := strings.CutPrefix(path, "//"); ok {
		return filepath.Join(h.projectDir, rel)
	}
	return path
}

// Warnings retrieves every warning reported so far, in order.
//
// Returns:
//   - []string: the recorded warnings
func (h *MemHost) Warnings() []string {
	return h.warnings
}

// StatusText retrieves the currently published status line.
//
// Returns:
//   - string: the status text ("" when cleared)
//   - bool: true if a status line is currently published
func (h *MemHost) StatusText() (string, bool) {
	return h.statusText, h.statusSet
}

// objectStore adapts MemHost to host.ObjectStore.
type objectStore MemHost

func (s *objectStore) Get(name string) host.Object {
	if o, ok := s.objects[name]; ok {
		return o
	}
	return nil
}

// imageStore adapts MemHost to host.ImageStore.
type imageStore MemHost

func (s *imageStore) Get(name string) host.Image {
	for _, img := range s.images {
		if img.name == name {
			return img
		}
	}
	return nil
}

func (s *imageStore) New(name string, width, height int, alpha bool) host.Image {
	img := newImage(name, width, height, alpha)
	img.resolve = (*MemHost)(s).AbsPath
	s.images = append(s.images, img)
	return img
}

// AddDatalessImage registers an image entry with no loaded pixel data, as the
// host would after failing to locate an image's source file.
//
// Parameters:
//   - name: the image name
//
// Returns:
//   - *Image: the dataless image entry
func (h *MemHost) AddDatalessImage(name string) *Image {
	img := &Image{name: name, kind: host.ImageKindRaster, alphaMode: host.AlphaModeNone}
	img.resolve = h.AbsPath
	h.images = append(h.images, img)
	return img
}

// AddRenderResultImage registers a render-result image entry, which can never
// serve as a bake target.
//
// Parameters:
//   - name: the image name
//   - width: the image width in pixels
//   - height: the image height in pixels
//
// Returns:
//   - *Image: the render-result image entry
func (h *MemHost) AddRenderResultImage(name string, width, height int) *Image {
	img := newImage(name, width, height, false)
	img.kind = host.ImageKindRender
	img.resolve = h.AbsPath
	h.images = append(h.images, img)
	return img
}

// renderSettings adapts MemHost to host.RenderSettings.
type renderSettings MemHost

func (r *renderSettings) Engine() string {
	return r.renderEngine
}

func (r *renderSettings) SetEngine(name string) {
	r.renderEngine = name
}

func (r *renderSettings) BakeMargin() int {
	return r.bakeMargin
}

// statusBar adapts MemHost to host.StatusBar.
type statusBar MemHost

func (s *statusBar) SetText(text string) {
	s.statusText = text
	s.statusSet = true
}

func (s *statusBar) Clear() {
	s.statusText = ""
	s.statusSet = false
}

// recorder adapts MemHost to host.Reporter, recording warnings for inspection.
type recorder MemHost

func (r *recorder) Warningf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}
