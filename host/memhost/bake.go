package memhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-baker/host"
)

// IsJobRunning reports whether an asynchronous job is active in the domain.
// Safe to call from the main loop while a bake worker is executing.
func (h *MemHost) IsJobRunning(domain host.JobDomain) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.jobs[domain]
}

// Bake submits an asynchronous bake job against the active object. The job
// runs on the worker pool: it raises the OBJECT_BAKE job flag, synthesizes a
// deterministic fill into the image of each target material's active
// image-texture node when the request asks to clear the destination, and lowers
// the flag. Exactly one job runs at a time.
func (h *MemHost) Bake(req host.BakeRequest) error {
	if h.active == nil {
		return fmt.Errorf("no active object to bake")
	}
	targets := h.bakeTargets()
	if len(targets) == 0 {
		return fmt.Errorf("no active image texture node to bake into")
	}

	h.mu.Lock()
	if h.jobs[host.JobDomainObjectBake] {
		h.mu.Unlock()
		return fmt.Errorf("a bake job is already running")
	}
	h.jobs[host.JobDomainObjectBake] = true
	h.nextTaskID++
	id := h.nextTaskID
	h.mu.Unlock()

	fill := bakeFill(req.PassType)
	useClear := req.UseClear
	delay := h.bakeDelay
	h.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			if delay > 0 {
				time.Sleep(delay)
			}
			// Without use_clear the engine rewrites only texels covered by UV
			// islands; the stand-in has no rasterizer, so it leaves existing
			// pixels untouched.
			if useClear {
				for _, img := range targets {
					img.fill(fill)
				}
			}
			h.mu.Lock()
			h.jobs[host.JobDomainObjectBake] = false
			h.mu.Unlock()
			return nil, nil
		},
	})
	return nil
}

// bakeTargets snapshots the destination images on the main thread before the
// job is handed to a worker.
func (h *MemHost) bakeTargets() []*Image {
	var targets []*Image
	for _, m := range h.active.materials {
		if m.tree == nil {
			continue
		}
		n := m.tree.active
		if n == nil || n.kind != host.NodeKindImageTexture || n.image == nil {
			continue
		}
		targets = append(targets, n.image)
	}
	return targets
}

// bakeFill maps an engine pass type to the uniform color the stand-in engine
// writes, keeping bake output recognizable in assertions.
func bakeFill(passType string) color.RGBA {
	switch passType {
	case "DIFFUSE":
		return color.RGBA{R: 188, G: 132, B: 92, A: 255}
	case "ROUGHNESS":
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	case "NORMAL":
		return color.RGBA{R: 128, G: 128, B: 255, A: 255}
	case "EMIT":
		return color.RGBA{R: 16, G: 16, B: 16, A: 255}
	default:
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
}
