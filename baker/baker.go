// Package baker drives the multi-pass texture bake: it owns the queue of
// passes, starts one non-blocking engine invocation at a time, polls for
// completion from a recurring host timer, reverts every shader-graph mutation
// at each pass boundary, and persists the resulting images. All of it runs on
// the host's main thread; the only concurrency is the host's own asynchronous
// bake job, observed exclusively through the job-status query.
package baker

import (
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-baker/baker/graph"
	"github.com/Carmen-Shannon/oxy-baker/baker/imagestore"
	"github.com/Carmen-Shannon/oxy-baker/baker/pass"
	"github.com/Carmen-Shannon/oxy-baker/baker/settings"
	"github.com/Carmen-Shannon/oxy-baker/host"
)

const (
	// SettingsPropertyKey is the custom-metadata key under which the bake
	// settings map is persisted on the target object.
	SettingsPropertyKey = "oxybaker_settings"

	// RequiredEngine is the path-traced render engine baking requires.
	RequiredEngine = "CYCLES"

	// DefaultTickInterval is the default recurring timer interval.
	DefaultTickInterval = 1 * time.Second

	// DefaultMinimumWait is the default minimum time after starting a pass
	// before a quiet job flag is trusted. The engine's asynchronous job may not
	// be flagged as running immediately after invocation; polling earlier would
	// misread "not started" as "finished".
	DefaultMinimumWait = 2 * time.Second
)

// State is the sequencer's lifecycle state.
type State int

const (
	// StateIdle means no bake session has been started.
	StateIdle State = iota

	// StateRunning means a session is active: passes are queued or in flight.
	StateRunning

	// StateFinished means the last session completed every queued pass.
	StateFinished

	// StateCancelled means the last session was aborted, either by a failed
	// start precondition or by user cancellation, after full cleanup.
	StateCancelled
)

// String returns a readable state name.
//
// Returns:
//   - string: the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateFinished:
		return "Finished"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Baker sequences bake passes for one target object at a time.
type Baker interface {
	// Start validates the target, persists the settings onto it, builds the
	// pass queue, switches the render engine if needed, and registers the
	// recurring timer that drives the session. A failed precondition leaves the
	// scene untouched and puts the sequencer in StateCancelled.
	//
	// Parameters:
	//   - target: the object whose materials are baked
	//   - s: the bake settings snapshot
	//
	// Returns:
	//   - error: error if a session is already running or a precondition fails
	Start(target host.Object, s *settings.Settings) error

	// Cancel aborts the running session: the current pass's graph mutations are
	// reverted and its image persisted exactly as at a normal pass boundary,
	// then the queue is abandoned.
	Cancel()

	// State retrieves the sequencer's current lifecycle state.
	//
	// Returns:
	//   - State: the current state
	State() State

	// Progress retrieves how many passes have completed out of the session total.
	//
	// Returns:
	//   - int: completed passes
	//   - int: total passes in the session
	Progress() (int, int)
}

// baker is the implementation of the Baker interface.
type baker struct {
	host host.Host

	tickInterval time.Duration
	minimumWait  time.Duration
	now          func() time.Time

	state   State
	session *session

	// done/total survive the session so Progress stays meaningful after
	// FINISHED/CANCELLED.
	done  int
	total int
}

var _ Baker = &baker{}

// NewBaker creates a sequencer bound to a host facade, with the specified
// options applied.
//
// Parameters:
//   - h: the host facade (must not be nil)
//   - options: functional options for sequencer configuration
//
// Returns:
//   - Baker: the newly created sequencer
func NewBaker(h host.Host, options ...BakerBuilderOption) Baker {
	if h == nil {
		panic("baker: NewBaker requires a non-nil Host")
	}
	b := &baker{
		host:         h,
		tickInterval: DefaultTickInterval,
		minimumWait:  DefaultMinimumWait,
		now:          time.Now,
		state:        StateIdle,
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// ValidTarget reports whether an object qualifies for baking: a selected mesh
// with at least one material whose first material carries a node graph.
//
// Parameters:
//   - target: the object to check (may be nil)
//
// Returns:
//   - bool: true if the object can be baked
func ValidTarget(target host.Object) bool {
	if target == nil || target.Type() != host.ObjectTypeMesh || !target.Selected() {
		return false
	}
	mats := target.Materials()
	return len(mats) > 0 && mats[0].NodeTree() != nil
}

func (b *baker) Start(target host.Object, s *settings.Settings) error {
	if b.state == StateRunning {
		return fmt.Errorf("a bake session is already running")
	}
	if !ValidTarget(target) {
		b.state = StateCancelled
		b.host.Reporter().Warningf("Cannot bake: the target must be a selected mesh with a node-based material.")
		return fmt.Errorf("target object does not qualify for baking")
	}
	if b.host.IsJobRunning(host.JobDomainObjectBake) {
		b.state = StateCancelled
		b.host.Reporter().Warningf("Cannot bake: a bake job is already running.")
		return fmt.Errorf("a bake job is already running")
	}
	s.Normalize()
	queue := s.SelectedPasses()
	if len(queue) == 0 {
		b.state = StateCancelled
		b.host.Reporter().Warningf("Cannot bake: no baking passes are selected.")
		return fmt.Errorf("no baking passes selected")
	}

	target.SetCustomProperty(SettingsPropertyKey, s.ToMap())

	priorEngine := ""
	if current := b.host.Render().Engine(); current != RequiredEngine {
		priorEngine = current
		b.host.Render().SetEngine(RequiredEngine)
	}

	b.session = &session{
		target:      target,
		settings:    s,
		queue:       queue,
		total:       len(queue),
		priorEngine: priorEngine,
	}
	b.done, b.total = 0, len(queue)
	b.session.timer = b.host.AddTimer(b.tickInterval, b.tick)
	b.state = StateRunning
	return nil
}

func (b *baker) Cancel() {
	if b.state != StateRunning {
		return
	}
	b.host.Reporter().Warningf("Baking was cancelled.")
	b.finishPass()
	b.terminate(StateCancelled)
}

func (b *baker) State() State {
	return b.state
}

func (b *baker) Progress() (int, int) {
	return b.done, b.total
}

// tick is the recurring timer callback: one bounded unit of work per tick,
// never blocking.
func (b *baker) tick() {
	if b.state != StateRunning {
		return
	}
	ses := b.session
	if b.host.IsJobRunning(host.JobDomainObjectBake) ||
		(ses.inFlight() && b.now().Sub(ses.passStarted) < b.minimumWait) {
		b.publishStatus()
		return
	}

	b.finishPass()
	if len(ses.queue) == 0 {
		b.terminate(StateFinished)
		return
	}
	// The queue is consumed from the end: passes are appended in catalog order
	// but popped from the back, so the last selected pass bakes first. This
	// matches the long-observed behavior and is kept deliberately.
	next := ses.queue[len(ses.queue)-1]
	ses.queue = ses.queue[:len(ses.queue)-1]
	b.startPass(next)
	b.publishStatus()
}

// finishPass is the per-pass cleanup run at every pass boundary and on
// cancellation: persist the pass image, then revert every recorded material
// mutation. A persistence failure is downgraded to a warning so the graph is
// restored regardless.
func (b *baker) finishPass() {
	ses := b.session
	if ses.image != nil {
		if err := imagestore.Persist(b.host, ses.image, ses.settings.Directory, ses.settings.SaveToFile); err != nil {
			b.host.Reporter().Warningf("%v", err)
		}
	}
	for _, ch := range ses.changes {
		ch.Revert()
	}
	ses.changes = nil
	if ses.current != nil {
		log.Printf("bake pass %s took %s", *ses.current, b.now().Sub(ses.passStarted).Round(time.Millisecond))
		ses.done++
		b.done = ses.done
	}
	ses.current = nil
	ses.image = nil
}

// startPass resolves the destination image, wires it into every node-based
// material, applies the pass's input mutations, and fires the asynchronous
// engine bake.
func (b *baker) startPass(p pass.Pass) {
	ses := b.session
	rep := b.host.Reporter()
	materials := nodeMaterials(ses.target)

	var principled map[host.Material]host.Node
	if p == pass.Metallic {
		principled = make(map[host.Material]host.Node, len(materials))
		for _, m := range materials {
			if n := graph.FindPrincipledNode(m.NodeTree(), rep); n != nil {
				principled[m] = n
			}
		}
		if len(principled) == 0 {
			// Abort before creating any image or node; the next tick moves on
			// to the remaining passes. The abandoned pass still counts toward
			// progress so a finished session always reads n/n.
			rep.Warningf("Cannot bake metallic pass. Could not find a principled shading node.")
			ses.done++
			b.done = ses.done
			return
		}
	}

	img := imagestore.Resolve(b.host, p, ses.settings)

	for _, m := range materials {
		tree := m.NodeTree()
		if p == pass.Metallic && principled[m] == nil {
			rep.Warningf("Cannot bake metallic pass for material '%s'. Could not find a principled shading node.", m.Name())
			continue
		}
		ch := &graph.MaterialChanges{Material: m, ImageNode: graph.AttachImageNode(m, img)}
		switch {
		case p == pass.Metallic:
			ms, rs, err := graph.SwapMetallicRoughness(tree, principled[m])
			if err != nil {
				rep.Warningf("Could not swap metallic and roughness on material '%s': %v", m.Name(), err)
			} else {
				ch.MetallicState, ch.RoughnessState = ms, rs
			}
		case p.Configuration().SuppressMetallic:
			if n := graph.PrincipledNode(tree); n != nil {
				if st, err := graph.DisconnectInput(tree, n, graph.InputMetallic, 0); err == nil {
					ch.MetallicState = st
				}
			}
		}
		ses.changes = append(ses.changes, ch)
	}

	ses.current = &p
	ses.image = img
	ses.passStarted = b.now()

	uvLayer := ses.settings.UVMap
	if uvLayer == settings.UVMapNone {
		uvLayer = ""
	}
	err := b.host.Bake(host.BakeRequest{
		PassType:   p.EngineBakeType(),
		PassFilter: []string{"COLOR"},
		Target:     "IMAGE_TEXTURES",
		UseClear:   true,
		UVLayer:    uvLayer,
		Margin:     ses.settings.SeamMargin,
		MarginType: "ADJACENT_FACES",
	})
	if err != nil {
		rep.Warningf("Could not start %s bake: %v", p, err)
	}
}

// terminate runs the terminal transition shared by FINISHED and CANCELLED:
// remove the timer, restore the prior render engine, clear the status line,
// and discard the session.
func (b *baker) terminate(final State) {
	ses := b.session
	if ses.timer != nil {
		ses.timer.Cancel()
	}
	if ses.priorEngine != "" {
		b.host.Render().SetEngine(ses.priorEngine)
	}
	b.host.Status().Clear()
	b.state = final
	b.session = nil
}

// publishStatus pushes the human-readable progress line while a pass is in
// flight.
func (b *baker) publishStatus() {
	ses := b.session
	if ses.image == nil {
		return
	}
	n := ses.total - len(ses.queue)
	b.host.Status().SetText(fmt.Sprintf(
		"Baking (%d/%d): %s | Press ESC or END to cancel baking after the current pass.",
		n, ses.total, ses.image.Name(),
	))
}

// nodeMaterials returns the target's materials that carry a shader node graph.
func nodeMaterials(target host.Object) []host.Material {
	var materials []host.Material
	for _, m := range target.Materials() {
		if m.NodeTree() != nil {
			materials = append(materials, m)
		}
	}
	return materials
}
