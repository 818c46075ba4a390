package baker

import (
	"time"

	"github.com/Carmen-Shannon/oxy-baker/baker/graph"
	"github.com/Carmen-Shannon/oxy-baker/baker/pass"
	"github.com/Carmen-Shannon/oxy-baker/baker/settings"
	"github.com/Carmen-Shannon/oxy-baker/host"
)

// session holds all mutable state of one bake run. It is created by Start and
// discarded at the terminal transition, so nothing about a bake survives as
// long-lived sequencer state.
type session struct {
	target   host.Object
	settings *settings.Settings

	// queue holds the passes still to bake; consumed from the end.
	queue []pass.Pass
	total int
	done  int

	// current is the in-flight pass, nil between passes.
	current *pass.Pass

	// image is the in-flight pass's destination image.
	image host.Image

	// passStarted is when the in-flight pass was handed to the engine; the
	// minimum-wait threshold is measured from it.
	passStarted time.Time

	// changes is the authoritative record of what is currently mutated: every
	// material touched by the in-flight pass, with enough captured state to
	// undo it.
	changes []*graph.MaterialChanges

	// priorEngine is the render engine to restore at the terminal transition,
	// "" when the required engine was already active.
	priorEngine string

	timer host.Timer
}

// inFlight reports whether a pass has been handed to the engine and not yet
// cleaned up.
func (s *session) inFlight() bool {
	return s.current != nil
}
