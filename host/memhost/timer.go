package memhost

import (
	"time"

	"github.com/Carmen-Shannon/oxy-baker/host"
)

// memTimer is one recurring timer registration. MemHost timers never fire on
// their own: tests and demos pump them with FireTimers, which keeps event
// delivery deterministic and on the caller's goroutine, matching the host
// guarantee that timer callbacks do not overlap other callbacks.
type memTimer struct {
	interval time.Duration
	fn       func()
	canceled bool
}

var _ host.Timer = &memTimer{}

func (t *memTimer) Cancel() {
	t.canceled = true
}

// AddTimer registers a recurring timer. The interval is recorded but not
// enforced; FireTimers delivers the ticks.
func (h *MemHost) AddTimer(interval time.Duration, fn func()) host.Timer {
	t := &memTimer{interval: interval, fn: fn}
	h.timers = append(h.timers, t)
	return t
}

// FireTimers delivers one tick to every active timer, pruning canceled ones.
func (h *MemHost) FireTimers() {
	kept := h.timers[:0]
	for _, t := range h.timers {
		if t.canceled {
			continue
		}
		kept = append(kept, t)
	}
	h.timers = kept
	for _, t := range h.timers {
		t.fn()
		if t.canceled {
			// A tick may cancel its own timer; stop delivering immediately.
			break
		}
	}
}

// ActiveTimerCount reports how many timers are currently registered and not
// canceled.
//
// Returns:
//   - int: the active timer count
func (h *MemHost) ActiveTimerCount() int {
	count := 0
	for _, t := range h.timers {
		if !t.canceled {
			count++
		}
	}
	return count
}
