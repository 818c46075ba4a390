package baker

import "time"

// BakerBuilderOption is a functional option for configuring a Baker via NewBaker.
type BakerBuilderOption func(*baker)

// WithTickInterval is an option builder that sets the recurring timer interval
// driving the sequencer.
//
// Parameters:
//   - interval: the tick interval (ignored if <= 0)
//
// Returns:
//   - BakerBuilderOption: a function that applies the tick interval option
func WithTickInterval(interval time.Duration) BakerBuilderOption {
	return func(b *baker) {
		if interval > 0 {
			b.tickInterval = interval
		}
	}
}

// WithMinimumWait is an option builder that sets the minimum time after
// starting a pass before a quiet job flag is trusted as "finished".
//
// Parameters:
//   - wait: the minimum wait (0 disables the guard)
//
// Returns:
//   - BakerBuilderOption: a function that applies the minimum wait option
func WithMinimumWait(wait time.Duration) BakerBuilderOption {
	return func(b *baker) {
		if wait >= 0 {
			b.minimumWait = wait
		}
	}
}

// WithClock is an option builder that replaces the sequencer's time source,
// letting tests step the minimum-wait threshold deterministically.
//
// Parameters:
//   - now: the time source (ignored if nil)
//
// Returns:
//   - BakerBuilderOption: a function that applies the clock option
func WithClock(now func() time.Time) BakerBuilderOption {
	return func(b *baker) {
		if now != nil {
			b.now = now
		}
	}
}
