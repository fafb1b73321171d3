package guinness

import (
	"sync/atomic"
	"time"
)

// Logic is the interaction policy of a component: which events the
// dispatcher reacts to and how callbacks run.
// Flags may be flipped from callbacks while the dispatcher reads them.
type Logic struct {
	interaction  atomic.Bool
	onClick      atomic.Bool
	onHover      atomic.Bool
	doubleClick  atomic.Bool
	multithreads atomic.Bool
	delayMs      atomic.Int64
}

func newLogic() *Logic {
	l := &Logic{}
	l.interaction.Store(true)
	l.onClick.Store(true)
	l.onHover.Store(true)
	return l
}

// IsInteractionAllowed reports whether the dispatcher may trigger anything.
func (l *Logic) IsInteractionAllowed() bool { return l.interaction.Load() }

// SetInteractionAllowed enables or disables all interaction.
func (l *Logic) SetInteractionAllowed(v bool) { l.interaction.Store(v) }

// ActsOnClick reports whether clicks fire the click callback.
func (l *Logic) ActsOnClick() bool { return l.onClick.Load() }

// SetActsOnClick toggles click handling.
func (l *Logic) SetActsOnClick(v bool) { l.onClick.Store(v) }

// ActsOnHover reports whether hovering fires the hover callback.
func (l *Logic) ActsOnHover() bool { return l.onHover.Load() }

// SetActsOnHover toggles hover handling.
func (l *Logic) SetActsOnHover(v bool) { l.onHover.Store(v) }

// IsDoubleClickAllowed reports whether a held click re-fires the callback on
// consecutive ticks.
func (l *Logic) IsDoubleClickAllowed() bool { return l.doubleClick.Load() }

// SetDoubleClickAllowed toggles repeated click callbacks.
func (l *Logic) SetDoubleClickAllowed(v bool) { l.doubleClick.Store(v) }

// IsMultithreadingOn reports whether callbacks run on the worker pools.
func (l *Logic) IsMultithreadingOn() bool { return l.multithreads.Load() }

// SetMultithreading moves callbacks onto the worker pools.
func (l *Logic) SetMultithreading(v bool) { l.multithreads.Store(v) }

// Delay is how long the whole dispatch loop pauses after triggering this
// component.
func (l *Logic) Delay() time.Duration {
	return time.Duration(l.delayMs.Load()) * time.Millisecond
}

// SetDelayMs sets the post-trigger pause in milliseconds. Negative values
// are treated as zero.
func (l *Logic) SetDelayMs(ms int64) {
	if ms < 0 {
		ms = 0
	}
	l.delayMs.Store(ms)
}
