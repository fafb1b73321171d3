package guinness

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// dispatchState is the edge-detection memory carried from one tick to the
// next. Only the dispatch goroutine touches it.
type dispatchState struct {
	textfield     *Component // keyboard capture
	clickedYet    *Component
	hoveredYet    *Component
	lastlyFocused *Component
	doubleClicked bool
	doubleHovered bool
}

// Dispatcher is the interaction loop: it polls an InputDriver, tracks
// focus, hover, click and keyboard capture, fires component callbacks and
// drives color and cursor feedback.
type Dispatcher struct {
	display *Display
	driver  InputDriver

	poolSize     int
	tickInterval time.Duration
	log          zerolog.Logger
	metrics      *Metrics

	clickPool *workerPool
	hoverPool *workerPool

	state dispatchState
}

// NewDispatcher creates a dispatcher for display fed by driver.
func NewDispatcher(display *Display, driver InputDriver, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		display:  display,
		driver:   driver,
		poolSize: DefaultPoolSize,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.clickPool = newWorkerPool("click", d.poolSize, d.metrics.inFlight("click"))
	d.hoverPool = newWorkerPool("hover", d.poolSize, d.metrics.inFlight("hover"))
	return d
}

// Run ticks until ctx is done and returns ctx.Err(). The loop goroutine is
// locked to its OS thread so it is not starved by callback goroutines.
// A panicking inline callback ends Run with that panic.
func (d *Dispatcher) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	d.log.Info().Int("pool_size", d.poolSize).Dur("tick_interval", d.tickInterval).Msg("dispatcher started")
	defer d.log.Info().Msg("dispatcher stopped")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Tick(ctx); err != nil {
			return err
		}
		if d.tickInterval > 0 {
			if err := sleepContext(ctx, d.tickInterval); err != nil {
				return err
			}
		} else {
			runtime.Gosched()
		}
	}
}

// Wait blocks until every pooled callback has returned. Call it after Run.
func (d *Dispatcher) Wait() {
	d.clickPool.Wait()
	d.hoverPool.Wait()
}

// Captured returns the text field holding keyboard capture. Like Tick, it
// belongs to the dispatch goroutine.
func (d *Dispatcher) Captured() *Component {
	return d.state.textfield
}

// Tick performs one pass of the loop. It returns early only when ctx is
// cancelled during a post-trigger delay.
func (d *Dispatcher) Tick(ctx context.Context) error {
	d.metrics.recordTick()
	st := &d.state

	focused := d.driver.FocusedComponent()
	clicking := d.driver.IsClicking()

	d.preEvaluate(focused)

	key := KeyCodeNone
	kb := d.driver.Keyboard()
	if st.textfield != nil {
		kb.Enable()
		key = kb.ActiveKey()
	} else if !d.driver.IsNoListenerActive() {
		kb.Disable()
	}

	if err := d.generalLogic(ctx, focused, clicking, key); err != nil {
		return err
	}
	d.animate(focused, clicking)
	d.postEvaluate(focused, clicking)

	if st.lastlyFocused != focused {
		if st.lastlyFocused != nil {
			st.lastlyFocused.setHovered(false)
		}
		if focused != nil {
			focused.setHovered(true)
		}
	}
	st.lastlyFocused = focused
	return nil
}

// preEvaluate sets the repeat flags. doubleClicked is only ever raised
// here; postEvaluate lowers it once the button is released.
func (d *Dispatcher) preEvaluate(focused *Component) {
	st := &d.state
	st.doubleHovered = focused == st.hoveredYet
	if focused == st.clickedYet {
		st.doubleClicked = true
	}
}

func (d *Dispatcher) postEvaluate(focused *Component, clicking bool) {
	st := &d.state
	if clicking {
		st.clickedYet = focused
	} else {
		st.clickedYet = nil
		st.doubleClicked = false
	}
	st.hoveredYet = focused
}

// generalLogic moves keyboard capture, edits the captured field and fires
// callbacks.
func (d *Dispatcher) generalLogic(ctx context.Context, focused *Component, clicking bool, key KeyCode) error {
	st := &d.state

	if clicking {
		next := st.textfield
		if canCapture(focused) {
			next = focused
		}
		if focused != next {
			next = nil
		}
		d.setCapture(next)
	}

	if tf := st.textfield; tf != nil && key != KeyCodeNone {
		l := tf.Logic()
		if l.IsInteractionAllowed() && l.ActsOnClick() {
			switch {
			case tf.Style().Font().IsDisplayable(key) && !tf.IsCursorAtEnd():
				tf.Write(rune(key))
			case key == KeyCodeBackspace && !tf.IsCursorAtBeginning():
				tf.EraseLastChar()
			}
		}
	}

	if focused == nil {
		return nil
	}
	l := focused.Logic()
	if l.IsInteractionAllowed() && l.ActsOnHover() {
		if err := d.execute(ctx, focused, "hover", d.hoverPool, focused.Hover); err != nil {
			return err
		}
	}
	if clicking && l.IsInteractionAllowed() && l.ActsOnClick() {
		if !st.doubleClicked || l.IsDoubleClickAllowed() {
			if err := d.execute(ctx, focused, "click", d.clickPool, focused.Click); err != nil {
				return err
			}
		}
	}
	return nil
}

func canCapture(c *Component) bool {
	if c == nil {
		return false
	}
	if _, ok := c.Kind().(TextfieldKind); !ok {
		return false
	}
	return c.Logic().IsInteractionAllowed() && c.Logic().ActsOnClick()
}

// setCapture moves keyboard capture, highlighting the captured field with
// the design's active color.
func (d *Dispatcher) setCapture(next *Component) {
	prev := d.state.textfield
	if prev == next {
		return
	}
	if prev != nil {
		prev.SetInactive()
	}
	if next != nil {
		next.SetActive(next.Style().Design().ActiveColor)
	}
	d.state.textfield = next
	d.metrics.recordCapture()

	ev := d.log.Debug()
	if prev != nil {
		ev = ev.Object("from", prev)
	}
	if next != nil {
		ev = ev.Object("to", next)
	}
	ev.Msg("keyboard capture changed")
}

// execute runs fn inline or on pool, then holds the whole loop for the
// component's delay.
func (d *Dispatcher) execute(ctx context.Context, c *Component, event string, pool *workerPool, fn func()) error {
	mode := "inline"
	if c.Logic().IsMultithreadingOn() {
		mode = "pooled"
		pool.Submit(fn)
	} else {
		fn()
	}
	d.metrics.recordCallback(c.Tag(), event, mode)
	d.log.Debug().Object("component", c).Str("event", event).Str("mode", mode).Msg("callback triggered")

	return sleepContext(ctx, c.Logic().Delay())
}

// animate applies color and cursor feedback for the focused component.
func (d *Dispatcher) animate(focused *Component, clicking bool) {
	st := &d.state
	prev := st.lastlyFocused
	focusMoved := prev != nil && prev != focused

	switch kindOf(focused).(type) {
	case ButtonKind:
		s := focused.Style()
		design := s.Design()
		if clicking {
			if s.PrimaryColor() != design.ActiveColor {
				s.SetPrimaryColor(design.ActiveColor)
			}
		} else if s.PrimaryColor() != design.HoverColor {
			s.SetPrimaryColor(design.HoverColor)
			d.display.SetCursor(CursorHand)
		}
	case TextfieldKind:
		if !st.doubleHovered {
			d.display.SetCursor(CursorText)
		}
	default:
		if focusMoved {
			d.display.SetCursor(CursorDefault)
		}
	}

	if focusMoved {
		if _, ok := prev.Kind().(ButtonKind); ok {
			s := prev.Style()
			if bg := s.Design().BackgroundColor; s.PrimaryColor() != bg {
				s.SetPrimaryColor(bg)
			}
		}
	}
}

func kindOf(c *Component) Kind {
	if c == nil {
		return nil
	}
	return c.Kind()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
