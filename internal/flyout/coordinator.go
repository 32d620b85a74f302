package flyout

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ytget/storefront/internal/model"
)

// Coordinator owns the slot pool and runs one flyout timeline per slot.
// Slots animate independently; all of them are advanced by the same Advance
// calls. Renderer callbacks run outside the coordinator lock.
type Coordinator struct {
	mu       sync.Mutex
	slots    []*slot
	timing   Timing
	renderer Renderer
	onPhase  func(index int, phase model.SlotPhase)
	logger   *slog.Logger
}

// NewCoordinator creates a coordinator with an empty pool. A nil renderer
// runs the timelines headless.
func NewCoordinator(timing Timing, renderer Renderer, logger *slog.Logger) *Coordinator {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		timing:   timing,
		renderer: renderer,
		logger:   logger.With("component", "flyout"),
	}
}

// SetRenderer replaces the clone renderer
func (c *Coordinator) SetRenderer(renderer Renderer) {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderer = renderer
}

// SetPhaseHook sets a function notified of every slot phase change
func (c *Coordinator) SetPhaseHook(hook func(index int, phase model.SlotPhase)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPhase = hook
}

// Timing returns the configured timing
func (c *Coordinator) Timing() Timing {
	return c.timing
}

// Resize reallocates the pool to n slots. Slots below n keep their values,
// including any running timeline; slots beyond n are dropped and their
// clones cleared.
func (c *Coordinator) Resize(n int) {
	if n < 0 {
		n = 0
	}

	c.mu.Lock()
	var dropped []int
	if n < len(c.slots) {
		for _, s := range c.slots[n:] {
			if s.phase.IsAnimating() {
				dropped = append(dropped, s.index)
			}
		}
		c.slots = c.slots[:n:n]
	}
	for i := len(c.slots); i < n; i++ {
		c.slots = append(c.slots, newSlot(i))
	}
	renderer := c.renderer
	c.mu.Unlock()

	for _, index := range dropped {
		renderer.Clear(index)
	}
	c.logger.Debug("slot pool resized", "slots", n, "dropped", len(dropped))
}

// Len returns the number of allocated slots
func (c *Coordinator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slots)
}

// Trigger starts a flyout on the event's slot and reports whether it did.
// An index outside the pool skips the animation. A slot that is already
// animating restarts from its current values; it keeps a single clone.
func (c *Coordinator) Trigger(ev Event) bool {
	c.mu.Lock()
	if ev.SlotIndex < 0 || ev.SlotIndex >= len(c.slots) {
		size := len(c.slots)
		c.mu.Unlock()
		c.logger.Debug("flyout skipped", "event", ev.ID, "slot", ev.SlotIndex, "slots", size, "error", ErrSlotOutOfRange)
		return false
	}

	s := c.slots[ev.SlotIndex]
	superseded := s.phase.IsAnimating()
	target := TargetOffset(ev.Source, ev.DirectionSign(), c.timing.CartAnchorX, c.timing.VerticalBias)
	s.begin(ev, target, CloneOrigin(ev.Source, ev.Direction, ev.ScreenWidth))

	frame := s.frame()
	changes := s.drainChanges()
	renderer, hook := c.renderer, c.onPhase
	c.mu.Unlock()

	c.logger.Debug("flyout started",
		"event", ev.ID, "slot", ev.SlotIndex, "item", ev.Item.ID,
		"target_x", target.X, "target_y", target.Y, "superseded", superseded)

	emitChanges(hook, changes)
	renderer.Render(frame)
	return true
}

// Advance moves every animating slot forward by dt
func (c *Coordinator) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	c.mu.Lock()
	var (
		frames  []Frame
		cleared []int
		changes []phaseChange
	)
	for _, s := range c.slots {
		if !s.phase.IsAnimating() {
			continue
		}
		done := s.advance(dt, c.timing)
		frames = append(frames, s.frame())
		if done {
			s.reset()
			cleared = append(cleared, s.index)
		}
		changes = append(changes, s.drainChanges()...)
	}
	renderer, hook := c.renderer, c.onPhase
	c.mu.Unlock()

	emitChanges(hook, changes)
	for _, f := range frames {
		renderer.Render(f)
	}
	for _, index := range cleared {
		renderer.Clear(index)
		c.logger.Debug("flyout finished", "slot", index)
	}
}

// Active returns the number of slots inside a flyout cycle
func (c *Coordinator) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	active := 0
	for _, s := range c.slots {
		if s.phase.IsAnimating() {
			active++
		}
	}
	return active
}

// Slot returns a snapshot of slot index
func (c *Coordinator) Slot(index int) (SlotState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.slots) {
		return SlotState{}, false
	}
	return c.slots[index].state(), true
}

func emitChanges(hook func(int, model.SlotPhase), changes []phaseChange) {
	if hook == nil {
		return
	}
	for _, ch := range changes {
		hook(ch.index, ch.phase)
	}
}
