package flyout

import (
	"time"

	"github.com/ytget/storefront/internal/model"
)

// SlotState is a read-only snapshot of one slot
type SlotState struct {
	Index   int
	Offset  model.Vec2
	Opacity float32
	Scale   float32
	Phase   model.SlotPhase
}

type phaseChange struct {
	index int
	phase model.SlotPhase
}

// slot holds the animated triple for one list position
type slot struct {
	index   int
	offset  model.Vec2
	opacity float32
	scale   float32

	phase   model.SlotPhase
	elapsed time.Duration

	// values captured when the current stage began
	fromOffset  model.Vec2
	fromOpacity float32
	fromScale   float32

	target model.Vec2
	origin model.Rect
	event  Event

	changes []phaseChange
}

func newSlot(index int) *slot {
	return &slot{
		index:   index,
		opacity: 1,
		scale:   1,
		phase:   model.SlotPhaseIdle,
	}
}

// begin starts a cycle from whatever values the slot currently holds
func (s *slot) begin(ev Event, target model.Vec2, origin model.Rect) {
	s.event = ev
	s.target = target
	s.origin = origin

	s.enter(model.SlotPhaseAppear)
	s.opacity = 1
	s.enter(model.SlotPhaseShrink)
}

func (s *slot) enter(phase model.SlotPhase) {
	s.phase = phase
	s.elapsed = 0
	s.fromOffset = s.offset
	s.fromOpacity = s.opacity
	s.fromScale = s.scale
	s.changes = append(s.changes, phaseChange{index: s.index, phase: phase})
}

// advance moves the timeline forward by dt, carrying leftover time across
// stage boundaries. It reports true when the fly stage has finished; the
// slot then holds its end-of-cycle values until reset.
func (s *slot) advance(dt time.Duration, timing Timing) bool {
	for s.phase.IsAnimating() {
		switch s.phase {
		case model.SlotPhaseAppear:
			s.opacity = 1
			s.enter(model.SlotPhaseShrink)

		case model.SlotPhaseShrink:
			remaining := timing.Shrink - s.elapsed
			if dt < remaining {
				s.elapsed += dt
				p := timing.progress(s.elapsed, timing.Shrink)
				s.scale = model.Lerp(s.fromScale, timing.ShrinkScale, p)
				return false
			}
			dt -= remaining
			s.scale = timing.ShrinkScale
			s.enter(model.SlotPhaseFly)

		case model.SlotPhaseFly:
			remaining := timing.Fly - s.elapsed
			if dt < remaining {
				s.elapsed += dt
				p := timing.progress(s.elapsed, timing.Fly)
				s.offset = s.fromOffset.Lerp(s.target, p)
				s.opacity = model.Lerp(s.fromOpacity, 0, p)
				return false
			}
			s.offset = s.target
			s.opacity = 0
			return true
		}
	}
	return false
}

// reset restores the idle baseline
func (s *slot) reset() {
	s.offset = model.Vec2{}
	s.opacity = 1
	s.scale = 1
	s.elapsed = 0
	s.event = Event{}
	s.phase = model.SlotPhaseIdle
	s.changes = append(s.changes, phaseChange{index: s.index, phase: model.SlotPhaseIdle})
}

func (s *slot) frame() Frame {
	return Frame{
		EventID: s.event.ID,
		Index:   s.index,
		Item:    s.event.Item,
		Origin:  s.origin,
		Offset:  s.offset,
		Opacity: s.opacity,
		Scale:   s.scale,
		Phase:   s.phase,
	}
}

func (s *slot) state() SlotState {
	return SlotState{
		Index:   s.index,
		Offset:  s.offset,
		Opacity: s.opacity,
		Scale:   s.scale,
		Phase:   s.phase,
	}
}

func (s *slot) drainChanges() []phaseChange {
	changes := s.changes
	s.changes = nil
	return changes
}
