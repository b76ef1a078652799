package scene

import (
	"errors"
	"time"
)

// Tick runs one frame. Stages run in a fixed order:
//
//  1. enter-frame listeners
//  2. base viewport remeasure (throttled)
//  3. layout and position queues, drained until quiet
//  4. data, raw data, data items and data range queues
//  5. visual queue, most recently invalidated first
//  6. animations
//  7. CallLater callbacks
//  8. layout and position queues again
//  9. exit-frame listeners, after Stats is updated
//
// A failing node is reported and skipped; the tick always completes.
// A Tick started from inside another Tick is ignored.
func (s *System) Tick(now time.Time) {
	if !s.ticking.CompareAndSwap(false, true) {
		s.logger.Warn("nested tick ignored", "frame", s.frame)
		return
	}
	defer s.ticking.Store(false)

	start := time.Now()
	var elapsed time.Duration
	if !s.lastTick.IsZero() {
		elapsed = max(0, now.Sub(s.lastTick))
	}
	s.lastTick = now

	s.drainUpdates()
	s.frame++
	s.events.Emit(EventEnterFrame, s)

	if s.frame%s.measureEvery() == 0 {
		s.measureBases()
	}
	s.settle()

	s.validateData()
	s.validateRawData()
	s.validateDataItems()
	s.validateDataRange()

	s.validateVisuals()
	s.updateAnimations(elapsed)
	s.runIdle()
	s.settle()

	s.recordStats(time.Since(start))
	s.events.Emit(EventExitFrame, s)
}

// settle drains the layout and position queues of every base until both are
// empty or the pass budget runs out.
func (s *System) settle() {
	for pass := 0; pass < s.maxSettlePasses; pass++ {
		worked := false
		for _, base := range s.registry.Bases() {
			for _, n := range s.registry.snapshot(QueueLayouts, base) {
				if !s.registry.ContainsNode(QueueLayouts, n) {
					continue
				}
				worked = true
				s.guardNode(n, StageLayout, n.ValidateLayout)
			}
			for _, n := range s.registry.snapshot(QueuePositions, base) {
				if !s.registry.ContainsNode(QueuePositions, n) {
					continue
				}
				worked = true
				s.guardNode(n, StagePosition, n.ValidatePosition)
			}
		}
		if !worked {
			return
		}
	}
	s.logger.Debug("settle pass budget exhausted", "frame", s.frame, "passes", s.maxSettlePasses)
}

// validateVisuals walks each base's visual queue from the tail. Throttled
// nodes stay queued with their counter decremented.
func (s *System) validateVisuals() {
	for _, base := range s.registry.Bases() {
		items := s.registry.snapshot(QueueVisual, base)
		for i := len(items) - 1; i >= 0; i-- {
			n := items[i]
			if !s.registry.ContainsNode(QueueVisual, n) {
				continue
			}
			if n.disposed || n.disabled {
				n.RemoveFromInvalid()
				continue
			}
			if n.renderingFrame > 1 {
				n.renderingFrame--
				continue
			}
			s.guardNode(n, StageVisual, n.Validate)
		}
	}
}

func (s *System) updateAnimations(elapsed time.Duration) {
	for _, a := range s.animations.Items() {
		if !s.animations.Contains(a) {
			continue
		}
		var done bool
		err := safeCall(func() error {
			done = a.Update(elapsed)
			return nil
		})
		if err != nil {
			s.StopAnimation(a)
			s.raise(&NodeError{Target: a, Stage: StageAnimation, Err: err})
			continue
		}
		if done {
			s.StopAnimation(a)
		}
	}
}

func (s *System) runIdle() {
	callbacks := s.idle
	s.idle = nil
	for _, fn := range callbacks {
		if err := safeCall(func() error { fn(); return nil }); err != nil {
			s.raise(&NodeError{Target: s, Stage: StageIdle, Err: err})
		}
	}
}

// guardNode runs one node validation behind a recover boundary and reports
// any failure against the node that caused it.
func (s *System) guardNode(n *Node, stage Stage, fn func() error) {
	s.validations.Add(1)
	err := safeCall(fn)
	if err == nil || errors.Is(err, ErrDisposed) {
		return
	}
	s.raise(nodeFailure(n, stage, err))
}

// raise reports a node-scoped failure. It never stops the tick.
func (s *System) raise(ne *NodeError) {
	s.errors.Add(1)
	switch t := ne.Target.(type) {
	case *Node:
		t.lastErr = ne.Err
		if t.box != nil && t.box.state != LayoutValid {
			t.box.state = LayoutInvalid
		}
		t.events.Emit(EventError, t)
	case CriticalErrorRaiser:
		t.RaiseCriticalError(ne)
	}

	args := []any{"stage", ne.Stage.String(), "target", describe(ne.Target), "error", ne.Err}
	var pe *PanicError
	if errors.As(ne.Err, &pe) {
		args = append(args, "stack", string(pe.Stack))
	}
	s.logger.Error("validation failed", args...)

	if s.onError != nil {
		s.onError(ne)
	}
}
