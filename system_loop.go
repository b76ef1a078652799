package scene

import (
	"context"
	"time"
)

// FrameSource paces Run. It returns a channel that receives once per frame
// and is closed or abandoned when ctx is done. interval is the frame duration
// at the time Run started.
type FrameSource func(ctx context.Context, interval time.Duration) <-chan time.Time

// tickerFrames is the default FrameSource. It follows SetFrameRate changes.
func (s *System) tickerFrames(ctx context.Context, interval time.Duration) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				if d := s.FrameDuration(); d != interval {
					interval = d
					ticker.Reset(d)
				}
				select {
				case out <- t:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Run ticks once per frame until Stop is called or ctx is done.
func (s *System) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := s.source(ctx, s.FrameDuration())
	s.logger.Debug("run loop started", "frame", s.FrameDuration())
	for {
		select {
		case <-s.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			s.Tick(s.now())
		}
	}
}

// Stop signals Run to exit. Updates queued afterwards are ignored.
// Stop is idempotent - multiple calls are safe.
func (s *System) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// Stopped reports whether Stop was called.
func (s *System) Stopped() bool {
	select {
	case <-s.stopCh:
		return true
	default:
		return false
	}
}

// QueueUpdate enqueues fn to run at the start of the next tick.
// Safe to call from any goroutine. Use this to mutate nodes from background
// work.
func (s *System) QueueUpdate(fn func()) {
	select {
	case s.updates <- fn:
	case <-s.stopCh:
		// System is stopping, ignore update
	default:
		s.dropped.Add(1)
		s.logger.Warn("update queue full, dropping update", "capacity", cap(s.updates))
	}
}

// drainUpdates runs the updates that were queued before the tick started.
func (s *System) drainUpdates() {
	for range len(s.updates) {
		select {
		case fn := <-s.updates:
			if err := safeCall(func() error { fn(); return nil }); err != nil {
				s.raise(&NodeError{Target: s, Stage: StageIdle, Err: err})
			}
		default:
			return
		}
	}
}
