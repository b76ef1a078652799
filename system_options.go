package scene

import (
	"fmt"
	"log/slog"
	"time"
)

// SystemOption is a functional option for configuring a System.
type SystemOption func(*System) error

// WithFrameRate sets the target frame rate for Run.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) SystemOption {
	return func(s *System) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		s.frameDuration.Store(int64(time.Second / time.Duration(fps)))
		return nil
	}
}

// WithMeasureRate sets how many times per second base viewports are read.
// Default is 10.
func WithMeasureRate(perSecond int) SystemOption {
	return func(s *System) error {
		if perSecond < 1 {
			return fmt.Errorf("measure rate must be at least 1 per second")
		}
		s.measureRate = perSecond
		return nil
	}
}

// WithMaxSettlePasses bounds how many layout/position drain passes a single
// settle may run. Work left over stays queued for the next settle.
// Default is 64.
func WithMaxSettlePasses(passes int) SystemOption {
	return func(s *System) error {
		if passes < 1 {
			return fmt.Errorf("max settle passes must be at least 1")
		}
		s.maxSettlePasses = passes
		return nil
	}
}

// WithLogger sets the logger for scheduler diagnostics.
// Default is the debug logger, which discards unless SCENE_DEBUG is set.
func WithLogger(l *slog.Logger) SystemOption {
	return func(s *System) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		s.logger = l
		return nil
	}
}

// WithErrorHandler sets a handler called for every node-scoped validation
// failure, after the node itself was notified.
func WithErrorHandler(fn ErrorHandler) SystemOption {
	return func(s *System) error {
		s.onError = fn
		return nil
	}
}

// WithUpdateQueueSize sets the capacity of the QueueUpdate buffer.
// Default is 256. Must be at least 1.
func WithUpdateQueueSize(size int) SystemOption {
	return func(s *System) error {
		if size < 1 {
			return fmt.Errorf("update queue size must be at least 1")
		}
		s.updateQueueSize = size
		return nil
	}
}

// WithFrameSource replaces the ticker that paces Run.
func WithFrameSource(src FrameSource) SystemOption {
	return func(s *System) error {
		if src == nil {
			return fmt.Errorf("frame source must not be nil")
		}
		s.source = src
		return nil
	}
}

// WithClock sets the time source Run passes to Tick.
func WithClock(now func() time.Time) SystemOption {
	return func(s *System) error {
		if now == nil {
			return fmt.Errorf("clock must not be nil")
		}
		s.now = now
		return nil
	}
}
