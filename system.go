package scene

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-scene/internal/debug"
)

// System owns the invalidation queues and drives validation once per frame.
// Everything that touches nodes runs on the goroutine calling Tick (or Run).
// QueueUpdate, Stop, Stats and SetFrameRate are safe from any goroutine.
type System struct {
	registry *Registry
	bases    []*Base

	// Configuration (set via options)
	frameDuration   atomic.Int64 // time.Duration per frame (default 1/60s)
	measureRate     int          // Base remeasures per second (default 10)
	maxSettlePasses int          // Layout/position drain bound per settle (default 64)
	updateQueueSize int          // Capacity of the update queue (default 256)
	logger          *slog.Logger
	onError         ErrorHandler
	source          FrameSource
	now             func() time.Time

	updates  chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
	ticking  atomic.Bool

	frame    uint64
	lastTick time.Time

	animations *orderedSet[Animation]
	owners     map[Animation]*Node
	idle       []func()

	events     Dispatcher[*System]
	dataEvents Dispatcher[DataConsumer]

	validations atomic.Uint64
	errors      atomic.Uint64
	dropped     atomic.Uint64
	stats       atomic.Pointer[Stats]
}

// NewSystem creates a scheduler. It does nothing until Tick or Run is called.
func NewSystem(opts ...SystemOption) (*System, error) {
	s := &System{
		registry:        newRegistry(),
		measureRate:     10,
		maxSettlePasses: 64,
		updateQueueSize: 256,
		now:             time.Now,
		stopCh:          make(chan struct{}),
		animations:      newOrderedSet[Animation](),
		owners:          make(map[Animation]*Node),
	}
	s.frameDuration.Store(int64(time.Second / 60))

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.logger == nil {
		s.logger = debug.Logger()
	}
	if s.source == nil {
		s.source = s.tickerFrames
	}
	s.updates = make(chan func(), s.updateQueueSize)
	s.stats.Store(&Stats{})
	return s, nil
}

// Registry exposes the queues, mainly for inspection.
func (s *System) Registry() *Registry {
	return s.registry
}

// Logger returns the logger the system reports through.
func (s *System) Logger() *slog.Logger {
	return s.logger
}

// Frame returns the number of ticks run so far.
func (s *System) Frame() uint64 {
	return s.frame
}

// FrameDuration returns the target time between ticks.
func (s *System) FrameDuration() time.Duration {
	return time.Duration(s.frameDuration.Load())
}

// SetFrameRate changes the target frame rate. Values outside 1-240 are
// clamped. The default frame source picks the change up on its next frame.
func (s *System) SetFrameRate(fps int) {
	fps = min(max(fps, 1), 240)
	s.frameDuration.Store(int64(time.Second / time.Duration(fps)))
}

// measureEvery returns how many ticks pass between base remeasures.
func (s *System) measureEvery() uint64 {
	fps := int(time.Second / s.FrameDuration())
	return uint64(max(1, fps/s.measureRate))
}

// On registers fn for EventEnterFrame or EventExitFrame.
func (s *System) On(t EventType, fn func(*System)) Unbind {
	return s.events.On(t, fn)
}

// OnData registers fn for data notifications such as EventDataRangeChanged.
func (s *System) OnData(t EventType, fn func(DataConsumer)) Unbind {
	return s.dataEvents.On(t, fn)
}

// CallLater runs fn at the idle stage of the next tick.
func (s *System) CallLater(fn func()) {
	s.idle = append(s.idle, fn)
}

// Settled reports whether nothing is queued for base.
func (s *System) Settled(base BaseID) bool {
	return s.registry.Settled(base)
}

// Bases returns the mounted bases in registration order.
func (s *System) Bases() []*Base {
	out := make([]*Base, len(s.bases))
	copy(out, s.bases)
	return out
}

// Adopt schedules a parentless node under NoBase without a viewport.
func (s *System) Adopt(n *Node) error {
	if err := s.checkMountable(n); err != nil {
		return err
	}
	n.attach(s, NoBase)
	return nil
}

func (s *System) checkMountable(n *Node) error {
	if n.disposed {
		return ErrDisposed
	}
	if n.parent != nil || n.sys != nil {
		return ErrAttached
	}
	return nil
}

func (s *System) String() string {
	return "system"
}
