package scene

import "errors"

// DataConsumer is anything that loads data through the scheduler's data
// stages. Implementations own their invalid flags; the System only queues
// them. Implementations must be comparable, which in practice means pointers.
type DataConsumer interface {
	BaseID() BaseID

	// DataInvalid reports whether ValidateData still has work to do.
	DataInvalid() bool

	// DataValidationProgress reports how much of the data is loaded, in [0, 1].
	// Anything below 1 after ValidateData keeps the consumer at the head of
	// its queue until the next tick.
	DataValidationProgress() float64

	// DataProvider returns the consumer whose data this one is derived from,
	// or nil.
	DataProvider() DataConsumer

	ValidateData() error
	ValidateRawData() error
	ValidateDataItems() error
	ValidateDataRange() error
	IsDisposed() bool
}

// RangeEventSkipper lets a consumer suppress the next EventDataRangeChanged.
type RangeEventSkipper interface {
	SkipRangeEvent() bool
}

// CriticalErrorRaiser receives validation failures targeting the consumer.
type CriticalErrorRaiser interface {
	RaiseCriticalError(err error)
}

// EventDispatcher receives the data notifications emitted for the consumer.
type EventDispatcher interface {
	DispatchEvent(t EventType)
}

// InvalidateData queues c for the data stage.
func (s *System) InvalidateData(c DataConsumer) {
	if !c.IsDisposed() {
		s.registry.AddData(QueueData, c)
	}
}

// InvalidateRawData queues c for the raw data stage.
func (s *System) InvalidateRawData(c DataConsumer) {
	if !c.IsDisposed() {
		s.registry.AddData(QueueRawData, c)
	}
}

// InvalidateDataItems queues c for the data items stage.
func (s *System) InvalidateDataItems(c DataConsumer) {
	if !c.IsDisposed() {
		s.registry.AddData(QueueDataItems, c)
	}
}

// InvalidateDataRange queues c for the data range stage.
func (s *System) InvalidateDataRange(c DataConsumer) {
	if !c.IsDisposed() {
		s.registry.AddData(QueueDataRange, c)
	}
}

func (s *System) RemoveFromInvalidData(c DataConsumer) {
	s.registry.RemoveData(QueueData, c)
}

func (s *System) RemoveFromInvalidRawData(c DataConsumer) {
	s.registry.RemoveData(QueueRawData, c)
}

func (s *System) RemoveFromInvalidDataItems(c DataConsumer) {
	s.registry.RemoveData(QueueDataItems, c)
}

func (s *System) RemoveFromInvalidDataRange(c DataConsumer) {
	s.registry.RemoveData(QueueDataRange, c)
}

// DisposeData removes c from every data queue.
func (s *System) DisposeData(c DataConsumer) {
	s.registry.PurgeData(c)
}

type loadResult uint8

const (
	dataLoaded loadResult = iota
	dataPartial
	dataFailed
)

// validateData drains each base's data queue in order. A consumer whose
// provider still has data to load waits for the provider. A consumer that is
// only partly loaded stays at the head and ends that base's data stage for
// this tick. A provider that fails is not retried until it is invalidated
// again, and its dependents stay queued behind it while the rest of the base
// keeps loading.
func (s *System) validateData() {
	for _, base := range s.registry.Bases() {
		passed := make(map[DataConsumer]bool)
	drain:
		for step := 0; step <= 4*s.registry.Len(QueueData, base); step++ {
			c, ok := nextData(s.registry.dataQueue(QueueData, base), passed)
			if !ok {
				break
			}
			if c.IsDisposed() {
				s.registry.RemoveData(QueueData, c)
				continue
			}

			p := c.DataProvider()
			if p == nil || p.IsDisposed() || !p.DataInvalid() {
				if s.loadData(c) == dataPartial {
					break drain
				}
				continue
			}
			if passed[p] || !s.registry.ContainsData(QueueData, p) {
				passed[c] = true
				continue
			}
			switch s.loadData(p) {
			case dataPartial:
				break drain
			case dataFailed:
				passed[p] = true
				passed[c] = true
			case dataLoaded:
				if p.DataInvalid() {
					passed[c] = true
				}
			}
		}
	}
}

// nextData returns the first queued consumer not yet passed over this tick.
func nextData(q *orderedSet[DataConsumer], passed map[DataConsumer]bool) (DataConsumer, bool) {
	if q == nil {
		return nil, false
	}
	for _, c := range q.items {
		if !passed[c] {
			return c, true
		}
	}
	return nil, false
}

// loadData runs one ValidateData call. The consumer is dequeued first and
// put back at the head if it is only partly loaded.
func (s *System) loadData(c DataConsumer) loadResult {
	s.registry.RemoveData(QueueData, c)
	s.validations.Add(1)
	if err := safeCall(c.ValidateData); err != nil {
		if !errors.Is(err, ErrDisposed) {
			s.raise(nodeFailure(c, StageData, err))
		}
		return dataFailed
	}
	if c.DataValidationProgress() < 1 && !c.IsDisposed() {
		s.registry.PushFrontData(QueueData, c)
		return dataPartial
	}
	return dataLoaded
}

// validateRawData runs every queued raw data transform.
func (s *System) validateRawData() {
	for _, base := range s.registry.Bases() {
		for _, c := range s.registry.dataSnapshot(QueueRawData, base) {
			s.guardData(QueueRawData, c, StageRawData, c.ValidateRawData)
		}
	}
}

// validateDataItems rebuilds data items for consumers whose data, and whose
// provider's data, is fully loaded. The rest stay queued.
func (s *System) validateDataItems() {
	for _, base := range s.registry.Bases() {
		for _, c := range s.registry.dataSnapshot(QueueDataItems, base) {
			if dataPending(c) {
				continue
			}
			s.guardData(QueueDataItems, c, StageDataItems, c.ValidateDataItems)
		}
	}
}

// validateDataRange applies visible ranges, with the same skip rule as
// validateDataItems, and announces each applied range.
func (s *System) validateDataRange() {
	for _, base := range s.registry.Bases() {
		for _, c := range s.registry.dataSnapshot(QueueDataRange, base) {
			if dataPending(c) {
				continue
			}
			if !s.guardData(QueueDataRange, c, StageDataRange, c.ValidateDataRange) {
				continue
			}
			if sk, ok := c.(RangeEventSkipper); ok && sk.SkipRangeEvent() {
				continue
			}
			s.dataEvents.Emit(EventDataRangeChanged, c)
			if d, ok := c.(EventDispatcher); ok {
				d.DispatchEvent(EventDataRangeChanged)
			}
		}
	}
}

// guardData dequeues c from q and runs fn behind a recover boundary.
// It reports whether fn succeeded.
func (s *System) guardData(q Queue, c DataConsumer, stage Stage, fn func() error) bool {
	if !s.registry.ContainsData(q, c) {
		return false
	}
	s.registry.RemoveData(q, c)
	if c.IsDisposed() {
		return false
	}
	s.validations.Add(1)
	if err := safeCall(fn); err != nil {
		if !errors.Is(err, ErrDisposed) {
			s.raise(nodeFailure(c, stage, err))
		}
		return false
	}
	return true
}

func dataPending(c DataConsumer) bool {
	if c.DataInvalid() {
		return true
	}
	p := c.DataProvider()
	return p != nil && !p.IsDisposed() && p.DataInvalid()
}
