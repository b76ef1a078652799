package scene

import "time"

// Stats is a snapshot of scheduler counters taken at the end of a tick.
type Stats struct {
	Frame       uint64        `json:"frame"`
	Validations uint64        `json:"validations"`
	Errors      uint64        `json:"errors"`
	Dropped     uint64        `json:"dropped"`
	Pending     int           `json:"pending"`
	Bases       int           `json:"bases"`
	Animations  int           `json:"animations"`
	LastTick    time.Duration `json:"last_tick"`
}

// Stats returns the snapshot recorded by the last tick.
// Safe to call from any goroutine.
func (s *System) Stats() Stats {
	return *s.stats.Load()
}

func (s *System) recordStats(d time.Duration) {
	s.stats.Store(&Stats{
		Frame:       s.frame,
		Validations: s.validations.Load(),
		Errors:      s.errors.Load(),
		Dropped:     s.dropped.Load(),
		Pending:     s.registry.Pending(),
		Bases:       len(s.bases),
		Animations:  s.animations.Len(),
		LastTick:    d,
	})
}
