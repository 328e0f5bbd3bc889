package drift

// RunStats contains counters and gauges for one loop run.
//
// Counters are monotonically increasing (iterations, engine calls,
// accumulated omega). Gauges are point-in-time values (current context word
// count). Limits are checked against both; see [Limit].
//
// A run is fully single-threaded — the loop never overlaps engine calls and
// no state is shared between the two mode runs — so RunStats does no
// locking. Hooks receive the live *RunStats and may read it or add their
// own keys during their callback.
type RunStats struct {
	counters map[StatKey]int64
	gauges   map[StatKey]float64
}

// NewRunStats creates an empty RunStats.
func NewRunStats() *RunStats {
	return &RunStats{
		counters: make(map[StatKey]int64),
		gauges:   make(map[StatKey]float64),
	}
}

// IncrCounter increments a counter by delta, creating it if absent.
// Panics if delta is negative: counters only go up.
func (s *RunStats) IncrCounter(key StatKey, delta int64) {
	if delta < 0 {
		panic("drift: counter delta must be non-negative")
	}
	s.counters[key] += delta
}

// GetCounter returns the counter value, or 0 if the key was never
// incremented.
func (s *RunStats) GetCounter(key StatKey) int64 {
	return s.counters[key]
}

// SetGauge sets a gauge to the given value.
func (s *RunStats) SetGauge(key StatKey, value float64) {
	s.gauges[key] = value
}

// GetGauge returns the gauge value, or 0 if the key was never set.
func (s *RunStats) GetGauge(key StatKey) float64 {
	return s.gauges[key]
}

// Exceeded returns the first limit whose key's current value is strictly
// greater than its MaxValue, or nil when all limits hold. Counters are
// compared as float64.
func (s *RunStats) Exceeded(limits []Limit) *Limit {
	for i := range limits {
		lim := &limits[i]

		if v, ok := s.counters[lim.Key]; ok && float64(v) > lim.MaxValue {
			return lim
		}
		if v, ok := s.gauges[lim.Key]; ok && v > lim.MaxValue {
			return lim
		}
	}
	return nil
}
