package drift

// Limit defines a threshold that terminates a run early.
//
// Limits are checked after each record is appended. When a limit trips, the
// run ends with [TerminationSafetyCutoff] — the record that tripped it is
// kept, and no further iterations happen.
//
// The only default limit is the context-word safety cutoff:
//
//	{Key: KeyContextWords, MaxValue: 3500}
//
// It stops the loop before the accumulated context approaches the model's
// input window. The iteration cap is not a Limit; it is the loop bound
// itself (see [Config.MaxIterations]).
type Limit struct {
	// Key is the stat key to watch (counter or gauge).
	Key StatKey

	// MaxValue is the threshold. The comparison is strict:
	// currentValue > MaxValue.
	MaxValue float64
}

// DefaultLimits returns the standard safety limits for a run: the
// context-word cutoff at [DefaultContextWordLimit].
func DefaultLimits() []Limit {
	return []Limit{
		{Key: KeyContextWords, MaxValue: DefaultContextWordLimit},
	}
}
