package drift

import "time"

// -----------------------------------------------------------------------------
// Hook Event Interface
// -----------------------------------------------------------------------------

// HookEvent is a marker interface for all hook events.
type HookEvent interface {
	hookEvent()
}

// HookFirer dispatches events to registered hooks. The hooks subpackage
// provides the standard implementation ([hooks.Registry]); the core only
// depends on this interface so the root package stays import-cycle free.
type HookFirer interface {
	FireBeforeRun(stats *RunStats, event *BeforeRunEvent)
	FireBeforeIteration(stats *RunStats, event *BeforeIterationEvent)
	FireAfterIteration(stats *RunStats, event *AfterIterationEvent)
	FireAfterRun(stats *RunStats, event *AfterRunEvent)
}

// -----------------------------------------------------------------------------
// Run Events
// -----------------------------------------------------------------------------

// BeforeRunEvent is emitted once before the first iteration of a run.
type BeforeRunEvent struct {
	// Profile is the sampling profile driving this run.
	Profile *Profile
}

func (BeforeRunEvent) hookEvent() {}

// AfterRunEvent is emitted once after a run terminates, for any
// termination reason including engine failure.
type AfterRunEvent struct {
	// Profile is the sampling profile that drove this run.
	Profile *Profile

	// Termination indicates why the run ended.
	Termination Termination

	// Records is the full record sequence produced by the run.
	Records []Record

	// Error is the engine failure when Termination is TerminationError,
	// nil otherwise.
	Error error
}

func (AfterRunEvent) hookEvent() {}

// BeforeIterationEvent is emitted before each engine call.
type BeforeIterationEvent struct {
	// T is the zero-based iteration index.
	T int
}

func (BeforeIterationEvent) hookEvent() {}

// AfterIterationEvent is emitted after each completed iteration, including
// the terminal zero-token iteration in deterministic mode.
type AfterIterationEvent struct {
	// T is the zero-based iteration index.
	T int

	// Record is the measurement appended for this iteration.
	Record Record

	// Completion is the engine output after any deterministic-mode
	// trimming. Empty for the terminal zero-token iteration.
	Completion string

	// Duration is how long the engine call took.
	Duration time.Duration
}

func (AfterIterationEvent) hookEvent() {}
