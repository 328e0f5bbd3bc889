package drift

// Termination indicates why a run ended. All values except
// [TerminationError] are normal, non-error outcomes.
type Termination string

const (
	// TerminationCompleted means the iteration cap was reached.
	TerminationCompleted Termination = "completed"

	// TerminationSafetyCutoff means the accumulated context word count
	// exceeded the configured safety limit.
	TerminationSafetyCutoff Termination = "safety_cutoff"

	// TerminationEmptyCompletion means a deterministic-mode completion was
	// empty after leading-whitespace trimming: the model had nothing
	// further to add, so the run short-circuited.
	TerminationEmptyCompletion Termination = "empty_completion"

	// TerminationError means the engine failed. The run aborts with the
	// records accumulated so far; there is no retry policy.
	TerminationError Termination = "error"
)
