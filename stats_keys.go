package drift

// StatKey identifies a counter or gauge in [RunStats]. All standard keys
// are prefixed with "drift:" to avoid collisions with user-defined keys
// registered by hooks.
type StatKey string

const (
	// KeyIterations counts completed loop iterations (counter).
	KeyIterations StatKey = "drift:iterations"

	// KeyEngineCalls counts engine completions requested (counter).
	KeyEngineCalls StatKey = "drift:engine_calls"

	// KeyEmptyCompletions counts whitespace-only greedy completions
	// (counter). At most 1 per run since the first one terminates.
	KeyEmptyCompletions StatKey = "drift:empty_completions"

	// KeyOmegaTotal accumulates compression gain across completions
	// (counter).
	KeyOmegaTotal StatKey = "drift:omega_total"

	// KeyContextWords tracks the current whitespace-delimited word count
	// of the accumulated context (gauge; grows monotonically because the
	// context is append-only).
	KeyContextWords StatKey = "drift:context_words"
)
