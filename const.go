package drift

// =============================================================================
// Loop defaults
// =============================================================================

const (
	// DefaultMaxIterations is the self-feedback iteration cap per run.
	DefaultMaxIterations = 10

	// DefaultContextWordLimit is the safety cutoff on accumulated context,
	// in whitespace-delimited word units. Chosen to stop well before a
	// 4096-token model input window fills up.
	DefaultContextWordLimit = 3500

	// TurnMarker is appended to the accumulated context to build each
	// prompt. The model is asked to continue its own prior output.
	TurnMarker = "\n### Self:\n"

	// turnMarkerWordCost is the estimated per-marker token contribution of
	// TurnMarker ("Ċ### Self:" tokenizes to roughly 3 units). Used to
	// exclude injected markers from the effective context length. This is
	// word-count bookkeeping, not exact tokenization.
	turnMarkerWordCost = 3
)

// =============================================================================
// Sampling defaults
// =============================================================================

const (
	// TemperatureInjective is the stochastic sampling temperature.
	TemperatureInjective = 1.0

	// TemperatureDeterministic is the greedy sampling temperature.
	TemperatureDeterministic = 0.0

	// TopPInjective is typical nucleus sampling for the injective run.
	TopPInjective = 0.95

	// TopKInjective is typical top-k for the injective run.
	TopKInjective = 40

	// RepeatPenaltyInjective is a mild anti-repetition penalty.
	RepeatPenaltyInjective = 1.05

	// SeedDeterministic fixes the RNG seed for reproducible greedy runs.
	SeedDeterministic = 42

	// MaxTokensInjective is the generation window for the injective run.
	MaxTokensInjective = 32

	// MaxTokensDeterministic is the shorter generation window for the
	// deterministic run.
	MaxTokensDeterministic = 8
)

// =============================================================================
// Mode labels
// =============================================================================

const (
	// LabelInjective labels the stochastic run and its output artifact.
	LabelInjective = "injective"

	// LabelDeterministic labels the greedy run and its output artifact.
	LabelDeterministic = "deterministic"
)

// StopMarkers returns the completion-truncation boundaries passed to the
// engine on every call: the manual sentinel, its newline-prefixed form, the
// Llama end-of-turn token, and the generic EOS token.
//
// Returns a fresh slice so callers can't mutate the fixed set.
func StopMarkers() []string {
	return []string{
		"###",
		"\n###",
		"<|eot_id|>",
		"<|end_of_text|>",
	}
}
