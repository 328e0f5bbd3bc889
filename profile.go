package drift

import (
	"github.com/tmc/langchaingo/llms"
)

// Profile is an immutable sampling-parameter bundle for one run mode.
//
// Exactly two profiles exist, built once at startup by
// [InjectiveProfile] and [DeterministicProfile]. There is no dynamic
// tuning within a run; the mode-specific loop behavior (leading-whitespace
// trimming and the empty-completion short-circuit) keys off the
// Deterministic flag rather than duplicating the loop per mode.
type Profile struct {
	// Label names the mode ("injective" or "deterministic") and is used in
	// artifact filenames and hook events.
	Label string

	// Deterministic marks the greedy mode. The loop trims leading
	// whitespace from completions and short-circuits on empty output only
	// when this is set.
	Deterministic bool

	// Temperature is the sampling temperature (0.0 = greedy).
	Temperature float64

	// TopP is the nucleus sampling threshold (1.0 = no truncation).
	TopP float64

	// TopK is the top-k sampling cutoff (1 = greedy).
	TopK int

	// RepeatPenalty is the repetition penalty (1.0 = disabled).
	RepeatPenalty float64

	// Seed fixes the sampler RNG when non-nil. Set only in deterministic
	// mode so repeated runs are bit-identical.
	Seed *int

	// MaxTokens caps the tokens generated per engine call.
	MaxTokens int
}

// InjectiveProfile returns the fixed stochastic-mode profile: expected to
// produce diverging, non-repeating self-feedback trajectories.
func InjectiveProfile() *Profile {
	return &Profile{
		Label:         LabelInjective,
		Deterministic: false,
		Temperature:   TemperatureInjective,
		TopP:          TopPInjective,
		TopK:          TopKInjective,
		RepeatPenalty: RepeatPenaltyInjective,
		Seed:          nil,
		MaxTokens:     MaxTokensInjective,
	}
}

// DeterministicProfile returns the fixed greedy-mode profile: no nucleus
// truncation, top-k 1, repetition penalty disabled, fixed seed. Expected to
// converge or stabilize.
func DeterministicProfile() *Profile {
	seed := SeedDeterministic
	return &Profile{
		Label:         LabelDeterministic,
		Deterministic: true,
		Temperature:   TemperatureDeterministic,
		TopP:          1.0,
		TopK:          1,
		RepeatPenalty: 1.0,
		Seed:          &seed,
		MaxTokens:     MaxTokensDeterministic,
	}
}

// CallOptions maps the profile onto LangChainGo call options. Stop markers
// are passed separately by the engine because they are loop policy, not
// sampling policy.
func (p *Profile) CallOptions() []llms.CallOption {
	opts := []llms.CallOption{
		llms.WithTemperature(p.Temperature),
		llms.WithTopP(p.TopP),
		llms.WithTopK(p.TopK),
		llms.WithRepetitionPenalty(p.RepeatPenalty),
		llms.WithMaxTokens(p.MaxTokens),
	}
	if p.Seed != nil {
		opts = append(opts, llms.WithSeed(*p.Seed))
	}
	return opts
}
