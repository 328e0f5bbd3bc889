// Package drift measures whether iterative self-feedback prompting against
// a generative model diverges or converges. It runs two otherwise identical
// loops — a stochastic "injective" mode and a greedy "deterministic" mode —
// feeding the model's own output back as input, and records two signals per
// iteration: effective accumulated context length and a compression-based
// information-density proxy (omega).
//
// [Controller] is the loop core; the engine and experiment subpackages
// provide the LangChainGo-backed inference adapter and the two-mode driver.
package drift

import "context"

// Run executes one self-feedback loop with the default loop policy.
// Shorthand for NewController(engine, DefaultConfig()).Run(ctx, profile).
func Run(ctx context.Context, engine Engine, profile *Profile) (*RunResult, error) {
	return NewController(engine, DefaultConfig()).Run(ctx, profile)
}
