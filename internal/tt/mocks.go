package tt

import (
	"context"

	"github.com/rickchristie/drift"
)

// ScriptedEngine is a drift.Engine returning a fixed sequence of
// completions, one per call, in order. After the script is exhausted it
// returns Fallback. Calls are recorded so tests can assert on the prompts
// the loop built.
//
// ScriptedEngine is deterministic by construction: the same script always
// yields the same record sequence, which is what the determinism tests rely
// on.
type ScriptedEngine struct {
	// Prompts records every prompt received, in call order.
	Prompts []string

	// Profiles records the profile passed with each call.
	Profiles []*drift.Profile

	// Stops records the stop markers passed with each call.
	Stops [][]string

	// Fallback is returned once the script is exhausted.
	Fallback string

	completions []string
	err         error
	errAtCall   int
	calls       int
}

// NewScriptedEngine creates an engine that returns the given completions in
// order.
func NewScriptedEngine(completions ...string) *ScriptedEngine {
	return &ScriptedEngine{
		completions: completions,
		errAtCall:   -1,
	}
}

// WithError makes the engine fail with err on the zero-based call index.
// Returns the engine for chaining.
func (e *ScriptedEngine) WithError(call int, err error) *ScriptedEngine {
	e.errAtCall = call
	e.err = err
	return e
}

// WithFallback sets the completion returned after the script is exhausted.
// Returns the engine for chaining.
func (e *ScriptedEngine) WithFallback(s string) *ScriptedEngine {
	e.Fallback = s
	return e
}

// Calls returns how many times Complete was invoked.
func (e *ScriptedEngine) Calls() int {
	return e.calls
}

// Complete implements drift.Engine.
func (e *ScriptedEngine) Complete(
	_ context.Context,
	prompt string,
	profile *drift.Profile,
	stop []string,
) (string, error) {
	call := e.calls
	e.calls++
	e.Prompts = append(e.Prompts, prompt)
	e.Profiles = append(e.Profiles, profile)
	e.Stops = append(e.Stops, stop)

	if e.errAtCall == call {
		return "", e.err
	}
	if call < len(e.completions) {
		return e.completions[call], nil
	}
	return e.Fallback, nil
}

// Compile-time check that ScriptedEngine implements drift.Engine.
var _ drift.Engine = (*ScriptedEngine)(nil)
