package drift

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Config holds the loop policy for a [Controller]. The zero value is not
// usable; start from [DefaultConfig].
type Config struct {
	// MaxIterations is the iteration cap (exclusive upper bound on t).
	MaxIterations int

	// TurnMarker is appended to the accumulated context to form each
	// prompt.
	TurnMarker string

	// StopMarkers are the completion-truncation boundaries passed to the
	// engine on every call.
	StopMarkers []string

	// Limits are checked after each appended record. A tripped limit ends
	// the run with TerminationSafetyCutoff.
	Limits []Limit
}

// DefaultConfig returns the experiment's fixed loop policy: 10 iterations,
// the "### Self:" turn marker, the standard stop-marker set, and the
// 3500-word context safety limit.
func DefaultConfig() Config {
	return Config{
		MaxIterations: DefaultMaxIterations,
		TurnMarker:    TurnMarker,
		StopMarkers:   StopMarkers(),
		Limits:        DefaultLimits(),
	}
}

// RunResult is the outcome of one self-feedback run.
type RunResult struct {
	// Label is the mode label of the profile that drove the run.
	Label string

	// Records is the ordered measurement sequence, one per completed
	// iteration (plus at most one terminal zero-token record in
	// deterministic mode). Never longer than Config.MaxIterations.
	Records []Record

	// Termination indicates why the run ended.
	Termination Termination

	// Stats holds the run's counters and gauges.
	Stats *RunStats
}

// Controller drives one self-feedback loop: it builds prompts by appending
// the turn marker to the accumulated context, feeds the engine's output
// back into the context, records the two per-iteration signals, and decides
// termination.
//
// # Context accumulation
//
// The context is a single append-only text buffer owned by the run. It is
// never truncated; the only transformation ever applied to engine output is
// leading-whitespace trimming in deterministic mode.
//
// # Effective context length
//
// ctx_len counts model-generated content only. Each injected turn marker is
// treated as contributing 3 word-count units, so after iteration t the
// marker cost is 3×(t+1) and
//
//	effective_len = max(0, words(context) − 3×(t+1))
//
// where words() is whitespace-delimited word counting. This approximates
// token accounting on purpose — exact tokenization would silently change
// experimental results against prior logs.
//
// # Termination
//
// A run ends in one of three normal states: Completed (iteration cap),
// SafetyCutoff (context word limit tripped), or EmptyCompletion
// (deterministic mode only: a completion that is empty after left-trimming
// signals the model has nothing further to add; a terminal record with the
// previous iteration's effective length and omega 0 is appended first).
// Engine failure is fatal and aborts the run with TerminationError.
type Controller struct {
	engine Engine
	config Config
	hooks  HookFirer
}

// NewController creates a Controller around the given engine.
func NewController(engine Engine, config Config) *Controller {
	return &Controller{
		engine: engine,
		config: config,
	}
}

// WithHooks sets the hook firer events are dispatched to. Pass nil to
// disable dispatch. Returns the controller for chaining.
func (c *Controller) WithHooks(h HookFirer) *Controller {
	c.hooks = h
	return c
}

// Run executes the self-feedback loop for the given profile and returns the
// run's record sequence.
//
// The returned RunResult is non-nil even on error so callers can inspect
// the records accumulated before the engine failed. Records are kept in
// memory for the whole run and only handed out after termination; a crash
// mid-loop loses them, which is an accepted gap for this experiment.
func (c *Controller) Run(ctx context.Context, profile *Profile) (*RunResult, error) {
	stats := NewRunStats()
	result := &RunResult{
		Label:   profile.Label,
		Records: make([]Record, 0, c.config.MaxIterations),
		Stats:   stats,
	}

	if c.hooks != nil {
		c.hooks.FireBeforeRun(stats, &BeforeRunEvent{Profile: profile})
	}

	var contextBuf strings.Builder

	// Effective length of the most recent recorded iteration. The
	// deterministic empty-completion short-circuit reuses it for the
	// terminal record; when that happens on the very first iteration there
	// is no prior value, so it defaults to 0.
	prevEffectiveLen := 0

	for t := 0; t < c.config.MaxIterations; t++ {
		if c.hooks != nil {
			c.hooks.FireBeforeIteration(stats, &BeforeIterationEvent{T: t})
		}

		prompt := contextBuf.String() + c.config.TurnMarker

		callStart := time.Now()
		completion, err := c.engine.Complete(ctx, prompt, profile, c.config.StopMarkers)
		callDuration := time.Since(callStart)
		stats.IncrCounter(KeyEngineCalls, 1)

		if err != nil {
			result.Termination = TerminationError
			runErr := fmt.Errorf("engine complete (iteration %d): %w", t, err)
			if c.hooks != nil {
				c.hooks.FireAfterRun(stats, &AfterRunEvent{
					Profile:     profile,
					Termination: TerminationError,
					Records:     result.Records,
					Error:       runErr,
				})
			}
			return result, runErr
		}

		if profile.Deterministic {
			// Drop the leading newline the model tends to emit before
			// settling. A completion that is empty afterwards is a
			// zero-token step: log it and stop.
			completion = strings.TrimLeftFunc(completion, unicode.IsSpace)
			if completion == "" {
				record := Record{T: t, CtxLen: prevEffectiveLen, Omega: 0}
				result.Records = append(result.Records, record)
				stats.IncrCounter(KeyEmptyCompletions, 1)
				result.Termination = TerminationEmptyCompletion

				if c.hooks != nil {
					c.hooks.FireAfterIteration(stats, &AfterIterationEvent{
						T:        t,
						Record:   record,
						Duration: callDuration,
					})
				}
				break
			}
		}

		contextBuf.WriteString(completion)

		contextWords := len(strings.Fields(contextBuf.String()))
		markerCost := turnMarkerWordCost * (t + 1)
		effectiveLen := contextWords - markerCost
		if effectiveLen < 0 {
			effectiveLen = 0
		}
		prevEffectiveLen = effectiveLen

		record := Record{
			T:      t,
			CtxLen: effectiveLen,
			Omega:  Omega(completion),
		}
		result.Records = append(result.Records, record)

		stats.IncrCounter(KeyIterations, 1)
		stats.IncrCounter(KeyOmegaTotal, int64(record.Omega))
		stats.SetGauge(KeyContextWords, float64(contextWords))

		if c.hooks != nil {
			c.hooks.FireAfterIteration(stats, &AfterIterationEvent{
				T:          t,
				Record:     record,
				Completion: completion,
				Duration:   callDuration,
			})
		}

		if lim := stats.Exceeded(c.config.Limits); lim != nil {
			result.Termination = TerminationSafetyCutoff
			break
		}
	}

	if result.Termination == "" {
		result.Termination = TerminationCompleted
	}

	if c.hooks != nil {
		c.hooks.FireAfterRun(stats, &AfterRunEvent{
			Profile:     profile,
			Termination: result.Termination,
			Records:     result.Records,
		})
	}

	return result, nil
}
