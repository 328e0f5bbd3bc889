package drift_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rickchristie/drift"
	"github.com/rickchristie/drift/internal/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fiveWords has 5 words; after iteration t the accumulated context holds
// 5*(t+1) words and the marker cost is 3*(t+1), so ctx_len is 2*(t+1).
const fiveWords = "alpha beta gamma delta epsilon\n"

func TestRunReachesIterationCap(t *testing.T) {
	engine := tt.NewScriptedEngine().WithFallback(fiveWords)

	result, err := drift.NewController(engine, drift.DefaultConfig()).
		Run(context.Background(), drift.InjectiveProfile())
	require.NoError(t, err)

	assert.Equal(t, drift.TerminationCompleted, result.Termination)
	require.Len(t, result.Records, drift.DefaultMaxIterations)
	tt.AssertWellFormedRecords(t, result.Records)

	for i, rec := range result.Records {
		assert.Equal(t, 2*(i+1), rec.CtxLen, "record %d", i)
		assert.Equal(t, drift.Omega(fiveWords), rec.Omega, "record %d", i)
	}
}

func TestRunDeterministicEmptyCompletionShortCircuits(t *testing.T) {
	// 6-word completions, then a whitespace-only one on iteration 2:
	// exactly 3 records, the third reusing iteration 1's ctx_len with
	// omega 0, and the loop halts before the cap.
	six := "one two three four five six\n"
	engine := tt.NewScriptedEngine(six, six, " \n \t ")

	result, err := drift.NewController(engine, drift.DefaultConfig()).
		Run(context.Background(), drift.DeterministicProfile())
	require.NoError(t, err)

	assert.Equal(t, drift.TerminationEmptyCompletion, result.Termination)
	require.Len(t, result.Records, 3)
	tt.AssertWellFormedRecords(t, result.Records)

	assert.Equal(t, drift.Record{T: 0, CtxLen: 3, Omega: drift.Omega(six)}, result.Records[0])
	assert.Equal(t, drift.Record{T: 1, CtxLen: 6, Omega: drift.Omega(six)}, result.Records[1])
	assert.Equal(t, drift.Record{T: 2, CtxLen: 6, Omega: 0}, result.Records[2])

	assert.Equal(t, 3, engine.Calls(), "loop must stop issuing engine calls after the short-circuit")
	assert.Equal(t, int64(1), result.Stats.GetCounter(drift.KeyEmptyCompletions))
}

func TestRunDeterministicEmptyOnFirstIteration(t *testing.T) {
	// No effective length has ever been computed at t=0; the terminal
	// record defaults to 0.
	engine := tt.NewScriptedEngine("\n \t")

	result, err := drift.NewController(engine, drift.DefaultConfig()).
		Run(context.Background(), drift.DeterministicProfile())
	require.NoError(t, err)

	assert.Equal(t, drift.TerminationEmptyCompletion, result.Termination)
	require.Len(t, result.Records, 1)
	assert.Equal(t, drift.Record{T: 0, CtxLen: 0, Omega: 0}, result.Records[0])
}

func TestRunSafetyCutoff(t *testing.T) {
	// 4-word completions against a 25-word limit: the context reaches
	// 28 words after iteration 6, so exactly 7 records are produced and
	// the run halts on the cutoff, not the cap.
	four := "red green blue gold\n"
	engine := tt.NewScriptedEngine().WithFallback(four)

	config := drift.DefaultConfig()
	config.Limits = []drift.Limit{{Key: drift.KeyContextWords, MaxValue: 25}}

	result, err := drift.NewController(engine, config).
		Run(context.Background(), drift.InjectiveProfile())
	require.NoError(t, err)

	assert.Equal(t, drift.TerminationSafetyCutoff, result.Termination)
	require.Len(t, result.Records, 7)
	tt.AssertWellFormedRecords(t, result.Records)

	for i, rec := range result.Records {
		assert.Equal(t, i+1, rec.CtxLen, "record %d", i)
	}
	assert.Equal(t, 7, engine.Calls())
}

func TestRunDeterministicRepeatable(t *testing.T) {
	script := []string{
		"the model settles\n",
		"the model settles\n",
		"the model settles again\n",
		"  \n",
	}

	runOnce := func() []drift.Record {
		engine := tt.NewScriptedEngine(script...)
		result, err := drift.NewController(engine, drift.DefaultConfig()).
			Run(context.Background(), drift.DeterministicProfile())
		require.NoError(t, err)
		return result.Records
	}

	tt.RequireRecordsEqual(t, runOnce(), runOnce())
}

func TestRunInjectiveDoesNotShortCircuitOnEmpty(t *testing.T) {
	// Empty completions only terminate deterministic runs; the injective
	// loop keeps iterating to the cap.
	engine := tt.NewScriptedEngine().WithFallback("")

	result, err := drift.NewController(engine, drift.DefaultConfig()).
		Run(context.Background(), drift.InjectiveProfile())
	require.NoError(t, err)

	assert.Equal(t, drift.TerminationCompleted, result.Termination)
	require.Len(t, result.Records, drift.DefaultMaxIterations)
	for i, rec := range result.Records {
		assert.Equal(t, drift.Record{T: i, CtxLen: 0, Omega: 0}, rec)
	}
}

func TestRunDeterministicTrimsLeadingWhitespace(t *testing.T) {
	trimmed := "echo echo echo echo\n"
	engine := tt.NewScriptedEngine("\n   "+trimmed, " \n")

	result, err := drift.NewController(engine, drift.DefaultConfig()).
		Run(context.Background(), drift.DeterministicProfile())
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	// Omega is computed on the trimmed completion, not the raw one.
	assert.Equal(t, drift.Record{T: 0, CtxLen: 1, Omega: drift.Omega(trimmed)}, result.Records[0])
	assert.Equal(t, drift.Record{T: 1, CtxLen: 1, Omega: 0}, result.Records[1])
}

func TestRunInjectiveKeepsLeadingWhitespace(t *testing.T) {
	engine := tt.NewScriptedEngine("\n " + fiveWords).WithFallback(fiveWords)

	config := drift.DefaultConfig()
	config.MaxIterations = 1

	result, err := drift.NewController(engine, config).
		Run(context.Background(), drift.InjectiveProfile())
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, drift.Omega("\n "+fiveWords), result.Records[0].Omega)
}

func TestRunEngineErrorIsFatal(t *testing.T) {
	backendDown := errors.New("backend unreachable")
	engine := tt.NewScriptedEngine(fiveWords, fiveWords).
		WithFallback(fiveWords).
		WithError(2, backendDown)

	result, err := drift.NewController(engine, drift.DefaultConfig()).
		Run(context.Background(), drift.InjectiveProfile())

	require.Error(t, err)
	assert.ErrorIs(t, err, backendDown)
	assert.Equal(t, drift.TerminationError, result.Termination)
	// Records from the two successful iterations are still available.
	assert.Len(t, result.Records, 2)
}

func TestRunBuildsPromptsFromAccumulatedContext(t *testing.T) {
	engine := tt.NewScriptedEngine("abc\n", "def\n")

	config := drift.DefaultConfig()
	config.MaxIterations = 2

	_, err := drift.NewController(engine, config).
		Run(context.Background(), drift.InjectiveProfile())
	require.NoError(t, err)

	require.Len(t, engine.Prompts, 2)
	assert.Equal(t, drift.TurnMarker, engine.Prompts[0])
	assert.Equal(t, "abc\n"+drift.TurnMarker, engine.Prompts[1])

	require.Len(t, engine.Stops, 2)
	assert.Equal(t, drift.StopMarkers(), engine.Stops[0])
}

func TestRunStatsAccounting(t *testing.T) {
	engine := tt.NewScriptedEngine().WithFallback(fiveWords)

	result, err := drift.NewController(engine, drift.DefaultConfig()).
		Run(context.Background(), drift.InjectiveProfile())
	require.NoError(t, err)

	stats := result.Stats
	assert.Equal(t, int64(10), stats.GetCounter(drift.KeyIterations))
	assert.Equal(t, int64(10), stats.GetCounter(drift.KeyEngineCalls))
	assert.Equal(t, int64(10*drift.Omega(fiveWords)), stats.GetCounter(drift.KeyOmegaTotal))
	assert.Equal(t, 50.0, stats.GetGauge(drift.KeyContextWords))
}

func TestRunConvenienceWrapper(t *testing.T) {
	engine := tt.NewScriptedEngine().WithFallback(fiveWords)

	result, err := drift.Run(context.Background(), engine, drift.InjectiveProfile())
	require.NoError(t, err)

	assert.Equal(t, drift.LabelInjective, result.Label)
	assert.Equal(t, drift.TerminationCompleted, result.Termination)
}
