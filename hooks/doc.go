// Package hooks provides lifecycle hooks for self-feedback runs.
//
// # Overview
//
// Hooks are the observability surface of a run: register any value that
// implements one or more of the hook interfaces ([BeforeRunHook],
// [BeforeIterationHook], [AfterIterationHook], [AfterRunHook]) and the
// [Registry] dispatches the matching events to it.
//
//	registry := hooks.NewRegistry()
//	registry.Register(&ProgressHook{})
//
//	controller := drift.NewController(engine, drift.DefaultConfig()).
//	    WithHooks(registry)
//
// A single hook can implement several interfaces; it only receives events
// for the interfaces it implements.
//
// # Accessing stats
//
// Every callback receives the run's live *drift.RunStats, so hooks can read
// the standard counters or maintain their own keys:
//
//	func (h *ProgressHook) OnAfterIteration(
//	    stats *drift.RunStats, e *drift.AfterIterationEvent,
//	) {
//	    fmt.Printf("t=%d ctx_len=%d omega=%d\n",
//	        e.T, e.Record.CtxLen, e.Record.Omega)
//	}
//
// # Thread safety
//
// Registry is not thread-safe. Register all hooks before starting a run;
// runs themselves are single-threaded so dispatch never races.
package hooks
