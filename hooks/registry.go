package hooks

import (
	"github.com/rickchristie/drift"
)

// BeforeRunHook receives an event once before a run's first iteration.
type BeforeRunHook interface {
	OnBeforeRun(stats *drift.RunStats, event *drift.BeforeRunEvent)
}

// BeforeIterationHook receives an event before each engine call.
type BeforeIterationHook interface {
	OnBeforeIteration(stats *drift.RunStats, event *drift.BeforeIterationEvent)
}

// AfterIterationHook receives an event after each completed iteration.
type AfterIterationHook interface {
	OnAfterIteration(stats *drift.RunStats, event *drift.AfterIterationEvent)
}

// AfterRunHook receives an event once after a run terminates, including
// runs that end with an engine failure.
type AfterRunHook interface {
	OnAfterRun(stats *drift.RunStats, event *drift.AfterRunEvent)
}

// Registry stores hooks in registration order and dispatches events to the
// ones implementing the relevant interface. It implements
// [drift.HookFirer].
type Registry struct {
	hooks []any
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make([]any, 0),
	}
}

// Register adds a hook to the registry. The hook can implement any
// combination of the hook interfaces. Hooks are called in the order they
// are registered. Returns the registry for chaining.
func (r *Registry) Register(hook any) *Registry {
	r.hooks = append(r.hooks, hook)
	return r
}

// FireBeforeRun dispatches a BeforeRunEvent to all registered
// BeforeRunHook implementations.
func (r *Registry) FireBeforeRun(stats *drift.RunStats, event *drift.BeforeRunEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(BeforeRunHook); ok {
			hook.OnBeforeRun(stats, event)
		}
	}
}

// FireBeforeIteration dispatches a BeforeIterationEvent to all registered
// BeforeIterationHook implementations.
func (r *Registry) FireBeforeIteration(stats *drift.RunStats, event *drift.BeforeIterationEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(BeforeIterationHook); ok {
			hook.OnBeforeIteration(stats, event)
		}
	}
}

// FireAfterIteration dispatches an AfterIterationEvent to all registered
// AfterIterationHook implementations.
func (r *Registry) FireAfterIteration(stats *drift.RunStats, event *drift.AfterIterationEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(AfterIterationHook); ok {
			hook.OnAfterIteration(stats, event)
		}
	}
}

// FireAfterRun dispatches an AfterRunEvent to all registered AfterRunHook
// implementations.
func (r *Registry) FireAfterRun(stats *drift.RunStats, event *drift.AfterRunEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(AfterRunHook); ok {
			hook.OnAfterRun(stats, event)
		}
	}
}

// Compile-time check that Registry implements drift.HookFirer.
var _ drift.HookFirer = (*Registry)(nil)
