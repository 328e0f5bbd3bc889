package drift

import "context"

// Engine is the text-completion service the loop drives. It is a consumed
// interface: the core treats the backend as a black box that turns a prompt
// into a single completion string, truncated at the first matched stop
// marker or at the profile's MaxTokens.
//
// One engine instance is constructed per loop run; the two mode runs never
// share an engine. A non-nil error is fatal to the run — the loop performs
// no retries (see [Controller.Run]).
//
// [github.com/rickchristie/drift/engine.LCGEngine] adapts any LangChainGo
// llms.Model to this interface.
type Engine interface {
	Complete(
		ctx context.Context,
		prompt string,
		profile *Profile,
		stop []string,
	) (string, error)
}
