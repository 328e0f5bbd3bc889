package drift

// Record is one per-iteration measurement emitted by a self-feedback run.
//
// Records are appended in iteration order and never modified afterwards.
// The JSON field names match the artifact format consumed by downstream
// visualization tools.
type Record struct {
	// T is the zero-based iteration index.
	T int `json:"t" yaml:"t"`

	// CtxLen is the effective accumulated context length: the
	// whitespace-delimited word count of the context minus the estimated
	// contribution of the injected turn markers. Always >= 0.
	//
	// This is a deliberate approximation of model-token accounting, kept
	// word-based so results stay comparable across runs.
	CtxLen int `json:"ctx_len" yaml:"ctx_len"`

	// Omega is the compression gain of this iteration's completion, a
	// proxy for information density. Always >= 0.
	Omega int `json:"omega" yaml:"omega"`
}
