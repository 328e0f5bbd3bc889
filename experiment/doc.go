// Package experiment runs the full two-mode divergence experiment: an
// injective (stochastic) self-feedback loop followed by a deterministic
// (greedy) one, each with a freshly constructed engine, each persisted to
// its own artifact.
//
//	exp := experiment.New(
//	    func(profile *drift.Profile) (drift.Engine, error) {
//	        llm, err := ollama.New(ollama.WithModel(cfg.Model))
//	        if err != nil {
//	            return nil, err
//	        }
//	        return engine.NewLCGEngine(llm), nil
//	    },
//	    logwriter.NewJSON("."),
//	)
//	artifacts, err := exp.Run(ctx)
//
// The runs execute sequentially and share nothing: no engine state, no
// context, no records.
package experiment
