package experiment

import (
	"context"
	"fmt"

	"github.com/rickchristie/drift"
)

// Writer persists one mode's finished record sequence to a uniquely named
// artifact. Both logwriter.JSON and logwriter.YAML satisfy it.
type Writer interface {
	Write(label string, records []drift.Record) (string, error)
}

// EngineFactory constructs a fresh engine for one run. It is called once
// per profile so the two modes never share engine state.
type EngineFactory func(profile *drift.Profile) (drift.Engine, error)

// Artifact is the outcome of one persisted run.
type Artifact struct {
	// Label is the mode label.
	Label string

	// Path is the written artifact's location.
	Path string

	// Result is the run's records, termination, and stats.
	Result *drift.RunResult
}

// Experiment drives the two mode runs sequentially and persists each one.
type Experiment struct {
	factory  EngineFactory
	writer   Writer
	config   drift.Config
	hooks    drift.HookFirer
	profiles []*drift.Profile
}

// New creates an Experiment with the default loop policy and the two fixed
// profiles, injective first.
func New(factory EngineFactory, writer Writer) *Experiment {
	return &Experiment{
		factory: factory,
		writer:  writer,
		config:  drift.DefaultConfig(),
		profiles: []*drift.Profile{
			drift.InjectiveProfile(),
			drift.DeterministicProfile(),
		},
	}
}

// WithConfig replaces the loop policy used for every run.
// Returns the experiment for chaining.
func (e *Experiment) WithConfig(config drift.Config) *Experiment {
	e.config = config
	return e
}

// WithHooks sets the hook firer passed to each run's controller.
// Returns the experiment for chaining.
func (e *Experiment) WithHooks(h drift.HookFirer) *Experiment {
	e.hooks = h
	return e
}

// WithProfiles replaces the profiles to run, in order. Useful for running a
// single mode.
// Returns the experiment for chaining.
func (e *Experiment) WithProfiles(profiles ...*drift.Profile) *Experiment {
	e.profiles = profiles
	return e
}

// Run executes each profile's loop and writes its artifact. Any engine
// construction failure, run failure, or write failure aborts the whole
// experiment; artifacts already written for earlier profiles stay on disk.
func (e *Experiment) Run(ctx context.Context) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(e.profiles))

	for _, profile := range e.profiles {
		eng, err := e.factory(profile)
		if err != nil {
			return artifacts, fmt.Errorf("construct engine for %s run: %w", profile.Label, err)
		}

		controller := drift.NewController(eng, e.config).WithHooks(e.hooks)
		result, err := controller.Run(ctx, profile)
		if err != nil {
			return artifacts, fmt.Errorf("%s run: %w", profile.Label, err)
		}

		path, err := e.writer.Write(profile.Label, result.Records)
		if err != nil {
			return artifacts, fmt.Errorf("persist %s run: %w", profile.Label, err)
		}

		artifacts = append(artifacts, Artifact{
			Label:  profile.Label,
			Path:   path,
			Result: result,
		})
	}

	return artifacts, nil
}
