// Package main provides an interactive CLI for running the divergence
// experiment against a live local model served by Ollama.
//
// Configuration is read from the YAML file named by DRIFT_TEST_CONFIG, or
// harness defaults when unset. The model tag must be pulled into Ollama
// beforehand.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rickchristie/drift"
	"github.com/rickchristie/drift/engine"
	"github.com/rickchristie/drift/experiment"
	"github.com/rickchristie/drift/hooks"
	"github.com/rickchristie/drift/logwriter"
	"github.com/tmc/langchaingo/llms/ollama"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorDim    = "\033[2m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
}

// progressHook prints each record as the loop produces it.
type progressHook struct{}

func (progressHook) OnBeforeRun(_ *drift.RunStats, e *drift.BeforeRunEvent) {
	fmt.Printf("%s=== %s run (temp %.2f, max %d tokens) ===%s\n",
		colorCyan, e.Profile.Label, e.Profile.Temperature,
		e.Profile.MaxTokens, colorReset)
}

func (progressHook) OnAfterIteration(stats *drift.RunStats, e *drift.AfterIterationEvent) {
	fmt.Printf("  t=%d ctx_len=%d omega=%d %s(%.1fs, %v context words)%s\n",
		e.T, e.Record.CtxLen, e.Record.Omega,
		colorDim, e.Duration.Seconds(),
		stats.GetGauge(drift.KeyContextWords), colorReset)
}

func (progressHook) OnAfterRun(_ *drift.RunStats, e *drift.AfterRunEvent) {
	fmt.Printf("%s--- %s run terminated: %s (%d records)%s\n",
		colorGreen, e.Profile.Label, e.Termination,
		len(e.Records), colorReset)
}

func run() error {
	cfg := experiment.DefaultHarnessConfig()
	if path := os.Getenv("DRIFT_TEST_CONFIG"); path != "" {
		loaded, err := experiment.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		fmt.Fprintf(os.Stderr,
			"%sDRIFT_TEST_CONFIG not set; using harness defaults "+
				"(model %s).%s\n",
			colorYellow, cfg.Model, colorReset)
	}

	rl, err := readline.New(colorCyan +
		"Enter selection (or 'q' to quit): " + colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	factory := func(profile *drift.Profile) (drift.Engine, error) {
		opts := []ollama.Option{ollama.WithModel(cfg.Model)}
		if cfg.ServerURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.ServerURL))
		}
		llm, err := ollama.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("construct ollama client: %w", err)
		}
		return engine.NewLCGEngine(llm).WithModelName(cfg.Model), nil
	}

	registry := hooks.NewRegistry().Register(progressHook{})

	newExperiment := func(w experiment.Writer) *experiment.Experiment {
		return experiment.New(factory, w).
			WithConfig(cfg.LoopConfig()).
			WithHooks(registry)
	}

	for {
		fmt.Println()
		fmt.Println("1. Full experiment (injective + deterministic, JSON logs)")
		fmt.Println("2. Full experiment (YAML logs)")
		fmt.Println("3. Injective run only")
		fmt.Println("4. Deterministic run only")

		line, err := rl.Readline()
		if err != nil {
			return nil
		}

		var exp *experiment.Experiment
		switch strings.TrimSpace(line) {
		case "q":
			return nil
		case "1":
			exp = newExperiment(logwriter.NewJSON(cfg.OutputDir))
		case "2":
			exp = newExperiment(logwriter.NewYAML(cfg.OutputDir))
		case "3":
			exp = newExperiment(logwriter.NewJSON(cfg.OutputDir)).
				WithProfiles(drift.InjectiveProfile())
		case "4":
			exp = newExperiment(logwriter.NewJSON(cfg.OutputDir)).
				WithProfiles(drift.DeterministicProfile())
		default:
			fmt.Printf("%sUnknown selection%s\n", colorYellow, colorReset)
			continue
		}

		artifacts, err := exp.Run(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "%sRun failed: %v%s\n",
				colorRed, err, colorReset)
			continue
		}
		for _, a := range artifacts {
			fmt.Printf("%sWrote %s%s\n", colorGreen, a.Path, colorReset)
		}
	}
}
