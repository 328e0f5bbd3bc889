package experiment

import (
	"fmt"
	"os"

	"github.com/rickchristie/drift"
	"gopkg.in/yaml.v3"
)

// Config is the YAML-backed configuration for the integration harness. The
// core loop constants stay fixed defaults; this only exists so live runs
// can point at a different local model or shrink the loop without
// recompiling.
type Config struct {
	// Model is the backend model identifier (e.g. an Ollama model tag
	// serving the GGUF artifact).
	Model string `yaml:"model"`

	// ServerURL overrides the backend endpoint. Empty means the backend
	// client's default.
	ServerURL string `yaml:"server_url"`

	// OutputDir is where artifacts are written. Empty means the current
	// working directory.
	OutputDir string `yaml:"output_dir"`

	// MaxIterations overrides the iteration cap when > 0.
	MaxIterations int `yaml:"max_iterations"`

	// ContextWordLimit overrides the safety cutoff when > 0.
	ContextWordLimit int `yaml:"context_word_limit"`
}

// DefaultHarnessConfig returns the harness defaults: the experiment's fixed
// loop constants and a llama3 8B instruct quant, the model family the stop
// markers were chosen for.
func DefaultHarnessConfig() Config {
	return Config{
		Model:            "llama3:8b-instruct-q4_0",
		MaxIterations:    drift.DefaultMaxIterations,
		ContextWordLimit: drift.DefaultContextWordLimit,
	}
}

// LoadConfig reads a YAML config file and fills unset fields from
// [DefaultHarnessConfig].
func LoadConfig(path string) (Config, error) {
	cfg := DefaultHarnessConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Model == "" {
		cfg.Model = DefaultHarnessConfig().Model
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = drift.DefaultMaxIterations
	}
	if cfg.ContextWordLimit <= 0 {
		cfg.ContextWordLimit = drift.DefaultContextWordLimit
	}
	return cfg, nil
}

// LoopConfig translates the harness config into the loop policy: the fixed
// turn and stop markers with the configured cap and safety limit.
func (c Config) LoopConfig() drift.Config {
	loopCfg := drift.DefaultConfig()
	loopCfg.MaxIterations = c.MaxIterations
	loopCfg.Limits = []drift.Limit{
		{Key: drift.KeyContextWords, MaxValue: float64(c.ContextWordLimit)},
	}
	return loopCfg
}
