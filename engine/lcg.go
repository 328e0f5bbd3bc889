package engine

import (
	"context"
	"fmt"

	"github.com/rickchristie/drift"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// LCGEngine wraps a LangChainGo llms.Model and implements drift's Engine
// interface. It translates a sampling profile into LangChainGo call options
// and returns the first choice's text.
//
// Example usage:
//
//	llm, _ := ollama.New(ollama.WithModel("llama3:8b-instruct-q4_0"))
//	eng := engine.NewLCGEngine(llm).WithModelName("llama3-8b")
//
//	result, err := drift.Run(ctx, eng, drift.InjectiveProfile())
//
// Construct a fresh LCGEngine per run; the loop never shares engine state
// between the injective and deterministic runs.
type LCGEngine struct {
	model     llms.Model
	modelName string // Optional model name for error messages
}

// NewLCGEngine creates a new LCGEngine wrapping the given llms.Model.
func NewLCGEngine(model llms.Model) *LCGEngine {
	return &LCGEngine{
		model: model,
	}
}

// WithModelName sets the model name used in error messages.
// Returns the engine for chaining.
func (e *LCGEngine) WithModelName(name string) *LCGEngine {
	e.modelName = name
	return e
}

// Unwrap returns the underlying llms.Model.
func (e *LCGEngine) Unwrap() llms.Model {
	return e.model
}

// Complete implements drift.Engine. The prompt is sent as a single human
// message; the profile supplies the sampling options and stop carries the
// completion-truncation boundaries.
//
// A response with no choices is an error: the loop's contract is one
// completion string per call, and a malformed backend response is fatal to
// the run rather than silently treated as empty output.
func (e *LCGEngine) Complete(
	ctx context.Context,
	prompt string,
	profile *drift.Profile,
	stop []string,
) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	opts := profile.CallOptions()
	opts = append(opts, llms.WithStopWords(stop))

	response, err := e.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("model %q generate: %w", e.modelName, err)
	}
	if response == nil || len(response.Choices) == 0 {
		return "", fmt.Errorf("model %q returned no choices", e.modelName)
	}

	return response.Choices[0].Content, nil
}

// Compile-time check that LCGEngine implements drift.Engine.
var _ drift.Engine = (*LCGEngine)(nil)
