package port

import "context"

// CompletionInput carries one prompt for a language model provider.
type CompletionInput struct {
	System string
	Prompt string
}

// LLMClient abstracts a language model provider used for narrative
// explanations and chat fallback. Implementations are thin transports;
// no business logic lives behind this interface.
type LLMClient interface {
	Complete(ctx context.Context, input CompletionInput) (string, error)
	Name() string
}
