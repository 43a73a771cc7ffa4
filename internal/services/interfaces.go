package services

import (
	"context"
)

// PromptService defines the interface for prompt completion
type PromptService interface {
	// Complete sends prompt to the model and returns the flattened answer.
	// Errors are one of ErrEmptyAnswer, *InvocationError or *MalformedResponseError.
	Complete(ctx context.Context, prompt string) (*Completion, error)
}

// ModelInvoker sends a serialized request to a model and returns the raw reply
type ModelInvoker interface {
	Invoke(ctx context.Context, modelID string, body []byte) ([]byte, error)
}

// Completion is a successful model answer
type Completion struct {
	Answer  string
	ModelID string
}
