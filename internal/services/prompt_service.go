package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"prompt-relay-api/internal/models"
)

// promptService implements the PromptService interface
type promptService struct {
	invoker ModelInvoker
	config  *ModelConfig
}

// NewPromptService creates a new prompt service instance
func NewPromptService(invoker ModelInvoker, config *ModelConfig) (PromptService, error) {
	if invoker == nil {
		return nil, fmt.Errorf("model invoker cannot be nil")
	}
	if config == nil {
		return nil, fmt.Errorf("model config cannot be nil")
	}
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid model config: %w", err)
	}

	return &promptService{
		invoker: invoker,
		config:  config,
	}, nil
}

// Complete sends the prompt as a single user turn and extracts the answer
func (s *promptService) Complete(ctx context.Context, prompt string) (*Completion, error) {
	payload := models.NewInvokePayload(prompt, s.config.MaxTokens, s.config.Temperature)
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode model request: %w", err)
	}

	start := time.Now()
	reply, err := s.invoker.Invoke(ctx, s.config.ModelID, body)
	latency := time.Since(start)
	if err != nil {
		return nil, &InvocationError{Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"model_id":      s.config.ModelID,
		"prompt_length": len(prompt),
		"reply_size":    len(reply),
		"latency_ms":    float64(latency.Nanoseconds()) / 1000000,
	}).Debug("Model invoked")

	answer, err := models.ExtractAnswer(reply)
	if err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	if answer == "" {
		return nil, ErrEmptyAnswer
	}

	return &Completion{
		Answer:  answer,
		ModelID: s.config.ModelID,
	}, nil
}
