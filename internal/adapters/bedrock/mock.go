package bedrock

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// MockRuntime is an in-memory RuntimeAPI for testing. It records every
// request and answers with a fixed body or error.
type MockRuntime struct {
	mu       sync.Mutex
	inputs   []*bedrockruntime.InvokeModelInput
	Body     []byte
	Err      error
	OnInvoke func(input *bedrockruntime.InvokeModelInput)
}

// NewMockRuntime creates a MockRuntime that replies with body
func NewMockRuntime(body string) *MockRuntime {
	return &MockRuntime{Body: []byte(body)}
}

// NewFailingMockRuntime creates a MockRuntime that fails every call with err
func NewFailingMockRuntime(err error) *MockRuntime {
	return &MockRuntime{Err: err}
}

// InvokeModel implements RuntimeAPI.InvokeModel
func (m *MockRuntime) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, params)
	m.mu.Unlock()

	if m.OnInvoke != nil {
		m.OnInvoke(params)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}

	contentType := ContentTypeJSON
	return &bedrockruntime.InvokeModelOutput{
		Body:        append([]byte(nil), m.Body...),
		ContentType: &contentType,
	}, nil
}

// Calls returns the number of InvokeModel calls
func (m *MockRuntime) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}

// LastInput returns the most recent request, or nil if none was made
func (m *MockRuntime) LastInput() *bedrockruntime.InvokeModelInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.inputs) == 0 {
		return nil
	}
	return m.inputs[len(m.inputs)-1]
}
