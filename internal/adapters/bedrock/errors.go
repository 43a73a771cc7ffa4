package bedrock

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ErrNoOutput is returned when the runtime reports success without an output
var ErrNoOutput = errors.New("no output returned")

// InvokeError represents a failed model invocation with additional context
type InvokeError struct {
	ModelID string // Model that was invoked
	Code    string // Service error code, e.g. "ThrottlingException"; empty for transport errors
	Err     error  // Underlying error
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("invoke model %s: %v", e.ModelID, e.Err)
}

func (e *InvokeError) Unwrap() error {
	return e.Err
}

// NewInvokeError creates an InvokeError, extracting the service error code when present
func NewInvokeError(modelID string, err error) *InvokeError {
	invokeErr := &InvokeError{
		ModelID: modelID,
		Err:     err,
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		invokeErr.Code = apiErr.ErrorCode()
	}

	return invokeErr
}

// IsThrottled returns true if the provider rejected the call for exceeding its rate
func IsThrottled(err error) bool {
	var invokeErr *InvokeError
	if errors.As(err, &invokeErr) {
		return invokeErr.Code == "ThrottlingException"
	}
	return false
}
