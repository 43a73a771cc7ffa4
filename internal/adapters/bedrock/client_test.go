package bedrock

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
)

func TestClientInvoke(t *testing.T) {
	ctx := context.Background()

	t.Run("SendsJSONRequest", func(t *testing.T) {
		runtime := NewMockRuntime(`{"content":[]}`)
		client := NewClient(runtime)

		body, err := client.Invoke(ctx, "anthropic.test-model", []byte(`{"max_tokens":1}`))
		if err != nil {
			t.Fatalf("Invoke failed: %v", err)
		}
		if string(body) != `{"content":[]}` {
			t.Errorf("Expected raw response body, got %s", body)
		}

		input := runtime.LastInput()
		if input == nil {
			t.Fatal("Expected InvokeModel to be called")
		}
		if aws.ToString(input.ModelId) != "anthropic.test-model" {
			t.Errorf("Expected model anthropic.test-model, got %s", aws.ToString(input.ModelId))
		}
		if aws.ToString(input.ContentType) != "application/json" {
			t.Errorf("Expected content type application/json, got %s", aws.ToString(input.ContentType))
		}
		if aws.ToString(input.Accept) != "application/json" {
			t.Errorf("Expected accept application/json, got %s", aws.ToString(input.Accept))
		}
		if string(input.Body) != `{"max_tokens":1}` {
			t.Errorf("Expected request body to be forwarded, got %s", input.Body)
		}
	})

	t.Run("WrapsServiceError", func(t *testing.T) {
		apiErr := &smithy.GenericAPIError{Code: "ThrottlingException", Message: "Rate exceeded"}
		client := NewClient(NewFailingMockRuntime(apiErr))

		_, err := client.Invoke(ctx, "anthropic.test-model", []byte(`{}`))
		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		var invokeErr *InvokeError
		if !errors.As(err, &invokeErr) {
			t.Fatalf("Expected InvokeError, got %T", err)
		}
		if invokeErr.Code != "ThrottlingException" {
			t.Errorf("Expected code ThrottlingException, got %q", invokeErr.Code)
		}
		if !IsThrottled(err) {
			t.Error("Expected IsThrottled to be true")
		}
		if !strings.Contains(err.Error(), "Rate exceeded") {
			t.Errorf("Expected message to carry provider text, got %q", err.Error())
		}
		if !errors.Is(err, apiErr) {
			t.Error("Expected error chain to include the service error")
		}
	})

	t.Run("WrapsTransportError", func(t *testing.T) {
		transportErr := errors.New("dial tcp: connection refused")
		client := NewClient(NewFailingMockRuntime(transportErr))

		_, err := client.Invoke(ctx, "anthropic.test-model", []byte(`{}`))

		var invokeErr *InvokeError
		if !errors.As(err, &invokeErr) {
			t.Fatalf("Expected InvokeError, got %T", err)
		}
		if invokeErr.Code != "" {
			t.Errorf("Expected no service code, got %q", invokeErr.Code)
		}
		if IsThrottled(err) {
			t.Error("Expected IsThrottled to be false")
		}
	})

	t.Run("RespectsCancelledContext", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		client := NewClient(NewMockRuntime(`{}`))
		_, err := client.Invoke(cancelled, "anthropic.test-model", []byte(`{}`))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}

func TestNewClientForRegion(t *testing.T) {
	if _, err := NewClientForRegion(context.Background(), ""); err == nil {
		t.Error("Expected error for empty region")
	}
}
