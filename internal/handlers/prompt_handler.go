package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"prompt-relay-api/internal/adapters/bedrock"
	"prompt-relay-api/internal/middleware"
	"prompt-relay-api/internal/models"
	"prompt-relay-api/internal/services"
	"prompt-relay-api/pkg/lambda"
)

// Error messages returned to clients
const (
	ErrMsgMissingPrompt = "missing prompt"
	ErrMsgEmptyAnswer   = "empty model response"
)

// PromptHandler turns gateway events into model completions
type PromptHandler struct {
	promptService services.PromptService
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(promptService services.PromptService) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
	}
}

// Handle processes one event to completion. It never panics and never
// returns a nil response.
func (h *PromptHandler) Handle(ctx context.Context, event models.Event) (resp *lambda.Response) {
	start := time.Now()
	method := event.Method()
	fields := logrus.Fields{
		"request_id": requestID(ctx),
		"method":     method,
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			fields["panic"] = true
			resp = ErrorResponseFor(http.StatusInternalServerError, panicMessage(recovered))
		}
		logResponse(fields, resp, time.Since(start))
	}()

	if event.IsPreflight() {
		return lambda.NoContent()
	}

	prompt, ok := models.ExtractPrompt(event)
	if !ok {
		return ErrorResponseFor(http.StatusBadRequest, ErrMsgMissingPrompt)
	}
	fields["prompt_source"] = prompt.Rule.Scope.String() + "." + prompt.Rule.Field
	fields["prompt_length"] = len(prompt.Text)

	completion, err := h.promptService.Complete(ctx, prompt.Text)
	if err != nil {
		fields["error"] = err.Error()
		if bedrock.IsThrottled(err) {
			fields["throttled"] = true
		}
		status, message := statusForError(err)
		return ErrorResponseFor(status, message)
	}

	fields["answer_length"] = len(completion.Answer)
	return AnswerResponse(completion.Answer)
}

// HandleEvent adapts Handle to the Lambda runtime, which delivers the raw event JSON
func (h *PromptHandler) HandleEvent(ctx context.Context, raw json.RawMessage) (*lambda.Response, error) {
	return h.Handle(ctx, models.ParseEvent(raw)), nil
}

// @Summary Complete a prompt
// @Description Forward a prompt to the configured model and return its answer
// @Tags prompt
// @Accept json
// @Produce json
// @Param request body PromptRequest true "Prompt"
// @Success 200 {object} AnswerBody
// @Success 204 "CORS preflight"
// @Failure 400 {object} ErrorBody
// @Failure 500 {object} ErrorBody
// @Failure 502 {object} ErrorBody
// @Router /prompt [post]
func (h *PromptHandler) Prompt(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		// An unreadable body resolves like a malformed one
		body = nil
	}

	resp := h.Handle(c.Request.Context(), models.EventFromHTTP(c.Request.Method, body))
	WriteResponse(c, resp)
}

// WriteResponse copies a gateway response onto a gin response
func WriteResponse(c *gin.Context, resp *lambda.Response) {
	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, resp.Headers[lambda.HeaderContentType], []byte(resp.Body))
}

// statusForError maps a completion failure to its status code and client message
func statusForError(err error) (int, string) {
	if services.IsEmptyAnswer(err) {
		return http.StatusBadGateway, ErrMsgEmptyAnswer
	}
	// Invocation failures, malformed replies and anything unexpected
	return http.StatusInternalServerError, err.Error()
}

func requestID(ctx context.Context) string {
	if id, ok := middleware.RequestIDFromContext(ctx); ok {
		return id
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	return ""
}

func panicMessage(recovered interface{}) string {
	if err, ok := recovered.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(recovered)
}

func logResponse(fields logrus.Fields, resp *lambda.Response, latency time.Duration) {
	fields["status_code"] = resp.StatusCode
	fields["latency_ms"] = float64(latency.Nanoseconds()) / 1000000

	entry := logrus.WithFields(fields)
	switch {
	case resp.StatusCode >= 500:
		entry.Error("Prompt failed")
	case resp.StatusCode >= 400:
		entry.Warn("Prompt rejected")
	default:
		entry.Info("Prompt handled")
	}
}
