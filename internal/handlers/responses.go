package handlers

import (
	"net/http"

	"prompt-relay-api/internal/models"
	"prompt-relay-api/pkg/lambda"
)

// PromptRequest documents the accepted request body
type PromptRequest struct {
	Prompt  string      `json:"prompt,omitempty"`
	Message string      `json:"message,omitempty"`
	Input   string      `json:"input,omitempty"`
	Text    string      `json:"text,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// AnswerBody is the success response body
type AnswerBody struct {
	Answer string `json:"answer"`
}

// ErrorBody is the error response body
type ErrorBody struct {
	Error string `json:"error"`
}

// AnswerResponse creates a 200 response carrying answer
func AnswerResponse(answer string) *lambda.Response {
	return lambda.NewResponse(http.StatusOK, models.FormatObject("answer", answer))
}

// ErrorResponseFor creates an error response with the given status and message
func ErrorResponseFor(statusCode int, message string) *lambda.Response {
	return lambda.NewResponse(statusCode, models.FormatObject("error", message))
}
