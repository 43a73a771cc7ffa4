package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// AnthropicVersion is the Bedrock messages API version sent with every request
const AnthropicVersion = "bedrock-2023-05-31"

// RoleUser is the role of the single conversational turn
const RoleUser = "user"

// Message is one conversational turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// InvokePayload is the request body sent to the model
type InvokePayload struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	Messages         []Message `json:"messages"`
}

// NewInvokePayload creates a payload with prompt as the sole user message
func NewInvokePayload(prompt string, maxTokens int, temperature float64) *InvokePayload {
	return &InvokePayload{
		AnthropicVersion: AnthropicVersion,
		MaxTokens:        maxTokens,
		Temperature:      temperature,
		Messages:         []Message{{Role: RoleUser, Content: prompt}},
	}
}

// LegacyAnswerKeys are flat string fields checked, in order, when the reply
// carries no text content parts.
var LegacyAnswerKeys = []string{"completion", "outputText", "answer", "result", "text", "message"}

// ErrInvalidResponseJSON indicates the model reply was not JSON
var ErrInvalidResponseJSON = errors.New("response body is not valid JSON")

// ExtractAnswer flattens a model reply into answer text. It returns an empty
// string when the reply holds no usable text and an error when the reply
// cannot be read at all.
func ExtractAnswer(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", ErrInvalidResponseJSON
	}

	reply := Fields{obj: gjson.ParseBytes(body)}
	if !reply.obj.IsObject() {
		return "", nil
	}

	if content := reply.Get("content"); content.IsArray() {
		var sb strings.Builder
		for i, part := range content.Array() {
			if !part.IsObject() {
				continue
			}
			partType := part.Get("type")
			if partType.Type != gjson.String || partType.Str != "text" {
				continue
			}
			text := part.Get("text")
			switch {
			case !text.Exists():
			case text.Type == gjson.String:
				sb.WriteString(text.Str)
			default:
				return "", fmt.Errorf("content part %d: text is %s, expected string", i, text.Type)
			}
		}
		if answer := strings.TrimSpace(sb.String()); answer != "" {
			return answer, nil
		}
	}

	for _, key := range LegacyAnswerKeys {
		if text, ok := reply.GetString(key); ok {
			return strings.TrimSpace(text), nil
		}
	}

	return "", nil
}
